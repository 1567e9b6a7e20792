package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ewassef/LinqToTwitter/internal/account"
)

// MapOptions holds flags for the map command.
type MapOptions struct {
	*RootOptions
	Type     string
	Response string
	Action   bool
}

// NewMapCommand creates the map command.
func NewMapCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MapOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map a captured JSON response into an account entity",
		Long: `Map runs a response body from a file through the response mapper for the
given query type (or action, with --action) and prints the resulting
entity. An empty file is the valid no-content result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "query type, or action name with --action")
	cmd.Flags().StringVarP(&opts.Response, "response", "r", "", "path to the response JSON file")
	cmd.Flags().BoolVar(&opts.Action, "action", false, "treat --type as an action (EndSession)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("response")

	return cmd
}

func runMap(opts *MapOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	body, err := os.ReadFile(opts.Response)
	if err != nil {
		_ = formatter.Error(err.Error())
		return WrapExitError(ExitCommandError, "read response file", err)
	}

	acct, err := mapBody(opts, string(body))
	if err != nil {
		_ = formatter.Error(err.Error())
		return WrapExitError(ExitFailure, "map response", err)
	}

	return outputAccount(formatter, acct)
}

func mapBody(opts *MapOptions, body string) (account.Account, error) {
	if opts.Action {
		if opts.Type != account.ActionEndSession.String() {
			return account.Account{}, fmt.Errorf("unknown action %q", opts.Type)
		}
		return account.ProcessActionResult[account.Account](account.ActionEndSession, body)
	}

	qt, err := account.ParseQueryType(opts.Type)
	if err != nil {
		return account.Account{}, err
	}
	return account.ProcessResults(qt, body)
}

// outputAccount renders a mapped entity in the configured format.
func outputAccount(formatter *OutputFormatter, acct account.Account) error {
	snapshot := map[string]any{
		"type":    acct.Type.String(),
		"payload": acct.Payload,
	}

	if formatter.Format == "json" {
		return formatter.Success(snapshot)
	}

	text, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return formatter.Success(string(text))
}
