package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewassef/LinqToTwitter/internal/account"
	"github.com/ewassef/LinqToTwitter/internal/recorder"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	RecordDB string
}

// ReplayStepResult is one replayed step in the command output.
type ReplayStepResult struct {
	Seq     int    `json:"seq"`
	Kind    string `json:"kind"`
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a captured session through the response mapper",
		Long: `Replay runs every step of a scenario file through the response mapper in
order and prints the mapped entities. With --record-db the steps are also
appended to a SQLite trace database under the scenario's name.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RecordDB, "record-db", "", "path to a trace database to record the replay into")

	return cmd
}

func runReplay(opts *ReplayOptions, scenarioPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	scenario, err := LoadScenario(scenarioPath)
	if err != nil {
		_ = formatter.Error(err.Error())
		return WrapExitError(ExitCommandError, "load scenario", err)
	}

	var store *recorder.Store
	if opts.RecordDB != "" {
		store, err = recorder.Open(opts.RecordDB)
		if err != nil {
			_ = formatter.Error(err.Error())
			return WrapExitError(ExitCommandError, "open trace database", err)
		}
		defer store.Close()
	}

	results := make([]ReplayStepResult, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		acct, err := replayStep(step)
		if err != nil {
			_ = formatter.Error(fmt.Sprintf("step %d: %v", i+1, err))
			return WrapExitError(ExitFailure, fmt.Sprintf("replay step %d", i+1), err)
		}

		if store != nil {
			url, err := stepURL(step)
			if err != nil {
				_ = formatter.Error(err.Error())
				return WrapExitError(ExitFailure, "build step url", err)
			}
			kind := recorder.Kind(step.Kind)
			if _, err := store.Record(cmd.Context(), scenario.Name, kind, step.Type, url, step.Response); err != nil {
				_ = formatter.Error(err.Error())
				return WrapExitError(ExitCommandError, "record step", err)
			}
		}

		results = append(results, ReplayStepResult{
			Seq:     i + 1,
			Kind:    step.Kind,
			Type:    step.Type,
			Payload: acct.Payload,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(results)
	}

	for _, res := range results {
		populated := "payload"
		if res.Payload == nil {
			populated = "no content"
		}
		fmt.Fprintf(formatter.Writer, "%3d  %-6s  %-18s  %s\n", res.Seq, res.Kind, res.Type, populated)
	}
	fmt.Fprintf(formatter.Writer, "replayed %d step(s) from %s\n", len(results), scenario.Name)
	return nil
}

func replayStep(step ScenarioStep) (account.Account, error) {
	if step.Kind == "action" {
		if step.Type != account.ActionEndSession.String() {
			return account.Account{}, fmt.Errorf("unknown action %q", step.Type)
		}
		return account.ProcessActionResult[account.Account](account.ActionEndSession, step.Response)
	}

	qt, err := account.ParseQueryType(step.Type)
	if err != nil {
		return account.Account{}, err
	}
	return account.ProcessResults(qt, step.Response)
}

func stepURL(step ScenarioStep) (string, error) {
	if step.Kind == "action" {
		return account.BuildActionURL(account.DefaultBaseURL, account.ActionEndSession)
	}
	qt, err := account.ParseQueryType(step.Type)
	if err != nil {
		return "", err
	}
	return account.BuildURL(account.DefaultBaseURL, qt)
}
