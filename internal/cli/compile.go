package cli

import (
	"github.com/spf13/cobra"

	"github.com/ewassef/LinqToTwitter/internal/account"
	"github.com/ewassef/LinqToTwitter/internal/query"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Type    string
	BaseURL string
}

// CompileResult is the compiled request for one query.
type CompileResult struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a typed account query into its request URL",
		Long: `Compile builds the query predicate from flags, extracts its parameters,
resolves the query type, and prints the request URL - the same pipeline a
live query runs before the transport executes it. No network call is made.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "query type (VerifyCredentials|RateLimitStatus|Totals|Settings)")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", account.DefaultBaseURL, "API base URL")

	return cmd
}

func runCompile(opts *CompileOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	// Build the predicate exactly as a library caller would; an absent
	// --type yields a predicate with no Type comparison, so the
	// configuration error surfaces from extraction, not from flag parsing.
	var preds []query.Predicate
	if opts.Type != "" {
		preds = append(preds, query.Equals{Field: account.TypeField, Value: query.String(opts.Type)})
	}

	extractor := account.NewParamExtractor()
	params, err := extractor.Extract(query.And{Predicates: preds})
	if err != nil {
		_ = formatter.Error(err.Error())
		return WrapExitError(ExitCommandError, "extract parameters", err)
	}

	qt, err := account.ParseQueryType(params[account.TypeField])
	if err != nil {
		_ = formatter.Error(err.Error())
		return WrapExitError(ExitCommandError, "resolve query type", err)
	}

	url, err := account.BuildURL(opts.BaseURL, qt)
	if err != nil {
		_ = formatter.Error(err.Error())
		return WrapExitError(ExitFailure, "build url", err)
	}

	if opts.Format == "json" {
		return formatter.Success(CompileResult{Type: qt.String(), URL: url})
	}
	return formatter.Success(url)
}
