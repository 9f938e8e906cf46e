package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/internal/app"
	"github.com/arloliu/vectorize/internal/logger"
)

// buildConfig layers command flags over the config file and environment.
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("frequency") {
		cfg.Frequency, _ = flags.GetBool("frequency")
	}
	if flags.Changed("reversed") {
		cfg.Reversed, _ = flags.GetBool("reversed")
	}
	if flags.Changed("column") {
		cfg.Columns, _ = flags.GetStringArray("column")
	}
	if flags.Changed("header") {
		cfg.Header, _ = flags.GetBool("header")
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("input") {
		input, _ := flags.GetString("input")
		cfg.Input = app.InputFormat(input)
	}
	if flags.Changed("format") {
		output, _ := flags.GetString("format")
		cfg.Output = app.OutputFormat(output)
	}
	if flags.Changed("vocab-out") {
		cfg.VocabOut, _ = flags.GetString("vocab-out")
	}
	if flags.Changed("vocab-in") {
		cfg.VocabIn, _ = flags.GetString("vocab-in")
	}
	if flags.Changed("compression") {
		cfg.Compression, _ = flags.GetString("compression")
	}

	// columns and a header only make sense for delimited input
	if !flags.Changed("input") && cfg.Input == app.InputLines && (len(cfg.Columns) > 0 || cfg.Header) {
		cfg.Input = app.InputCSV
	}

	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}

	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if cfg.Source == "" {
		cfg.Source = "-"
	}

	return cfg, nil
}

// openSource opens the input file, or stdin for "-".
func openSource(source string) (io.ReadCloser, error) {
	if source == "" || source == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errs.ErrMissingInput
		}

		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}

	return f, nil
}

// usageError marks err as a command line usage error.
func usageError(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w: %w", errs.ErrUsage, err)
}

// usageArgs wraps a positional argument validator so its errors are usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(cmd, err)
		}

		return nil
	}
}

// setupLogger configures the default slog logger on stderr.
func setupLogger(cfg app.LoggingConfig) {
	logger.Setup(cfg.Level, cfg.Format, os.Stderr)
}

// newRootCmd builds the vectorize command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vectorize [file]",
		Short: "Encode categorical columns as ordinal integer codes",
		Long: `Vectorize replaces every value of a column with the position of that value
in the column's token table. Values are read one per line, or from CSV with
--input csv. Input comes from a file or standard input.

Examples:
  printf 'a\nb\na\n' | vectorize
  vectorize --frequency --input csv --header -c city data.csv
  vectorize --input csv --header --vocab-out vocab/ train.csv
  vectorize --input csv --header --vocab-in vocab/ test.csv`,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, args)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			setupLogger(cfg.Logging)

			if _, _, err := cfg.Validate(); err != nil {
				return err
			}

			in, err := openSource(cfg.Source)
			if err != nil {
				return err
			}
			defer in.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := app.Run(ctx, cfg, in, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("vectorize failed: %w", err)
			}

			return nil
		},
	}

	addEncodeFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(usageError)
	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <vocab-file>",
		Short: "Print a saved vocabulary",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := app.LoadVocabulary(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, app.DescribeVocabulary(vocab))
			for code, entry := range vocab.Entries() {
				fmt.Fprintf(out, "%d\t%d\t%s\n", code, entry.Count, entry.Value)
			}

			return nil
		},
	}
}

func addEncodeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolP("frequency", "f", false, "Order codes by descending occurrence count")
	flags.BoolP("reversed", "r", false, "Reverse the code order (applied after --frequency)")

	flags.String("input", string(app.InputLines), "Input format: lines or csv")
	flags.StringArrayP("column", "c", nil, "Column to encode, by header name or 0-based index (repeatable, default: all)")
	flags.Bool("header", false, "The first CSV record holds column names")
	flags.StringP("delimiter", "d", ",", "Field delimiter for CSV input and output")
	flags.StringP("format", "o", string(app.OutputLines), "Output format: lines, csv or json")

	flags.String("vocab-out", "", "Directory to save fitted vocabularies to")
	flags.String("vocab-in", "", "Directory to load saved vocabularies from instead of fitting")
	flags.String("compression", "zstd", "Vocabulary compression: none, zstd, s2 or lz4")

	flags.String("config", "", "YAML file with default options")
	flags.BoolP("debug", "D", false, "Enable debug logging")
	_ = flags.MarkHidden("debug")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errs.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
