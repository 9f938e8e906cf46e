package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/internal/app"
)

// newTestCommand returns a root command with args parsed into its flags.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(args))

	return cmd
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig(newTestCommand(t), nil)
	require.NoError(t, err)

	require.Equal(t, "-", cfg.Source)
	require.Equal(t, app.InputLines, cfg.Input)
	require.Equal(t, app.OutputLines, cfg.Output)
	require.False(t, cfg.Frequency)
	require.Equal(t, "error", cfg.Logging.Level)
}

func TestBuildConfig_Flags(t *testing.T) {
	cmd := newTestCommand(t, "-f", "-r", "-c", "city", "-c", "2", "--header", "-o", "json", "--compression", "s2", "--debug")

	cfg, err := buildConfig(cmd, []string{"data.csv"})
	require.NoError(t, err)

	require.Equal(t, "data.csv", cfg.Source)
	require.True(t, cfg.Frequency)
	require.True(t, cfg.Reversed)
	require.Equal(t, []string{"city", "2"}, cfg.Columns)
	require.True(t, cfg.Header)
	require.Equal(t, app.InputCSV, cfg.Input, "columns imply csv input")
	require.Equal(t, app.OutputJSON, cfg.Output)
	require.Equal(t, "s2", cfg.Compression)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestBuildConfig_MissingConfigFile(t *testing.T) {
	_, err := buildConfig(newTestCommand(t, "--config", "/nonexistent/vectorize.yaml"), nil)
	require.Error(t, err)
}

func TestBuildConfig_SourceFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectorize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: data/train.csv\n"), 0o600))

	cfg, err := buildConfig(newTestCommand(t, "--config", path), nil)
	require.NoError(t, err)
	require.Equal(t, "data/train.csv", cfg.Source)

	cfg, err = buildConfig(newTestCommand(t, "--config", path), []string{"other.csv"})
	require.NoError(t, err)
	require.Equal(t, "other.csv", cfg.Source, "the file argument wins over the config file")
}

func TestRootCmd_UsageErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	tests := []struct {
		name string
		args []string
	}{
		{"too many arguments", []string{"a.csv", "b.csv"}},
		{"unknown flag", []string{"--bogus", missing}},
		{"bad flag value", []string{"--frequency=maybe", missing}},
		{"vocab-in with vocab-out", []string{"--vocab-in", "in", "--vocab-out", "out", missing}},
		{"inspect without file", []string{"inspect"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			err := cmd.Execute()
			require.ErrorIs(t, err, errs.ErrUsage)
		})
	}
}

func TestRootCmd_MissingFileIsNotUsageError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.csv")})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, errs.ErrUsage)
}

func TestOpenSource_MissingFile(t *testing.T) {
	_, err := openSource("/nonexistent/input.csv")
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrUsage)
}
