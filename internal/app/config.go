package app

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/format"
)

// InputFormat selects how the input is split into values.
type InputFormat string

const (
	// InputLines treats every line as one value of a single column.
	InputLines InputFormat = "lines"
	// InputCSV parses delimited records; one or more columns may be encoded.
	InputCSV InputFormat = "csv"
)

// OutputFormat selects how codes are written.
type OutputFormat string

const (
	// OutputLines writes one row of codes per line, columns joined by the delimiter.
	OutputLines OutputFormat = "lines"
	// OutputCSV writes codes as CSV records, with a header row when the input had one.
	OutputCSV OutputFormat = "csv"
	// OutputJSON writes every column with its codes and vocabulary.
	OutputJSON OutputFormat = "json"
)

// Config holds all options of one vectorize invocation.
type Config struct {
	Source      string        `yaml:"source"`      // file path, "-" or empty for stdin
	Input       InputFormat   `yaml:"input"`       // lines or csv
	Columns     []string      `yaml:"columns"`     // names or 0-based indexes; empty means all
	Header      bool          `yaml:"header"`      // first csv record holds column names
	Delimiter   string        `yaml:"delimiter"`   // single character, default ","
	Frequency   bool          `yaml:"frequency"`   // order codes by descending count
	Reversed    bool          `yaml:"reversed"`    // reverse the code order
	Output      OutputFormat  `yaml:"output"`      // lines, csv or json
	VocabOut    string        `yaml:"vocabOut"`    // directory to save fitted vocabularies
	VocabIn     string        `yaml:"vocabIn"`     // directory to load saved vocabularies from
	Compression string        `yaml:"compression"` // vocabulary compression
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file or flag overrides it.
func DefaultConfig() Config {
	return Config{
		Input:       InputLines,
		Delimiter:   ",",
		Output:      OutputLines,
		Compression: format.CompressionZstd.String(),
		Logging: LoggingConfig{
			Level:  "error",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML config file (if provided) over DefaultConfig and
// applies VECTORIZE_* environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)

	return cfg, nil
}

// applyEnvOverrides reads VECTORIZE_* environment variables and overrides
// the corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VECTORIZE_FREQUENCY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Frequency = b
		}
	}
	if v := os.Getenv("VECTORIZE_REVERSED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Reversed = b
		}
	}
	if v := os.Getenv("VECTORIZE_COMPRESSION"); v != "" {
		cfg.Compression = v
	}
	if v := os.Getenv("VECTORIZE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("VECTORIZE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks option values and returns the parsed compression and delimiter.
func (c Config) Validate() (format.CompressionType, rune, error) {
	switch c.Input {
	case InputLines, InputCSV:
	default:
		return 0, 0, fmt.Errorf("%w: invalid input format %q: want lines or csv", errs.ErrUsage, c.Input)
	}

	switch c.Output {
	case OutputLines, OutputCSV, OutputJSON:
	default:
		return 0, 0, fmt.Errorf("%w: invalid output format %q: want lines, csv or json", errs.ErrUsage, c.Output)
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, 0, fmt.Errorf("%w: delimiter must be a single character, got %q", errs.ErrUsage, c.Delimiter)
	}
	delim, _ := utf8.DecodeRuneInString(c.Delimiter)
	if delim == '"' || delim == '\r' || delim == '\n' || delim == utf8.RuneError {
		return 0, 0, fmt.Errorf("%w: invalid delimiter %q", errs.ErrUsage, c.Delimiter)
	}

	if c.Input == InputLines && (len(c.Columns) > 0 || c.Header) {
		return 0, 0, fmt.Errorf("%w: --column and --header need --input csv", errs.ErrUsage)
	}

	if c.VocabIn != "" && c.VocabOut != "" {
		return 0, 0, fmt.Errorf("%w: --vocab-in and --vocab-out cannot be used together", errs.ErrUsage)
	}

	if c.VocabIn != "" && (c.Frequency || c.Reversed) {
		return 0, 0, fmt.Errorf("%w: --frequency and --reversed cannot be combined with --vocab-in", errs.ErrUsage)
	}

	compression, err := format.ParseCompression(c.Compression)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errs.ErrUsage, err)
	}

	return compression, delim, nil
}
