package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pixperk/sheetsql/internal/sqlgen"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPath     = ".sheetsql.yaml"
	DefaultStartRow = 2

	// EnvConfigPath names the config file when --config is not given.
	EnvConfigPath = "SHEETSQL_CONFIG"
	// EnvPort is the serve command's default port.
	EnvPort = "SHEETSQL_PORT"
)

var ErrMissingField = errors.New("missing required config value")

type Config struct {
	File     string   `yaml:"file"`
	Sheet    string   `yaml:"sheet"`
	Columns  []string `yaml:"columns"`
	StartRow *int     `yaml:"start_row"`
	Template string   `yaml:"template"`

	// Nil means "not requested"; an explicit zero is rejected by Validate.
	RowsPerStatement *int   `yaml:"rows_per_statement"`
	Output           string `yaml:"output"`
	OutputBatchSize  *int   `yaml:"output_batch_size"`
	SkipEmpty        *bool  `yaml:"skip_empty"`

	Watch WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Interval int `yaml:"interval_seconds"`
}

// LoadDotEnv copies KEY=VALUE pairs from a .env file into the environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("config file not found, please provide --config flag or create " + DefaultPath)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.New("failed to parse config file: " + err.Error())
	}

	return &config, nil
}

// EffectiveStartRow falls back to row 2, leaving row 1 for headers. An
// explicit 0 reads from the first row, like 1.
func (c *Config) EffectiveStartRow() int {
	if c.StartRow == nil {
		return DefaultStartRow
	}
	return *c.StartRow
}

func (c *Config) EffectiveSkipEmpty() bool {
	if c.SkipEmpty == nil {
		return true
	}
	return *c.SkipEmpty
}

// BatchRows returns the rows-per-statement setting, or 0 for single-row mode.
func (c *Config) BatchRows() int {
	if c.RowsPerStatement == nil {
		return 0
	}
	return *c.RowsPerStatement
}

// ShardSize returns the output batch size, or 0 for a single output file.
func (c *Config) ShardSize() int {
	if c.OutputBatchSize == nil {
		return 0
	}
	return *c.OutputBatchSize
}

func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("%w: file", ErrMissingField)
	}
	if len(c.Columns) == 0 {
		return fmt.Errorf("%w: columns", ErrMissingField)
	}
	if c.Template == "" {
		return fmt.Errorf("%w: template", ErrMissingField)
	}
	if _, err := sqlgen.ResolveColumns(c.Columns); err != nil {
		return err
	}
	if c.RowsPerStatement != nil && *c.RowsPerStatement < 1 {
		return fmt.Errorf("%w: rows_per_statement is %d", sqlgen.ErrInvalidBatchSize, *c.RowsPerStatement)
	}
	if c.OutputBatchSize != nil && *c.OutputBatchSize < 1 {
		return fmt.Errorf("%w: output_batch_size is %d", sqlgen.ErrInvalidBatchSize, *c.OutputBatchSize)
	}
	if c.StartRow != nil && *c.StartRow < 0 {
		return fmt.Errorf("start_row must not be negative, got %d", *c.StartRow)
	}
	if c.OutputBatchSize != nil && c.Output == "" {
		return fmt.Errorf("%w: output is required with output_batch_size", ErrMissingField)
	}
	return nil
}

const Sample = `# .sheetsql.yaml - Sample Configuration

# Spreadsheet to read (.xlsx or .csv)
file: users.xlsx

# Sheet name; leave empty for the first sheet
sheet: ""

# Columns to read, in placeholder order ({1} = first entry)
columns: [A, B]

# First data row (1-based); row 1 is usually the header
start_row: 2

# Statement template. Single-row placeholders: {value}, {1}, {A}
# Batch markers (need rows_per_statement): {values}, {@row}, {#1}, {#A}
template: "INSERT INTO users (id, name) VALUES ('{1}', '{2}');"

# Rows folded into one statement; omit for one statement per row
# rows_per_statement: 500

# Output file; omit to print to the console
# output: users.sql

# Statements per output file; splits output into users_1.sql, users_2.sql, ...
# output_batch_size: 1000

# Skip rows whose selected cells are all blank
skip_empty: true

# watch command settings
watch:
  interval_seconds: 2
`
