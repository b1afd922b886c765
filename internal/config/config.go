// Package config loads and writes expensereport.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "expensereport.yaml"

// EnvPrefix prefixes environment overrides, e.g. EXPENSEREPORT_REPORT_TOP_N.
const EnvPrefix = "EXPENSEREPORT"

// Config represents the top-level expensereport.yaml configuration.
type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// InputConfig describes where the ledger lives and how to read it.
type InputConfig struct {
	Path    string        `yaml:"path" mapstructure:"path"`
	Format  string        `yaml:"format" mapstructure:"format"`
	Columns ColumnsConfig `yaml:"columns" mapstructure:"columns"`
}

// ColumnsConfig maps record fields to CSV header names.
type ColumnsConfig struct {
	ID            string `yaml:"id" mapstructure:"id"`
	Category      string `yaml:"category" mapstructure:"category"`
	Amount        string `yaml:"amount" mapstructure:"amount"`
	Date          string `yaml:"date" mapstructure:"date"`
	PaymentMethod string `yaml:"payment_method" mapstructure:"payment_method"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	Format           string   `yaml:"format" mapstructure:"format"`
	TopN             int      `yaml:"top_n" mapstructure:"top_n"`
	Currency         string   `yaml:"currency" mapstructure:"currency"`
	BreakdownMethods []string `yaml:"breakdown_methods" mapstructure:"breakdown_methods"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// Default returns a Config with the stock expenses.csv layout.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:   "expenses.csv",
			Format: "csv",
			Columns: ColumnsConfig{
				ID:            "expense_id",
				Category:      "expense_type",
				Amount:        "amount",
				Date:          "expense_date",
				PaymentMethod: "payment_method",
			},
		},
		Report: ReportConfig{
			Format:           "text",
			TopN:             3,
			Currency:         "$",
			BreakdownMethods: []string{"Credit Card", "Cash"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("input.path", d.Input.Path)
	v.SetDefault("input.format", d.Input.Format)
	v.SetDefault("input.columns.id", d.Input.Columns.ID)
	v.SetDefault("input.columns.category", d.Input.Columns.Category)
	v.SetDefault("input.columns.amount", d.Input.Columns.Amount)
	v.SetDefault("input.columns.date", d.Input.Columns.Date)
	v.SetDefault("input.columns.payment_method", d.Input.Columns.PaymentMethod)
	v.SetDefault("report.format", d.Report.Format)
	v.SetDefault("report.top_n", d.Report.TopN)
	v.SetDefault("report.currency", d.Report.Currency)
	v.SetDefault("report.breakdown_methods", d.Report.BreakdownMethods)
	v.SetDefault("log.level", d.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads a config file from disk, layering defaults underneath and
// EXPENSEREPORT_* environment variables on top.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return decode(v)
}

// LoadOrDefault is Load, except that a missing file yields the defaults
// (still subject to environment overrides).
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return decode(newViper())
	}
	return Load(path)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

var (
	validFormats    = []string{"text", "json", "csv"}
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validParserKeys = []string{"csv"}
)

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var problems []string

	if !contains(validParserKeys, c.Input.Format) {
		problems = append(problems, fmt.Sprintf("input.format %q: must be one of %s", c.Input.Format, strings.Join(validParserKeys, ", ")))
	}
	cols := map[string]string{
		"id":             c.Input.Columns.ID,
		"category":       c.Input.Columns.Category,
		"amount":         c.Input.Columns.Amount,
		"date":           c.Input.Columns.Date,
		"payment_method": c.Input.Columns.PaymentMethod,
	}
	for _, name := range []string{"id", "category", "amount", "date", "payment_method"} {
		if strings.TrimSpace(cols[name]) == "" {
			problems = append(problems, fmt.Sprintf("input.columns.%s: must not be empty", name))
		}
	}
	if !contains(validFormats, c.Report.Format) {
		problems = append(problems, fmt.Sprintf("report.format %q: must be one of %s", c.Report.Format, strings.Join(validFormats, ", ")))
	}
	if c.Report.TopN < 0 {
		problems = append(problems, fmt.Sprintf("report.top_n %d: must not be negative", c.Report.TopN))
	}
	if !contains(validLogLevels, c.Log.Level) {
		problems = append(problems, fmt.Sprintf("log.level %q: must be one of %s", c.Log.Level, strings.Join(validLogLevels, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
