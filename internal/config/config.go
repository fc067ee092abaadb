package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerlab/internal/scoring"
)

// FileName is the project configuration file looked up in the working
// directory.
const FileName = "ledgerlab.yaml"

// EnvPrefix prefixes every environment override, e.g. LEDGERLAB_LOG_FORMAT.
const EnvPrefix = "ledgerlab"

// Config represents the top-level ledgerlab.yaml configuration.
type Config struct {
	Course   CourseConfig   `yaml:"course"`
	Activity string         `yaml:"activity,omitempty"`
	Grading  GradingConfig  `yaml:"grading"`
	Log      LogConfig      `yaml:"log"`
	GradeLog GradeLogConfig `yaml:"grade_log" envconfig:"GRADE_LOG"`
}

// CourseConfig identifies the class the activities belong to.
type CourseConfig struct {
	Name    string `yaml:"name"`
	Section string `yaml:"section,omitempty"`
}

// GradingConfig mirrors scoring.Policy in YAML-friendly form.
type GradingConfig struct {
	Tolerance       decimal.Decimal    `yaml:"tolerance"`
	ZeroEpsilon     decimal.Decimal    `yaml:"zero_epsilon" split_words:"true"`
	Points          int                `yaml:"points"`
	SpuriousPenalty int                `yaml:"spurious_penalty" split_words:"true"`
	Thresholds      scoring.Thresholds `yaml:"thresholds"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Level  string `yaml:"level"`  // debug, info, warn, error
}

// GradeLogConfig controls the grade-log.csv audit trail.
type GradeLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir,omitempty"`
}

// Load reads a ledgerlab.yaml file from disk. Keys absent from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file is missing.
// Environment overrides are applied either way.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = Default(""), nil
	}
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overwrites fields from LEDGERLAB_* environment variables. Unset
// variables leave the current value alone.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return cfg.Validate()
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

// Default returns a Config with the standard grading policy.
func Default(courseName string) *Config {
	p := scoring.DefaultPolicy()
	return &Config{
		Course: CourseConfig{Name: courseName},
		Grading: GradingConfig{
			Tolerance:       p.Tolerance,
			ZeroEpsilon:     p.ZeroEpsilon,
			Points:          p.Points,
			SpuriousPenalty: p.SpuriousPenalty,
			Thresholds:      p.Thresholds,
		},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		GradeLog: GradeLogConfig{
			Enabled: true,
			Dir:     "logs",
		},
	}
}

// Validate rejects settings no grading run can use.
func (c *Config) Validate() error {
	g := c.Grading
	if g.Tolerance.IsNegative() {
		return fmt.Errorf("grading.tolerance must not be negative, got %s", g.Tolerance)
	}
	if g.ZeroEpsilon.IsNegative() {
		return fmt.Errorf("grading.zero_epsilon must not be negative, got %s", g.ZeroEpsilon)
	}
	if g.Points < 1 {
		return fmt.Errorf("grading.points must be at least 1, got %d", g.Points)
	}
	th := g.Thresholds
	if th.A > 100 || th.A < th.P || th.P < th.D || th.D < 0 {
		return fmt.Errorf("grading.thresholds must satisfy 100 >= a >= p >= d >= 0, got %d/%d/%d", th.A, th.P, th.D)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Policy converts the grading section into a scoring.Policy.
func (c *Config) Policy() scoring.Policy {
	return scoring.Policy{
		Tolerance:       c.Grading.Tolerance,
		ZeroEpsilon:     c.Grading.ZeroEpsilon,
		Points:          c.Grading.Points,
		SpuriousPenalty: c.Grading.SpuriousPenalty,
		Thresholds:      c.Grading.Thresholds,
	}
}
