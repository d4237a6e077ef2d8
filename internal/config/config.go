package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the current and home directories
const FileName = ".commitkit.yaml"

// EnvPrefix prefixes environment overrides, e.g. COMMITKIT_SUGGESTION_SEED
const EnvPrefix = "COMMITKIT"

// Config represents the application configuration
type Config struct {
	Classifier *ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
	Suggestion *SuggestionConfig `yaml:"suggestion" mapstructure:"suggestion"`
	Report     *ReportConfig     `yaml:"report" mapstructure:"report"`
}

// ClassifierConfig represents the commit type classifier configuration
type ClassifierConfig struct {
	ModelPath   string `yaml:"model_path" mapstructure:"model_path"` // empty: beside the executable
	MaxFeatures int    `yaml:"max_features" mapstructure:"max_features"`
}

// DefaultClassifierConfig returns the default classifier configuration
func DefaultClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{
		ModelPath:   "",
		MaxFeatures: 1000,
	}
}

// Validate validates the classifier configuration
func (c *ClassifierConfig) Validate() error {
	if c.MaxFeatures < 0 {
		return fmt.Errorf("max_features must be non-negative")
	}
	return nil
}

// SuggestionConfig represents the suggestion loop configuration
type SuggestionConfig struct {
	Seed uint64 `yaml:"seed" mapstructure:"seed"` // 0 seeds from entropy
}

// DefaultSuggestionConfig returns the default suggestion configuration
func DefaultSuggestionConfig() *SuggestionConfig {
	return &SuggestionConfig{Seed: 0}
}

// ReportConfig represents the PR report configuration
type ReportConfig struct {
	Enabled        bool     `yaml:"enabled" mapstructure:"enabled"`
	Path           string   `yaml:"path" mapstructure:"path"`
	CompatibleApps []string `yaml:"compatible_apps" mapstructure:"compatible_apps"`
}

// DefaultReportConfig returns the default report configuration
func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Enabled:        true,
		Path:           "PR_suggest.md",
		CompatibleApps: []string{"Web", "Mobile"},
	}
}

// Validate validates the report configuration
func (r *ReportConfig) Validate() error {
	if r.Enabled && strings.TrimSpace(r.Path) == "" {
		return fmt.Errorf("path is required when the report is enabled")
	}
	return nil
}

// Default returns a configuration with every section set to its defaults
func Default() *Config {
	return &Config{
		Classifier: DefaultClassifierConfig(),
		Suggestion: DefaultSuggestionConfig(),
		Report:     DefaultReportConfig(),
	}
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if c.Classifier != nil {
		if err := c.Classifier.Validate(); err != nil {
			return fmt.Errorf("invalid classifier configuration: %w", err)
		}
	}

	if c.Report != nil {
		if err := c.Report.Validate(); err != nil {
			return fmt.Errorf("invalid report configuration: %w", err)
		}
	}

	return nil
}

// GetClassifierConfig returns the classifier configuration with defaults applied
func (c *Config) GetClassifierConfig() *ClassifierConfig {
	if c.Classifier == nil {
		return DefaultClassifierConfig()
	}
	// Apply defaults for unset values
	defaults := DefaultClassifierConfig()
	if c.Classifier.MaxFeatures <= 0 {
		c.Classifier.MaxFeatures = defaults.MaxFeatures
	}
	c.Classifier.ModelPath = expandHome(expandEnv(c.Classifier.ModelPath))
	return c.Classifier
}

// GetSuggestionConfig returns the suggestion configuration with defaults applied
func (c *Config) GetSuggestionConfig() *SuggestionConfig {
	if c.Suggestion == nil {
		return DefaultSuggestionConfig()
	}
	return c.Suggestion
}

// GetReportConfig returns the report configuration with defaults applied
func (c *Config) GetReportConfig() *ReportConfig {
	if c.Report == nil {
		return DefaultReportConfig()
	}
	// Apply defaults for unset values
	defaults := DefaultReportConfig()
	if c.Report.Path == "" {
		c.Report.Path = defaults.Path
	}
	if len(c.Report.CompatibleApps) == 0 {
		c.Report.CompatibleApps = defaults.CompatibleApps
	}
	return c.Report
}

// expandEnv expands environment variables in the format ${VAR} or $VAR
func expandEnv(s string) string {
	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envName := s[2 : len(s)-1]
		return os.Getenv(envName)
	}
	// Handle $VAR format
	if strings.HasPrefix(s, "$") {
		envName := s[1:]
		return os.Getenv(envName)
	}
	return s
}

// expandHome expands a leading ~/ to the home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// newViper returns a viper instance with defaults and environment overrides
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("classifier.model_path", d.Classifier.ModelPath)
	v.SetDefault("classifier.max_features", d.Classifier.MaxFeatures)
	v.SetDefault("suggestion.seed", d.Suggestion.Seed)
	v.SetDefault("report.enabled", d.Report.Enabled)
	v.SetDefault("report.path", d.Report.Path)
	v.SetDefault("report.compatible_apps", d.Report.CompatibleApps)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a file
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

// LoadDefaults returns the defaults with environment overrides applied
func LoadDefaults() (*Config, error) {
	return unmarshal(newViper())
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .commitkit.yaml
// 3. Home directory ~/.commitkit.yaml
// 4. Defaults
func Load(customPath string) (*Config, error) {
	// If custom path is provided, use it exclusively
	if customPath != "" {
		return LoadFromFile(customPath)
	}

	// Try current directory first
	if _, err := os.Stat(FileName); err == nil {
		return LoadFromFile(FileName)
	}

	// Try home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		homeCfgPath := filepath.Join(homeDir, FileName)
		if _, err := os.Stat(homeCfgPath); err == nil {
			return LoadFromFile(homeCfgPath)
		}
	}

	return LoadDefaults()
}
