// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g.
// ENRICH_INTERPRETER_PATH overrides interpreter.path.
const EnvPrefix = "ENRICH"

// Config holds the entire application configuration.
type Config struct {
	Logger      LoggerConfig      `mapstructure:"logger" yaml:"logger"`
	Interpreter InterpreterConfig `mapstructure:"interpreter" yaml:"interpreter"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Analysis    AnalysisConfig    `mapstructure:"analysis" yaml:"analysis"`
}

// LoggerConfig holds all the configuration for the logger. Level applies to
// the console, FileLevel to LogFile; an empty FileLevel follows Level.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	FileLevel   string      `mapstructure:"file_level" yaml:"file_level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color names for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// InterpreterConfig locates the external statistics runtime and the analysis
// script it executes.
type InterpreterConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Script string `mapstructure:"script" yaml:"script"`
}

// OutputConfig controls where per-input output directories are created.
type OutputConfig struct {
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir"`
}

// AnalysisConfig supplies defaults for the optional analysis parameters.
// Command-line flags take precedence.
type AnalysisConfig struct {
	PValueCutoff  float64 `mapstructure:"pvalue_cutoff" yaml:"pvalue_cutoff"`
	QValueCutoff  float64 `mapstructure:"qvalue_cutoff" yaml:"qvalue_cutoff"`
	PAdjustMethod string  `mapstructure:"p_adjust_method" yaml:"p_adjust_method"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.file_level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "enrich-cli")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Interpreter --
	v.SetDefault("interpreter.path", "Rscript")
	v.SetDefault("interpreter.script", "scripts/clusterProfiler_analysis.R")

	// -- Output --
	v.SetDefault("output.base_dir", ".")

	// -- Analysis --
	v.SetDefault("analysis.pvalue_cutoff", 0.05)
	v.SetDefault("analysis.qvalue_cutoff", 0.05)
	v.SetDefault("analysis.p_adjust_method", "BH")
}

// BindEnv wires ENRICH_* environment variables into v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// expandPaths resolves a leading "~" in every configured filesystem path.
func (c *Config) expandPaths() error {
	paths := map[string]*string{
		"interpreter.path":   &c.Interpreter.Path,
		"interpreter.script": &c.Interpreter.Script,
		"output.base_dir":    &c.Output.BaseDir,
		"logger.log_file":    &c.Logger.LogFile,
	}
	for key, p := range paths {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("failed to expand %s %q: %w", key, *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Interpreter.Path) == "" {
		return fmt.Errorf("interpreter.path is a required configuration field")
	}
	if strings.TrimSpace(c.Interpreter.Script) == "" {
		return fmt.Errorf("interpreter.script is a required configuration field")
	}
	if strings.TrimSpace(c.Output.BaseDir) == "" {
		return fmt.Errorf("output.base_dir must not be empty")
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be 'console' or 'json', got %q", c.Logger.Format)
	}
	return nil
}
