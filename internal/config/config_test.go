// File: internal/config/config_test.go
package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "info", cfg.Logger.FileLevel)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "enrich-cli", cfg.Logger.ServiceName)
	assert.Empty(t, cfg.Logger.LogFile)
	assert.Equal(t, "green", cfg.Logger.Colors.Info)
	assert.Equal(t, "Rscript", cfg.Interpreter.Path)
	assert.Equal(t, "scripts/clusterProfiler_analysis.R", cfg.Interpreter.Script)
	assert.Equal(t, ".", cfg.Output.BaseDir)
	assert.Equal(t, 0.05, cfg.Analysis.PValueCutoff)
	assert.Equal(t, 0.05, cfg.Analysis.QValueCutoff)
	assert.Equal(t, "BH", cfg.Analysis.PAdjustMethod)
	assert.NoError(t, cfg.Validate())
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errPart string
	}{
		{"empty interpreter", func(c *Config) { c.Interpreter.Path = "" }, "interpreter.path is a required"},
		{"blank script", func(c *Config) { c.Interpreter.Script = "  " }, "interpreter.script is a required"},
		{"empty base dir", func(c *Config) { c.Output.BaseDir = "" }, "output.base_dir must not be empty"},
		{"unknown log format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}

	t.Run("json format is valid", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Logger.Format = "json"
		assert.NoError(t, cfg.Validate())
	})
}

// -- Factory Function Tests --

func TestNewConfigFromViper(t *testing.T) {
	t.Run("Successful Load from YAML", func(t *testing.T) {
		yamlBytes := []byte(`
interpreter:
  path: /opt/R/bin/Rscript
  script: /srv/enrich/analysis.R
analysis:
  pvalue_cutoff: 0.01
  p_adjust_method: bonferroni
`)
		v := viper.New()
		SetDefaults(v)
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlBytes)))

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)

		assert.Equal(t, "/opt/R/bin/Rscript", cfg.Interpreter.Path)
		assert.Equal(t, "/srv/enrich/analysis.R", cfg.Interpreter.Script)
		assert.Equal(t, 0.01, cfg.Analysis.PValueCutoff)
		// Keys absent from the file keep their defaults.
		assert.Equal(t, 0.05, cfg.Analysis.QValueCutoff)
		assert.Equal(t, "bonferroni", cfg.Analysis.PAdjustMethod)
		assert.Equal(t, "warn", cfg.Logger.Level)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("interpreter.path", "")

		cfg, err := NewConfigFromViper(v)
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "interpreter.path is a required configuration field")
	})

	t.Run("Environment Variable Binding", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
interpreter:
  path: /from/config/Rscript
`)))
		BindEnv(v)

		t.Setenv("ENRICH_INTERPRETER_PATH", "/from/env/Rscript")
		t.Setenv("ENRICH_OUTPUT_BASE_DIR", "/tmp/enrich-out")

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)

		// Env overrides the config file.
		assert.Equal(t, "/from/env/Rscript", cfg.Interpreter.Path)
		assert.Equal(t, "/tmp/enrich-out", cfg.Output.BaseDir)
	})

	t.Run("Home Directory Expansion", func(t *testing.T) {
		home, err := homedir.Dir()
		if err != nil {
			t.Skipf("no home directory available: %v", err)
		}

		v := viper.New()
		SetDefaults(v)
		v.Set("interpreter.script", "~/scripts/analysis.R")
		v.Set("output.base_dir", "~/enrich")

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "scripts", "analysis.R"), cfg.Interpreter.Script)
		assert.Equal(t, filepath.Join(home, "enrich"), cfg.Output.BaseDir)
		// Bare executable names are left for PATH lookup.
		assert.Equal(t, "Rscript", cfg.Interpreter.Path)
	})
}
