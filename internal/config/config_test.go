package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000, cfg.Classifier.MaxFeatures)
	assert.Empty(t, cfg.Classifier.ModelPath)
	assert.Zero(t, cfg.Suggestion.Seed)
	assert.True(t, cfg.Report.Enabled)
	assert.Equal(t, "PR_suggest.md", cfg.Report.Path)
	assert.Equal(t, []string{"Web", "Mobile"}, cfg.Report.CompatibleApps)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "empty config",
			config: &Config{},
		},
		{
			name:    "negative max features",
			config:  &Config{Classifier: &ClassifierConfig{MaxFeatures: -1}},
			wantErr: true,
			errMsg:  "max_features",
		},
		{
			name:    "enabled report without path",
			config:  &Config{Report: &ReportConfig{Enabled: true, Path: "  "}},
			wantErr: true,
			errMsg:  "path is required",
		},
		{
			name:   "disabled report without path",
			config: &Config{Report: &ReportConfig{Enabled: false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_GetSectionsWithDefaults(t *testing.T) {
	t.Run("nil sections", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, DefaultClassifierConfig(), cfg.GetClassifierConfig())
		assert.Equal(t, DefaultSuggestionConfig(), cfg.GetSuggestionConfig())
		assert.Equal(t, DefaultReportConfig(), cfg.GetReportConfig())
	})

	t.Run("unset values", func(t *testing.T) {
		cfg := &Config{
			Classifier: &ClassifierConfig{ModelPath: "/tmp/model.json"},
			Report:     &ReportConfig{Enabled: false},
		}
		assert.Equal(t, 1000, cfg.GetClassifierConfig().MaxFeatures)
		assert.Equal(t, "/tmp/model.json", cfg.GetClassifierConfig().ModelPath)

		report := cfg.GetReportConfig()
		assert.False(t, report.Enabled)
		assert.Equal(t, "PR_suggest.md", report.Path)
		assert.Equal(t, []string{"Web", "Mobile"}, report.CompatibleApps)
	})

	t.Run("model path expansion", func(t *testing.T) {
		t.Setenv("COMMITKIT_TEST_MODEL", "/srv/model.json")
		cfg := &Config{Classifier: &ClassifierConfig{ModelPath: "${COMMITKIT_TEST_MODEL}"}}
		assert.Equal(t, "/srv/model.json", cfg.GetClassifierConfig().ModelPath)

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		cfg = &Config{Classifier: &ClassifierConfig{ModelPath: "~/models/commitkit.json"}}
		assert.Equal(t, filepath.Join(home, "models/commitkit.json"), cfg.GetClassifierConfig().ModelPath)
	})
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	configContent := `
classifier:
  model_path: /var/lib/commitkit/model.json
  max_features: 500
suggestion:
  seed: 42
report:
  path: docs/PR.md
  compatible_apps: [Web, Desktop, CLI]
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/commitkit/model.json", cfg.Classifier.ModelPath)
	assert.Equal(t, 500, cfg.Classifier.MaxFeatures)
	assert.Equal(t, uint64(42), cfg.Suggestion.Seed)
	assert.Equal(t, "docs/PR.md", cfg.Report.Path)
	assert.Equal(t, []string{"Web", "Desktop", "CLI"}, cfg.Report.CompatibleApps)
	// keys missing from the file keep their defaults
	assert.True(t, cfg.Report.Enabled)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/" + FileName)
	assert.Error(t, err)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("suggestion:\n  seed: 1\n"), 0644))

	t.Setenv("COMMITKIT_SUGGESTION_SEED", "7")
	t.Setenv("COMMITKIT_REPORT_ENABLED", "false")

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Suggestion.Seed)
	assert.False(t, cfg.Report.Enabled)
}

func TestLoad(t *testing.T) {
	t.Run("custom path is used exclusively", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("current directory", func(t *testing.T) {
		workDir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		t.Chdir(workDir)
		require.NoError(t, os.WriteFile(FileName, []byte("classifier:\n  max_features: 10\n"), 0644))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Classifier.MaxFeatures)
	})

	t.Run("home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("report:\n  enabled: false\n"), 0644))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.False(t, cfg.Report.Enabled)
	})

	t.Run("defaults without a file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}
