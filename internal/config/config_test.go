package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable ApplyEnv looks at for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBackendURL, EnvTimeout, EnvLanguage, EnvLogFile, EnvStartDir} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "tr", cfg.Language)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "nope", "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excelsearch", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.BackendURL = "https://catalog.example.com"
	cfg.Language = "en"
	cfg.UISettings.ShowUploadDate = true
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://catalog.example.com", loaded.BackendURL)
	assert.Equal(t, "en", loaded.Language)
	assert.True(t, loaded.UISettings.ShowUploadDate)
	assert.Equal(t, path, svc.Path())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend_url = \"http://10.0.0.5:8001\"\n\n[ui]\nshow_upload_date = true\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8001", cfg.BackendURL)
	assert.Equal(t, "30s", cfg.RequestTimeout)
	assert.Equal(t, "tr", cfg.Language)
	assert.True(t, cfg.UISettings.ShowProductCode)
	assert.True(t, cfg.UISettings.ShowUploadDate)
}

func TestLoadInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend_url = \n"), 0644))

	_, err := NewConfigServiceAt(path).Load()
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Run("process environment overrides file values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvBackendURL, "https://prod.example.com")
		t.Setenv(EnvLanguage, "EN")

		cfg := DefaultConfig()
		require.NoError(t, ApplyEnv(cfg))

		assert.Equal(t, "https://prod.example.com", cfg.BackendURL)
		assert.Equal(t, "en", cfg.Language)
	})

	t.Run("reads .env files", func(t *testing.T) {
		clearEnv(t)
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("BACKEND_URL=http://staging:8001\nEXCELSEARCH_TIMEOUT=5s\n"), 0644))

		cfg := DefaultConfig()
		require.NoError(t, ApplyEnv(cfg, envFile))

		assert.Equal(t, "http://staging:8001", cfg.BackendURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout())
	})

	t.Run("process environment beats .env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvBackendURL, "http://from-env:8001")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("BACKEND_URL=http://from-file:8001\n"), 0644))

		cfg := DefaultConfig()
		require.NoError(t, ApplyEnv(cfg, envFile))

		assert.Equal(t, "http://from-env:8001", cfg.BackendURL)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		clearEnv(t)
		cfg := DefaultConfig()
		require.NoError(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), ".env")))
		assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"https backend", func(c *Config) { c.BackendURL = "https://catalog.example.com/base" }, false},
		{"relative backend", func(c *Config) { c.BackendURL = "/api" }, true},
		{"unsupported scheme", func(c *Config) { c.BackendURL = "ftp://catalog" }, true},
		{"timeout disabled", func(c *Config) { c.RequestTimeout = "0" }, false},
		{"bad timeout", func(c *Config) { c.RequestTimeout = "soon" }, true},
		{"negative timeout", func(c *Config) { c.RequestTimeout = "-1s" }, true},
		{"unknown language", func(c *Config) { c.Language = "de" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
