package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, tempDir, content string) {
	t.Helper()
	configDir := filepath.Join(tempDir, ".yt-report")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	configPath := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
}

func TestNewConfig_NoConfigFile(t *testing.T) {
	// Use temporary directory for test
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file not found")
	assert.Contains(t, err.Error(), "yt-report config init")
}

func TestNewConfig_ConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, `youtube_api_key: "file-api-key"
collector: "uploads"
probe_concurrency: 4
`)

	// Set temporary HOME
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "file-api-key", config.YouTubeAPIKey)
	assert.Equal(t, CollectorUploads, config.Collector)
	assert.Equal(t, 4, config.ProbeConcurrency)
}

func TestNewConfig_Defaults(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, `youtube_api_key: "file-api-key"`)

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, CollectorSearch, config.Collector)
	assert.Equal(t, DefaultProbeConcurrency, config.ProbeConcurrency)
}

func TestNewConfig_EnvironmentOverride(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, `youtube_api_key: "file-api-key"`)

	// Environment variable should override config file
	os.Setenv("YOUTUBE_API_KEY", "env-api-key")
	defer os.Unsetenv("YOUTUBE_API_KEY")

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-api-key", config.YouTubeAPIKey)
}

func TestNewConfig_InvalidCollector(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, `youtube_api_key: "file-api-key"
collector: "rss"
`)

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid collector strategy")
}

func TestNewConfig_NegativeProbeConcurrency(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, `youtube_api_key: "file-api-key"
probe_concurrency: -1
`)

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe_concurrency must be positive")
}

func TestInitConfig(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	err := InitConfig("test-api-key")
	require.NoError(t, err)

	// Check config file was created with correct content
	configPath := filepath.Join(tempDir, ".yt-report", "config.yaml")
	assert.FileExists(t, configPath)

	config, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-api-key", config.YouTubeAPIKey)
	assert.Equal(t, CollectorSearch, config.Collector)
	assert.Equal(t, DefaultProbeConcurrency, config.ProbeConcurrency)
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	tempDir := t.TempDir()
	writeConfigFile(t, tempDir, `youtube_api_key: "existing"`)

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	// InitConfig should fail with existing file
	err := InitConfig("new-api-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration file already exists")
}
