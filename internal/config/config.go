package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Collector strategy names accepted in the config file
const (
	CollectorSearch  = "search"
	CollectorUploads = "uploads"
)

// DefaultProbeConcurrency bounds the shorts-probe fan-out when the
// config file does not set one
const DefaultProbeConcurrency = 8

// Config holds all configuration for the application
type Config struct {
	YouTubeAPIKey    string `yaml:"youtube_api_key"`
	Collector        string `yaml:"collector"`
	ProbeConcurrency int    `yaml:"probe_concurrency"`
}

// NewConfig loads configuration with the following priority:
// Environment variables > Config file (required)
func NewConfig() (*Config, error) {
	// Load from config file (required)
	config := &Config{}
	if err := loadConfigFile(config); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found. Please run 'yt-report config init' to create it")
		}
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Apply environment variables (can override config file)
	if envKey := os.Getenv("YOUTUBE_API_KEY"); envKey != "" {
		config.YouTubeAPIKey = envKey
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	if c.Collector != CollectorSearch && c.Collector != CollectorUploads {
		return fmt.Errorf("invalid collector strategy %q (expected %q or %q)", c.Collector, CollectorSearch, CollectorUploads)
	}
	if c.ProbeConcurrency <= 0 {
		return fmt.Errorf("probe_concurrency must be positive, got %d", c.ProbeConcurrency)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Collector == "" {
		c.Collector = CollectorSearch
	}
	if c.ProbeConcurrency == 0 {
		c.ProbeConcurrency = DefaultProbeConcurrency
	}
}

// InitConfig creates a new configuration file with an example API key entry
func InitConfig(apiKey string) error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if apiKey == "" {
		apiKey = "YOUR_YOUTUBE_DATA_API_KEY"
	}

	// Prepare YAML content with comments
	yamlContent := fmt.Sprintf(`# yt-report configuration file
# youtube_api_key: a YouTube Data API v3 key (https://console.cloud.google.com)
# collector: how videos in a date window are enumerated
#   search  - search endpoint scoped by publishedAfter/publishedBefore
#   uploads - uploads playlist paginated newest-first with early exit
# probe_concurrency: simultaneous in-flight shorts probes

youtube_api_key: "%s"
collector: "search"
probe_concurrency: %d
`, apiKey, DefaultProbeConcurrency)

	if err := os.WriteFile(configPath, []byte(yamlContent), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	return getConfigFilePath()
}

// getConfigDir returns the configuration directory path (~/.yt-report)
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".yt-report"), nil
}

// getConfigFilePath returns the full path to the config file
func getConfigFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// loadConfigFile loads configuration from ~/.yt-report/config.yaml
func loadConfigFile(config *Config) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
