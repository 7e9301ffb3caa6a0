// Package cli provides shared plumbing for the dynbuf command line tool:
// configuration loading, output formatting, and terminal rendering of
// buffer inspection results.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".dynbuf"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
	// DefaultStoreSubdir is the default blob store directory name
	DefaultStoreSubdir = "store"
)

// Config represents the dynbuf CLI configuration
type Config struct {
	// StoreDir is the BadgerDB blob store directory.
	// Defaults to ~/.dynbuf/store when empty.
	StoreDir string `yaml:"store_dir,omitempty"`

	// Output is the default output format (yaml, json, raw)
	Output string `yaml:"output,omitempty"`

	// S3 configures an optional S3 export target
	S3 *S3Target `yaml:"s3,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// S3Target identifies an S3 bucket for blob import/export.
// Credentials come from the standard AWS environment variables.
type S3Target struct {
	// Bucket is the bucket name
	Bucket string `yaml:"bucket"`

	// Prefix is prepended to all object keys (optional)
	Prefix string `yaml:"prefix,omitempty"`

	// Region is the AWS region (optional, defaults to us-east-1)
	Region string `yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint URL, for MinIO/R2-style
	// S3-compatible stores (optional)
	Endpoint string `yaml:"endpoint,omitempty"`
}

// LoadConfig loads or creates the configuration file.
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath("")
}

// LoadConfigWithPath loads configuration from a custom path.
// An empty path resolves to ~/.dynbuf/config.yaml.
func LoadConfigWithPath(customPath string) (*Config, error) {
	configPath := customPath
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultBaseDir, DefaultConfigFile)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := &Config{configPath: configPath}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config file
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.configPath = configPath

	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the config directory path
func (c *Config) Dir() string {
	return filepath.Dir(c.configPath)
}

// ResolveStoreDir returns the effective blob store directory,
// falling back to a "store" directory next to the config file.
func (c *Config) ResolveStoreDir() string {
	if c.StoreDir != "" {
		return c.StoreDir
	}
	return filepath.Join(c.Dir(), DefaultStoreSubdir)
}
