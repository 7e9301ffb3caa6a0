package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/dynbuf/pkg/cli"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	formatOutput string

	// Global configuration (loaded at init time)
	globalConfig *cli.Config
)

var rootCmd = &cobra.Command{
	Use:   "dynbuf",
	Short: "Inspect, transform, and store binary buffers",
	Long: `dynbuf - a toolkit for reference-counted byte buffers.

Buffers are the common currency: files and blobs are read into buffers,
inspected as hex dumps, transcoded to and from hex text, and persisted
in a local blob store keyed by UUID.

Configuration is stored in ~/.dynbuf/config.yaml.

Examples:
  # Hex encode a file to stdout
  dynbuf hex encode firmware.bin

  # Decode a hex string into a file
  dynbuf hex decode deadbeef -o out.bin

  # Inspect a file: size, checksum, bounded hex dump
  dynbuf inspect firmware.bin

  # Store a file as a blob and list stored blobs
  dynbuf blob put firmware.bin --label fw=v2
  dynbuf blob list`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.dynbuf/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&formatOutput, "format", "f", "", "output format (yaml, json, raw)")
}

// configLoadErr stores the error from cli.LoadConfig for deferred
// reporting, so commands that never touch config (like version) still
// work when the config directory is unavailable.
var configLoadErr error

func initConfig() {
	cfg, err := cli.LoadConfigWithPath(configPath)
	if err != nil {
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// GetConfig returns the global configuration.
func GetConfig() (*cli.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := cli.LoadConfigWithPath(configPath)
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// outputFormat resolves the effective output format from the flag and
// the configured default.
func outputFormat() cli.OutputFormat {
	if formatOutput != "" {
		return cli.OutputFormat(formatOutput)
	}
	if globalConfig != nil && globalConfig.Output != "" {
		return cli.OutputFormat(globalConfig.Output)
	}
	return cli.FormatYAML
}

// formatRequested reports whether an output format was explicitly
// requested via the --format flag or the config file.
func formatRequested() bool {
	return formatOutput != "" || (globalConfig != nil && globalConfig.Output != "")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
