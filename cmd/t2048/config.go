package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration t2048 runs with, after the config file and
flag overrides are applied.

With --default, print the built-in config file instead; it is a good
starting point for ~/.t2048/config.yaml.

Examples:
  t2048 config
  t2048 --size 5 config
  t2048 config --default > ~/.t2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	return writeConfig(cmd.OutOrStdout(), appConfig, flagDefaults)
}

// writeConfig writes cfg as YAML, or the embedded default file when defaults is set.
func writeConfig(w io.Writer, cfg config.Config, defaults bool) error {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
