package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpentium/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Serpentium would use, as YAML.

The first file found wins:
  1. --config <path>
  2. ~/.serpentium/config.yaml
  3. ./configs/serpentium.yaml
  4. built-in defaults

Examples:
  serpentium config
  serpentium config --defaults > ~/.serpentium/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "\nWarning: configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}
}
