package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration blockfall would run with, after the config
file search and flag overrides, as YAML.

Search order:
  --config <path>
  ~/.blockfall/config.yaml
  ./configs/blockfall.yaml
  built-in defaults

Examples:
  blockfall config > ~/.blockfall/config.yaml
  blockfall config --fps 60`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
