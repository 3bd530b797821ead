package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the board.

Controls:
  Arrows/WASD  - Move, rotate (up) and fall faster (down)
  Esc          - Quit

Examples:
  blockfall window
  blockfall window --sound --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	})

	err := window.Run(window.Options{
		Runtime: cfg.WindowRuntime(flagSeed),
		Sound:   openSound(cfg, logger),
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
