package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Down/S     - Fall faster while held
  Up/W       - Rotate
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Terminals report no key releases, so a key counts as held until
terminal.hold_window passes without a repeat.

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --fall-speed 8 --log ./blockfall.log
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug log to this file")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		fmt.Fprintln(os.Stderr, "Run 'blockfall sim' for a headless game.")
		os.Exit(1)
	}

	cfg := mustLoadConfig(cmd)

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           log.DebugLevel,
	})

	opts := tui.OptionsFromConfig(cfg, flagSeed)
	opts.Logger = logger
	opts.Sound = openSound(cfg, logger)

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cw, ch := opts.Runtime.CanvasSize()
		logger.Debug("terminal", "width", w, "height", h, "canvas_width", cw, "canvas_height", ch)
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
