// blockfall is a falling-block puzzle game for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	blockfall play     - Play in the terminal
//	blockfall window   - Play in a desktop window
//	blockfall serve    - Start SSH server for remote play
//	blockfall sim      - Run a headless game driven by a random player
//	blockfall config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.blockfall/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--fps <rate>        - Override the tick rate
//	--fall-speed <n>    - Override the fall speed in rows per second
//	--sound             - Play synthesized sound effects
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/platform/sound"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagFPS       int
	flagFallSpeed float64
	flagSound     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game",
	Long: `Blockfall drops shapes onto a grid. Fill a row to clear it; let the
stack reach the top and the board starts over.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless game
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play --seed 42 --fall-speed 8
  blockfall window --sound
  blockfall serve --ssh :2222
  blockfall sim --ticks 10000`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
	rootCmd.PersistentFlags().Float64Var(&flagFallSpeed, "fall-speed", 0, "Fall speed override (rows per second)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Timing.FrameRate = flagFPS
	}
	if flags.Changed("fall-speed") {
		cfg.Timing.FallSpeed = flagFallSpeed
	}
	if flags.Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid flags: %w", err)
	}
	return cfg, nil
}

// mustLoadConfig loads the configuration or exits.
func mustLoadConfig(cmd *cobra.Command) config.Config {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openSound opens the audio device when sound is enabled. Failure is not
// fatal; the game runs silently.
func openSound(cfg config.Config, logger *log.Logger) *sound.Engine {
	if !cfg.Sound.Enabled {
		return nil
	}
	engine, err := sound.New(cfg.Sound.Volume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return engine
}
