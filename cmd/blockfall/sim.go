package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/sim"
)

var (
	flagTicks     uint64
	flagRealtime  bool
	flagShowBoard bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by a random player",
	Long: `Run the game without a display. A random player presses and releases
keys, and progress is logged to stderr. Useful for soak testing and for
checking that a seed replays identically.

By default ticks run back to back; --realtime paces them at the
configured frame rate.

Examples:
  blockfall sim
  blockfall sim --ticks 100000 --seed 42
  blockfall sim --realtime --ticks 900 --board`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 3000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured frame rate")
	simCmd.Flags().BoolVar(&flagShowBoard, "board", false, "Print the final board")
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall-sim",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := sim.New(cfg.WindowRuntime(seed), logger)
	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "realtime", flagRealtime)

	start := time.Now()
	err := s.Run(ctx, flagTicks, flagRealtime)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st := s.Game().State()
	logger.Info("simulation finished",
		"ticks", st.Tick,
		"lines", st.Lines,
		"pieces", st.Pieces,
		"resets", st.Resets,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	if flagShowBoard {
		fmt.Println(s.Game().DebugBoard())
	}
}
