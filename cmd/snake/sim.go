package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
)

var (
	flagTicks  int
	flagFormat string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a terminal UI",
	Long: `Let the autopilot play for a number of ticks, or until it dies, and
print the final board (text) or the final state (yaml).

Game time is simulated: speed boosts expire after the ticks that fill
their duration, so a seeded run always ends the same way.`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 500, "Maximum number of ticks to run")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}
	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("--format must be text or yaml, got %q", flagFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.NewWriter(os.Stderr, level)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := clockwork.NewFakeClock()
	game := snake.New(snake.ThemeFromConfig(cfg), snake.WithClock(clock), snake.WithLogger(logger))
	game.Reset(core.RuntimeConfig{ScreenW: snake.MinScreenW, ScreenH: snake.MinScreenH, Seed: seed})

	logger.Debug("sim started", "seed", seed, "ticks", flagTicks)
	input := core.NewInputFrame()
	for iter := 0; iter < flagTicks; iter++ {
		if game.State().GameOver {
			break
		}
		game.RequestDirection(snake.NextDirection(game.Engine()))
		game.Step(input)
		clock.Advance(game.TickInterval())
	}

	snap := game.Snapshot()
	logger.Info("sim finished", "seed", seed, "tick", snap.Tick, "score", snap.Score, "state", snap.State)

	out := cmd.OutOrStdout()
	if flagFormat == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		return enc.Close()
	}

	screen := core.NewScreen(snake.MinScreenW, snake.MinScreenH)
	game.Render(screen)
	_, err = fmt.Fprintln(out, screen.String())
	return err
}
