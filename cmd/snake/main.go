// snake is a terminal Snake game.
//
// Usage:
//
//	snake play               - Play in the terminal
//	snake foods              - List the food types
//	snake sim --ticks 500    - Run the autopilot headless and print the result
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.snake, ./configs, built-in)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake on a 40x30 board. Apples grow the snake by one, golden apples
also speed it up for a few seconds, green food grows it by five.

Examples:
  snake play
  snake play --seed 42
  snake foods
  snake sim --ticks 1000 --format yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(foodsCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("--log-level: %w", err)
		}
	}
	return cfg, nil
}

// newEnv bundles cfg with a logger for game factories.
func newEnv(cfg config.Config, logger *log.Logger) registry.Env {
	return registry.Env{Logger: logger, Config: cfg}
}
