package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to snake.

Controls:
  Arrows/WASD/HJKL - Turn
  P/Esc            - Pause
  R/Enter          - Restart (after game over)
  Ctrl+S           - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C         - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing left to report to

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID, newEnv(cfg, logger))
	if err != nil {
		return err
	}

	runCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	opts := tui.Options{
		Logger:        logger,
		ShowHelp:      cfg.Display.ShowHelp,
		ScreenshotDir: config.UserPath("screenshots"),
	}

	if err := tui.Run(game, runCfg, opts); err != nil {
		logger.Error("game crashed", "err", err)
		return err
	}
	return nil
}
