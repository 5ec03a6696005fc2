package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal (the default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd)
	},
}

func play(cmd *cobra.Command) error {
	// The screen belongs to the game, so logs go to a file or nowhere.
	var logOutput io.Writer = io.Discard
	if config.Envs.LogFile != "" {
		f, err := os.OpenFile(config.Envs.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOutput = f
	}

	appLogger, err := logger.New("APP", config.ColorGreen, logOutput)
	if err != nil {
		return err
	}
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, logOutput)
	if err != nil {
		return err
	}
	uiLogger, err := logger.New("TUI", config.ColorMagenta, logOutput)
	if err != nil {
		return err
	}

	gameSeed := resolveSeed()
	games, err := service.NewGameSessionManager(&service.Config{
		TickPeriod: time.Duration(tickMillis) * time.Millisecond,
		Seed:       gameSeed,
		Logger:     sessionLogger,
	})
	if err != nil {
		return err
	}
	defer games.StopAll()
	appLogger.Info(fmt.Sprintf("Session manager initialized with seed %d", gameSeed))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if err := tui.New(screen, games, uiLogger).Run(level, timerEnabled); err != nil {
		appLogger.Error(fmt.Sprintf("Running game: %v", err))
		return err
	}
	appLogger.Info("Player quit")
	return nil
}
