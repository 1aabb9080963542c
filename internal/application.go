package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	depth, err := conf.Game.GetSearchDepth()
	if err != nil {
		return fmt.Errorf("could not resolve search depth: %w", err)
	}

	botService := service.NewBotService(logger, depth)
	gameUseCase := usecase.NewGameUseCase(logger, botService)

	log.Info("Starting console game", "difficulty", conf.Game.Difficulty, "depth", depth)

	consoleServer := console.New(logger, gameUseCase, os.Stdin, os.Stdout)
	if err = consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console game error: %w", err)
	}

	return nil
}
