package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type GameUseCase interface {
	NewGame(ctx context.Context) *entity.Game

	// MakeTurn plays the human move.
	MakeTurn(ctx context.Context, game *entity.Game, move entity.Move) error
	// BotTurn plays the computer's reply to the current board.
	BotTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type botService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type gameUseCase struct {
	logger     *slog.Logger
	botService botService
}

func NewGameUseCase(logger *slog.Logger, botService botService) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "game"),
		botService: botService,
	}
}

func (that *gameUseCase) NewGame(_ context.Context) *entity.Game {
	that.logger.Info("new game started")

	return entity.NewGame()
}

func (that *gameUseCase) MakeTurn(_ context.Context, game *entity.Game, move entity.Move) error {
	if err := tictactoe.MakeTurn(game, entity.Human, move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("human moved", "move", move.Number())

	if game.IsFinished() {
		that.logFinished(game)
	}

	return nil
}

func (that *gameUseCase) BotTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return entity.Move{}, fmt.Errorf("game interrupted: %w", err)
	}

	botMove, err := that.botService.MakeTurn(game)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "move", botMove.Number())

	if game.IsFinished() {
		that.logFinished(game)
	}

	return botMove, nil
}

func (that *gameUseCase) logFinished(game *entity.Game) {
	that.logger.Info("game finished", "outcome", game.Outcome.String(), "moves", len(game.Moves))
}
