package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
	depth  int
}

func NewBotService(logger *slog.Logger, depth int) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		depth:  depth,
	}
}

// MakeTurn - searches a copy of the board and plays the chosen cell for the computer.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	if game.Turn != entity.Computer {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	board := game.Board

	result, err := tictactoe.Search(&board, that.depth)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	that.logger.Debug("search finished",
		"move", result.Move.Number(),
		"score", result.Score,
		"depth", that.depth,
		"nodes", result.Nodes,
	)

	if err = tictactoe.MakeTurn(game, entity.Computer, result.Move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return result.Move, nil
}
