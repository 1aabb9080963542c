package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell index")

// MakeTurn - validates and plays the move for player, then updates the game status.
func MakeTurn(game *entity.Game, player entity.Cell, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, player, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	ApplyMove(&game.Board, move, player)
	game.Moves = append(game.Moves, move)
	updateGameStatus(game, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, player entity.Cell, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", ErrInvalidCell, move)
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if game.Board.At(move) != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - finishes the game on a terminal board, otherwise passes the turn.
func updateGameStatus(game *entity.Game, player entity.Cell) {
	if IsTerminal(&game.Board) {
		game.Finish(Evaluate(&game.Board))
		return
	}

	game.Turn = player.Opponent()
}
