package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Lines - every row, column and diagonal of the board.
var Lines = [8][entity.Size]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
}

// HasLine - checks whether who occupies a whole row, column or diagonal. Empty never has a line.
func HasLine(board *entity.Board, who entity.Cell) bool {
	if who == entity.Empty {
		return false
	}

	for _, line := range Lines {
		if board.At(line[0]) == who && board.At(line[1]) == who && board.At(line[2]) == who {
			return true
		}
	}

	return false
}

// IsTerminal - the game is over once either side has a line or no cell is left.
func IsTerminal(board *entity.Board) bool {
	return HasLine(board, entity.Human) || HasLine(board, entity.Computer) || board.IsFull()
}

// Evaluate - returns the outcome from the human's perspective.
// The human is checked first, so a board where both sides own a line is a Win.
func Evaluate(board *entity.Board) entity.Outcome {
	if HasLine(board, entity.Human) {
		return entity.Win
	}

	if HasLine(board, entity.Computer) {
		return entity.Loss
	}

	return entity.Draw
}

// IsValidMove - the move must be in bounds and target an empty cell.
func IsValidMove(board *entity.Board, move entity.Move) bool {
	if !move.InBounds() {
		return false
	}

	return board.At(move) == entity.Empty
}

// ApplyMove - writes cell under the move without any validation.
func ApplyMove(board *entity.Board, move entity.Move, cell entity.Cell) {
	board[move.Row][move.Col] = cell
}

// UndoMove - clears the cell under the move.
func UndoMove(board *entity.Board, move entity.Move) {
	ApplyMove(board, move, entity.Empty)
}

// EmptyCells - returns the empty cells in row-major order.
func EmptyCells(board *entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.Size*entity.Size)

	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			if board[row][col] == entity.Empty {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}
