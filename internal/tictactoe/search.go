package tictactoe

import (
	"errors"
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidDepth     = errors.New("search depth must be positive")
)

// SearchResult - the move picked for the computer and how it was found.
type SearchResult struct {
	Move entity.Move
	// Score is from the computer's perspective: 1 forced win, 0 draw, -1 loss.
	Score int
	Nodes int
}

type searcher struct {
	nodes int
}

// Minimax - scores the board from the human's perspective under optimal play by both sides.
// When maximizing the human is to move, otherwise the computer is.
// The board is mutated during the search and restored before returning.
func Minimax(board *entity.Board, depth int, maximizing bool) int {
	s := &searcher{}
	return s.minimax(board, depth, maximizing)
}

func (that *searcher) minimax(board *entity.Board, depth int, maximizing bool) int {
	that.nodes++

	if depth <= 0 || IsTerminal(board) {
		return Evaluate(board).Score()
	}

	mover := entity.Computer
	if maximizing {
		mover = entity.Human
	}

	best, found := 0, false
	for row := 0; row < entity.Size; row++ {
		for col := 0; col < entity.Size; col++ {
			if board[row][col] != entity.Empty {
				continue
			}

			// push mark, recurse, pop mark
			board[row][col] = mover
			score := that.minimax(board, depth-1, !maximizing)
			board[row][col] = entity.Empty

			switch {
			case !found:
				best, found = score, true
			case maximizing:
				best = max(best, score)
			default:
				best = min(best, score)
			}
		}
	}

	// unreachable while IsTerminal covers the full board
	if !found {
		return Evaluate(board).Score()
	}

	return best
}

// Search - picks the computer's move, applies it to the board and reports how it was chosen.
// Candidates are scanned row-major and only a strictly better score replaces the current best,
// so ties go to the first empty cell in scan order.
func Search(board *entity.Board, depth int) (SearchResult, error) {
	if depth < 1 {
		return SearchResult{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	if err := board.Validate(); err != nil {
		return SearchResult{}, err
	}

	if HasLine(board, entity.Human) || HasLine(board, entity.Computer) {
		return SearchResult{}, apperror.ErrGameFinished
	}

	candidates := EmptyCells(board)
	if len(candidates) == 0 {
		return SearchResult{}, ErrNoAvailableMoves
	}

	s := &searcher{}
	result := SearchResult{Score: math.MinInt}

	for _, move := range candidates {
		ApplyMove(board, move, entity.Computer)
		score := -s.minimax(board, depth, true)
		UndoMove(board, move)

		if score > result.Score {
			result.Score = score
			result.Move = move
		}
	}

	ApplyMove(board, result.Move, entity.Computer)
	result.Nodes = s.nodes

	return result, nil
}

// ChooseMove - picks and applies the computer's move.
func ChooseMove(board *entity.Board, depth int) (entity.Move, error) {
	result, err := Search(board, depth)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}
