package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimax(t *testing.T) {
	t.Run("Terminal board returns its evaluation", func(t *testing.T) {
		board := entity.Board{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		}

		assert.Equal(t, 1, Minimax(&board, 8, false))
	})

	t.Run("Zero depth returns the static evaluation", func(t *testing.T) {
		// Given: the human wins next move but depth is exhausted
		board := entity.Board{
			{x, x, e},
			{o, o, e},
			{e, e, e},
		}

		assert.Equal(t, 0, Minimax(&board, 0, true))
	})

	t.Run("Human to move takes the win", func(t *testing.T) {
		board := entity.Board{
			{x, x, e},
			{o, o, e},
			{e, e, e},
		}

		assert.Equal(t, 1, Minimax(&board, 1, true))
	})

	t.Run("Computer to move takes the win", func(t *testing.T) {
		board := entity.Board{
			{x, x, e},
			{o, o, e},
			{x, e, e},
		}

		assert.Equal(t, -1, Minimax(&board, 1, false))
	})

	t.Run("Empty board is a draw under optimal play", func(t *testing.T) {
		var board entity.Board

		assert.Equal(t, 0, Minimax(&board, 9, true))
	})
}

func TestMinimax_LeavesBoardUnchanged(t *testing.T) {
	boards := []entity.Board{
		{},
		{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		},
		{
			{x, o, e},
			{e, x, e},
			{e, e, o},
		},
		{
			{x, x, e},
			{o, o, e},
			{x, e, e},
		},
		{
			{x, o, x},
			{x, o, o},
			{o, x, e},
		},
	}

	for _, board := range boards {
		for depth := 0; depth <= 9; depth++ {
			for _, maximizing := range []bool{true, false} {
				// Given: a copy of the input board
				before := board

				// When: searching it
				Minimax(&board, depth, maximizing)

				// Then: the board is restored exactly
				require.Equal(t, before, board, "depth %d maximizing %t", depth, maximizing)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	t.Run("Answers a center opening with a corner", func(t *testing.T) {
		// Given: the human opened in the center
		board := entity.Board{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		}

		// When: the computer searches at full depth
		move, err := ChooseMove(&board, Impossible.Depth())
		require.NoError(t, err)

		// Then: it picks the first corner and plays it
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Equal(t, o, board[0][0])
		assert.Len(t, EmptyCells(&board), 7)
	})

	t.Run("Fills the only empty cell", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, e},
		}

		result, err := Search(&board, Impossible.Depth())
		require.NoError(t, err)

		assert.Equal(t, entity.Move{Row: 2, Col: 2}, result.Move)
		assert.Equal(t, o, board[2][2])
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 1, result.Nodes)
	})

	t.Run("Takes an immediate win over earlier cells", func(t *testing.T) {
		// Given: the computer completes the bottom row at (2,2), the last empty cell in scan order
		board := entity.Board{
			{x, e, x},
			{e, x, e},
			{o, o, e},
		}

		result, err := Search(&board, Impossible.Depth())
		require.NoError(t, err)

		assert.Equal(t, entity.Move{Row: 2, Col: 2}, result.Move)
		assert.Equal(t, 1, result.Score)
		assert.True(t, HasLine(&board, o))
	})

	t.Run("Blocks an immediate loss", func(t *testing.T) {
		board := entity.Board{
			{x, x, e},
			{e, o, e},
			{e, e, e},
		}

		move, err := ChooseMove(&board, Impossible.Depth())
		require.NoError(t, err)

		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
	})

	t.Run("Ties go to the first cell in row-major order", func(t *testing.T) {
		// Given: a shallow search where every candidate scores a draw
		var empty entity.Board
		corner := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		first, err := ChooseMove(&empty, 1)
		require.NoError(t, err)
		second, err := ChooseMove(&corner, 1)
		require.NoError(t, err)

		assert.Equal(t, entity.Move{Row: 0, Col: 0}, first)
		assert.Equal(t, entity.Move{Row: 0, Col: 1}, second)
	})

	t.Run("No available moves", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}
		before := board

		_, err := ChooseMove(&board, Impossible.Depth())

		require.ErrorIs(t, err, ErrNoAvailableMoves)
		assert.Equal(t, before, board)
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		board := entity.Board{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		}

		_, err := ChooseMove(&board, Impossible.Depth())

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Full board with a line is a finished game", func(t *testing.T) {
		// Given: the human completed the last cell with a diagonal
		board := entity.Board{
			{x, o, x},
			{o, x, o},
			{o, x, x},
		}
		before := board

		// When: the computer is asked to move
		_, err := ChooseMove(&board, Impossible.Depth())

		// Then: the game is reported as finished, not as out of moves
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.NotErrorIs(t, err, ErrNoAvailableMoves)
		assert.Equal(t, before, board)
	})

	t.Run("Malformed board is rejected", func(t *testing.T) {
		var board entity.Board
		board[0][0] = entity.Cell(3)

		_, err := ChooseMove(&board, Impossible.Depth())

		require.ErrorIs(t, err, entity.ErrMalformedBoard)
	})

	t.Run("Non-positive depth is rejected", func(t *testing.T) {
		var board entity.Board

		_, err := ChooseMove(&board, 0)

		require.ErrorIs(t, err, ErrInvalidDepth)
		assert.Equal(t, entity.Board{}, board)
	})
}

// Plays every possible human line against the full-depth computer.
func TestSearch_NeverLosesFromEmptyBoard(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive game tree")
	}

	var board entity.Board
	playEveryHumanMove(t, board)
}

func playEveryHumanMove(t *testing.T, board entity.Board) {
	t.Helper()

	for _, move := range EmptyCells(&board) {
		next := board
		ApplyMove(&next, move, x)
		if IsTerminal(&next) {
			require.NotEqual(t, entity.Win, Evaluate(&next), "human won:\n%s", next.String())
			continue
		}

		_, err := ChooseMove(&next, Impossible.Depth())
		require.NoError(t, err)
		if IsTerminal(&next) {
			require.NotEqual(t, entity.Win, Evaluate(&next), "human won:\n%s", next.String())
			continue
		}

		playEveryHumanMove(t, next)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Difficulty
	}{
		{name: "Easy", input: "easy", want: Easy},
		{name: "Moderate", input: "moderate", want: Moderate},
		{name: "Medium alias", input: "Medium", want: Moderate},
		{name: "Hard", input: " hard ", want: Hard},
		{name: "Impossible", input: "IMPOSSIBLE", want: Impossible},
		{name: "Empty defaults to impossible", input: "", want: Impossible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseDifficulty("nightmare")
		require.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}
