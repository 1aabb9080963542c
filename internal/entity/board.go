package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Size - side length of the board.
const Size = 3

var ErrMalformedBoard = errors.New("malformed board")

// Cell - state of one board position. Values follow the human-perspective sign convention.
type Cell int8

const (
	Empty    Cell = 0
	Human    Cell = 1
	Computer Cell = -1
)

// Symbol - returns the character used to print the cell.
func (that Cell) Symbol() rune {
	switch that {
	case Human:
		return 'X'
	case Computer:
		return 'O'
	default:
		return '-'
	}
}

func (that Cell) IsValid() bool {
	return that == Empty || that == Human || that == Computer
}

// Opponent - returns the other side; Empty has no opponent.
func (that Cell) Opponent() Cell {
	return -that
}

func (that Cell) String() string {
	switch that {
	case Empty:
		return "empty"
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("cell(%d)", int8(that))
	}
}

// Move - a (row, column) pair; validity depends on the board it is played on.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveFromNumber - converts a 1-9 cell number (row-major) into a move.
// Numbers outside 1-9 produce out-of-range coordinates.
func MoveFromNumber(number int) Move {
	if number < 1 {
		return Move{Row: -1, Col: -1}
	}

	return Move{Row: (number - 1) / Size, Col: (number - 1) % Size}
}

// Number - returns the 1-9 cell number of the move.
func (that Move) Number() int {
	return that.Row*Size + that.Col + 1
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board - fixed grid of cells addressed as [row][col].
type Board [Size][Size]Cell

// At - returns the cell under the move. The move must be in bounds.
func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

func (that *Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// Validate - reports cells holding anything other than the three known states.
func (that *Board) Validate() error {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !that[row][col].IsValid() {
				return fmt.Errorf("%w: cell %s holds %d", ErrMalformedBoard, Move{Row: row, Col: col}, that[row][col])
			}
		}
	}

	return nil
}

// String - renders the board as rows of symbols, e.g. "X - O".
func (that *Board) String() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(that[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
