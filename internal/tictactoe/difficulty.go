package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty - how many plies the search looks ahead after the computer's candidate move.
type Difficulty int

const (
	Easy       Difficulty = 3
	Moderate   Difficulty = 5
	Hard       Difficulty = 7
	Impossible Difficulty = 8
)

// ParseDifficulty - maps a preset name to its depth.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "moderate", "medium":
		return Moderate, nil
	case "hard":
		return Hard, nil
	case "impossible", "":
		return Impossible, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
}

func (that Difficulty) Depth() int {
	return int(that)
}
