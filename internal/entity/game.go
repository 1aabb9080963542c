package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Outcome - result of a finished game from the human's perspective.
type Outcome int

const (
	Loss Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

// Score - the minimax value of the outcome.
func (that Outcome) Score() int {
	return int(that)
}

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

type Game struct {
	Board   Board   `json:"board"`
	Turn    Cell    `json:"turn"`
	Status  string  `json:"status"`
	Outcome Outcome `json:"outcome"`
	Moves   []Move  `json:"moves,omitempty"`
}

// NewGame - creates an empty game where the human moves first.
func NewGame() *Game {
	return &Game{
		Turn:   Human,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Finish - marks the game as over with the given outcome.
func (that *Game) Finish(outcome Outcome) {
	that.Status = StatusFinished
	that.Outcome = outcome
	that.Turn = Empty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
