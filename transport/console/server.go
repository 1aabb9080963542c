package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	msgPrompt        = "Enter your move [1-9] "
	msgInvalidInput  = "Invalid input"
	msgInvalidMove   = "Invalid move"
	msgAfterComputer = "Game state after computer move"
	msgWin           = "You win!"
	msgLoss          = "You lose!"
	msgDraw          = "The match is a tie!"
)

type uGame interface {
	NewGame(ctx context.Context) *entity.Game
	MakeTurn(ctx context.Context, game *entity.Game, move entity.Move) error
	BotTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		in:     in,
		out:    out,
	}
}

// Start - plays one game on the console. Returns nil when the game ends or the input is closed.
func (that *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, that.in)

	game := that.uGame.NewGame(ctx)
	that.printBoard(game)

	for !game.IsFinished() {
		that.printf("%s", msgPrompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			that.logger.Info("game interrupted")
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			that.logger.Info("input closed")
			return nil
		}

		move, err := parseMove(line)
		if err != nil {
			that.println(msgInvalidInput)
			continue
		}

		if err = that.uGame.MakeTurn(ctx, game, move); err != nil {
			if isRejectedMove(err) {
				that.println(msgInvalidMove)
				continue
			}

			return fmt.Errorf("failed to make turn: %w", err)
		}

		that.printBoard(game)

		if game.IsFinished() {
			break
		}

		if _, err = that.uGame.BotTurn(ctx, game); err != nil {
			if errors.Is(err, context.Canceled) {
				that.logger.Info("game interrupted")
				return nil
			}

			return fmt.Errorf("failed to make bot turn: %w", err)
		}

		that.println(msgAfterComputer)
		that.printBoard(game)
	}

	that.println(verdict(game.Outcome))

	return nil
}

func (that *Server) printBoard(game *entity.Game) {
	that.printf("%s", game.Board.String())
}

func (that *Server) println(msg string) {
	that.printf("%s\n", msg)
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}

// isRejectedMove - errors the player can fix by choosing another cell.
func isRejectedMove(err error) bool {
	return errors.Is(err, tictactoe.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrNotYourTurn)
}

func verdict(outcome entity.Outcome) string {
	switch outcome {
	case entity.Win:
		return msgWin
	case entity.Loss:
		return msgLoss
	default:
		return msgDraw
	}
}
