package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInvalidInput = errors.New("invalid input")

// parseMove - reads a 1-9 cell number. Range is left to move validation.
func parseMove(line string) (entity.Move, error) {
	number, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}

	return entity.MoveFromNumber(number), nil
}

// readLines - feeds input lines into a channel that is closed on EOF.
// The reader goroutine exits once ctx is done and the pending line is dropped.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
