package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// ParseMove reads "row col" or "row,col".
func ParseMove(line string) (gomoku.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(fields) != 2 {
		return gomoku.Move{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrInvalidMove, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return gomoku.Move{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidMove, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return gomoku.Move{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidMove, fields[1])
	}

	return gomoku.Move{Row: row, Col: col}, nil
}

// ReadLines streams lines from r until EOF or until ctx is done.
func ReadLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
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
