package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// DefaultWinLength is the run length needed to win.
const DefaultWinLength = 5

const (
	RuleFreestyle = "freestyle"
	RuleStandard  = "standard"
)

// Game is the capability set every board game variant provides.
type Game interface {
	PlacePiece(row, col int) bool
	IsGameOver() bool
	ValidMoves() []Move
}

// WinCondition judges the length of the run through the last placed piece.
type WinCondition interface {
	Wins(run int) bool
	Length() int
}

// AtLeast is freestyle Gomoku: n or more in a row wins.
type AtLeast int

func (n AtLeast) Wins(run int) bool { return run >= int(n) }

func (n AtLeast) Length() int { return int(n) }

// Exactly is standard Gomoku: only a run of exactly n wins, overlines do not.
type Exactly int

func (n Exactly) Wins(run int) bool { return run == int(n) }

func (n Exactly) Length() int { return int(n) }

// WinConditionFor maps a rule name to its win condition.
func WinConditionFor(rule string, length int) (WinCondition, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: win length %d", apperror.ErrInvalidConfig, length)
	}

	switch rule {
	case RuleFreestyle, "":
		return AtLeast(length), nil
	case RuleStandard:
		return Exactly(length), nil
	default:
		return nil, fmt.Errorf("%w: unknown rule %q", apperror.ErrInvalidConfig, rule)
	}
}

// directions are the four axes through a cell: horizontal, vertical, diagonal, anti-diagonal.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// runLength counts contiguous cells holding piece along one axis through
// (row, col), both ways, the cell itself included.
func runLength(board *Board, row, col, deltaRow, deltaCol int, piece Piece) int {
	count := 1

	for r, c := row+deltaRow, col+deltaCol; board.InBounds(r, c) && board.Get(r, c) == piece; r, c = r+deltaRow, c+deltaCol {
		count++
	}

	for r, c := row-deltaRow, col-deltaCol; board.InBounds(r, c) && board.Get(r, c) == piece; r, c = r-deltaRow, c-deltaCol {
		count++
	}

	return count
}

// checkWin reports whether the piece just placed at (row, col) completes a winning run.
func checkWin(board *Board, row, col int, condition WinCondition) bool {
	piece := board.Get(row, col)
	if piece == Empty {
		return false
	}

	for _, d := range directions {
		if condition.Wins(runLength(board, row, col, d[0], d[1], piece)) {
			return true
		}
	}

	return false
}
