package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Name is the display name of the game.
const Name = "Gomoku"

var _ Game = (*Engine)(nil)

// Options configure a new engine. Zero values fall back to the defaults.
type Options struct {
	Size      int
	Win       WinCondition
	BlackName string
	WhiteName string
}

// Engine owns the board and the turn state of one Gomoku game.
type Engine struct {
	id        string
	board     *Board
	roster    Roster
	win       WinCondition
	moveCount int
	gameOver  bool
	winner    Piece
	lastMove  *Move
}

func NewEngine(id string, opts Options) (*Engine, error) {
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}

	if opts.Size < 1 {
		return nil, fmt.Errorf("%w: board size %d", apperror.ErrInvalidConfig, opts.Size)
	}

	if opts.Win == nil {
		opts.Win = AtLeast(DefaultWinLength)
	}

	if opts.Win.Length() < 1 {
		return nil, fmt.Errorf("%w: win length %d", apperror.ErrInvalidConfig, opts.Win.Length())
	}

	if opts.BlackName == "" {
		opts.BlackName = "Black"
	}

	if opts.WhiteName == "" {
		opts.WhiteName = "White"
	}

	return &Engine{
		id:     id,
		board:  NewBoard(opts.Size),
		roster: NewRoster(opts.BlackName, opts.WhiteName),
		win:    opts.Win,
	}, nil
}

func (that *Engine) ID() string {
	return that.id
}

func (that *Engine) Name() string {
	return Name
}

// Board exposes the grid for reading. Callers must not Set on it.
func (that *Engine) Board() *Board {
	return that.board
}

func (that *Engine) Current() Player {
	return that.roster.Current()
}

func (that *Engine) MoveCount() int {
	return that.moveCount
}

func (that *Engine) IsGameOver() bool {
	return that.gameOver
}

func (that *Engine) LastMove() (Move, bool) {
	if that.lastMove == nil {
		return Move{}, false
	}

	return *that.lastMove, true
}

// PlacePiece places the current player's piece and reports whether the move was legal.
func (that *Engine) PlacePiece(row, col int) bool {
	return that.Place(row, col) == nil
}

// Place is PlacePiece with the rejection reason. A rejected move changes nothing.
func (that *Engine) Place(row, col int) error {
	if that.gameOver {
		return apperror.ErrGameFinished
	}

	if !that.board.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if !that.board.IsEmpty(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	piece := that.roster.Current().Piece
	that.board.Set(row, col, piece)
	that.moveCount++
	that.lastMove = &Move{Row: row, Col: col}

	if checkWin(that.board, row, col, that.win) {
		that.gameOver = true
		that.winner = piece

		return nil
	}

	if len(that.ValidMoves()) == 0 {
		that.gameOver = true

		return nil
	}

	that.roster.Switch()

	return nil
}

// ValidMoves lists every empty cell in row-major order.
func (that *Engine) ValidMoves() []Move {
	size := that.board.Size()

	moves := make([]Move, 0, size*size-that.moveCount)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if that.board.IsEmpty(row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Winner returns the player whose move ended the game. It reports false
// while the game is running and after a draw.
func (that *Engine) Winner() (Player, bool) {
	if !that.gameOver || that.winner == Empty {
		return Player{}, false
	}

	return that.roster.Player(that.winner)
}

func (that *Engine) IsDraw() bool {
	return that.gameOver && that.winner == Empty
}
