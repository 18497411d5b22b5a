package gomoku

import "strings"

// DefaultSize is the conventional Gomoku board size.
const DefaultSize = 15

// Piece marks which player owns a cell.
type Piece uint8

const (
	Empty Piece = iota
	Black
	White
)

// String returns the marker used when printing a board.
func (p Piece) String() string {
	switch p {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's piece. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Move is a (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a fixed size square grid stored row-major.
type Board struct {
	size  int
	cells []Piece
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Piece, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// Get returns the piece at (row, col). Out of bounds cells read as Empty.
func (that *Board) Get(row, col int) Piece {
	if !that.InBounds(row, col) {
		return Empty
	}

	return that.cells[row*that.size+col]
}

// Set writes a piece at (row, col). The caller checks bounds and occupancy.
func (that *Board) Set(row, col int, piece Piece) {
	that.cells[row*that.size+col] = piece
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.InBounds(row, col) && that.Get(row, col) == Empty
}

// Full reports whether no empty cell is left.
func (that *Board) Full() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Rows returns one string per row, e.g. "..X.O".
func (that *Board) Rows() []string {
	rows := make([]string, that.size)
	for row := 0; row < that.size; row++ {
		var sb strings.Builder
		for col := 0; col < that.size; col++ {
			sb.WriteString(that.Get(row, col).String())
		}
		rows[row] = sb.String()
	}

	return rows
}
