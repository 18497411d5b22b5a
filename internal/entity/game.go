package entity

import (
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Game is a read-only snapshot of an engine, used for rendering and logging.
type Game struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Board     []string       `json:"board"`
	Status    string         `json:"status"`
	Turn      *gomoku.Player `json:"player_turn,omitempty"`
	Winner    string         `json:"winner,omitempty"`
	MoveCount int            `json:"move_count"`
	LastMove  *gomoku.Move   `json:"last_move,omitempty"`
}

type engine interface {
	ID() string
	Name() string
	Board() *gomoku.Board
	Current() gomoku.Player
	MoveCount() int
	IsGameOver() bool
	IsDraw() bool
	Winner() (gomoku.Player, bool)
	LastMove() (gomoku.Move, bool)
}

// NewGame takes a snapshot of the engine's current state.
func NewGame(e engine) *Game {
	game := &Game{
		ID:        e.ID(),
		Name:      e.Name(),
		Board:     e.Board().Rows(),
		Status:    StatusOngoing,
		MoveCount: e.MoveCount(),
	}

	if last, ok := e.LastMove(); ok {
		game.LastMove = &last
	}

	switch winner, ok := e.Winner(); {
	// one player wins
	case ok:
		game.Status = StatusFinished
		game.Winner = winner.Name
	// tie
	case e.IsDraw():
		game.Status = StatusFinished
		game.Winner = PlayerTie
	// game continue
	default:
		current := e.Current()
		game.Turn = &current
	}

	return game
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}
