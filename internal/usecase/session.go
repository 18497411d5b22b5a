package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type gameEngine interface {
	ID() string
	Name() string
	Board() *gomoku.Board
	Current() gomoku.Player
	MoveCount() int
	IsGameOver() bool
	IsDraw() bool
	Winner() (gomoku.Player, bool)
	LastMove() (gomoku.Move, bool)
	Place(row, col int) error
	ValidMoves() []gomoku.Move
}

type renderer interface {
	Board(game *entity.Game) error
	Status(game *entity.Game) error
	Message(line string) error
}

// Session plays one game on a shared terminal, both players taking turns at the keyboard.
type Session struct {
	logger   *slog.Logger
	engine   gameEngine
	renderer renderer
}

func NewSession(logger *slog.Logger, engine gameEngine, renderer renderer) *Session {
	return &Session{
		logger:   logger,
		engine:   engine,
		renderer: renderer,
	}
}

// Run reads one command per line until the game ends. It returns the final
// snapshot, or the snapshot at the time of abort together with an error.
func (that *Session) Run(ctx context.Context, lines <-chan string) (*entity.Game, error) {
	log := that.logger.With("method", "Run", "game_id", that.engine.ID())
	log.Info("game started", "board_size", that.engine.Board().Size())

	if err := that.show(); err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("game interrupted", "move_count", that.engine.MoveCount())

			return entity.NewGame(that.engine), fmt.Errorf("session interrupted: %w", ctx.Err())
		case line, ok := <-lines:
			if !ok {
				log.Info("input closed", "move_count", that.engine.MoveCount())

				return entity.NewGame(that.engine), apperror.ErrGameAborted
			}

			if err := that.handle(log, line); err != nil {
				return entity.NewGame(that.engine), err
			}

			if that.engine.IsGameOver() {
				game := entity.NewGame(that.engine)
				log.Info("game finished", "winner", game.Winner, "move_count", game.MoveCount)

				return game, nil
			}
		}
	}
}

func (that *Session) handle(log *slog.Logger, line string) error {
	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case "":
		return that.prompt()
	case "quit", "exit":
		log.Info("game aborted by player", "player", that.engine.Current().Name)

		return apperror.ErrGameAborted
	case "moves":
		msg := fmt.Sprintf("%d valid moves left.", len(that.engine.ValidMoves()))
		if err := that.renderer.Message(msg); err != nil {
			return fmt.Errorf("failed to show moves: %w", err)
		}

		return that.prompt()
	}

	move, err := ParseMove(command)
	if err != nil {
		return that.reject(log, err)
	}

	player := that.engine.Current()
	if err = that.engine.Place(move.Row, move.Col); err != nil {
		return that.reject(log, err)
	}

	log.Debug("piece placed", "player", player.Name, "row", move.Row, "col", move.Col)

	return that.show()
}

// reject tells the player why the input was refused. Only rendering failures are returned.
func (that *Session) reject(log *slog.Logger, reason error) error {
	log.Debug("move rejected", "error", reason)

	msg := "Invalid move: " + reason.Error()
	switch {
	case errors.Is(reason, apperror.ErrCellOccupied):
		msg = "That cell is already taken."
	case errors.Is(reason, apperror.ErrOutOfBounds):
		msg = fmt.Sprintf("Stay on the board: rows and columns go from 0 to %d.", that.engine.Board().Size()-1)
	}

	if err := that.renderer.Message(msg); err != nil {
		return fmt.Errorf("failed to show rejection: %w", err)
	}

	return that.prompt()
}

func (that *Session) show() error {
	game := entity.NewGame(that.engine)

	if err := that.renderer.Board(game); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	if err := that.renderer.Status(game); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}

	return nil
}

func (that *Session) prompt() error {
	if err := that.renderer.Status(entity.NewGame(that.engine)); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}

	return nil
}
