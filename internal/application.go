package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/render"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

// RunApp - runs one hot-seat game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play runs one game reading moves from in and drawing on out.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	opts, err := conf.Game.EngineOptions()
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	engine, err := gomoku.NewEngine(uuid.NewString(), opts)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	session := usecase.NewSession(logger.With("component", "session"), engine, render.New(out, !conf.Game.NoColor))

	game, err := session.Run(ctx, usecase.ReadLines(ctx, in))
	switch {
	case errors.Is(err, apperror.ErrGameAborted), errors.Is(err, context.Canceled):
		log.Info("Game ended early", "game_id", engine.ID(), "move_count", engine.MoveCount())
		return nil
	case err != nil:
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game over", "game", game)

	return nil
}
