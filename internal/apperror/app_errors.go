package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrOutOfBounds   = errors.New("cell is out of bounds")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidConfig = errors.New("invalid game config")
	ErrGameAborted   = errors.New("game aborted before it finished")
)
