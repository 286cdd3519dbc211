package apperror

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid coordinates, use numbers 0-3 for row and col")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameFinished      = errors.New("game is already over")
	ErrInvalidBoardState = errors.New("invalid board state")
	ErrInternal          = errors.New("internal server error")
	ErrGameNotFound      = errors.New("game not found")
	ErrNotFound          = errors.New("not found")
)
