package presenter

import (
	"errors"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/tictactoe"
	"github.com/rocketscienceinc/arcade-backend/internal/usecase"
)

const (
	msgInvalidInput  = "Invalid coordinates. Use numbers 0-3 for row and col."
	msgInvalidMove   = "Invalid move. Cell is not empty or out of bounds."
	msgGameOver      = "Game is already over"
	msgGameNotFound  = "Game not found"
	msgNotFound      = "Not found"
	msgInternalError = "Internal server error"
)

// Game is the wire form of a session as returned to players.
type Game struct {
	ID            string                `json:"id"`
	Board         entity.Board          `json:"board"`
	Status        string                `json:"status"`
	Winner        *entity.Mark          `json:"winner"`
	GameStartTime *time.Time            `json:"gameStartTime,omitempty"`
	GameEndTime   *time.Time            `json:"gameEndTime,omitempty"`
	MoveCount     *int                  `json:"moveCount,omitempty"`
	AIMove        *entity.Cell          `json:"aiMove,omitempty"`
	Message       string                `json:"message,omitempty"`
	Points        *tictactoe.Score      `json:"points,omitempty"`
	DecayedCells  []entity.DecayedCell  `json:"decayedCells"`
	TurnLog       []entity.TurnLogEntry `json:"turnLog,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Game    *Game  `json:"game,omitempty"`
}

// MoveResponse - full view of a processed move. The turn log is only exposed once the game ends.
func MoveResponse(result *usecase.MoveResult) Response {
	view := Snapshot(result.Game)
	view.AIMove = result.AIMove
	view.Message = result.Message
	view.Points = result.Points
	if result.DecayedCells != nil {
		view.DecayedCells = result.DecayedCells
	}

	if result.Game.IsFinished() {
		view.TurnLog = result.Game.TurnLog
	}

	return Response{Success: true, Game: view}
}

func GameResponse(game *entity.Game) Response {
	return Response{Success: true, Game: Snapshot(game)}
}

func Snapshot(game *entity.Game) *Game {
	startTime := game.GameStartTime
	moveCount := game.MoveCount

	return &Game{
		ID:            game.ID,
		Board:         game.Board,
		Status:        game.Status,
		Winner:        winner(game.Winner),
		GameStartTime: &startTime,
		GameEndTime:   game.GameEndTime,
		MoveCount:     &moveCount,
		DecayedCells:  []entity.DecayedCell{},
	}
}

// ErrorResponse maps an error to the body sent to the player. A rejected move on a finished game
// carries the short form of the session.
func ErrorResponse(err error, result *usecase.MoveResult) Response {
	response := Response{Success: false, Error: ErrorMessage(err)}

	if errors.Is(err, apperror.ErrGameFinished) && result != nil && result.Game != nil {
		response.Game = &Game{
			ID:     result.Game.ID,
			Board:  result.Game.Board,
			Status: result.Game.Status,
			Winner: winner(result.Game.Winner),

			DecayedCells: []entity.DecayedCell{},
		}
	}

	return response
}

func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		return msgInvalidInput
	case errors.Is(err, apperror.ErrCellOccupied):
		return msgInvalidMove
	case errors.Is(err, apperror.ErrGameFinished):
		return msgGameOver
	case errors.Is(err, apperror.ErrGameNotFound):
		return msgGameNotFound
	case errors.Is(err, apperror.ErrNotFound):
		return msgNotFound
	default:
		return msgInternalError
	}
}

func winner(mark entity.Mark) *entity.Mark {
	if mark == entity.EmptyCell {
		return nil
	}

	return &mark
}
