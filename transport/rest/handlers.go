package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/usecase"
	"github.com/rocketscienceinc/arcade-backend/transport/presenter"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	PlayHandler(w http.ResponseWriter, r *http.Request)
	GetGameHandler(w http.ResponseWriter, r *http.Request)
	TurnLogHandler(w http.ResponseWriter, r *http.Request)
	LeaderboardHandler(w http.ResponseWriter, r *http.Request)
}

type gameManager interface {
	MakeMove(ctx context.Context, req usecase.MoveRequest) (*usecase.MoveResult, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	GetTurnLog(ctx context.Context, cid string) ([]entity.TurnLogEntry, error)
	Leaderboard(ctx context.Context, tournamentID string) ([]*entity.LedgerEntry, error)
}

// playRequest uses pointers so a missing or non-numeric coordinate is told apart from zero.
type playRequest struct {
	Row           *int   `json:"row"`
	Col           *int   `json:"col"`
	TournamentID  string `json:"tournamentId"`
	PlayerAddress string `json:"playerAddress"`
}

type handlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func NewHandlers(logger *slog.Logger, gameManager gameManager) Handlers {
	return &handlers{
		logger:      logger,
		gameManager: gameManager,
	}
}

func (that *handlers) PlayHandler(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, presenter.ErrorResponse(apperror.ErrInvalidInput, nil))
		return
	}

	result, err := that.gameManager.MakeMove(r.Context(), usecase.MoveRequest{
		SessionID:     r.URL.Query().Get("gameId"),
		Row:           *req.Row,
		Col:           *req.Col,
		TournamentID:  req.TournamentID,
		PlayerAddress: req.PlayerAddress,
	})
	if err != nil {
		that.writeJSON(w, statusFor(err), presenter.ErrorResponse(err, result))
		return
	}

	that.writeJSON(w, http.StatusOK, presenter.MoveResponse(result))
}

func (that *handlers) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameManager.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeJSON(w, statusFor(err), presenter.ErrorResponse(err, nil))
		return
	}

	that.writeJSON(w, http.StatusOK, presenter.GameResponse(game))
}

func (that *handlers) TurnLogHandler(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")

	log, err := that.gameManager.GetTurnLog(r.Context(), cid)
	if err != nil {
		that.writeJSON(w, statusFor(err), presenter.ErrorResponse(err, nil))
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"cid":     cid,
		"turnLog": log,
	})
}

func (that *handlers) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "id")

	entries, err := that.gameManager.Leaderboard(r.Context(), tournamentID)
	if err != nil {
		that.writeJSON(w, statusFor(err), presenter.ErrorResponse(err, nil))
		return
	}

	that.writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"tournamentId": tournamentID,
		"entries":      entries,
	})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound), errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
