package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/usecase"
	"github.com/rocketscienceinc/arcade-backend/transport/presenter"
)

// handleConnect - returns the requested session, or a new one when the id is empty or unknown.
func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload ConnectPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return that.sendError(conn, "invalid payload")
		}
	}

	game := that.uGame.GetOrCreateGame(ctx, payload.GameID)

	that.logger.Info("player connected", "method", "handleConnect", "game_id", game.ID)

	return that.sendMessage(conn, msg.Action, presenter.GameResponse(game))
}

func (that *Server) handleGameMove(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload MovePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Row == nil || payload.Col == nil {
		return that.sendMessage(conn, actionError, presenter.ErrorResponse(apperror.ErrInvalidInput, nil))
	}

	result, err := that.uGame.MakeMove(ctx, usecase.MoveRequest{
		SessionID:     payload.GameID,
		Row:           *payload.Row,
		Col:           *payload.Col,
		TournamentID:  payload.TournamentID,
		PlayerAddress: payload.PlayerAddress,
	})
	if err != nil {
		return that.sendMessage(conn, actionError, presenter.ErrorResponse(err, result))
	}

	return that.sendMessage(conn, msg.Action, presenter.MoveResponse(result))
}
