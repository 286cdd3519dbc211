package websocket

import (
	"encoding/json"
)

const (
	actionConnect  = "connect"
	actionGameMove = "game:move"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ConnectPayload struct {
	GameID string `json:"gameId"`
}

type MovePayload struct {
	GameID        string `json:"gameId"`
	Row           *int   `json:"row"`
	Col           *int   `json:"col"`
	TournamentID  string `json:"tournamentId"`
	PlayerAddress string `json:"playerAddress"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
