package entity

import "time"

// LedgerEntry is the recorded result of a player's game in a tournament.
type LedgerEntry struct {
	TournamentID  string    `json:"tournamentId"`
	PlayerAddress string    `json:"playerAddress"`
	GameID        string    `json:"gameId"`
	Score         int       `json:"score"`
	Winner        Mark      `json:"winner"`
	TurnLogCID    string    `json:"turnLogCid"`
	RecordedAt    time.Time `json:"recordedAt"`
}
