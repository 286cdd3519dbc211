package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

const (
	BoardSize = 4

	// MemorySize is the number of marks a player keeps on the board before the oldest decays.
	MemorySize = 4
)

// WinLines lists every winning line: rows, then columns, then the main and the anti diagonal.
var WinLines = buildWinLines()

type Game struct {
	ID            string         `json:"id"`
	Board         Board          `json:"board"`
	MoveHistory   []Move         `json:"moveHistory"`
	Status        string         `json:"status"`
	Winner        Mark           `json:"winner"`
	GameStartTime time.Time      `json:"gameStartTime"`
	GameEndTime   *time.Time     `json:"gameEndTime,omitempty"`
	MoveCount     int            `json:"moveCount"`
	TurnLog       []TurnLogEntry `json:"turnLog"`
	TournamentID  string         `json:"tournamentId,omitempty"`
	PlayerAddress string         `json:"playerAddress,omitempty"`
}

func NewGame(id string, startedAt time.Time) *Game {
	return &Game{
		ID:            id,
		Board:         Board{},
		MoveHistory:   []Move{},
		Status:        StatusPlaying,
		Winner:        EmptyCell,
		GameStartTime: startedAt,
		TurnLog:       []TurnLogEntry{},
	}
}

// ValidateMove - checks the coordinates and that the target cell is free.
func (that *Game) ValidateMove(row, col int) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidInput, row, col)
	}

	if that.Board[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// PlaceMark writes the mark and records the move. The move must be validated first.
func (that *Game) PlaceMark(player Mark, row, col int) Move {
	move := Move{
		Row:    row,
		Col:    col,
		Player: player,
		Seq:    len(that.MoveHistory),
	}

	that.Board[row][col] = player
	that.MoveHistory = append(that.MoveHistory, move)
	that.MoveCount++

	return move
}

// ApplyMemoryDecay - once a player has made more than MemorySize moves, clears the cell of
// their move that is now MemorySize+1 places from the most recent one.
func (that *Game) ApplyMemoryDecay(player Mark) (DecayedCell, bool) {
	playerMoves := PlayerMoves(that.MoveHistory, player)
	if len(playerMoves) <= MemorySize {
		return DecayedCell{}, false
	}

	disappearing := playerMoves[len(playerMoves)-MemorySize-1]
	if that.Board[disappearing.Row][disappearing.Col] != player {
		return DecayedCell{}, false
	}

	that.Board[disappearing.Row][disappearing.Col] = EmptyCell

	return DecayedCell{Row: disappearing.Row, Col: disappearing.Col, Player: player}, true
}

func (that *Game) Finish(winner Mark, at time.Time) {
	if winner == EmptyCell {
		that.Status = StatusDraw
	} else {
		that.Status = StatusWon
	}

	that.Winner = winner
	that.GameEndTime = &at
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsPlaying():
		return nil
	default:
		return fmt.Errorf("%w: unknown game status %q", apperror.ErrInvalidBoardState, that.Status)
	}
}

// Elapsed - wall-clock time between the start of the game and its end, or now for running games.
func (that *Game) Elapsed(now time.Time) time.Duration {
	end := now
	if that.GameEndTime != nil {
		end = *that.GameEndTime
	}

	return end.Sub(that.GameStartTime)
}

// LastMove returns the most recent move of the given player.
func (that *Game) LastMove(player Mark) (Move, bool) {
	for i := len(that.MoveHistory) - 1; i >= 0; i-- {
		if that.MoveHistory[i].Player == player {
			return that.MoveHistory[i], true
		}
	}

	return Move{}, false
}

// Clone returns a deep copy that shares no slices with the original.
func (that *Game) Clone() *Game {
	clone := *that

	clone.MoveHistory = append([]Move{}, that.MoveHistory...)

	clone.TurnLog = make([]TurnLogEntry, 0, len(that.TurnLog))
	for _, entry := range that.TurnLog {
		clone.TurnLog = append(clone.TurnLog, entry.Clone())
	}

	if that.GameEndTime != nil {
		endTime := *that.GameEndTime
		clone.GameEndTime = &endTime
	}

	return &clone
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// PlayerMoves filters the history down to the moves of one player, keeping order.
func PlayerMoves(history []Move, player Mark) []Move {
	moves := make([]Move, 0, len(history))
	for _, move := range history {
		if move.Player == player {
			moves = append(moves, move)
		}
	}

	return moves
}

func buildWinLines() [][BoardSize]Cell {
	lines := make([][BoardSize]Cell, 0, 2*BoardSize+2)

	for row := 0; row < BoardSize; row++ {
		var line [BoardSize]Cell
		for col := 0; col < BoardSize; col++ {
			line[col] = Cell{Row: row, Col: col}
		}
		lines = append(lines, line)
	}

	for col := 0; col < BoardSize; col++ {
		var line [BoardSize]Cell
		for row := 0; row < BoardSize; row++ {
			line[row] = Cell{Row: row, Col: col}
		}
		lines = append(lines, line)
	}

	var diagonal, antiDiagonal [BoardSize]Cell
	for i := 0; i < BoardSize; i++ {
		diagonal[i] = Cell{Row: i, Col: i}
		antiDiagonal[i] = Cell{Row: i, Col: BoardSize - 1 - i}
	}

	return append(lines, diagonal, antiDiagonal)
}
