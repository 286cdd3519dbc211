package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

// LedgerRepository records finished tournament games, one row per player and tournament.
type LedgerRepository interface {
	RecordResult(ctx context.Context, entry *entity.LedgerEntry) error
	Find(ctx context.Context, tournamentID, playerAddress string) (*entity.LedgerEntry, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]*entity.LedgerEntry, error)
}

type ledgerRepository struct {
	conn *sql.DB
}

func NewLedgerRepository(conn *sql.DB) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

// RecordResult - inserts the entry or replaces the stored one when the new score is at least as high.
func (that *ledgerRepository) RecordResult(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `INSERT INTO tournament_entries
		(tournament_id, player_address, game_id, score, winner, turn_log_cid, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (tournament_id, player_address) DO UPDATE SET
			game_id = excluded.game_id,
			score = excluded.score,
			winner = excluded.winner,
			turn_log_cid = excluded.turn_log_cid,
			recorded_at = excluded.recorded_at
		WHERE excluded.score >= tournament_entries.score`

	_, err := that.conn.ExecContext(ctx, query,
		entry.TournamentID,
		entry.PlayerAddress,
		entry.GameID,
		entry.Score,
		string(entry.Winner),
		entry.TurnLogCID,
		entry.RecordedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't record result: %w", err)
	}

	return nil
}

func (that *ledgerRepository) Find(ctx context.Context, tournamentID, playerAddress string) (*entity.LedgerEntry, error) {
	query := `SELECT tournament_id, player_address, game_id, score, winner, turn_log_cid, recorded_at
		FROM tournament_entries WHERE tournament_id = ? AND player_address = ?`

	entry, err := scanLedgerEntry(that.conn.QueryRowContext(ctx, query, tournamentID, playerAddress))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find ledger entry: %w", err)
	}

	return entry, nil
}

// ListByTournament returns the tournament leaderboard, best score first.
func (that *ledgerRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*entity.LedgerEntry, error) {
	query := `SELECT tournament_id, player_address, game_id, score, winner, turn_log_cid, recorded_at
		FROM tournament_entries WHERE tournament_id = ?
		ORDER BY score DESC, recorded_at ASC`

	rows, err := that.conn.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("can't list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("can't scan ledger entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list ledger entries: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLedgerEntry(row rowScanner) (*entity.LedgerEntry, error) {
	var (
		entry      entity.LedgerEntry
		winner     string
		recordedAt int64
	)

	err := row.Scan(
		&entry.TournamentID,
		&entry.PlayerAddress,
		&entry.GameID,
		&entry.Score,
		&winner,
		&entry.TurnLogCID,
		&recordedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Winner = entity.Mark(winner)
	entry.RecordedAt = time.UnixMilli(recordedAt).UTC()

	return &entry, nil
}
