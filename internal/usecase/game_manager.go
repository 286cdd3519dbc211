package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/tictactoe"
)

const defaultCollaboratorTimeout = 5 * time.Second

type sessionStore interface {
	GetOrCreate(id string) *entity.Game
	Get(id string) (*entity.Game, bool)
	PutIfAbsent(game *entity.Game) (*entity.Game, bool)
	Update(id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

type turnEngine interface {
	PlayTurn(game *entity.Game, row, col int) (*tictactoe.TurnResult, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type turnLogStore interface {
	Put(ctx context.Context, log []entity.TurnLogEntry) (string, error)
	Get(ctx context.Context, cid string) ([]entity.TurnLogEntry, error)
}

type ledgerRepo interface {
	RecordResult(ctx context.Context, entry *entity.LedgerEntry) error
	ListByTournament(ctx context.Context, tournamentID string) ([]*entity.LedgerEntry, error)
}

type MoveRequest struct {
	SessionID     string
	Row           int
	Col           int
	TournamentID  string
	PlayerAddress string
}

type MoveResult struct {
	Game         *entity.Game
	AIMove       *entity.Cell
	DecayedCells []entity.DecayedCell
	Message      string
	Points       *tictactoe.Score
}

// snapshotGate orders snapshot writes of one session. saved is the move count of the newest
// snapshot written so far.
type snapshotGate struct {
	mu    sync.Mutex
	saved int
}

// GameManager runs moves against stored sessions and hands finished games to the collaborators.
type GameManager struct {
	logger *slog.Logger

	store    sessionStore
	engine   turnEngine
	gameRepo gameRepo
	turnLogs turnLogStore
	ledger   ledgerRepo

	collaboratorTimeout time.Duration
	pending             sync.WaitGroup

	gatesMu sync.Mutex
	gates   map[string]*snapshotGate
}

// NewGameManager - gameRepo and ledger may be nil when the matching storage is disabled.
func NewGameManager(
	logger *slog.Logger,
	store sessionStore,
	engine turnEngine,
	gameRepo gameRepo,
	turnLogs turnLogStore,
	ledger ledgerRepo,
	collaboratorTimeout time.Duration,
) *GameManager {
	if collaboratorTimeout <= 0 {
		collaboratorTimeout = defaultCollaboratorTimeout
	}

	return &GameManager{
		logger: logger,

		store:    store,
		engine:   engine,
		gameRepo: gameRepo,
		turnLogs: turnLogs,
		ledger:   ledger,

		collaboratorTimeout: collaboratorTimeout,

		gates: make(map[string]*snapshotGate),
	}
}

// MakeMove - applies the human move and the AI reply to the session, creating the session when
// the id is empty or unknown. Rejected moves return the unchanged session alongside the error.
func (that *GameManager) MakeMove(ctx context.Context, req MoveRequest) (*MoveResult, error) {
	log := that.logger.With("method", "MakeMove", "session_id", req.SessionID)

	if !entity.InBounds(req.Row, req.Col) {
		return nil, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidInput, req.Row, req.Col)
	}

	game := that.getOrRestore(ctx, req.SessionID)

	var turn *tictactoe.TurnResult
	updated, err := that.store.Update(game.ID, func(session *entity.Game) error {
		if session.TournamentID == "" && session.PlayerAddress == "" {
			session.TournamentID = req.TournamentID
			session.PlayerAddress = req.PlayerAddress
		}

		var err error
		turn, err = that.engine.PlayTurn(session, req.Row, req.Col)

		return err
	})
	if err != nil {
		return that.rejectMove(log, updated, err)
	}

	that.dispatch(ctx, updated, turn.Score)

	log.Debug("move applied", "game_id", updated.ID, "status", updated.Status, "move_count", updated.MoveCount)

	return &MoveResult{
		Game:         updated,
		AIMove:       turn.AIMove,
		DecayedCells: turn.DecayedCells,
		Message:      turn.Message,
		Points:       turn.Score,
	}, nil
}

// GetOrCreateGame - snapshot of the session, or of a freshly created one when the id is empty or unknown.
func (that *GameManager) GetOrCreateGame(ctx context.Context, id string) *entity.Game {
	return that.getOrRestore(ctx, id)
}

// GetGame returns a snapshot of a known session, restoring it from the snapshot repository if needed.
func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	if game, ok := that.store.Get(id); ok {
		return game, nil
	}

	if game, ok := that.restore(ctx, id); ok {
		return game, nil
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
}

func (that *GameManager) GetTurnLog(ctx context.Context, cid string) ([]entity.TurnLogEntry, error) {
	log, err := that.turnLogs.Get(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to get turn log: %w", err)
	}

	return log, nil
}

func (that *GameManager) Leaderboard(ctx context.Context, tournamentID string) ([]*entity.LedgerEntry, error) {
	if that.ledger == nil {
		return []*entity.LedgerEntry{}, nil
	}

	entries, err := that.ledger.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament entries: %w", err)
	}

	return entries, nil
}

// Wait blocks until every collaborator call started so far has finished.
func (that *GameManager) Wait() {
	that.pending.Wait()
}

func (that *GameManager) rejectMove(log *slog.Logger, snapshot *entity.Game, err error) (*MoveResult, error) {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return &MoveResult{Game: snapshot, Message: apperror.ErrGameFinished.Error()}, err
	case errors.Is(err, apperror.ErrInvalidInput), errors.Is(err, apperror.ErrCellOccupied):
		return &MoveResult{Game: snapshot}, err
	default:
		log.Error("failed to make move", "error", err)

		if errors.Is(err, apperror.ErrInternal) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", apperror.ErrInternal, err)
	}
}

func (that *GameManager) getOrRestore(ctx context.Context, id string) *entity.Game {
	if id != "" {
		if game, ok := that.store.Get(id); ok {
			return game
		}

		if game, ok := that.restore(ctx, id); ok {
			return game
		}
	}

	return that.store.GetOrCreate(id)
}

func (that *GameManager) restore(ctx context.Context, id string) (*entity.Game, bool) {
	if that.gameRepo == nil || id == "" {
		return nil, false
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperror.ErrGameNotFound) {
			that.logger.Warn("failed to restore game", "method", "restore", "game_id", id, "error", err)
		}

		return nil, false
	}

	// a concurrent request may have restored and moved the session meanwhile
	stored, restored := that.store.PutIfAbsent(game)
	if !restored {
		that.logger.Debug("session already live, dropping restored copy", "method", "restore", "game_id", id)
	}

	return stored, true
}

// dispatch - fire-and-forget calls to the collaborators. Their failures are logged only.
func (that *GameManager) dispatch(ctx context.Context, game *entity.Game, score *tictactoe.Score) {
	if that.gameRepo == nil && !game.IsFinished() {
		return
	}

	that.pending.Add(1)
	go func() {
		defer that.pending.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), that.collaboratorTimeout)
		defer cancel()

		log := that.logger.With("method", "dispatch", "game_id", game.ID)

		if that.gameRepo != nil {
			that.saveSnapshot(ctx, log, game)
		}

		if !game.IsFinished() {
			return
		}

		cid, err := that.turnLogs.Put(ctx, game.TurnLog)
		if err != nil {
			log.Error("failed to store turn log", "error", err)
			return
		}

		log.Info("turn log stored", "cid", cid, "status", game.Status, "winner", game.Winner)

		that.recordResult(ctx, log, game, score, cid)
	}()
}

// saveSnapshot writes snapshots of one session one at a time and never lets an older snapshot
// overwrite a newer one.
func (that *GameManager) saveSnapshot(ctx context.Context, log *slog.Logger, game *entity.Game) {
	gate := that.snapshotGate(game.ID)

	gate.mu.Lock()
	defer gate.mu.Unlock()

	if game.MoveCount <= gate.saved {
		log.Debug("newer snapshot already saved", "move_count", game.MoveCount, "saved", gate.saved)
		return
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		log.Error("failed to save game snapshot", "error", err)
		return
	}

	gate.saved = game.MoveCount
}

func (that *GameManager) snapshotGate(id string) *snapshotGate {
	that.gatesMu.Lock()
	defer that.gatesMu.Unlock()

	gate, ok := that.gates[id]
	if !ok {
		gate = &snapshotGate{}
		that.gates[id] = gate
	}

	return gate
}

func (that *GameManager) recordResult(ctx context.Context, log *slog.Logger, game *entity.Game, score *tictactoe.Score, cid string) {
	if that.ledger == nil || score == nil || game.TournamentID == "" || game.PlayerAddress == "" {
		return
	}

	entry := &entity.LedgerEntry{
		TournamentID:  game.TournamentID,
		PlayerAddress: game.PlayerAddress,
		GameID:        game.ID,
		Score:         score.TotalPoints,
		Winner:        game.Winner,
		TurnLogCID:    cid,
		RecordedAt:    *game.GameEndTime,
	}

	if err := that.ledger.RecordResult(ctx, entry); err != nil {
		log.Error("failed to record tournament result", "error", err)
		return
	}

	log.Info("tournament result recorded", "tournament_id", entry.TournamentID, "score", entry.Score)
}
