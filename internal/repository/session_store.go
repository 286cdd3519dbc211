package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

type sessionSlot struct {
	mu   sync.Mutex
	game *entity.Game
}

// SessionStore keeps live games in memory. Every session has its own lock, so moves on one
// session are serialized while different sessions proceed independently.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionSlot

	newID func() string
	now   func() time.Time
}

func NewSessionStore(newID func() string, now func() time.Time) *SessionStore {
	if newID == nil {
		newID = pkg.GenerateNewSessionID
	}

	if now == nil {
		now = time.Now
	}

	return &SessionStore{
		sessions: make(map[string]*sessionSlot),
		newID:    newID,
		now:      now,
	}
}

// GetOrCreate - returns a snapshot of the session. An empty or unknown id starts a new session
// under a freshly generated id.
func (that *SessionStore) GetOrCreate(id string) *entity.Game {
	if id != "" {
		if game, ok := that.Get(id); ok {
			return game
		}
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	newID := that.newID()
	for _, exists := that.sessions[newID]; exists; _, exists = that.sessions[newID] {
		newID = that.newID()
	}

	game := entity.NewGame(newID, that.now())
	that.sessions[newID] = &sessionSlot{game: game}

	return game.Clone()
}

func (that *SessionStore) Get(id string) (*entity.Game, bool) {
	slot, ok := that.slot(id)
	if !ok {
		return nil, false
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return slot.game.Clone(), true
}

// Put stores the game as is, replacing any session with the same id.
func (that *SessionStore) Put(game *entity.Game) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if slot, ok := that.sessions[game.ID]; ok {
		slot.mu.Lock()
		slot.game = game.Clone()
		slot.mu.Unlock()

		return
	}

	that.sessions[game.ID] = &sessionSlot{game: game.Clone()}
}

// PutIfAbsent stores the game unless a session with the same id is already live. It returns a
// snapshot of whichever session ends up stored and whether it was the given one.
func (that *SessionStore) PutIfAbsent(game *entity.Game) (*entity.Game, bool) {
	that.mu.Lock()
	slot, exists := that.sessions[game.ID]
	if !exists {
		that.sessions[game.ID] = &sessionSlot{game: game.Clone()}
	}
	that.mu.Unlock()

	if !exists {
		return game.Clone(), true
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return slot.game.Clone(), false
}

// Update - runs fn on a copy of the session under the session lock. The copy replaces the
// stored game only when fn returns nil; otherwise the stored game stays untouched and a snapshot
// of it is returned together with the error. A panic inside fn is reported as ErrInternal.
func (that *SessionStore) Update(id string, fn func(game *entity.Game) error) (game *entity.Game, err error) {
	slot, ok := that.slot(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			game = slot.game.Clone()
			err = fmt.Errorf("%w: %v", apperror.ErrInternal, r)
		}
	}()

	working := slot.game.Clone()
	if err = fn(working); err != nil {
		return slot.game.Clone(), err
	}

	slot.game = working

	return working.Clone(), nil
}

func (that *SessionStore) Count() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}

func (that *SessionStore) slot(id string) (*sessionSlot, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	slot, ok := that.sessions[id]
	return slot, ok
}
