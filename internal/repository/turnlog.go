package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

const (
	turnLogKeyPrefix = "turnlog:"
	contentIDPrefix  = "sha256-"
)

// TurnLogStore is an append-only blob store for finished games' turn logs, addressed by content.
type TurnLogStore interface {
	Put(ctx context.Context, log []entity.TurnLogEntry) (string, error)
	Get(ctx context.Context, cid string) ([]entity.TurnLogEntry, error)
}

// ContentID returns the identifier of the encoded turn log.
func ContentID(blob []byte) string {
	sum := sha256.Sum256(blob)
	return contentIDPrefix + hex.EncodeToString(sum[:])
}

func encodeTurnLog(log []entity.TurnLogEntry) ([]byte, string, error) {
	if log == nil {
		log = []entity.TurnLogEntry{}
	}

	blob, err := json.Marshal(log)
	if err != nil {
		return nil, "", fmt.Errorf("could not marshal turn log: %w", err)
	}

	return blob, ContentID(blob), nil
}

func decodeTurnLog(blob []byte) ([]entity.TurnLogEntry, error) {
	var log []entity.TurnLogEntry
	if err := json.Unmarshal(blob, &log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turn log: %w", err)
	}

	return log, nil
}

type redisTurnLog struct {
	client *redis.Client
}

func NewRedisTurnLogStore(client *redis.Client) TurnLogStore {
	return &redisTurnLog{
		client: client,
	}
}

func (that *redisTurnLog) Put(ctx context.Context, log []entity.TurnLogEntry) (string, error) {
	blob, cid, err := encodeTurnLog(log)
	if err != nil {
		return "", err
	}

	// equal content maps to the same key, so an existing blob is left as is
	if err = that.client.SetNX(ctx, turnLogKeyPrefix+cid, blob, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to store turn log: %w", err)
	}

	return cid, nil
}

func (that *redisTurnLog) Get(ctx context.Context, cid string) ([]entity.TurnLogEntry, error) {
	blob, err := that.client.Get(ctx, turnLogKeyPrefix+cid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: turn log %s", apperror.ErrNotFound, cid)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get turn log: %w", err)
	}

	return decodeTurnLog(blob)
}

type memoryTurnLog struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryTurnLogStore is used when Redis is disabled.
func NewMemoryTurnLogStore() TurnLogStore {
	return &memoryTurnLog{
		blobs: make(map[string][]byte),
	}
}

func (that *memoryTurnLog) Put(_ context.Context, log []entity.TurnLogEntry) (string, error) {
	blob, cid, err := encodeTurnLog(log)
	if err != nil {
		return "", err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.blobs[cid]; !ok {
		that.blobs[cid] = blob
	}

	return cid, nil
}

func (that *memoryTurnLog) Get(_ context.Context, cid string) ([]entity.TurnLogEntry, error) {
	that.mu.RLock()
	blob, ok := that.blobs[cid]
	that.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: turn log %s", apperror.ErrNotFound, cid)
	}

	return decodeTurnLog(blob)
}
