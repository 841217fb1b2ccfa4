package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Snapshot keys. Each holds one whole-value JSON document per shopper session.
const (
	CartSnapshot     = "cart"
	BoxesSnapshot    = "custom-boxes"
	DraftSnapshot    = "box-draft"
	LanguageSnapshot = "language"
)

func SessionKey(snapshot, sessionID string) string {
	return snapshot + ":" + sessionID
}

// SessionRepository stores shopper snapshots. Load returns (nil, nil) when
// nothing was saved yet.
type SessionRepository interface {
	Load(ctx context.Context, snapshot, sessionID string) ([]byte, error)
	Save(ctx context.Context, snapshot, sessionID string, data []byte) error
	Delete(ctx context.Context, snapshot, sessionID string) error
}

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepo(client *redis.Client, ttl time.Duration) SessionRepository {
	return &sessionRepository{client: client, ttl: ttl}
}

func (r *sessionRepository) Load(ctx context.Context, snapshot, sessionID string) ([]byte, error) {
	key := SessionKey(snapshot, sessionID)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	return data, nil
}

func (r *sessionRepository) Save(ctx context.Context, snapshot, sessionID string, data []byte) error {
	key := SessionKey(snapshot, sessionID)

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, snapshot, sessionID string) error {
	key := SessionKey(snapshot, sessionID)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}
