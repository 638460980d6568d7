package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chat:session:"

// SessionStoreRedis keeps sessions as JSON values with a server-side TTL.
// Redis reclaims expired keys on its own, so SweepExpired has nothing to do.
type SessionStoreRedis struct {
	client  *redis.Client
	timeout time.Duration
}

func NewSessionStore(client *redis.Client, timeout time.Duration) contract.SessionStore {
	return &SessionStoreRedis{
		client:  client,
		timeout: timeout,
	}
}

func (r *SessionStoreRedis) key(id string) string {
	return keyPrefix + id
}

func (r *SessionStoreRedis) GetOrCreate(ctx context.Context, id string) (*entity.Session, error) {
	session, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session = entity.NewSession(id)
	if err := r.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *SessionStoreRedis) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A corrupt value is unrecoverable, drop it.
		_ = r.client.Del(ctx, r.key(id)).Err()
		return nil, nil
	}
	if session.IsExpired(time.Now()) {
		_ = r.client.Del(ctx, r.key(id)).Err()
		return nil, nil
	}
	return &session, nil
}

func (r *SessionStoreRedis) Save(ctx context.Context, session *entity.Session) error {
	session.ExpiresAt = time.Now().Add(r.timeout)

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(session.Id), raw, r.timeout).Err(); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (r *SessionStoreRedis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func (r *SessionStoreRedis) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists session: %w", err)
	}
	return n > 0, nil
}

// SweepExpired is a no-op, key TTLs already handle reclamation.
func (r *SessionStoreRedis) SweepExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *SessionStoreRedis) ResetRateCounters(ctx context.Context, before time.Time) (int64, error) {
	var (
		cursor uint64
		reset  int64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return reset, fmt.Errorf("redis scan sessions: %w", err)
		}
		for _, key := range keys {
			raw, err := r.client.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				return reset, fmt.Errorf("redis get session: %w", err)
			}

			var session entity.Session
			if err := json.Unmarshal(raw, &session); err != nil {
				continue
			}
			if session.MessageCount == 0 || session.LastMessageAt == nil || !session.LastMessageAt.Before(before) {
				continue
			}

			session.MessageCount = 0
			patched, err := json.Marshal(&session)
			if err != nil {
				return reset, fmt.Errorf("marshal session: %w", err)
			}
			// KeepTTL leaves the expiry window untouched.
			if err := r.client.Set(ctx, key, patched, redis.KeepTTL).Err(); err != nil {
				return reset, fmt.Errorf("redis save session: %w", err)
			}
			reset++
		}
		cursor = next
		if cursor == 0 {
			return reset, nil
		}
	}
}

func (r *SessionStoreRedis) Count(ctx context.Context) (int64, error) {
	var (
		cursor uint64
		total  int64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("redis scan sessions: %w", err)
		}
		total += int64(len(keys))
		cursor = next
		if cursor == 0 {
			return total, nil
		}
	}
}
