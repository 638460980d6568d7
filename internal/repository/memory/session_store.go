package memory

import (
	"context"
	"time"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionStoreMemory is the in-process backend. Suitable for a single node
// and for tests; nothing survives a restart.
type SessionStoreMemory struct {
	cache   *cache.Cache
	timeout time.Duration
}

func NewSessionStore(timeout time.Duration) contract.SessionStore {
	return &SessionStoreMemory{
		cache:   cache.New(timeout, timeout/2),
		timeout: timeout,
	}
}

func (r *SessionStoreMemory) GetOrCreate(ctx context.Context, id string) (*entity.Session, error) {
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

func (r *SessionStoreMemory) Get(_ context.Context, id string) (*entity.Session, error) {
	item, found := r.cache.Get(id)
	if !found {
		return nil, nil
	}
	session, ok := item.(*entity.Session)
	if !ok {
		r.cache.Delete(id)
		return nil, nil
	}
	if session.IsExpired(time.Now()) {
		r.cache.Delete(id)
		return nil, nil
	}
	return session, nil
}

func (r *SessionStoreMemory) Save(_ context.Context, session *entity.Session) error {
	session.ExpiresAt = time.Now().Add(r.timeout)
	r.cache.Set(session.Id, session, r.timeout)
	return nil
}

func (r *SessionStoreMemory) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

func (r *SessionStoreMemory) Exists(ctx context.Context, id string) (bool, error) {
	session, err := r.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

func (r *SessionStoreMemory) SweepExpired(_ context.Context, _ time.Time) (int64, error) {
	before := r.cache.ItemCount()
	r.cache.DeleteExpired()
	removed := before - r.cache.ItemCount()
	if removed < 0 {
		removed = 0
	}
	return int64(removed), nil
}

func (r *SessionStoreMemory) ResetRateCounters(_ context.Context, before time.Time) (int64, error) {
	var reset int64
	for _, item := range r.cache.Items() {
		session, ok := item.Object.(*entity.Session)
		if !ok {
			continue
		}
		if session.MessageCount == 0 || session.LastMessageAt == nil || !session.LastMessageAt.Before(before) {
			continue
		}
		// Sessions are held by pointer, mutate in place.
		session.MessageCount = 0
		reset++
	}
	return reset, nil
}

func (r *SessionStoreMemory) Count(_ context.Context) (int64, error) {
	return int64(r.cache.ItemCount()), nil
}
