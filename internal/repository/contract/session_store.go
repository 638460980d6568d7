package contract

import (
	"context"
	"time"

	"academy-chatbot-be/internal/entity"
)

// SessionStore owns persistence and expiry of per-user conversation state.
// Implementations: gorm (durable), redis (durable, TTL-based expiry) and
// go-cache (in-process, tests and single node).
type SessionStore interface {
	// GetOrCreate returns the stored session, replacing it with a fresh one
	// when the stored copy has expired.
	GetOrCreate(ctx context.Context, id string) (*entity.Session, error)

	// Get returns nil when the session is absent or expired.
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Save persists the session and refreshes its expiry window.
	Save(ctx context.Context, session *entity.Session) error

	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)

	// SweepExpired bulk-deletes sessions whose expiry has passed. Zero
	// removals is a normal outcome.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)

	// ResetRateCounters zeroes the message counter of sessions whose last
	// message predates before. Returns how many sessions were reset.
	ResetRateCounters(ctx context.Context, before time.Time) (int64, error)

	Count(ctx context.Context) (int64, error)
}
