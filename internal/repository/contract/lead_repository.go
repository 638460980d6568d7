package contract

import (
	"context"
	"time"

	"academy-chatbot-be/internal/entity"
)

type LeadRepository interface {
	// Create persists the lead and returns it with the assigned id. The
	// unique index on phone is the source of truth for duplicates;
	// ExistsByPhone is only the fast pre-check.
	Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
