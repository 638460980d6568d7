package implementation

import (
	"context"
	"errors"
	"time"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/mapper"
	"academy-chatbot-be/internal/model"
	"academy-chatbot-be/internal/repository/contract"
	"academy-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChatSessionStoreImpl keeps sessions in the chat_sessions table. Expiry is
// enforced on read and reclaimed in bulk by SweepExpired.
type ChatSessionStoreImpl struct {
	db      *gorm.DB
	mapper  *mapper.SessionMapper
	timeout time.Duration
}

func NewChatSessionStore(db *gorm.DB, timeout time.Duration) contract.SessionStore {
	return &ChatSessionStoreImpl{
		db:      db,
		mapper:  mapper.NewSessionMapper(),
		timeout: timeout,
	}
}

func (r *ChatSessionStoreImpl) GetOrCreate(ctx context.Context, id string) (*entity.Session, error) {
	session, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session = entity.NewSession(id)
	session.ExpiresAt = time.Now().Add(r.timeout)
	if err := r.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *ChatSessionStoreImpl) Get(ctx context.Context, id string) (*entity.Session, error) {
	var m model.ChatSession
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	session := r.mapper.ToEntity(&m)
	if session.IsExpired(time.Now()) {
		if err := r.Delete(ctx, id); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return session, nil
}

func (r *ChatSessionStoreImpl) Save(ctx context.Context, session *entity.Session) error {
	session.ExpiresAt = time.Now().Add(r.timeout)

	m, err := r.mapper.ToModel(session)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
}

func (r *ChatSessionStoreImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ChatSession{}, "id = ?", id).Error
}

func (r *ChatSessionStoreImpl) Exists(ctx context.Context, id string) (bool, error) {
	session, err := r.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

func (r *ChatSessionStoreImpl) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	spec := specification.ExpiredBefore{Now: now}
	result := spec.Apply(r.db.WithContext(ctx)).Delete(&model.ChatSession{})
	return result.RowsAffected, result.Error
}

func (r *ChatSessionStoreImpl) ResetRateCounters(ctx context.Context, before time.Time) (int64, error) {
	spec := specification.RateWindowRolled{Before: before}
	result := spec.Apply(r.db.WithContext(ctx).Model(&model.ChatSession{})).Update("message_count", 0)
	return result.RowsAffected, result.Error
}

func (r *ChatSessionStoreImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChatSession{}).Count(&count).Error
	return count, err
}
