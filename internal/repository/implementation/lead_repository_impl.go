package implementation

import (
	"context"
	"time"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/mapper"
	"academy-chatbot-be/internal/model"
	"academy-chatbot-be/internal/repository/contract"
	"academy-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LeadRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LeadMapper
}

func NewLeadRepository(db *gorm.DB) contract.LeadRepository {
	return &LeadRepositoryImpl{
		db:     db,
		mapper: mapper.NewLeadMapper(),
	}
}

func (r *LeadRepositoryImpl) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	m := r.mapper.ToModel(lead)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *LeadRepositoryImpl) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	spec := specification.ByPhone{Phone: phone}
	if err := spec.Apply(r.db.WithContext(ctx).Model(&model.Lead{})).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LeadRepositoryImpl) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	spec := specification.CreatedSince{Since: since}
	if err := spec.Apply(r.db.WithContext(ctx).Model(&model.Lead{})).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
