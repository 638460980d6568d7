package implementation

import (
	"context"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/mapper"
	"academy-chatbot-be/internal/model"
	"academy-chatbot-be/internal/repository/contract"
	"academy-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TrainerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewTrainerRepository(db *gorm.DB) contract.TrainerRepository {
	return &TrainerRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *TrainerRepositoryImpl) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Trainer, error) {
	var models []*model.Trainer
	spec := specification.KeywordLike{
		Columns: []string{"name", "position", "bio"},
		Keyword: keyword,
	}
	if err := spec.Apply(r.db.WithContext(ctx)).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TrainersToEntities(models), nil
}

func (r *TrainerRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Trainer, error) {
	var models []*model.Trainer
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TrainersToEntities(models), nil
}
