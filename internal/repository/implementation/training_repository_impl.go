package implementation

import (
	"context"
	"errors"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/mapper"
	"academy-chatbot-be/internal/model"
	"academy-chatbot-be/internal/repository/contract"
	"academy-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TrainingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewTrainingRepository(db *gorm.DB) contract.TrainingRepository {
	return &TrainingRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *TrainingRepositoryImpl) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Training, error) {
	var models []*model.Training
	spec := specification.KeywordLike{
		Columns: []string{"title"},
		Keyword: keyword,
	}
	if err := spec.Apply(r.db.WithContext(ctx)).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TrainingsToEntities(models), nil
}

func (r *TrainingRepositoryImpl) FindAllActive(ctx context.Context) ([]*entity.Training, error) {
	var models []*model.Training
	query := r.db.WithContext(ctx)
	query = specification.ActiveOnly{}.Apply(query)
	query = specification.OrderByIndex{}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TrainingsToEntities(models), nil
}

func (r *TrainingRepositoryImpl) FindById(ctx context.Context, id int64) (*entity.Training, error) {
	var m model.Training
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TrainingToEntity(&m), nil
}
