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

type GraduateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewGraduateRepository(db *gorm.DB) contract.GraduateRepository {
	return &GraduateRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *GraduateRepositoryImpl) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Graduate, error) {
	var models []*model.Graduate
	spec := specification.KeywordLike{
		Columns: []string{"name", "work_position", "work_location"},
		Keyword: keyword,
	}
	if err := spec.Apply(r.db.WithContext(ctx)).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.GraduatesToEntities(models), nil
}

func (r *GraduateRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Graduate, error) {
	var models []*model.Graduate
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.GraduatesToEntities(models), nil
}

func (r *GraduateRepositoryImpl) FindRandom(ctx context.Context, count int) ([]*entity.Graduate, error) {
	var models []*model.Graduate
	if err := r.db.WithContext(ctx).Order("RANDOM()").Limit(count).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.GraduatesToEntities(models), nil
}
