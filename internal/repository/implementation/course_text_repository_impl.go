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

type CourseTextRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewCourseTextRepository(db *gorm.DB) contract.CourseTextRepository {
	return &CourseTextRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *CourseTextRepositoryImpl) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.CourseText, error) {
	var models []*model.CourseText
	spec := specification.KeywordLike{
		Columns: []string{"title", "description", "information"},
		Keyword: keyword,
	}
	if err := spec.Apply(r.db.WithContext(ctx)).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CourseTextsToEntities(models), nil
}

func (r *CourseTextRepositoryImpl) FindAll(ctx context.Context) ([]*entity.CourseText, error) {
	var models []*model.CourseText
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CourseTextsToEntities(models), nil
}

func (r *CourseTextRepositoryImpl) FindByTrainingId(ctx context.Context, trainingId int64) (*entity.CourseText, error) {
	var m model.CourseText
	spec := specification.ByTrainingId{TrainingId: trainingId}
	if err := spec.Apply(r.db.WithContext(ctx)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CourseTextToEntity(&m), nil
}
