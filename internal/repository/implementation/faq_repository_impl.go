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

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *FaqRepositoryImpl) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Faq, error) {
	var models []*model.Faq
	spec := specification.KeywordLike{
		Columns: []string{"question", "answer"},
		Keyword: keyword,
	}
	if err := spec.Apply(r.db.WithContext(ctx)).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FaqsToEntities(models), nil
}
