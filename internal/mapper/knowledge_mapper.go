package mapper

import (
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) FaqToEntity(f *model.Faq) *entity.Faq {
	return &entity.Faq{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		CreatedAt: f.CreatedAt,
	}
}

func (m *KnowledgeMapper) FaqsToEntities(models []*model.Faq) []*entity.Faq {
	entities := make([]*entity.Faq, len(models))
	for i, f := range models {
		entities[i] = m.FaqToEntity(f)
	}
	return entities
}

func (m *KnowledgeMapper) CourseTextToEntity(t *model.CourseText) *entity.CourseText {
	return &entity.CourseText{
		Id:           t.Id,
		Title:        t.Title,
		Description:  t.Description,
		Information:  t.Information,
		Price:        t.Price,
		ForWho:       t.ForWho,
		Certificates: t.Certificates,
		TrainingId:   t.TrainingId,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *KnowledgeMapper) CourseTextsToEntities(models []*model.CourseText) []*entity.CourseText {
	entities := make([]*entity.CourseText, len(models))
	for i, t := range models {
		entities[i] = m.CourseTextToEntity(t)
	}
	return entities
}

func (m *KnowledgeMapper) TrainingToEntity(t *model.Training) *entity.Training {
	return &entity.Training{
		Id:             t.Id,
		Title:          t.Title,
		IsActive:       t.IsActive,
		OrderIndex:     t.OrderIndex,
		BootcampTypeId: t.BootcampTypeId,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *KnowledgeMapper) TrainingsToEntities(models []*model.Training) []*entity.Training {
	entities := make([]*entity.Training, len(models))
	for i, t := range models {
		entities[i] = m.TrainingToEntity(t)
	}
	return entities
}

func (m *KnowledgeMapper) TrainerToEntity(t *model.Trainer) *entity.Trainer {
	return &entity.Trainer{
		Id:        t.Id,
		Name:      t.Name,
		Position:  t.Position,
		Location:  t.Location,
		Bio:       t.Bio,
		CreatedAt: t.CreatedAt,
	}
}

func (m *KnowledgeMapper) TrainersToEntities(models []*model.Trainer) []*entity.Trainer {
	entities := make([]*entity.Trainer, len(models))
	for i, t := range models {
		entities[i] = m.TrainerToEntity(t)
	}
	return entities
}

func (m *KnowledgeMapper) GraduateToEntity(g *model.Graduate) *entity.Graduate {
	return &entity.Graduate{
		Id:           g.Id,
		Name:         g.Name,
		WorkPosition: g.WorkPosition,
		WorkLocation: g.WorkLocation,
		CreatedAt:    g.CreatedAt,
	}
}

func (m *KnowledgeMapper) GraduatesToEntities(models []*model.Graduate) []*entity.Graduate {
	entities := make([]*entity.Graduate, len(models))
	for i, g := range models {
		entities[i] = m.GraduateToEntity(g)
	}
	return entities
}
