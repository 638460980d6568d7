package mapper

import (
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	return &model.Lead{
		Id:        l.Id,
		FullName:  l.FullName,
		Phone:     l.Phone,
		Email:     l.Email,
		Message:   l.Message,
		Source:    l.Source,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	return &entity.Lead{
		Id:        l.Id,
		FullName:  l.FullName,
		Phone:     l.Phone,
		Email:     l.Email,
		Message:   l.Message,
		Source:    l.Source,
		CreatedAt: l.CreatedAt,
	}
}
