package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"academy-chatbot-be/internal/dto"
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/internal/repository/contract"
)

type ILeadService interface {
	// SaveLead persists a contact-flow submission. Empty email means the
	// user skipped it.
	SaveLead(ctx context.Context, fullName, phone, email, message string) (*entity.Lead, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	TodayLeadCount(ctx context.Context) (int64, error)
}

type leadService struct {
	repo             contract.LeadRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewLeadService(repo contract.LeadRepository, publisherService IPublisherService, log logger.ILogger) ILeadService {
	return &leadService{
		repo:             repo,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *leadService) SaveLead(ctx context.Context, fullName, phone, email, message string) (*entity.Lead, error) {
	s.logger.Info("LeadService", "Saving lead", map[string]interface{}{
		"phone": maskPhone(phone),
	})

	lead := &entity.Lead{
		FullName: fullName,
		Phone:    phone,
		Message:  message,
		Source:   entity.LeadSourceChatbot,
	}
	if email != "" {
		lead.Email = &email
	}

	saved, err := s.repo.Create(ctx, lead)
	if err != nil {
		s.logger.Error("LeadService", "Failed to save lead", map[string]interface{}{
			"phone": maskPhone(phone), "error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("LeadService", "Lead saved", map[string]interface{}{
		"lead_id": saved.Id,
	})

	// Notification delivery is auxiliary, a publish failure never fails the
	// user-facing flow.
	s.publishLeadCaptured(ctx, saved)

	return saved, nil
}

func (s *leadService) publishLeadCaptured(ctx context.Context, lead *entity.Lead) {
	if s.publisherService == nil {
		return
	}

	payload := dto.LeadCapturedMessage{
		LeadId:   lead.Id,
		FullName: lead.FullName,
		Phone:    lead.Phone,
		Message:  lead.Message,
		Source:   lead.Source,
	}
	if lead.Email != nil {
		payload.Email = *lead.Email
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("LeadService", "Failed to marshal lead event", map[string]interface{}{
			"lead_id": lead.Id, "error": err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, raw); err != nil {
		s.logger.Warn("LeadService", "Failed to publish lead event", map[string]interface{}{
			"lead_id": lead.Id, "error": err.Error(),
		})
	}
}

func (s *leadService) PhoneExists(ctx context.Context, phone string) (bool, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false, nil
	}
	return s.repo.ExistsByPhone(ctx, phone)
}

func (s *leadService) TodayLeadCount(ctx context.Context) (int64, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.CountSince(ctx, startOfDay)
}

func maskPhone(phone string) string {
	if len(phone) < 8 {
		return "****"
	}
	return phone[:4] + "****" + phone[len(phone)-2:]
}
