package service

import (
	"context"
	"strings"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
)

// IIntentService classifies a normalized user message. Keywords are checked
// first in fixed priority order; the model is only consulted when no keyword
// matches.
type IIntentService interface {
	DetermineIntent(ctx context.Context, message string) entity.Intent
}

type intentService struct {
	nlpService INlpService
	logger     logger.ILogger
}

func NewIntentService(nlpService INlpService, log logger.ILogger) IIntentService {
	return &intentService{
		nlpService: nlpService,
		logger:     log,
	}
}

// Keyword groups in priority order. Greeting wins over contact, contact over
// consult, and so on, regardless of where the keyword sits in the message.
var greetingKeywords = []string{
	"salam", "salamlar", "sabah", "sabahınız xeyir", "axşamınız xeyir",
	"gün aydın", "hello", "hi", "hey",
}

var contactKeywords = []string{
	"əlaqə", "zəng", "telefon", "contact", "müraciət", "əməkdaş", "yazın", "email",
}

var consultKeywords = []string{
	"öyrənmək istəyirəm", "təlim seç", "kurs seç", "öyrənmək",
	"məsləhət", "konsultasiya", "tövsiyə", "başlamaq istəyirəm",
}

var trainerKeywords = []string{
	"təlimçi", "müəllim", "trainer", "kim tədris edir", "kim öyrədir",
}

var queryKeywords = []string{
	"nə qədər", "qiymət", "haqqında", "müddət", "nə vaxt", "tələb",
	"sertifikat", "bootcamp",
}

func (s *intentService) DetermineIntent(ctx context.Context, message string) entity.Intent {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return entity.IntentUnclear
	}

	if containsAny(lower, greetingKeywords) {
		return entity.IntentGreeting
	}
	if containsAny(lower, contactKeywords) {
		return entity.IntentContact
	}
	if containsAny(lower, consultKeywords) {
		return entity.IntentConsult
	}
	if containsAny(lower, trainerKeywords) {
		return entity.IntentTrainer
	}
	if containsAny(lower, queryKeywords) {
		return entity.IntentQuery
	}

	s.logger.Debug("IntentService", "No keyword match, falling back to model", nil)
	return s.nlpService.DetectIntent(ctx, message)
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}
