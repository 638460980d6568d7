package service

import (
	"context"
	"fmt"
	"strings"

	"academy-chatbot-be/internal/config"
	"academy-chatbot-be/internal/constant"
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/pkg/ai"
)

// INlpService is the thin language layer over the chat-completion provider.
// Every method degrades gracefully: a provider failure never breaks the
// dialogue, the caller just works with the unprocessed text.
type INlpService interface {
	// Normalize fixes spelling and grammar without changing meaning. On any
	// provider error the original text is returned.
	Normalize(ctx context.Context, text string) string

	// DetectIntent classifies a message into one of the six intents. On any
	// provider error it returns unclear.
	DetectIntent(ctx context.Context, message string) entity.Intent

	// FormatResponse turns raw knowledge-base facts into a natural reply. On
	// any provider error the raw data is returned as-is.
	FormatResponse(ctx context.Context, userQuestion, rawData string) string

	// IsAmbiguous reports whether a message is too vague to act on. Pure
	// heuristic, no model call.
	IsAmbiguous(message string) bool
}

type nlpService struct {
	provider    ai.Provider
	logger      logger.ILogger
	maxTokens   int
	temperature float64
}

func NewNlpService(provider ai.Provider, log logger.ILogger, cfg *config.Config) INlpService {
	return &nlpService{
		provider:    provider,
		logger:      log,
		maxTokens:   cfg.Ai.MaxTokens,
		temperature: cfg.Ai.Temperature,
	}
}

func (s *nlpService) Normalize(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(constant.NormalizePromptTemplate, text)

	normalized, err := s.provider.Generate(ctx, prompt,
		ai.WithMaxTokens(100),
		ai.WithTemperature(0.1),
	)
	if err != nil {
		s.logger.Warn("NlpService", "Normalization failed, using original text", map[string]interface{}{
			"error": err.Error(),
		})
		return text
	}

	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return text
	}
	return normalized
}

func (s *nlpService) DetectIntent(ctx context.Context, message string) entity.Intent {
	prompt := fmt.Sprintf(constant.IntentPromptTemplate, message)

	raw, err := s.provider.Generate(ctx, prompt,
		ai.WithMaxTokens(20),
		ai.WithTemperature(0.2),
	)
	if err != nil {
		s.logger.Warn("NlpService", "Intent detection failed", map[string]interface{}{
			"error": err.Error(),
		})
		return entity.IntentUnclear
	}

	label := strings.ToLower(strings.TrimSpace(raw))
	return entity.IntentFromString(label)
}

func (s *nlpService) FormatResponse(ctx context.Context, userQuestion, rawData string) string {
	if strings.TrimSpace(rawData) == "" {
		return "Üzr istəyirik, məlumat tapılmadı."
	}

	prompt := fmt.Sprintf(constant.FormatPromptTemplate, constant.SystemPrompt, userQuestion, rawData)

	formatted, err := s.provider.Generate(ctx, prompt,
		ai.WithMaxTokens(s.maxTokens),
		ai.WithTemperature(s.temperature),
	)
	if err != nil {
		s.logger.Warn("NlpService", "Response formatting failed, returning raw data", map[string]interface{}{
			"error": err.Error(),
		})
		return rawData
	}

	formatted = strings.TrimSpace(formatted)
	if formatted == "" {
		return rawData
	}
	return formatted
}

var vaguePatterns = []string{"məlumat", "haqqında", "bilmək", "nədir", "necədir"}

var specificTerms = []string{"python", "sql", "machine learning", "data"}

func (s *nlpService) IsAmbiguous(message string) bool {
	message = strings.ToLower(strings.TrimSpace(message))
	if message == "" {
		return true
	}

	words := strings.Fields(message)
	if len(words) < 2 {
		return true
	}

	vagueCount := 0
	for _, p := range vaguePatterns {
		if strings.Contains(message, p) {
			vagueCount++
		}
	}
	if vagueCount < 2 {
		return false
	}

	for _, term := range specificTerms {
		if strings.Contains(message, term) {
			return false
		}
	}
	return true
}
