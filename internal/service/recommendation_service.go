package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"academy-chatbot-be/internal/constant"
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/internal/repository/contract"
	"academy-chatbot-be/pkg/catalog"
)

// Recommendation is a single scored training suggestion. Score is a 0-100
// match percentage shown to the user.
type Recommendation struct {
	Title       string
	Description string
	Price       *int
	Score       float64
}

// IRecommendationService scores active trainings against the consultation
// profile and renders the top suggestions.
type IRecommendationService interface {
	Recommendations(ctx context.Context, profile entity.RecommendationProfile) ([]*Recommendation, error)
	FormatRecommendations(recommendations []*Recommendation) string
}

type recommendationService struct {
	trainingRepo contract.TrainingRepository
	catalog      *catalog.Catalog
	logger       logger.ILogger
}

func NewRecommendationService(trainingRepo contract.TrainingRepository, cat *catalog.Catalog, log logger.ILogger) IRecommendationService {
	return &recommendationService{
		trainingRepo: trainingRepo,
		catalog:      cat,
		logger:       log,
	}
}

const (
	experienceBeginner     = "beginner"
	experienceIntermediate = "intermediate"
	experienceAdvanced     = "advanced"
)

// interestKeywords maps a stated interest onto a training category. These
// lists are looser than the search-side ones: consultation answers are short
// and informal.
var interestKeywords = []struct {
	category string
	keywords []string
}{
	{"Data Analytics", []string{"analytics", "analitika", "tableau", "power bi", "excel", "data"}},
	{"Machine Learning", []string{"machine", "ml", "maşın", "python", "r"}},
	{"Deep Learning", []string{"deep", "ai", "süni", "neural", "nlp"}},
	{"Data Engineering", []string{"sql", "databaza", "database", "mühəndislik"}},
	{"Programming", []string{"proqramlaşdırma", "kod", "python", "django"}},
}

var firstNumberPattern = regexp.MustCompile(`\d+`)

func (s *recommendationService) Recommendations(ctx context.Context, profile entity.RecommendationProfile) ([]*Recommendation, error) {
	trainings, err := s.trainingRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	level := parseExperienceLevel(profile.Experience)
	budget := parseBudget(profile.Budget)
	interest := strings.ToLower(profile.Interest)

	var recommendations []*Recommendation
	for _, training := range trainings {
		text, err := s.catalog.TextForTraining(ctx, training)
		if err != nil {
			s.logger.Warn("RecommendationService", "Failed to load course text", map[string]interface{}{
				"training_id": training.Id, "error": err.Error(),
			})
		}

		// Only trainings with a detail record are scorable.
		if text == nil {
			continue
		}

		rec := &Recommendation{
			Title:       training.Title,
			Description: text.Description,
			Price:       text.Price,
		}
		rec.Score = scoreTraining(rec, interest, level, budget)
		recommendations = append(recommendations, rec)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}
	return recommendations, nil
}

func scoreTraining(rec *Recommendation, interest, level string, budget *int) float64 {
	score := 0.0
	haystack := strings.ToLower(rec.Title + " " + rec.Description)
	titleLower := strings.ToLower(rec.Title)

	if interest != "" {
		for _, entry := range interestKeywords {
			if !keywordsMatch(interest, entry.keywords) {
				continue
			}
			if keywordsMatch(haystack, entry.keywords) {
				score += 40
			}
			break
		}
	}

	switch level {
	case experienceBeginner:
		if containsAny(titleLower, []string{"excel", "sql", "python"}) {
			score += 30
		}
	case experienceAdvanced:
		if containsAny(titleLower, []string{"machine", "deep", "nlp"}) {
			score += 30
		}
	default:
		score += 15
	}

	if budget != nil && rec.Price != nil {
		if *rec.Price <= *budget {
			score += 30
		} else {
			penalty := float64(*rec.Price-*budget) / 50
			if penalty > 20 {
				penalty = 20
			}
			score -= penalty
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func keywordsMatch(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func parseExperienceLevel(experience string) string {
	lower := strings.ToLower(strings.TrimSpace(experience))
	if lower == "" || containsAny(lower, []string{"yoxdur", "başlanğıc", "yeni", "bilmirəm"}) {
		return experienceBeginner
	}
	if containsAny(lower, []string{"yüksək", "professional", "təcrübəli", "işləmişəm"}) {
		return experienceAdvanced
	}
	return experienceIntermediate
}

func parseBudget(budget string) *int {
	match := firstNumberPattern.FindString(budget)
	if match == "" {
		return nil
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &value
}

func (s *recommendationService) FormatRecommendations(recommendations []*Recommendation) string {
	if len(recommendations) == 0 {
		return constant.ReplyNoRecommendations
	}

	var sb strings.Builder
	sb.WriteString("✅ Sizə uyğun təlimlər:\n\n")
	for i, rec := range recommendations {
		sb.WriteString(fmt.Sprintf("📚 **%d. %s**\n", i+1, rec.Title))
		sb.WriteString(fmt.Sprintf("   Uyğunluq: %.0f%%\n", rec.Score))
		if rec.Price != nil {
			sb.WriteString(fmt.Sprintf("   💰 Qiymət: %d AZN\n", *rec.Price))
		}
		if rec.Description != "" {
			desc := rec.Description
			if len([]rune(desc)) > 100 {
				desc = string([]rune(desc)[:100]) + "..."
			}
			sb.WriteString(fmt.Sprintf("   📝 %s\n", desc))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("🔍 Konkret təlim haqqında ətraflı məlumat üçün adını yaza bilərsiniz.\n")
	sb.WriteString("📞 Qeydiyyat: 051 341 43 40")
	return sb.String()
}
