package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"academy-chatbot-be/internal/constant"
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/internal/repository/contract"
	"academy-chatbot-be/pkg/catalog"
	"academy-chatbot-be/pkg/fuzzy"
)

// ISearchService ranks knowledge-base content against free-form Azerbaijani
// queries. Scoring is purely lexical: keyword position, coverage and fuzzy
// similarity, no embeddings involved.
type ISearchService interface {
	ExtractKeywords(query string) []string
	CalculateRelevance(content, query string, keywords []string) float64

	SearchFAQ(ctx context.Context, query string) ([]*entity.SearchResult, error)
	SearchText(ctx context.Context, query string) ([]*entity.SearchResult, error)
	SearchTraining(ctx context.Context, query string) ([]*entity.SearchResult, error)
	SearchAll(ctx context.Context, query string, limit int) ([]*entity.SearchResult, error)

	// FuzzySearch retries a typo-corrected query and tops the result set up
	// with approximate training-title matches.
	FuzzySearch(ctx context.Context, query string, limit int) ([]*entity.SearchResult, error)

	SearchByPriceRange(ctx context.Context, minPrice, maxPrice *int) ([]*entity.SearchResult, error)
	SearchByCategory(ctx context.Context, category string) ([]*entity.SearchResult, error)
	SearchWithFilters(ctx context.Context, query string, filters entity.SearchFilters) ([]*entity.SearchResult, error)

	// SearchTrainingsDetailed enriches training hits with their linked course
	// text so the reply can show description and price.
	SearchTrainingsDetailed(ctx context.Context, query string) ([]*entity.SearchResult, error)
	PopularTrainings(ctx context.Context, limit int) ([]*entity.SearchResult, error)

	DetectCategory(query string) string
	DetectQueryType(query string) entity.QueryType

	BootcampStructure() string
	FormatPriceInfo(results []*entity.SearchResult) string
}

type searchService struct {
	faqRepo      contract.FaqRepository
	textRepo     contract.CourseTextRepository
	trainingRepo contract.TrainingRepository
	catalog      *catalog.Catalog
	logger       logger.ILogger
}

func NewSearchService(
	faqRepo contract.FaqRepository,
	textRepo contract.CourseTextRepository,
	trainingRepo contract.TrainingRepository,
	cat *catalog.Catalog,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		faqRepo:      faqRepo,
		textRepo:     textRepo,
		trainingRepo: trainingRepo,
		catalog:      cat,
		logger:       log,
	}
}

var stopWords = map[string]struct{}{
	"və": {}, "ilə": {}, "üçün": {}, "bir": {}, "bu": {}, "o": {},
	"ki": {}, "nə": {}, "necə": {}, "hansı": {}, "haqqında": {},
	"üzrə": {}, "kimi": {}, "da": {}, "də": {},
}

// categoryKeywords drives both category detection and category search. Order
// matters for detection: the first category with a matching keyword wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Data Analytics", []string{"analytics", "analitika", "tableau", "power bi", "excel", "sql", "spss"}},
	{"Machine Learning", []string{"machine learning", "ml", "maşın öyrənməsi", "python machine", "r machine"}},
	{"Deep Learning", []string{"deep learning", "neural", "nlp", "computer vision", "transformers", "ai"}},
	{"Data Engineering", []string{"engineering", "sql", "database", "databaza", "pl/sql", "t-sql", "warehouse"}},
	{"AI Development", []string{"frontend", "backend", "django", "react", "development", "n8n"}},
}

// popularTrainingIds are hand-picked flagship trainings shown when the user
// asks for a general list, in display order.
var popularTrainingIds = []int64{5, 4, 14, 8, 1}

func (s *searchService) ExtractKeywords(query string) []string {
	cleaned := strings.ToLower(query)
	replacer := strings.NewReplacer(".", " ", ",", " ", "!", " ", "?", " ", ";", " ", ":", " ")
	cleaned = replacer.Replace(cleaned)

	seen := make(map[string]struct{})
	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}

// CalculateRelevance scores content against the query. Exact phrase hits
// dominate, then per-keyword position, then fuzzy token matches, plus a
// coverage bonus for queries where most keywords land.
func (s *searchService) CalculateRelevance(content, query string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	contentLower := strings.ToLower(content)
	queryLower := strings.ToLower(strings.TrimSpace(query))

	score := 0.0
	if queryLower != "" && strings.Contains(contentLower, queryLower) {
		score += 15
	}

	contentWords := strings.Fields(contentLower)
	matched := 0
	for _, kw := range keywords {
		idx := strings.Index(contentLower, kw)
		if idx >= 0 {
			matched++
			switch {
			case idx == 0:
				score += 5
			case idx < 50:
				score += 3
			default:
				score += 1
			}
			continue
		}
		for _, word := range contentWords {
			if sim := fuzzy.Similarity(kw, word); sim >= 0.7 {
				matched++
				score += sim * 2
				break
			}
		}
	}

	score += float64(matched) / float64(len(keywords)) * 8
	if matched > 1 {
		score += float64(matched) * 2
	}
	if matched == len(keywords) {
		score += 5
	}
	return score
}

func (s *searchService) SearchFAQ(ctx context.Context, query string) ([]*entity.SearchResult, error) {
	keywords := s.ExtractKeywords(query)
	byId := make(map[int64]*entity.SearchResult)

	for _, kw := range keywords {
		faqs, err := s.faqRepo.SearchByKeyword(ctx, kw)
		if err != nil {
			return nil, err
		}
		for _, faq := range faqs {
			content := faq.Question + " " + faq.Answer
			score := s.CalculateRelevance(content, query, keywords)
			if existing, ok := byId[faq.Id]; ok && existing.Score >= score {
				continue
			}
			byId[faq.Id] = &entity.SearchResult{
				Source:  entity.SourceFAQ,
				Id:      faq.Id,
				Title:   faq.Question,
				Content: faq.Answer,
				Score:   score,
				Faq:     faq,
			}
		}
	}
	return sortedResults(byId), nil
}

func (s *searchService) SearchText(ctx context.Context, query string) ([]*entity.SearchResult, error) {
	keywords := s.ExtractKeywords(query)
	byId := make(map[int64]*entity.SearchResult)

	for _, kw := range keywords {
		texts, err := s.textRepo.SearchByKeyword(ctx, kw)
		if err != nil {
			return nil, err
		}
		for _, text := range texts {
			content := text.Title + " " + text.Description + " " + text.Information
			score := s.CalculateRelevance(content, query, keywords)
			if existing, ok := byId[text.Id]; ok && existing.Score >= score {
				continue
			}
			byId[text.Id] = &entity.SearchResult{
				Source:  entity.SourceText,
				Id:      text.Id,
				Title:   text.Title,
				Content: text.Description,
				Score:   score,
				Text:    text,
			}
		}
	}
	return sortedResults(byId), nil
}

func (s *searchService) SearchTraining(ctx context.Context, query string) ([]*entity.SearchResult, error) {
	// Typo corrections only widen the keyword set; relevance is still
	// scored against what the user actually typed.
	corrected := fuzzy.CorrectCommonTypos(query)
	keywords := s.ExtractKeywords(corrected)
	byId := make(map[int64]*entity.SearchResult)

	for _, kw := range keywords {
		trainings, err := s.trainingRepo.SearchByKeyword(ctx, kw)
		if err != nil {
			return nil, err
		}
		for _, training := range trainings {
			if !training.IsActive {
				continue
			}
			score := s.CalculateRelevance(training.Title, query, keywords)
			if strings.Contains(strings.ToLower(training.Title), kw) {
				score += 5
			}
			if existing, ok := byId[training.Id]; ok && existing.Score >= score {
				continue
			}
			byId[training.Id] = &entity.SearchResult{
				Source:   entity.SourceTraining,
				Id:       training.Id,
				Title:    training.Title,
				Content:  fmt.Sprintf("Təlim ID: %d", training.Id),
				Score:    score,
				Training: training,
			}
		}
	}
	return sortedResults(byId), nil
}

func (s *searchService) SearchAll(ctx context.Context, query string, limit int) ([]*entity.SearchResult, error) {
	faqResults, err := s.SearchFAQ(ctx, query)
	if err != nil {
		return nil, err
	}
	textResults, err := s.SearchText(ctx, query)
	if err != nil {
		return nil, err
	}
	trainingResults, err := s.SearchTraining(ctx, query)
	if err != nil {
		return nil, err
	}

	all := make([]*entity.SearchResult, 0, len(faqResults)+len(textResults)+len(trainingResults))
	all = append(all, faqResults...)
	all = append(all, textResults...)
	all = append(all, trainingResults...)

	sort.SliceStable(all, func(i, j int) bool { return all[i].Score > all[j].Score })
	return truncate(all, limit), nil
}

func (s *searchService) FuzzySearch(ctx context.Context, query string, limit int) ([]*entity.SearchResult, error) {
	corrected := fuzzy.CorrectCommonTypos(query)
	results, err := s.SearchAll(ctx, corrected, limit*2)
	if err != nil {
		return nil, err
	}

	if len(results) < limit {
		trainings, err := s.trainingRepo.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}

		existing := make(map[int64]struct{})
		for _, r := range results {
			if r.Source == entity.SourceTraining {
				existing[r.Id] = struct{}{}
			}
		}

		for _, kw := range s.ExtractKeywords(query) {
			for _, training := range trainings {
				if _, dup := existing[training.Id]; dup {
					continue
				}
				sim := fuzzy.Similarity(kw, strings.ToLower(training.Title))
				if sim < 0.6 {
					continue
				}
				existing[training.Id] = struct{}{}
				results = append(results, &entity.SearchResult{
					Source:   entity.SourceTraining,
					Id:       training.Id,
					Title:    training.Title,
					Content:  "Fuzzy match",
					Score:    sim * 10,
					Training: training,
				})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return truncate(results, limit), nil
}

func (s *searchService) SearchByPriceRange(ctx context.Context, minPrice, maxPrice *int) ([]*entity.SearchResult, error) {
	texts, err := s.textRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var results []*entity.SearchResult
	for _, text := range texts {
		if text.Price == nil {
			continue
		}
		if minPrice != nil && *text.Price < *minPrice {
			continue
		}
		if maxPrice != nil && *text.Price > *maxPrice {
			continue
		}
		results = append(results, &entity.SearchResult{
			Source:  entity.SourceText,
			Id:      text.Id,
			Title:   text.Title,
			Content: fmt.Sprintf("Qiymət: %d AZN", *text.Price),
			Score:   5.0,
			Text:    text,
		})
	}
	return results, nil
}

func (s *searchService) SearchByCategory(ctx context.Context, category string) ([]*entity.SearchResult, error) {
	keywords := []string{category}
	for _, entry := range categoryKeywords {
		if entry.category == category {
			keywords = entry.keywords
			break
		}
	}

	seen := make(map[string]struct{})
	var results []*entity.SearchResult
	for _, kw := range keywords {
		hits, err := s.SearchAll(ctx, kw, 20)
		if err != nil {
			return nil, err
		}
		for _, hit := range hits {
			key := fmt.Sprintf("%s:%d", hit.Source, hit.Id)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, hit)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results, nil
}

func (s *searchService) SearchWithFilters(ctx context.Context, query string, filters entity.SearchFilters) ([]*entity.SearchResult, error) {
	var results []*entity.SearchResult
	var err error

	switch filters.Source {
	case entity.SourceFAQ:
		results, err = s.SearchFAQ(ctx, query)
	case entity.SourceText:
		results, err = s.SearchText(ctx, query)
	case entity.SourceTraining:
		results, err = s.SearchTraining(ctx, query)
	default:
		results, err = s.SearchAll(ctx, query, 50)
	}
	if err != nil {
		return nil, err
	}
	return s.applyFilters(results, filters), nil
}

func (s *searchService) applyFilters(results []*entity.SearchResult, filters entity.SearchFilters) []*entity.SearchResult {
	var categoryWords []string
	if filters.Category != "" {
		categoryWords = []string{strings.ToLower(filters.Category)}
		for _, entry := range categoryKeywords {
			if entry.category == filters.Category {
				categoryWords = entry.keywords
				break
			}
		}
	}

	filtered := results[:0:0]
	for _, r := range results {
		if filters.ActiveOnly && r.Source == entity.SourceTraining &&
			r.Training != nil && !r.Training.IsActive {
			continue
		}
		// Price bounds only apply to priced texts; unpriced entries pass.
		if r.Source == entity.SourceText && r.Text != nil && r.Text.Price != nil {
			if filters.MinPrice != nil && *r.Text.Price < *filters.MinPrice {
				continue
			}
			if filters.MaxPrice != nil && *r.Text.Price > *filters.MaxPrice {
				continue
			}
		}
		if len(categoryWords) > 0 {
			title := strings.ToLower(r.Title)
			hit := false
			for _, w := range categoryWords {
				if strings.Contains(title, w) {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func (s *searchService) SearchTrainingsDetailed(ctx context.Context, query string) ([]*entity.SearchResult, error) {
	results, err := s.SearchTraining(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		text, err := s.catalog.TextForTrainingId(ctx, r.Id)
		if err != nil {
			s.logger.Warn("SearchService", "Failed to enrich training", map[string]interface{}{
				"training_id": r.Id, "error": err.Error(),
			})
			continue
		}
		if text == nil {
			continue
		}
		r.Text = text
		content := text.Description
		if text.Price != nil {
			content += fmt.Sprintf("\nQiymət: %d AZN", *text.Price)
		}
		r.Content = content
	}
	return results, nil
}

func (s *searchService) PopularTrainings(ctx context.Context, limit int) ([]*entity.SearchResult, error) {
	trainings, err := s.trainingRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	byId := make(map[int64]*entity.Training, len(trainings))
	for _, t := range trainings {
		byId[t.Id] = t
	}

	var results []*entity.SearchResult
	picked := make(map[int64]struct{})
	for i, id := range popularTrainingIds {
		training, ok := byId[id]
		if !ok {
			continue
		}
		picked[id] = struct{}{}
		results = append(results, s.popularResult(ctx, training, 10.0-float64(i)))
	}

	for _, training := range trainings {
		if len(results) >= limit {
			break
		}
		if _, dup := picked[training.Id]; dup {
			continue
		}
		results = append(results, s.popularResult(ctx, training, 5.0))
	}
	return truncate(results, limit), nil
}

func (s *searchService) popularResult(ctx context.Context, training *entity.Training, score float64) *entity.SearchResult {
	result := &entity.SearchResult{
		Source:   entity.SourceTraining,
		Id:       training.Id,
		Title:    training.Title,
		Content:  fmt.Sprintf("Təlim ID: %d", training.Id),
		Score:    score,
		Training: training,
	}
	if text, err := s.catalog.TextForTrainingId(ctx, training.Id); err == nil && text != nil {
		result.Text = text
		result.Content = text.Description
	}
	return result
}

func (s *searchService) DetectCategory(query string) string {
	lower := strings.ToLower(query)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return ""
}

func (s *searchService) DetectQueryType(query string) entity.QueryType {
	lower := strings.ToLower(query)
	switch {
	case containsAny(lower, []string{"təlimçi", "müəllim", "trainer", "kim tədris"}):
		return entity.QueryTypeTrainer
	case containsAny(lower, []string{"məzun", "graduate", "uğur", "iş tapmış"}):
		return entity.QueryTypeGraduate
	case containsAny(lower, []string{"bootcamp", "struktur", "necə işləyir", "proqram"}):
		return entity.QueryTypeBootcamp
	case containsAny(lower, []string{"qiymət", "nə qədər", "pul", "azn", "manat"}):
		return entity.QueryTypePrice
	case containsAny(lower, []string{"tarix", "vaxt", "nə vaxt", "başlayır", "cədvəl", "saat"}):
		return entity.QueryTypeSchedule
	default:
		return entity.QueryTypeTraining
	}
}

func (s *searchService) BootcampStructure() string {
	return constant.ReplyBootcampStructure
}

func (s *searchService) FormatPriceInfo(results []*entity.SearchResult) string {
	if len(results) == 0 {
		return constant.ReplyPriceFallback
	}

	var sb strings.Builder
	sb.WriteString("💰 **Təlim qiymətləri:**\n\n")
	for i, r := range results {
		if i >= 10 {
			break
		}
		sb.WriteString(fmt.Sprintf("📚 **%s**\n", r.Title))
		if r.Text != nil && r.Text.Price != nil {
			sb.WriteString(fmt.Sprintf("   💰 %d AZN\n\n", *r.Text.Price))
		} else {
			sb.WriteString("   💰 Qiymət üçün əlaqə saxlayın\n\n")
		}
	}
	sb.WriteString("📞 Qeydiyyat: 051 341 43 40")
	return sb.String()
}

func sortedResults(byId map[int64]*entity.SearchResult) []*entity.SearchResult {
	results := make([]*entity.SearchResult, 0, len(byId))
	for _, r := range byId {
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

func truncate(results []*entity.SearchResult, limit int) []*entity.SearchResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
