package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"academy-chatbot-be/internal/constant"
	"academy-chatbot-be/internal/dto"
	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/pkg/catalog"
)

// IChatService is the dialogue engine. One turn in, one reply out; all flow
// state lives in the session.
type IChatService interface {
	ProcessMessage(ctx context.Context, sessionId, message string) (*dto.SendChatResponse, error)
	ResetSession(ctx context.Context, sessionId string) error
	Stats(ctx context.Context) (*dto.SessionStatsResponse, error)
}

type chatService struct {
	sessionService        ISessionService
	intentService         IIntentService
	nlpService            INlpService
	searchService         ISearchService
	recommendationService IRecommendationService
	trainerService        ITrainerService
	graduateService       IGraduateService
	leadService           ILeadService
	catalog               *catalog.Catalog
	logger                logger.ILogger

	// Turns on the same session are serialized; different sessions run
	// concurrently.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewChatService(
	sessionService ISessionService,
	intentService IIntentService,
	nlpService INlpService,
	searchService ISearchService,
	recommendationService IRecommendationService,
	trainerService ITrainerService,
	graduateService IGraduateService,
	leadService ILeadService,
	cat *catalog.Catalog,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionService:        sessionService,
		intentService:         intentService,
		nlpService:            nlpService,
		searchService:         searchService,
		recommendationService: recommendationService,
		trainerService:        trainerService,
		graduateService:       graduateService,
		leadService:           leadService,
		catalog:               cat,
		logger:                log,
		locks:                 make(map[string]*sync.Mutex),
	}
}

var (
	phonePattern  = regexp.MustCompile(`^\+994[0-9]{9}$`)
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	numberPattern = regexp.MustCompile(`\d+`)
)

const emailSkipToken = "yox"

func (s *chatService) ProcessMessage(ctx context.Context, sessionId, message string) (*dto.SendChatResponse, error) {
	lock := s.sessionLock(sessionId)
	lock.Lock()
	defer lock.Unlock()

	trimmed := strings.TrimSpace(message)

	session, err := s.sessionService.GetOrCreateSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	// Rejected turns must not mutate the session.
	if s.sessionService.CheckRateLimit(session) == RateLimited {
		s.logger.Warn("ChatService", "Rate limited", map[string]interface{}{
			"session": maskSessionId(sessionId),
		})
		return &dto.SendChatResponse{
			SessionId:   sessionId,
			Reply:       constant.ReplyRateLimited,
			CurrentMode: string(session.Mode),
		}, nil
	}
	s.sessionService.RegisterMessage(session)

	session.AddMessage("User: " + trimmed)

	var reply string
	if trimmed == "" {
		reply = constant.ReplyEmptyMessage
	} else {
		switch session.Mode {
		case entity.ModeContact:
			reply = s.handleContactFlow(ctx, session, trimmed)
		case entity.ModeConsult:
			reply = s.handleConsultFlow(ctx, session, trimmed)
		default:
			reply = s.handleInitialMessage(ctx, session, trimmed)
		}
	}

	session.AddMessage("Bot: " + reply)

	if err := s.sessionService.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		SessionId:   sessionId,
		Reply:       reply,
		CurrentMode: string(session.Mode),
	}, nil
}

func (s *chatService) ResetSession(ctx context.Context, sessionId string) error {
	return s.sessionService.DeleteSession(ctx, sessionId)
}

func (s *chatService) Stats(ctx context.Context) (*dto.SessionStatsResponse, error) {
	active, err := s.sessionService.ActiveSessionsCount(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := s.leadService.TodayLeadCount(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SessionStatsResponse{
		ActiveSessions: active,
		LeadsToday:     leads,
	}, nil
}

func (s *chatService) sessionLock(sessionId string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[sessionId]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionId] = lock
	}
	return lock
}

// --- initial turn ---

func (s *chatService) handleInitialMessage(ctx context.Context, session *entity.Session, message string) string {
	normalized := s.nlpService.Normalize(ctx, message)

	if s.nlpService.IsAmbiguous(normalized) {
		return constant.ReplyAmbiguousMenu
	}

	intent := s.intentService.DetermineIntent(ctx, normalized)
	s.logger.Debug("ChatService", "Intent determined", map[string]interface{}{
		"session": maskSessionId(session.Id), "intent": string(intent),
	})

	switch intent {
	case entity.IntentGreeting:
		return constant.ReplyGreeting
	case entity.IntentContact:
		session.Mode = entity.ModeContact
		session.Step = entity.StepAwaitingName
		return constant.ReplyContactAskName
	case entity.IntentConsult:
		session.Mode = entity.ModeConsult
		session.Step = entity.StepAwaitingExperience
		return constant.ReplyConsultAskExperience
	case entity.IntentQuery, entity.IntentTrainer:
		return s.handleQueryIntent(ctx, normalized)
	default:
		return constant.ReplyUnclear
	}
}

func (s *chatService) handleQueryIntent(ctx context.Context, query string) string {
	switch s.searchService.DetectQueryType(query) {
	case entity.QueryTypeTrainer:
		return s.handleTrainerQuery(ctx, query)
	case entity.QueryTypeGraduate:
		return s.handleGraduateQuery(ctx, query)
	case entity.QueryTypeBootcamp:
		return s.searchService.BootcampStructure()
	case entity.QueryTypePrice:
		return s.handlePriceQuery(ctx, query)
	case entity.QueryTypeSchedule:
		return s.handleScheduleQuery(ctx, query)
	default:
		return s.handleTrainingQuery(ctx, query)
	}
}

// --- contact flow ---

func (s *chatService) handleContactFlow(ctx context.Context, session *entity.Session, message string) string {
	switch session.Step {
	case entity.StepAwaitingName:
		if len([]rune(message)) < 3 {
			return constant.ReplyContactNameTooShort
		}
		session.PutData("name", message)
		session.Step = entity.StepAwaitingPhone
		return constant.ReplyContactAskPhone

	case entity.StepAwaitingPhone:
		phone := strings.ReplaceAll(message, " ", "")
		if !phonePattern.MatchString(phone) {
			return constant.ReplyContactBadPhone
		}
		exists, err := s.leadService.PhoneExists(ctx, phone)
		if err != nil {
			s.logger.Warn("ChatService", "Duplicate phone check failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		if exists {
			// Known contact, nothing left to collect.
			session.ResetFlow()
			return constant.ReplyContactDuplicatePhone
		}
		session.PutData("phone", phone)
		session.Step = entity.StepAwaitingEmail
		return constant.ReplyContactAskEmail

	case entity.StepAwaitingEmail:
		if strings.EqualFold(message, emailSkipToken) {
			session.PutData("email", "")
			session.Step = entity.StepAwaitingMessage
			return constant.ReplyContactAskMessage
		}
		if !emailPattern.MatchString(message) {
			return constant.ReplyContactBadEmail
		}
		session.PutData("email", message)
		session.Step = entity.StepAwaitingMessage
		return constant.ReplyContactAskMessage

	case entity.StepAwaitingMessage:
		_, err := s.leadService.SaveLead(ctx,
			session.Data("name"), session.Data("phone"), session.Data("email"), message)
		if err != nil {
			// Collected answers stay, the user can just resend the message.
			return constant.ReplyContactSaveFailed
		}
		session.ResetFlow()
		return constant.ReplyContactSaved

	default:
		return s.breakFlow(session, "contact")
	}
}

// --- consult flow ---

func (s *chatService) handleConsultFlow(ctx context.Context, session *entity.Session, message string) string {
	switch session.Step {
	case entity.StepAwaitingExperience:
		session.PutData("experience", message)
		session.Step = entity.StepAwaitingInterest
		return constant.ReplyConsultAskInterest

	case entity.StepAwaitingInterest:
		session.PutData("interest", message)
		session.Step = entity.StepAwaitingGoal
		return constant.ReplyConsultAskGoal

	case entity.StepAwaitingGoal:
		session.PutData("goal", message)
		session.Step = entity.StepAwaitingTime
		return constant.ReplyConsultAskTime

	case entity.StepAwaitingTime:
		session.PutData("time", message)
		session.Step = entity.StepAwaitingBudget
		return constant.ReplyConsultAskBudget

	case entity.StepAwaitingBudget:
		session.PutData("budget", message)
		profile := entity.RecommendationProfile{
			Experience: session.Data("experience"),
			Interest:   session.Data("interest"),
			Goal:       session.Data("goal"),
			Time:       session.Data("time"),
			Budget:     session.Data("budget"),
		}

		var reply string
		recommendations, err := s.recommendationService.Recommendations(ctx, profile)
		if err != nil {
			s.logger.Error("ChatService", "Recommendation scoring failed", map[string]interface{}{
				"session": maskSessionId(session.Id), "error": err.Error(),
			})
			reply = constant.ReplyConsultFailed
		} else {
			reply = s.recommendationService.FormatRecommendations(recommendations)
		}

		// The flow ends here either way.
		session.ResetFlow()
		return reply

	default:
		return s.breakFlow(session, "consult")
	}
}

func (s *chatService) breakFlow(session *entity.Session, flow string) string {
	s.logger.Warn("ChatService", "Unexpected flow step", map[string]interface{}{
		"session": maskSessionId(session.Id), "flow": flow, "step": string(session.Step),
	})
	session.Mode = entity.ModeNone
	session.Step = entity.StepNone
	return constant.ReplyFlowBroken
}

// --- query handlers ---

func (s *chatService) handleTrainerQuery(ctx context.Context, query string) string {
	keyword := extractKeyword(query)

	trainers, err := s.trainerService.SearchTrainers(ctx, keyword)
	if err != nil {
		s.logger.Warn("ChatService", "Trainer search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if len(trainers) == 0 {
		trainers, err = s.trainerService.AllTrainers(ctx)
		if err != nil {
			return constant.ReplyNoTrainers
		}
	}
	return s.trainerService.FormatTrainerInfo(trainers)
}

func (s *chatService) handleGraduateQuery(ctx context.Context, query string) string {
	graduates, err := s.graduateService.SearchGraduates(ctx, extractKeyword(query))
	if err != nil {
		s.logger.Warn("ChatService", "Graduate search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if len(graduates) == 0 {
		graduates, err = s.graduateService.RandomSuccessStories(ctx, 6)
		if err != nil {
			return constant.ReplyNoGraduates
		}
	}
	return s.graduateService.FormatGraduateInfo(graduates)
}

func (s *chatService) handlePriceQuery(ctx context.Context, query string) string {
	var results []*entity.SearchResult
	var err error

	if minPrice, maxPrice, ok := extractPriceRange(query); ok {
		results, err = s.searchService.SearchByPriceRange(ctx, minPrice, maxPrice)
	} else if keyword := extractKeyword(query); keyword != "" {
		results, err = s.searchService.SearchTrainingsDetailed(ctx, keyword)
	} else {
		results, err = s.searchService.PopularTrainings(ctx, 10)
	}
	if err != nil {
		s.logger.Warn("ChatService", "Price query failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.ReplyPriceFallback
	}
	return s.searchService.FormatPriceInfo(results)
}

func (s *chatService) handleScheduleQuery(ctx context.Context, query string) string {
	results, err := s.searchService.SearchTrainingsDetailed(ctx, extractKeyword(query))
	if err != nil || len(results) == 0 {
		return constant.ReplyScheduleFallback
	}

	var sb strings.Builder
	sb.WriteString("📅 **Təlim cədvəlləri:**\n\n")
	for i, r := range results {
		if i >= 3 {
			break
		}
		sb.WriteString(fmt.Sprintf("📚 **%s**\n", r.Title))
		sb.WriteString("   ⏰ Həftədə 2-3 dəfə, 2-3 saat\n")
		sb.WriteString("   📍 Online və ya oflayn formatda\n\n")
	}
	sb.WriteString("📞 Dəqiq tarix və saat üçün: 051 341 43 40")
	return sb.String()
}

func (s *chatService) handleTrainingQuery(ctx context.Context, query string) string {
	if isListRequest(query) {
		return s.handleListRequest(ctx, query)
	}

	filters := entity.SearchFilters{
		ActiveOnly: true,
		Category:   s.searchService.DetectCategory(query),
	}
	results, err := s.searchService.SearchWithFilters(ctx, query, filters)
	if err != nil {
		s.logger.Error("ChatService", "Search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.ReplyNothingFound
	}

	if len(results) == 0 {
		results, err = s.searchService.FuzzySearch(ctx, query, 3)
		if err != nil || len(results) == 0 {
			return constant.ReplyNothingFound
		}
	}

	best := results[0]
	s.enrichTrainingResult(ctx, best)
	return s.formatSearchResultResponse(ctx, query, results)
}

func (s *chatService) handleListRequest(ctx context.Context, query string) string {
	category := s.searchService.DetectCategory(query)

	var results []*entity.SearchResult
	var err error
	if category != "" {
		results, err = s.searchService.SearchByCategory(ctx, category)
	} else {
		results, err = s.searchService.PopularTrainings(ctx, 10)
	}
	if err != nil || len(results) == 0 {
		return constant.ReplyNoActiveTrainings
	}

	var sb strings.Builder
	if category != "" {
		sb.WriteString(fmt.Sprintf("📚 **%s üzrə təlimlər:**\n\n", category))
	} else {
		sb.WriteString("📚 **Populyar təlimlərimiz:**\n\n")
	}
	for i, r := range results {
		if i >= 10 {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, r.Title))
	}
	sb.WriteString("\nKonkret təlim haqqında məlumat almaq üçün adını yaza bilərsiniz.")
	return sb.String()
}

// enrichTrainingResult attaches the linked course text to a bare training hit
// so the reply can show a description and price.
func (s *chatService) enrichTrainingResult(ctx context.Context, result *entity.SearchResult) {
	if result.Source != entity.SourceTraining || result.Text != nil {
		return
	}
	text, err := s.catalog.TextForTrainingId(ctx, result.Id)
	if err != nil {
		s.logger.Warn("ChatService", "Failed to enrich search result", map[string]interface{}{
			"training_id": result.Id, "error": err.Error(),
		})
		return
	}
	if text != nil {
		result.Text = text
	}
}

func (s *chatService) formatSearchResultResponse(ctx context.Context, query string, results []*entity.SearchResult) string {
	best := results[0]
	rawData := buildRawData(best)

	reply := s.nlpService.FormatResponse(ctx, query, rawData)
	if reply == rawData {
		reply = formatManually(best)
	}

	if len(results) > 1 {
		var sb strings.Builder
		sb.WriteString(reply)
		sb.WriteString("\n\n📚 Digər uyğun təlimlər:")
		for i := 1; i < len(results) && i < 3; i++ {
			sb.WriteString("\n• " + results[i].Title)
		}
		sb.WriteString("\n\nDaha ətraflı məlumat üçün konkret təlim adını yaza bilərsiniz.")
		reply = sb.String()
	}
	return reply
}

func buildRawData(result *entity.SearchResult) string {
	if result.Source == entity.SourceFAQ && result.Faq != nil {
		return fmt.Sprintf("Sual: %s\nCavab: %s", result.Faq.Question, result.Faq.Answer)
	}

	if result.Text != nil {
		text := result.Text
		title := result.Title
		if title == "" {
			title = text.Title
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Təlim: %s\n\n", title))
		sb.WriteString(fmt.Sprintf("Təsvir: %s\n\n", text.Description))
		if text.Price != nil {
			sb.WriteString(fmt.Sprintf("Qiymət: %d AZN\n", *text.Price))
		}
		if text.Information != "" {
			info := text.Information
			if len([]rune(info)) > 800 {
				info = string([]rune(info)[:800]) + "..."
			}
			sb.WriteString("Ətraflı məlumat: " + info)
		}
		return sb.String()
	}

	return fmt.Sprintf("Təlim: %s", result.Title)
}

func formatManually(result *entity.SearchResult) string {
	if result.Source == entity.SourceFAQ && result.Faq != nil {
		return "✅ " + result.Faq.Answer
	}

	if result.Text != nil {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("📚 **%s**\n\n", result.Title))
		sb.WriteString(result.Text.Description)
		if result.Text.Price != nil {
			sb.WriteString(fmt.Sprintf("\n\n💰 Qiymət: %d AZN", *result.Text.Price))
		}
		return sb.String()
	}

	return "📚 " + result.Title
}

// --- text helpers ---

var listRequestPhrases = []string{
	"hansı təlimlər", "bütün təlimlər", "təlimləriniz", "kurslarınız", "siyahı",
}

func isListRequest(query string) bool {
	return containsAny(strings.ToLower(query), listRequestPhrases)
}

var priceContextWords = []string{"qiymət", "azn", "manat", "büdcə"}

// extractPriceRange parses bounds out of a price question. The second return
// is nil when a side is unbounded; ok is false when the question carries no
// usable price context.
func extractPriceRange(query string) (minPrice, maxPrice *int, ok bool) {
	lower := strings.ToLower(query)
	if !containsAny(lower, priceContextWords) {
		return nil, nil, false
	}

	numbers := numberPattern.FindAllString(lower, -1)
	if len(numbers) == 0 {
		return nil, nil, false
	}

	first := atoiSafe(numbers[0])
	if first == nil {
		return nil, nil, false
	}

	switch {
	case containsAny(lower, []string{"aşağı", "ucuz", "qədər"}):
		return nil, first, true
	case containsAny(lower, []string{"yuxarı", "bahalı", "dən"}):
		return first, nil, true
	case len(numbers) >= 2:
		second := atoiSafe(numbers[1])
		if second != nil && *second < *first {
			first, second = second, first
		}
		return first, second, true
	default:
		return nil, first, true
	}
}

func atoiSafe(s string) *int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil
		}
		n = n*10 + int(r-'0')
	}
	return &n
}

var questionWords = map[string]struct{}{
	"hansı": {}, "nə": {}, "kim": {}, "necə": {},
	"haqqında": {}, "üçün": {}, "barədə": {}, "məlumat": {},
}

// extractKeyword strips question words and picks the first substantial term,
// falling back to the whole cleaned query.
func extractKeyword(query string) string {
	lower := strings.ToLower(strings.TrimSpace(query))

	var kept []string
	for _, word := range strings.Fields(lower) {
		trimmedWord := strings.Trim(word, ".,!?;:")
		if trimmedWord == "" {
			continue
		}
		if _, skip := questionWords[trimmedWord]; skip {
			continue
		}
		kept = append(kept, trimmedWord)
	}

	for _, word := range kept {
		if len([]rune(word)) > 3 {
			return word
		}
	}
	return strings.Join(kept, " ")
}
