package service

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/pkg/catalog"
)

func newTestSearchService() ISearchService {
	trainingRepo := &fakeTrainingRepo{
		trainings: []*entity.Training{
			{Id: 1, Title: "Excel ilə Data Analytics", IsActive: true},
			{Id: 4, Title: "Python Programming", IsActive: true},
			{Id: 5, Title: "Machine Learning Fundamentals", IsActive: true},
			{Id: 9, Title: "R ilə Data Science", IsActive: false},
		},
	}
	textRepo := &fakeTextRepo{
		texts: []*entity.CourseText{
			{Id: 1, Title: "Python Programming", Description: "Python proqramlaşdırma dilinin əsasları", Price: intp(400), TrainingId: int64p(4)},
			{Id: 2, Title: "Machine Learning Fundamentals", Description: "Maşın öyrənməsinin əsasları", Price: intp(800), TrainingId: int64p(5)},
			{Id: 3, Title: "Excel ilə Data Analytics", Description: "Excel ilə analitika", Price: intp(250), TrainingId: int64p(1)},
		},
	}
	faqRepo := &fakeFaqRepo{
		faqs: []*entity.Faq{
			{Id: 1, Question: "Sertifikat verilirmi?", Answer: "Bəli, beynəlxalq sertifikat verilir."},
		},
	}
	cat := catalog.New(trainingRepo, textRepo)
	return NewSearchService(faqRepo, textRepo, trainingRepo, cat, testLogger)
}

func intp(v int) *int       { return &v }
func int64p(v int64) *int64 { return &v }

func TestExtractKeywords(t *testing.T) {
	svc := newTestSearchService()

	tests := []struct {
		query string
		want  []string
	}{
		{"Python və SQL kursları haqqında", []string{"python", "sql", "kursları"}},
		{"python python kursu", []string{"python", "kursu"}},
		{"bu o da", nil},
		{"Machine Learning!", []string{"machine", "learning"}},
	}

	for _, tt := range tests {
		got := svc.ExtractKeywords(tt.query)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestCalculateRelevancePositionOrdering(t *testing.T) {
	svc := newTestSearchService()
	keywords := []string{"python"}

	front := svc.CalculateRelevance("python proqramlaşdırma kursu", "python", keywords)
	middle := svc.CalculateRelevance("yeni başlayanlar üçün python kursu", "python", keywords)
	far := svc.CalculateRelevance(strings.Repeat("data analitika kursları mövcuddur ", 3)+"python", "python", keywords)

	if !(front > middle && middle > far) {
		t.Errorf("relevance ordering broken: front=%v middle=%v far=%v", front, middle, far)
	}
	if far <= 0 {
		t.Errorf("far match should still score positive, got %v", far)
	}
}

func TestCalculateRelevancePhraseBonus(t *testing.T) {
	svc := newTestSearchService()
	keywords := []string{"machine", "learning"}

	withPhrase := svc.CalculateRelevance("machine learning kursu", "machine learning", keywords)
	wordsOnly := svc.CalculateRelevance("learning resources for machine", "machine learning", keywords)

	if withPhrase <= wordsOnly {
		t.Errorf("phrase match %v should outscore scattered words %v", withPhrase, wordsOnly)
	}
}

func TestCalculateRelevanceNoKeywords(t *testing.T) {
	svc := newTestSearchService()
	if got := svc.CalculateRelevance("content", "query", nil); got != 0 {
		t.Errorf("CalculateRelevance with no keywords = %v, want 0", got)
	}
}

func TestSearchTrainingSkipsInactive(t *testing.T) {
	svc := newTestSearchService()

	results, err := svc.SearchTraining(context.Background(), "data")
	if err != nil {
		t.Fatalf("SearchTraining: %v", err)
	}
	for _, r := range results {
		if r.Title == "R ilə Data Science" {
			t.Errorf("inactive training leaked into results")
		}
	}
}

func TestFuzzySearchCorrectsTypos(t *testing.T) {
	svc := newTestSearchService()

	results, err := svc.FuzzySearch(context.Background(), "piton kursu", 3)
	if err != nil {
		t.Fatalf("FuzzySearch: %v", err)
	}
	found := false
	for _, r := range results {
		if strings.Contains(r.Title, "Python") {
			found = true
		}
	}
	if !found {
		t.Errorf("FuzzySearch(%q) found no Python training, results: %v", "piton kursu", titles(results))
	}
}

func TestSearchByPriceRange(t *testing.T) {
	svc := newTestSearchService()

	results, err := svc.SearchByPriceRange(context.Background(), intp(300), intp(800))
	if err != nil {
		t.Fatalf("SearchByPriceRange: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %v", len(results), titles(results))
	}
	for _, r := range results {
		if r.Text == nil || r.Text.Price == nil || *r.Text.Price < 300 || *r.Text.Price > 800 {
			t.Errorf("result %q outside price bounds", r.Title)
		}
	}

	// Unbounded max.
	results, err = svc.SearchByPriceRange(context.Background(), intp(300), nil)
	if err != nil {
		t.Fatalf("SearchByPriceRange: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("unbounded max: got %d results, want 2", len(results))
	}
}

func TestPopularTrainingsOrder(t *testing.T) {
	svc := newTestSearchService()

	results, err := svc.PopularTrainings(context.Background(), 10)
	if err != nil {
		t.Fatalf("PopularTrainings: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("got %d results", len(results))
	}
	// Curated ids 5 then 4 come first when active.
	if results[0].Id != 5 || results[1].Id != 4 {
		t.Errorf("popular order = %v", titles(results))
	}
	for _, r := range results {
		if r.Training != nil && !r.Training.IsActive {
			t.Errorf("inactive training %q listed as popular", r.Title)
		}
	}
}

func TestDetectQueryType(t *testing.T) {
	svc := newTestSearchService()

	tests := []struct {
		query string
		want  entity.QueryType
	}{
		{"təlimçi kimdir", entity.QueryTypeTrainer},
		{"məzunlar harada işləyir", entity.QueryTypeGraduate},
		{"bootcamp necə işləyir", entity.QueryTypeBootcamp},
		{"python qiyməti", entity.QueryTypePrice},
		{"dərslər nə vaxt başlayır", entity.QueryTypeSchedule},
		{"python kursu", entity.QueryTypeTraining},
	}

	for _, tt := range tests {
		if got := svc.DetectQueryType(tt.query); got != tt.want {
			t.Errorf("DetectQueryType(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestDetectCategory(t *testing.T) {
	svc := newTestSearchService()

	tests := []struct {
		query string
		want  string
	}{
		{"tableau öyrənmək istəyirəm", "Data Analytics"},
		{"neural şəbəkələr", "Deep Learning"},
		{"django backend", "AI Development"},
		{"fəlsəfə kursu", ""},
	}

	for _, tt := range tests {
		if got := svc.DetectCategory(tt.query); got != tt.want {
			t.Errorf("DetectCategory(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestSearchTrainingsDetailedEnriches(t *testing.T) {
	svc := newTestSearchService()

	results, err := svc.SearchTrainingsDetailed(context.Background(), "python")
	if err != nil {
		t.Fatalf("SearchTrainingsDetailed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results")
	}
	best := results[0]
	if best.Text == nil {
		t.Fatal("result not enriched with course text")
	}
	if !strings.Contains(best.Content, "Qiymət: 400 AZN") {
		t.Errorf("enriched content missing price: %q", best.Content)
	}
}

func TestFormatPriceInfo(t *testing.T) {
	svc := newTestSearchService()

	if got := svc.FormatPriceInfo(nil); !strings.Contains(got, "250 AZN - 2000 AZN") {
		t.Errorf("empty results should fall back to the generic price reply, got %q", got)
	}

	results := []*entity.SearchResult{
		{Title: "Python Programming", Text: &entity.CourseText{Price: intp(400)}},
	}
	got := svc.FormatPriceInfo(results)
	if !strings.Contains(got, "Python Programming") || !strings.Contains(got, "400 AZN") {
		t.Errorf("FormatPriceInfo = %q", got)
	}
}

func titles(results []*entity.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestApplyFiltersKeepsUnpricedTexts(t *testing.T) {
	svc := newTestSearchService().(*searchService)

	maxPrice := 500
	results := []*entity.SearchResult{
		{Source: entity.SourceText, Id: 1, Title: "Python Programming",
			Text: &entity.CourseText{Id: 1, Title: "Python Programming", Price: intp(400)}},
		{Source: entity.SourceText, Id: 2, Title: "Machine Learning Fundamentals",
			Text: &entity.CourseText{Id: 2, Title: "Machine Learning Fundamentals", Price: intp(800)}},
		{Source: entity.SourceText, Id: 3, Title: "Korporativ Təlim",
			Text: &entity.CourseText{Id: 3, Title: "Korporativ Təlim"}},
	}

	filtered := svc.applyFilters(results, entity.SearchFilters{MaxPrice: &maxPrice})

	kept := make(map[int64]bool)
	for _, r := range filtered {
		kept[r.Id] = true
	}
	if !kept[1] {
		t.Error("priced text within the bound was dropped")
	}
	if kept[2] {
		t.Error("priced text above the bound was kept")
	}
	if !kept[3] {
		t.Error("unpriced text was dropped by the price filter")
	}
}

func TestSearchTrainingScoresRawQuery(t *testing.T) {
	svc := newTestSearchService()

	results, err := svc.SearchTraining(context.Background(), "piton")
	if err != nil {
		t.Fatalf("SearchTraining: %v", err)
	}

	var python *entity.SearchResult
	for _, r := range results {
		if r.Title == "Python Programming" {
			python = r
		}
	}
	if python == nil {
		t.Fatalf("typo query found no Python training, results: %v", titles(results))
	}

	// Relevance is scored against what the user typed; the corrected form
	// only feeds keyword expansion (plus the title-contains bonus).
	want := svc.CalculateRelevance("Python Programming", "piton", []string{"python"}) + 5
	if python.Score != want {
		t.Errorf("score = %v, want %v (scored against raw query)", python.Score, want)
	}
}
