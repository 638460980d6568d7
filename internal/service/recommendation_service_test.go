package service

import (
	"context"
	"strings"
	"testing"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/pkg/catalog"
)

func newTestRecommendationService() IRecommendationService {
	trainingRepo := &fakeTrainingRepo{
		trainings: []*entity.Training{
			{Id: 1, Title: "Excel ilə Data Analytics", IsActive: true},
			{Id: 4, Title: "Python Programming", IsActive: true},
			{Id: 5, Title: "Machine Learning Fundamentals", IsActive: true},
			{Id: 8, Title: "Deep Learning və AI", IsActive: true},
		},
	}
	textRepo := &fakeTextRepo{
		texts: []*entity.CourseText{
			{Id: 1, Title: "Excel ilə Data Analytics", Description: "Excel ilə analitika", Price: intp(250), TrainingId: int64p(1)},
			{Id: 2, Title: "Python Programming", Description: "Python əsasları", Price: intp(400), TrainingId: int64p(4)},
			{Id: 3, Title: "Machine Learning Fundamentals", Description: "Maşın öyrənməsi", Price: intp(800), TrainingId: int64p(5)},
			{Id: 4, Title: "Deep Learning və AI", Description: "Neural şəbəkələr", Price: intp(1200), TrainingId: int64p(8)},
		},
	}
	return NewRecommendationService(trainingRepo, catalog.New(trainingRepo, textRepo), testLogger)
}

func TestParseExperienceLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", experienceBeginner},
		{"təcrübəm yoxdur", experienceBeginner},
		{"yeni başlayıram", experienceBeginner},
		{"professional səviyyə", experienceAdvanced},
		{"5 il işləmişəm", experienceAdvanced},
		{"orta səviyyə", experienceIntermediate},
	}

	for _, tt := range tests {
		if got := parseExperienceLevel(tt.input); got != tt.want {
			t.Errorf("parseExperienceLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseBudget(t *testing.T) {
	if got := parseBudget("təxminən 1000 azn"); got == nil || *got != 1000 {
		t.Errorf("parseBudget = %v, want 1000", got)
	}
	if got := parseBudget("bilmirəm"); got != nil {
		t.Errorf("parseBudget = %v, want nil", got)
	}
}

func TestRecommendationsTopThreeSorted(t *testing.T) {
	svc := newTestRecommendationService()

	recs, err := svc.Recommendations(context.Background(), entity.RecommendationProfile{
		Experience: "yoxdur",
		Interest:   "data analitika",
		Budget:     "500",
	})
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Score < recs[i].Score {
			t.Errorf("recommendations not sorted: %v then %v", recs[i-1].Score, recs[i].Score)
		}
	}
	for _, rec := range recs {
		if rec.Score < 0 || rec.Score > 100 {
			t.Errorf("score %v out of [0,100]", rec.Score)
		}
	}
	// Beginner with an analytics interest and a 500 AZN budget lands on Excel.
	if !strings.Contains(recs[0].Title, "Excel") {
		t.Errorf("top recommendation = %q, want the Excel training", recs[0].Title)
	}
}

func TestRecommendationsBudgetPenalty(t *testing.T) {
	cheap := &Recommendation{Title: "Excel ilə Data Analytics", Price: intp(250)}
	expensive := &Recommendation{Title: "Excel ilə Data Analytics", Price: intp(2000)}
	budget := intp(500)

	cheapScore := scoreTraining(cheap, "", experienceIntermediate, budget)
	expensiveScore := scoreTraining(expensive, "", experienceIntermediate, budget)

	if cheapScore <= expensiveScore {
		t.Errorf("within-budget %v should outscore over-budget %v", cheapScore, expensiveScore)
	}
}

func TestFormatRecommendations(t *testing.T) {
	svc := newTestRecommendationService()

	if got := svc.FormatRecommendations(nil); !strings.Contains(got, "uyğun təlim tapılmadı") {
		t.Errorf("empty recommendations reply = %q", got)
	}

	recs := []*Recommendation{
		{Title: "Python Programming", Description: "Python əsasları", Price: intp(400), Score: 85},
	}
	got := svc.FormatRecommendations(recs)
	for _, want := range []string{"Python Programming", "Uyğunluq: 85%", "400 AZN"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatRecommendations missing %q in %q", want, got)
		}
	}
}

func TestRecommendationsSkipTrainingsWithoutDetails(t *testing.T) {
	trainingRepo := &fakeTrainingRepo{
		trainings: []*entity.Training{
			{Id: 4, Title: "Python Programming", IsActive: true},
			{Id: 99, Title: "Yeni Bootcamp", IsActive: true},
		},
	}
	textRepo := &fakeTextRepo{
		texts: []*entity.CourseText{
			{Id: 2, Title: "Python Programming", Description: "Python əsasları", Price: intp(400), TrainingId: int64p(4)},
		},
	}
	svc := NewRecommendationService(trainingRepo, catalog.New(trainingRepo, textRepo), testLogger)

	recs, err := svc.Recommendations(context.Background(), entity.RecommendationProfile{
		Interest: "python",
	})
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	for _, rec := range recs {
		if rec.Title == "Yeni Bootcamp" {
			t.Errorf("training without a detail record was recommended")
		}
	}
}
