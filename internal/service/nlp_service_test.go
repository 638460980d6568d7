package service

import (
	"context"
	"testing"

	"academy-chatbot-be/internal/entity"
)

func TestIsAmbiguous(t *testing.T) {
	svc := newTestNlpService(&fakeProvider{})

	tests := []struct {
		message string
		want    bool
	}{
		{"", true},
		{"   ", true},
		{"salam", true},
		{"python kursu haqqında məlumat", false},
		{"bu haqqında məlumat istəyirəm", true},
		{"qiymət nə qədərdir", false},
		{"machine learning nədir bilmək istəyirəm", false},
	}

	for _, tt := range tests {
		if got := svc.IsAmbiguous(tt.message); got != tt.want {
			t.Errorf("IsAmbiguous(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestNormalizeFallsBackOnFailure(t *testing.T) {
	svc := newTestNlpService(&fakeProvider{})

	original := "piton kursu haqda melumat"
	if got := svc.Normalize(context.Background(), original); got != original {
		t.Errorf("Normalize = %q, want original text", got)
	}
}

func TestNormalizeTrimsModelOutput(t *testing.T) {
	provider := &fakeProvider{
		generateFunc: func(string) (string, error) { return "  Python kursu haqqında məlumat \n", nil },
	}
	svc := newTestNlpService(provider)

	got := svc.Normalize(context.Background(), "piton kursu haqda melumat")
	if got != "Python kursu haqqında məlumat" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestNormalizeEmptyModelOutput(t *testing.T) {
	provider := &fakeProvider{
		generateFunc: func(string) (string, error) { return "   ", nil },
	}
	svc := newTestNlpService(provider)

	original := "python kursu"
	if got := svc.Normalize(context.Background(), original); got != original {
		t.Errorf("Normalize = %q, want original on empty model output", got)
	}
}

func TestDetectIntentCoercesLabel(t *testing.T) {
	provider := &fakeProvider{
		generateFunc: func(string) (string, error) { return "GREETING", nil },
	}
	svc := newTestNlpService(provider)

	if got := svc.DetectIntent(context.Background(), "salam"); got != entity.IntentGreeting {
		t.Errorf("DetectIntent = %v, want greeting", got)
	}
}

func TestFormatResponseFallbacks(t *testing.T) {
	svc := newTestNlpService(&fakeProvider{})

	if got := svc.FormatResponse(context.Background(), "sual", ""); got != "Üzr istəyirik, məlumat tapılmadı." {
		t.Errorf("FormatResponse on empty raw = %q", got)
	}

	raw := "Təlim: Python\nQiymət: 400 AZN"
	if got := svc.FormatResponse(context.Background(), "sual", raw); got != raw {
		t.Errorf("FormatResponse on provider failure = %q, want raw data", got)
	}
}
