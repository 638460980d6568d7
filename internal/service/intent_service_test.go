package service

import (
	"context"
	"testing"

	"academy-chatbot-be/internal/config"
	"academy-chatbot-be/internal/entity"
)

func newTestNlpService(provider *fakeProvider) INlpService {
	cfg := &config.Config{
		Ai: config.AIConfig{MaxTokens: 500, Temperature: 0.3},
	}
	return NewNlpService(provider, testLogger, cfg)
}

func TestDetermineIntentByKeyword(t *testing.T) {
	// The provider must never be consulted when a keyword matches.
	svc := NewIntentService(newTestNlpService(&fakeProvider{}), testLogger)

	tests := []struct {
		message string
		want    entity.Intent
	}{
		{"salam necəsiniz", entity.IntentGreeting},
		{"zəng etmək istəyirəm", entity.IntentContact},
		{"mənə məsləhət lazımdır", entity.IntentConsult},
		{"təlimçi kimdir", entity.IntentTrainer},
		{"python qiyməti nə qədərdir", entity.IntentQuery},
	}

	for _, tt := range tests {
		if got := svc.DetermineIntent(context.Background(), tt.message); got != tt.want {
			t.Errorf("DetermineIntent(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestDetermineIntentPriority(t *testing.T) {
	svc := NewIntentService(newTestNlpService(&fakeProvider{}), testLogger)

	// Greeting outranks the query keyword in the same message.
	if got := svc.DetermineIntent(context.Background(), "salam, təlim qiyməti maraqlandırır"); got != entity.IntentGreeting {
		t.Errorf("DetermineIntent = %v, want greeting", got)
	}

	// Contact outranks consult.
	if got := svc.DetermineIntent(context.Background(), "zəng edin, kurs seçmək istəyirəm"); got != entity.IntentContact {
		t.Errorf("DetermineIntent = %v, want contact", got)
	}
}

func TestDetermineIntentModelFallback(t *testing.T) {
	provider := &fakeProvider{
		generateFunc: func(string) (string, error) { return " Consult \n", nil },
	}
	svc := NewIntentService(newTestNlpService(provider), testLogger)

	got := svc.DetermineIntent(context.Background(), "gələcəyimi dəyişmək fikrindəyəm")
	if got != entity.IntentConsult {
		t.Errorf("DetermineIntent = %v, want consult", got)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}
}

func TestDetermineIntentModelFailure(t *testing.T) {
	svc := NewIntentService(newTestNlpService(&fakeProvider{}), testLogger)

	got := svc.DetermineIntent(context.Background(), "gələcəyimi dəyişmək fikrindəyəm")
	if got != entity.IntentUnclear {
		t.Errorf("DetermineIntent = %v, want unclear", got)
	}
}

func TestDetermineIntentInvalidModelLabel(t *testing.T) {
	provider := &fakeProvider{
		generateFunc: func(string) (string, error) { return "purchase", nil },
	}
	svc := NewIntentService(newTestNlpService(provider), testLogger)

	got := svc.DetermineIntent(context.Background(), "gələcəyimi dəyişmək fikrindəyəm")
	if got != entity.IntentUnclear {
		t.Errorf("DetermineIntent = %v, want unclear for unknown label", got)
	}
}

func TestDetermineIntentBlankMessage(t *testing.T) {
	provider := &fakeProvider{
		generateFunc: func(string) (string, error) { return "greeting", nil },
	}
	svc := NewIntentService(newTestNlpService(provider), testLogger)

	for _, message := range []string{"", "   ", "\n\t"} {
		if got := svc.DetermineIntent(context.Background(), message); got != entity.IntentUnclear {
			t.Errorf("DetermineIntent(%q) = %v, want unclear", message, got)
		}
	}
	if provider.calls != 0 {
		t.Errorf("provider calls = %d, want 0 for blank input", provider.calls)
	}
}
