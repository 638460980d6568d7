package service

import (
	"context"
	"testing"
	"time"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/repository/memory"
)

func newTestSessionService(maxMessages, windowMinutes int) ISessionService {
	store := memory.NewSessionStore(30 * time.Minute)
	return NewSessionService(store, testLogger, maxMessages, windowMinutes)
}

func TestGetOrCreateSession(t *testing.T) {
	svc := newTestSessionService(20, 60)
	ctx := context.Background()

	session, err := svc.GetOrCreateSession(ctx, "session-abc-123")
	if err != nil {
		t.Fatalf("GetOrCreateSession: %v", err)
	}
	if session.Id != "session-abc-123" {
		t.Errorf("session id = %q", session.Id)
	}

	session.PutData("name", "Test")
	if err := svc.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	again, err := svc.GetOrCreateSession(ctx, "session-abc-123")
	if err != nil {
		t.Fatalf("GetOrCreateSession: %v", err)
	}
	if again.Data("name") != "Test" {
		t.Errorf("session state not persisted, got %q", again.Data("name"))
	}
}

func TestCheckRateLimit(t *testing.T) {
	svc := newTestSessionService(3, 60)
	now := time.Now()

	fresh := entity.NewSession("session-fresh-01")
	if got := svc.CheckRateLimit(fresh); got != RateAllowed {
		t.Errorf("fresh session = %v, want allowed", got)
	}

	atLimit := entity.NewSession("session-limit-01")
	atLimit.MessageCount = 3
	atLimit.LastMessageAt = &now
	if got := svc.CheckRateLimit(atLimit); got != RateLimited {
		t.Errorf("at-limit session = %v, want limited", got)
	}

	// Counter from a previous window does not apply.
	stale := entity.NewSession("session-stale-01")
	past := now.Add(-2 * time.Hour)
	stale.MessageCount = 3
	stale.LastMessageAt = &past
	if got := svc.CheckRateLimit(stale); got != RateAllowed {
		t.Errorf("rolled-window session = %v, want allowed", got)
	}

	blocked := entity.NewSession("session-block-01")
	blocked.IsBlocked = true
	if got := svc.CheckRateLimit(blocked); got != RateLimited {
		t.Errorf("blocked session = %v, want limited", got)
	}
}

func TestRegisterMessageResetsRolledWindow(t *testing.T) {
	svc := newTestSessionService(3, 60)

	session := entity.NewSession("session-roll-01")
	past := time.Now().Add(-2 * time.Hour)
	session.MessageCount = 3
	session.LastMessageAt = &past

	svc.RegisterMessage(session)
	if session.MessageCount != 1 {
		t.Errorf("MessageCount = %d, want 1 after window rollover", session.MessageCount)
	}

	svc.RegisterMessage(session)
	if session.MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", session.MessageCount)
	}
}

func TestBlockSession(t *testing.T) {
	svc := newTestSessionService(20, 60)
	ctx := context.Background()

	session, err := svc.GetOrCreateSession(ctx, "session-bad-001")
	if err != nil {
		t.Fatalf("GetOrCreateSession: %v", err)
	}
	if err := svc.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	if err := svc.BlockSession(ctx, "session-bad-001", "spam"); err != nil {
		t.Fatalf("BlockSession: %v", err)
	}

	reloaded, err := svc.GetSession(ctx, "session-bad-001")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if reloaded == nil || !reloaded.IsBlocked {
		t.Errorf("session not blocked after BlockSession")
	}
}

func TestResetRateCountersRolledWindowOnly(t *testing.T) {
	store := memory.NewSessionStore(30 * time.Minute)
	svc := NewSessionService(store, testLogger, 20, 60)
	ctx := context.Background()

	stale, err := store.GetOrCreate(ctx, "session-stale-02")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	past := time.Now().Add(-2 * time.Hour)
	stale.MessageCount = 15
	stale.LastMessageAt = &past
	if err := store.Save(ctx, stale); err != nil {
		t.Fatalf("Save: %v", err)
	}

	recent, err := store.GetOrCreate(ctx, "session-live-02")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	now := time.Now()
	recent.MessageCount = 5
	recent.LastMessageAt = &now
	if err := store.Save(ctx, recent); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reset, err := svc.ResetRateCounters(ctx)
	if err != nil {
		t.Fatalf("ResetRateCounters: %v", err)
	}
	if reset != 1 {
		t.Errorf("reset = %d, want 1", reset)
	}

	got, err := store.Get(ctx, "session-stale-02")
	if err != nil || got == nil {
		t.Fatalf("Get stale: %v, %v", got, err)
	}
	if got.MessageCount != 0 {
		t.Errorf("stale counter = %d, want 0", got.MessageCount)
	}

	got, err = store.Get(ctx, "session-live-02")
	if err != nil || got == nil {
		t.Fatalf("Get live: %v, %v", got, err)
	}
	if got.MessageCount != 5 {
		t.Errorf("live counter = %d, want 5 untouched", got.MessageCount)
	}
}
