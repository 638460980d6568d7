package service

import (
	"context"
	"time"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/internal/repository/contract"
)

// RateStatus is the outcome of the pre-message rate check.
type RateStatus int

const (
	RateAllowed RateStatus = iota
	RateLimited
)

type ISessionService interface {
	GetOrCreateSession(ctx context.Context, sessionId string) (*entity.Session, error)
	GetSession(ctx context.Context, sessionId string) (*entity.Session, error)
	SaveSession(ctx context.Context, session *entity.Session) error
	DeleteSession(ctx context.Context, sessionId string) error
	SessionExists(ctx context.Context, sessionId string) (bool, error)

	// CheckRateLimit is called before any session mutation. RateLimited means
	// the message must be rejected with a fixed reply.
	CheckRateLimit(session *entity.Session) RateStatus

	// RegisterMessage bumps the rate counter, resetting it when the window
	// has rolled over.
	RegisterMessage(session *entity.Session)

	BlockSession(ctx context.Context, sessionId, reason string) error
	CleanExpiredSessions(ctx context.Context) (int64, error)

	// ResetRateCounters zeroes the counter of every session whose rate
	// window has rolled over. Runs on its own ticker, independent of the
	// expiry sweep.
	ResetRateCounters(ctx context.Context) (int64, error)
	ActiveSessionsCount(ctx context.Context) (int64, error)
}

type sessionService struct {
	store       contract.SessionStore
	logger      logger.ILogger
	maxMessages int
	rateWindow  time.Duration
}

func NewSessionService(store contract.SessionStore, log logger.ILogger, maxMessages, rateWindowMinutes int) ISessionService {
	return &sessionService{
		store:       store,
		logger:      log,
		maxMessages: maxMessages,
		rateWindow:  time.Duration(rateWindowMinutes) * time.Minute,
	}
}

func (s *sessionService) GetOrCreateSession(ctx context.Context, sessionId string) (*entity.Session, error) {
	session, err := s.store.GetOrCreate(ctx, sessionId)
	if err != nil {
		s.logger.Error("SessionService", "Failed to load session", map[string]interface{}{
			"session": maskSessionId(sessionId), "error": err.Error(),
		})
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionId string) (*entity.Session, error) {
	return s.store.Get(ctx, sessionId)
}

func (s *sessionService) SaveSession(ctx context.Context, session *entity.Session) error {
	if session == nil || session.Id == "" {
		s.logger.Warn("SessionService", "Attempted to save empty session", nil)
		return nil
	}
	return s.store.Save(ctx, session)
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionId string) error {
	s.logger.Info("SessionService", "Session deleted", map[string]interface{}{
		"session": maskSessionId(sessionId),
	})
	return s.store.Delete(ctx, sessionId)
}

func (s *sessionService) SessionExists(ctx context.Context, sessionId string) (bool, error) {
	return s.store.Exists(ctx, sessionId)
}

func (s *sessionService) CheckRateLimit(session *entity.Session) RateStatus {
	if session == nil {
		return RateAllowed
	}
	if session.IsBlocked {
		return RateLimited
	}
	if session.LastMessageAt == nil {
		return RateAllowed
	}

	// Counter only applies within the current window.
	if time.Since(*session.LastMessageAt) > s.rateWindow {
		return RateAllowed
	}
	if session.MessageCount >= s.maxMessages {
		return RateLimited
	}
	return RateAllowed
}

func (s *sessionService) RegisterMessage(session *entity.Session) {
	now := time.Now()
	if session.LastMessageAt == nil || now.Sub(*session.LastMessageAt) > s.rateWindow {
		session.MessageCount = 0
	}
	session.MessageCount++
	session.LastMessageAt = &now
}

func (s *sessionService) BlockSession(ctx context.Context, sessionId, reason string) error {
	session, err := s.store.Get(ctx, sessionId)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	session.IsBlocked = true
	if err := s.store.Save(ctx, session); err != nil {
		return err
	}

	s.logger.Warn("SessionService", "Session blocked", map[string]interface{}{
		"session": maskSessionId(sessionId), "reason": reason,
	})
	return nil
}

func (s *sessionService) CleanExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.store.SweepExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("SessionService", "Expired session sweep failed", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("SessionService", "Cleaned expired sessions", map[string]interface{}{
			"count": removed,
		})
	}
	return removed, nil
}

func (s *sessionService) ResetRateCounters(ctx context.Context) (int64, error) {
	reset, err := s.store.ResetRateCounters(ctx, time.Now().Add(-s.rateWindow))
	if err != nil {
		s.logger.Error("SessionService", "Rate counter reset failed", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}
	if reset > 0 {
		s.logger.Info("SessionService", "Reset rate counters", map[string]interface{}{
			"count": reset,
		})
	}
	return reset, nil
}

func (s *sessionService) ActiveSessionsCount(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func maskSessionId(sessionId string) string {
	if len(sessionId) < 8 {
		return "****"
	}
	return sessionId[:4] + "****" + sessionId[len(sessionId)-4:]
}
