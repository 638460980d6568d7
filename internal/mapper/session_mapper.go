package mapper

import (
	"encoding/json"
	"fmt"

	"academy-chatbot-be/internal/entity"
	"academy-chatbot-be/internal/model"
)

// SessionMapper serializes the collected-data map and conversation history
// into the JSON columns of the chat_sessions table.
type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToModel(s *entity.Session) (*model.ChatSession, error) {
	userData, err := json.Marshal(s.Collected)
	if err != nil {
		return nil, fmt.Errorf("marshal collected data: %w", err)
	}

	history, err := json.Marshal(s.History)
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}

	return &model.ChatSession{
		Id:            s.Id,
		CurrentMode:   string(s.Mode),
		CurrentStep:   string(s.Step),
		UserData:      userData,
		History:       history,
		CreatedAt:     s.CreatedAt,
		LastActivity:  s.LastActivity,
		ExpiresAt:     s.ExpiresAt,
		MessageCount:  s.MessageCount,
		LastMessageAt: s.LastMessageAt,
		IsBlocked:     s.IsBlocked,
	}, nil
}

func (m *SessionMapper) ToEntity(cs *model.ChatSession) *entity.Session {
	s := &entity.Session{
		Id:            cs.Id,
		Mode:          entity.ModeFromString(cs.CurrentMode),
		Step:          entity.Step(cs.CurrentStep),
		Collected:     make(map[string]string),
		History:       []string{},
		CreatedAt:     cs.CreatedAt,
		LastActivity:  cs.LastActivity,
		ExpiresAt:     cs.ExpiresAt,
		MessageCount:  cs.MessageCount,
		LastMessageAt: cs.LastMessageAt,
		IsBlocked:     cs.IsBlocked,
	}

	// Corrupted JSON degrades to an empty map/history instead of failing the
	// whole message.
	if len(cs.UserData) > 0 {
		_ = json.Unmarshal(cs.UserData, &s.Collected)
	}
	if len(cs.History) > 0 {
		_ = json.Unmarshal(cs.History, &s.History)
	}

	return s
}
