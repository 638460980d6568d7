package entity

import "time"

// Mode is the active multi-step flow a session is in.
type Mode string

const (
	ModeNone    Mode = ""
	ModeContact Mode = "contact"
	ModeConsult Mode = "consult"
)

// ModeFromString tolerates arbitrary stored values, anything unknown is idle.
func ModeFromString(s string) Mode {
	switch Mode(s) {
	case ModeContact:
		return ModeContact
	case ModeConsult:
		return ModeConsult
	default:
		return ModeNone
	}
}

// Step is the question/state within a mode's flow. Values cross the
// persistence boundary as plain strings, so handlers still guard against a
// step that is not valid for the current mode.
type Step string

const (
	StepNone Step = ""

	// Contact flow
	StepAwaitingName    Step = "awaiting_name"
	StepAwaitingPhone   Step = "awaiting_phone"
	StepAwaitingEmail   Step = "awaiting_email"
	StepAwaitingMessage Step = "awaiting_message"

	// Consult flow
	StepAwaitingExperience Step = "awaiting_experience"
	StepAwaitingInterest   Step = "awaiting_interest"
	StepAwaitingGoal       Step = "awaiting_goal"
	StepAwaitingTime       Step = "awaiting_time"
	StepAwaitingBudget     Step = "awaiting_budget"
)

// MaxHistoryEntries bounds the per-session conversation history (FIFO).
const MaxHistoryEntries = 20

// Session is the per-user conversation state.
type Session struct {
	Id            string
	Mode          Mode
	Step          Step
	Collected     map[string]string
	History       []string
	CreatedAt     time.Time
	LastActivity  time.Time
	ExpiresAt     time.Time
	MessageCount  int
	LastMessageAt *time.Time
	IsBlocked     bool
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		Id:           id,
		Collected:    make(map[string]string),
		History:      []string{},
		CreatedAt:    now,
		LastActivity: now,
	}
}

// AddMessage appends to history, evicting the oldest entry past the cap.
func (s *Session) AddMessage(line string) {
	s.History = append(s.History, line)
	if len(s.History) > MaxHistoryEntries {
		s.History = s.History[len(s.History)-MaxHistoryEntries:]
	}
	s.LastActivity = time.Now()
}

func (s *Session) PutData(key, value string) {
	if s.Collected == nil {
		s.Collected = make(map[string]string)
	}
	s.Collected[key] = value
}

func (s *Session) Data(key string) string {
	return s.Collected[key]
}

// ResetFlow clears mode, step and everything collected so far.
func (s *Session) ResetFlow() {
	s.Mode = ModeNone
	s.Step = StepNone
	s.Collected = make(map[string]string)
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
