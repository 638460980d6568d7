package dto

type SendChatRequest struct {
	// SessionId may be omitted on the first message; the server then mints one.
	SessionId string `json:"session_id" validate:"omitempty,min=8"`
	Message   string `json:"message" validate:"max=2000"`
}

type SendChatResponse struct {
	SessionId   string `json:"session_id"`
	Reply       string `json:"reply"`
	CurrentMode string `json:"current_mode,omitempty"`
}

type ResetSessionRequest struct {
	SessionId string `json:"session_id" validate:"required,min=8"`
}

type SessionStatsResponse struct {
	ActiveSessions int64 `json:"active_sessions"`
	LeadsToday     int64 `json:"leads_today"`
}

// LeadCapturedMessage is the payload published on the internal event bus
// when the contact flow completes.
type LeadCapturedMessage struct {
	LeadId   int64  `json:"lead_id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}
