package events

import "time"

const (
	TypeLeadCaptured        = "LEAD_CAPTURED"
	TypeConsultationRequest = "CONSULTATION_REQUEST"
)

// NewLeadCapturedEvent is emitted when a visitor completes the contact flow.
func NewLeadCapturedEvent(leadId int64, fullName, phone, email, message, source string) Event {
	return BaseEvent{
		Type: TypeLeadCaptured,
		Data: map[string]interface{}{
			"lead_id":   leadId,
			"full_name": fullName,
			"phone":     phone,
			"email":     email,
			"message":   message,
			"source":    source,
		},
		OccurredAt: time.Now(),
	}
}

// NewConsultationRequestEvent is emitted when a visitor finishes the guided
// consultation flow, carrying their answers alongside the recommendations.
func NewConsultationRequestEvent(sessionId string, profile map[string]interface{}) Event {
	data := map[string]interface{}{
		"session_id": sessionId,
	}
	for k, v := range profile {
		data[k] = v
	}
	return BaseEvent{
		Type:       TypeConsultationRequest,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
