package entity

import "time"

const LeadSourceChatbot = "chatbot"

// Lead is a captured contact submission intended for human follow-up.
// Email is nil when the user explicitly skipped it.
type Lead struct {
	Id        int64
	FullName  string
	Phone     string
	Email     *string
	Message   string
	Source    string
	CreatedAt time.Time
}
