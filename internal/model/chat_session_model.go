package model

import (
	"time"

	"gorm.io/datatypes"
)

type ChatSession struct {
	Id            string         `gorm:"type:varchar(255);primaryKey"`
	CurrentMode   string         `gorm:"column:current_mode;type:varchar(50)"`
	CurrentStep   string         `gorm:"column:current_step;type:varchar(100)"`
	UserData      datatypes.JSON `gorm:"column:user_data"`
	History       datatypes.JSON `gorm:"column:conversation_history"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	LastActivity  time.Time      `gorm:"column:last_activity"`
	ExpiresAt     time.Time      `gorm:"column:expires_at;index"`
	MessageCount  int            `gorm:"column:message_count;default:0"`
	LastMessageAt *time.Time     `gorm:"column:last_message_at"`
	IsBlocked     bool           `gorm:"column:is_blocked;default:false"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
