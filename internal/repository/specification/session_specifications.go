package specification

import (
	"time"

	"gorm.io/gorm"
)

type ExpiredBefore struct {
	Now time.Time
}

func (s ExpiredBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at < ?", s.Now)
}

type RateWindowRolled struct {
	Before time.Time
}

func (s RateWindowRolled) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("last_message_at IS NOT NULL AND last_message_at < ? AND message_count > 0", s.Before)
}

type ByPhone struct {
	Phone string
}

func (s ByPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone = ?", s.Phone)
}
