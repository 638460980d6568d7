package model

import "time"

type Lead struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	FullName  string    `gorm:"column:full_name;type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email     *string   `gorm:"type:varchar(255)"`
	Message   string    `gorm:"type:text"`
	Source    string    `gorm:"type:varchar(50);default:chatbot"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Lead) TableName() string {
	return "leads"
}
