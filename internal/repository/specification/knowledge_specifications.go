package specification

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// KeywordLike matches the keyword as a case-insensitive substring against
// any of the given columns.
type KeywordLike struct {
	Columns []string
	Keyword string
}

func (s KeywordLike) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Columns) == 0 || s.Keyword == "" {
		return db
	}
	pattern := "%" + strings.ToLower(s.Keyword) + "%"
	conds := make([]string, len(s.Columns))
	args := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return db.Where(strings.Join(conds, " OR "), args...)
}

type ActiveOnly struct{}

func (ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type ByTrainingId struct {
	TrainingId int64
}

func (s ByTrainingId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("training_id = ?", s.TrainingId)
}

type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}

type OrderByIndex struct{}

func (OrderByIndex) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}
