package model

import "time"

type Faq struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Faq) TableName() string {
	return "faqs"
}

type CourseText struct {
	Id           int64      `gorm:"primaryKey;autoIncrement"`
	Title        string     `gorm:"type:varchar(500);not null"`
	Description  string     `gorm:"type:text"`
	Information  string     `gorm:"type:text"`
	Price        *int       `gorm:"column:price"`
	ForWho       string     `gorm:"column:for_who;type:text"`
	Certificates string     `gorm:"type:text"`
	TrainingId   *int64     `gorm:"column:training_id;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime"`
}

func (CourseText) TableName() string {
	return "course_texts"
}

type Training struct {
	Id             int64     `gorm:"primaryKey;autoIncrement"`
	Title          string    `gorm:"type:varchar(500);not null"`
	IsActive       bool      `gorm:"column:is_active;default:true;index"`
	OrderIndex     int       `gorm:"column:order_index"`
	BootcampTypeId *int64    `gorm:"column:bootcamp_type_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Training) TableName() string {
	return "trainings"
}

type Trainer struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Position  string    `gorm:"type:varchar(500)"`
	Location  string    `gorm:"type:varchar(500)"`
	Bio       string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Trainer) TableName() string {
	return "trainers"
}

type Graduate struct {
	Id           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(255);not null"`
	WorkPosition string    `gorm:"column:work_position;type:varchar(500)"`
	WorkLocation string    `gorm:"column:work_location;type:varchar(500)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Graduate) TableName() string {
	return "graduates"
}
