package entity

import "time"

type Faq struct {
	Id        int64
	Question  string
	Answer    string
	CreatedAt time.Time
}

// CourseText is the long-form detail record for a training (description,
// curriculum, price). A training has zero or one of these.
type CourseText struct {
	Id           int64
	Title        string
	Description  string
	Information  string
	Price        *int
	ForWho       string
	Certificates string
	TrainingId   *int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type Training struct {
	Id             int64
	Title          string
	IsActive       bool
	OrderIndex     int
	BootcampTypeId *int64
	CreatedAt      time.Time
}

type Trainer struct {
	Id        int64
	Name      string
	Position  string
	Location  string
	Bio       string
	CreatedAt time.Time
}

type Graduate struct {
	Id           int64
	Name         string
	WorkPosition string
	WorkLocation string
	CreatedAt    time.Time
}
