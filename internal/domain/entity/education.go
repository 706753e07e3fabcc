package entity

import "time"

// Education is a degree or course of study.
type Education struct {
	ID           uint
	UserID       uint
	Institution  string
	Degree       string
	Field        string
	GPA          *float64
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Description  string
	Achievements []string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
