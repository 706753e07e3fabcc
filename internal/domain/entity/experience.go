package entity

import "time"

// Experience is a position held at a company.
type Experience struct {
	ID           uint
	UserID       uint
	Company      string
	Position     string
	Description  string
	Location     string
	StartDate    time.Time
	EndDate      *time.Time // Nil while the position is held.
	Current      bool
	Achievements []string
	Technologies []string
	CompanyURL   string
	CompanyLogo  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Tenure is the time spent in the position, measured up to now when it has no end.
func (e *Experience) Tenure(now time.Time) time.Duration {
	end := now
	if e.EndDate != nil && !e.Current {
		end = *e.EndDate
	}
	if end.Before(e.StartDate) {
		return 0
	}

	return end.Sub(e.StartDate)
}
