package entity

import "time"

// DefaultSkillCategory groups skills saved without a category.
const DefaultSkillCategory = "other"

// Skill is a rated capability listed on the portfolio.
type Skill struct {
	ID              uint
	UserID          uint
	Name            string
	Category        string
	Proficiency     int // 1 to 100.
	YearsExperience int
	Verified        bool
	Icon            string
	Color           string
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GroupKey is the category the skill is listed under.
func (s *Skill) GroupKey() string {
	if s.Category == "" {
		return DefaultSkillCategory
	}

	return s.Category
}
