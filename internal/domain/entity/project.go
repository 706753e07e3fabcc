package entity

import "time"

// ProjectStatus describes the lifecycle stage of a portfolio project.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// Project is a portfolio entry owned by a user.
type Project struct {
	ID            uint
	UserID        uint // Owner; must reference an existing user.
	Title         string
	Description   string
	AIDescription string // Generated blurb, filled by an external text-generation service.
	TechStack     []string
	GithubURL     string
	LiveURL       string
	ImageURLs     []string
	Featured      bool
	StartDate     *time.Time
	EndDate       *time.Time
	Status        ProjectStatus
	Category      string
	Owner         *ProjectOwner // Owner display names, populated on reads.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProjectOwner carries the owner names shown next to a project.
type ProjectOwner struct {
	FirstName string
	LastName  string
}
