package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectModel mirrors the 'projects' table. UserID references users.id.
type ProjectModel struct {
	ID            uint                        `gorm:"primaryKey"`
	UserID        uint                        `gorm:"not null;index"`
	Title         string                      `gorm:"type:varchar(200);not null"`
	Description   string                      `gorm:"type:text;not null"`
	AIDescription string                      `gorm:"column:ai_description;type:text"`
	TechStack     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	GithubURL     string                      `gorm:"type:varchar(500)"`
	LiveURL       string                      `gorm:"type:varchar(500)"`
	ImageURLs     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Featured      bool                        `gorm:"not null;default:false;index"`
	StartDate     *time.Time
	EndDate       *time.Time
	Status        string `gorm:"type:varchar(20);not null;default:'completed'"`
	Category      string `gorm:"type:varchar(50)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// All lists every model managed by AutoMigrate, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&ProjectModel{},
		&SkillModel{},
		&ExperienceModel{},
		&EducationModel{},
	}
}
