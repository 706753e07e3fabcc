package model

import (
	"time"

	"gorm.io/datatypes"
)

// ExperienceModel mirrors the 'experiences' table.
type ExperienceModel struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	Company      string    `gorm:"type:varchar(150);not null"`
	Position     string    `gorm:"type:varchar(150);not null"`
	Description  string    `gorm:"type:text"`
	Location     string    `gorm:"type:varchar(150)"`
	StartDate    time.Time `gorm:"not null;index"`
	EndDate      *time.Time
	Current      bool                        `gorm:"not null;default:false"`
	Achievements datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CompanyURL   string                      `gorm:"type:varchar(500)"`
	CompanyLogo  string                      `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ExperienceModel) TableName() string {
	return "experiences"
}

// EducationModel mirrors the 'educations' table.
type EducationModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;index"`
	Institution  string `gorm:"type:varchar(200);not null"`
	Degree       string `gorm:"type:varchar(150);not null"`
	Field        string `gorm:"type:varchar(150)"`
	GPA          *float64
	StartDate    time.Time `gorm:"not null;index"`
	EndDate      *time.Time
	Current      bool                        `gorm:"not null;default:false"`
	Description  string                      `gorm:"type:text"`
	Achievements datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Location     string                      `gorm:"type:varchar(150)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (EducationModel) TableName() string {
	return "educations"
}
