package model

import (
	"time"
)

// SkillModel mirrors the 'skills' table.
type SkillModel struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"not null;index"`
	Name            string `gorm:"type:varchar(100);not null"`
	Category        string `gorm:"type:varchar(50);not null;index"`
	Proficiency     int    `gorm:"not null"`
	YearsExperience int    `gorm:"not null;default:0"`
	Verified        bool   `gorm:"not null;default:false"`
	Icon            string `gorm:"type:varchar(100)"`
	Color           string `gorm:"type:varchar(20)"`
	Description     string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}
