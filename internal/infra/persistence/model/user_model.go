package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Title        string `gorm:"type:varchar(150)"`
	Bio          string `gorm:"type:text"`
	Location     string `gorm:"type:varchar(150)"`
	AvatarURL    string `gorm:"type:varchar(500)"`
	GithubURL    string `gorm:"type:varchar(500)"`
	LinkedinURL  string `gorm:"type:varchar(500)"`
	Website      string `gorm:"type:varchar(500)"`
	Phone        string `gorm:"type:varchar(50)"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
