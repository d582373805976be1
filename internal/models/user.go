package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a wordsmith profile. Identity itself lives in the external auth
// provider; this row mirrors the fields the dashboard displays.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;size:255"`
	FullName string `json:"full_name" gorm:"not null;size:200;index"`
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:255"`

	// Profile info
	AvatarURL      *string `json:"avatar_url" gorm:"size:500"`
	Credits        int     `json:"credits" gorm:"default:0"`
	TargetLanguage *string `json:"target_language" gorm:"size:50"`
	NativeLanguage *string `json:"native_language" gorm:"size:50"`

	// Status
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
