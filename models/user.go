package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	// FCM device token; latest signup wins. Never exposed in JSON.
	FCMToken string `gorm:"size:512" json:"-"`
}
