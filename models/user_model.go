package models

import "time"

type User struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"size:255;not null"`
	Email           string     `json:"email" gorm:"size:191;uniqueIndex;not null"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	Password        string     `json:"-" gorm:"size:255;not null"`
	RememberToken   *string    `json:"-" gorm:"size:100"`
	Timestamps
}

// PasswordReset holds a five digit reset code issued for an email.
type PasswordReset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:191;index;not null"`
	Token     string    `json:"-" gorm:"size:10;index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
