package models

import "time"

type User struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
}
