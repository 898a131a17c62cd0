package models

import "time"

type EmailVerification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
