package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	SellerID    uint      `gorm:"not null;index"`
	CategoryID  uint      `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"not null"`
	ImageURL    *string   `gorm:"type:varchar(512)"`
	Status      string    `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt   time.Time
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
	Slug string `gorm:"type:varchar(255);uniqueIndex;not null"`
}
