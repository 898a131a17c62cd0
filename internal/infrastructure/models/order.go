package models

import "time"

type Order struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	ProductID        uint      `gorm:"not null"`
	BuyerID          uint      `gorm:"not null;index"`
	SellerID         uint      `gorm:"not null;index"`
	BuyerLocationID  uint      `gorm:"not null"`
	SellerLocationID uint      `gorm:"not null"`
	Status           string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt        time.Time
}

type Location struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	UserID    uint    `gorm:"not null;index"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Address   string  `gorm:"type:varchar(512);not null"`
}
