package entities

import (
	"time"

	"handshake.backend/pkg/geo"
)

// OrderStatus represents an order lifecycle state
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Location is a user's stored meeting location
type Location struct {
	ID        uint    `json:"id"`
	UserID    uint    `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Order represents a purchase between a buyer and a seller
type Order struct {
	ID               uint        `json:"id"`
	ProductID        uint        `json:"product_id"`
	BuyerID          uint        `json:"buyer_id"`
	SellerID         uint        `json:"seller_id"`
	BuyerLocationID  uint        `json:"-"`
	SellerLocationID uint        `json:"-"`
	Status           OrderStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// Participant reports whether the user is the buyer or the seller
func (o *Order) Participant(userID uint) bool {
	return o.BuyerID == userID || o.SellerID == userID
}

// LocationInput represents a location supplied by a client. Coordinates are
// range-checked rather than required so zero (equator, prime meridian) binds.
type LocationInput struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Address   string  `json:"address" binding:"required"`
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	ProductID     uint          `json:"product_id" binding:"required"`
	SellerID      uint          `json:"seller_id" binding:"required"`
	BuyerLocation LocationInput `json:"buyer_location" binding:"required"`
}

// OrderDetails is an order joined with both locations and the meeting point
type OrderDetails struct {
	Order          *Order             `json:"order"`
	BuyerLocation  *Location          `json:"buyer_location"`
	SellerLocation *Location          `json:"seller_location"`
	MidpointInfo   geo.MidpointResult `json:"midpoint_info"`
}
