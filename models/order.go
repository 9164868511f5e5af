package models

import (
	"fmt"
	"time"
)

// Order status lifecycle
const (
	StatusAwaitingConfirmation = "awaiting_confirmation"
	StatusProcessing           = "processing"
	StatusCompleted            = "completed"
	StatusCancelled            = "cancelled"
)

// Delivery modes
const (
	DeliveryPickup   = "pickup"
	DeliveryDelivery = "delivery"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	User        *User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	OrderDate   time.Time   `gorm:"not null" json:"order_date"`
	PickupDate  time.Time   `gorm:"not null" json:"pickup_date"`
	Delivery    string      `gorm:"type:varchar(20);not null" json:"delivery"`
	Status      string      `gorm:"type:varchar(32);not null;default:'awaiting_confirmation'" json:"status"`
	TotalAmount int64       `gorm:"not null;default:0" json:"total_amount"`
	Note        string      `gorm:"type:text" json:"note"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems  []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

// ValidStatus melaporkan apakah s salah satu status order yang dikenal.
func ValidStatus(s string) bool {
	switch s {
	case StatusAwaitingConfirmation, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal -> completed dan cancelled tidak boleh berpindah status lagi.
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled
}

// CanTransitionTo memeriksa legalitas perpindahan status:
//
//	awaiting_confirmation -> processing | cancelled
//	processing            -> completed  | cancelled
//	completed, cancelled  -> (terminal)
func (o *Order) CanTransitionTo(next string) bool {
	switch o.Status {
	case StatusAwaitingConfirmation:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// CodeSuffix mengembalikan identifier pendek untuk ditampilkan ke user
// dan untuk baris export laporan.
func (o *Order) CodeSuffix() string {
	if len(o.Code) <= 8 {
		return fmt.Sprintf("#%s", o.Code)
	}
	return fmt.Sprintf("#%s", o.Code[len(o.Code)-8:])
}
