package models

import "time"

// InfoContact adalah metadata toko (baris tunggal).
type InfoContact struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StorePhone   string    `gorm:"type:varchar(32);not null" json:"store_phone"`
	StoreEmail   string    `gorm:"type:varchar(255);not null" json:"store_email"`
	StoreAddress string    `gorm:"type:text;not null" json:"store_address"`
	InfoPayment  string    `gorm:"type:text" json:"info_payment"`
	Description  string    `gorm:"type:text" json:"description"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
