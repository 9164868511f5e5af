package models

import "time"

// Menu adalah item katalog roti. Stock adalah batas maksimal pemesanan
// per item, tidak berkurang saat terjual.
type Menu struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	ImageUrl    string    `gorm:"type:varchar(255)" json:"image_url"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
