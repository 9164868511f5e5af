package models

// OrderItem adalah snapshot satu baris keranjang saat order dibuat.
// Nama dan harga disalin dari menu supaya riwayat order tidak ikut
// berubah ketika katalog diedit.
type OrderItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderID  uint   `gorm:"not null;index" json:"order_id"`
	Order    Order  `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID   uint   `gorm:"not null;index" json:"menu_id"`
	Menu     Menu   `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuName string `gorm:"type:varchar(255);not null" json:"menu_name"`
	Price    int64  `gorm:"not null" json:"price"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Subtotal int64  `gorm:"not null" json:"subtotal"`
}
