package database

import (
	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/utils"
	"gorm.io/gorm"
)

// Kredensial admin bawaan; password hanya disimpan dalam bentuk hash.
const (
	SeedAdminEmail    = "admin@rotibox.com"
	SeedAdminPassword = "admin123"
)

// SeedMenus adalah katalog awal toko.
var SeedMenus = []models.Menu{
	{Name: "Roti Tawar", Description: "Roti tawar lembut dan segar, cocok untuk sarapan", Price: 15000, ImageUrl: "placeholder_roti_tawar", IsActive: true, Stock: 100},
	{Name: "Roti Cokelat", Description: "Roti manis dengan isian cokelat premium", Price: 18000, ImageUrl: "placeholder_roti_cokelat", IsActive: true, Stock: 100},
	{Name: "Roti Keju", Description: "Roti dengan topping keju melimpah", Price: 20000, ImageUrl: "placeholder_roti_keju", IsActive: true, Stock: 100},
	{Name: "Roti Pisang", Description: "Roti dengan isian pisang segar", Price: 17000, ImageUrl: "placeholder_roti_pisang", IsActive: true, Stock: 100},
	{Name: "Roti Abon", Description: "Roti dengan taburan abon sapi berkualitas", Price: 22000, ImageUrl: "placeholder_roti_abon", IsActive: true, Stock: 100},
	{Name: "Roti Kismis", Description: "Roti manis dengan kismis pilihan", Price: 16000, ImageUrl: "placeholder_roti_kismis", IsActive: true, Stock: 100},
}

// Seed mengisi data awal: 1 akun admin, 6 menu, dan info kontak toko.
// Idempotent: hanya berjalan saat tabel users masih kosong.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(SeedAdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    SeedAdminEmail,
		Password: hashed,
		Phone:    "081234567890",
		Role:     models.RoleAdmin,
		Address:  "Jl. Roti Box No. 1, Jakarta",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	menus := make([]models.Menu, len(SeedMenus))
	copy(menus, SeedMenus)
	if err := db.Create(&menus).Error; err != nil {
		return err
	}

	info := models.InfoContact{
		StorePhone:   "081234567890",
		StoreEmail:   "info@rotibox.com",
		StoreAddress: "Jl. Roti Box No. 1, Jakarta Selatan",
		InfoPayment:  "Transfer Bank BCA: 1234567890 a.n. RotiBox\nCOD tersedia untuk pengiriman",
		Description:  "RotiBox - Toko Roti Terbaik dengan Rasa Istimewa",
	}
	if err := db.Create(&info).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seed completed: 1 admin, %d menus, 1 info contact", len(menus))
	return nil
}
