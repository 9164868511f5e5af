package config

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database berdasarkan environment.
// Default: SQLite lokal (rotibox.db) karena seluruh data aplikasi
// tersimpan di perangkat. DB_DRIVER=mysql tersedia untuk deployment lain.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "rotibox.db"
		}
		// SQLite mematikan foreign_keys secara default; tanpa pragma ini
		// seluruh ON DELETE CASCADE di skema tidak berlaku.
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return gorm.Open(sqlite.Open(path+sep+"_foreign_keys=on"), &gorm.Config{})

	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			envOrDefault("DB_HOST", "127.0.0.1"),
			envOrDefault("DB_PORT", "3306"),
			os.Getenv("DB_NAME"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
