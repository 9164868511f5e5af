package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/router"
	"github.com/yeremiapane/rotibox/utils"
)

// setupTestDB menggunakan SQLite in-memory untuk testing
func setupTestDB(t *testing.T) *gorm.DB {
	// Pragma foreign_keys wajib supaya cascade di skema benar-benar jalan
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.InfoContact{},
		&models.DBChange{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func setupRouterForTest(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.SetupRouter(db)
}

// doJSON mengirim request JSON dengan token opsional dan merekam respons
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp
}

// createUser menyimpan user langsung ke DB dan mengembalikan token JWT-nya
func createUser(t *testing.T, db *gorm.DB, email, password, role string) (models.User, string) {
	hashed, err := utils.HashPassword(password)
	assert.NoError(t, err)

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: hashed,
		Phone:    "0811111111",
		Address:  "Jl. Test No. 1",
		Role:     role,
	}
	assert.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Role)
	assert.NoError(t, err)
	return user, token
}

func createMenu(t *testing.T, db *gorm.DB, name string, price int64, stock int) models.Menu {
	menu := models.Menu{
		Name:        name,
		Description: "test menu",
		Price:       price,
		Stock:       stock,
		IsActive:    true,
	}
	assert.NoError(t, db.Create(&menu).Error)
	return menu
}

func init() {
	utils.InitLogger()
}
