package Controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/rotibox/models"
)

func futurePickupMillis() int64 {
	return time.Now().Add(24 * time.Hour).UnixMilli()
}

func TestCheckoutSnapshotsCartAndClearsIt(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	user, token := createUser(t, db, "budi@example.com", "rahasia123", models.RoleCustomer)
	cokelat := createMenu(t, db, "Roti Cokelat", 18000, 10)
	keju := createMenu(t, db, "Roti Keju", 20000, 10)

	assert.NoError(t, db.Create(&models.CartItem{UserID: user.ID, MenuID: cokelat.ID, Quantity: 2}).Error)
	assert.NoError(t, db.Create(&models.CartItem{UserID: user.ID, MenuID: keju.ID, Quantity: 1}).Error)

	w := doJSON(t, r, "POST", "/checkout", token, map[string]interface{}{
		"pickup_date":    futurePickupMillis(),
		"delivery":       models.DeliveryPickup,
		"payment_method": "Transfer Bank",
		"note":           "tolong dibungkus rapi",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := parseResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2*18000+20000), data["total"])
	code := data["code"].(string)
	assert.True(t, strings.HasPrefix(code, "RB-"))

	var order models.Order
	assert.NoError(t, db.Preload("OrderItems").Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, models.StatusAwaitingConfirmation, order.Status)
	assert.Equal(t, int64(56000), order.TotalAmount)
	assert.Len(t, order.OrderItems, 2)

	// Item order adalah snapshot: nama dan harga tersalin dari menu
	for _, item := range order.OrderItems {
		switch item.MenuID {
		case cokelat.ID:
			assert.Equal(t, "Roti Cokelat", item.MenuName)
			assert.Equal(t, int64(18000), item.Price)
			assert.Equal(t, int64(36000), item.Subtotal)
		case keju.ID:
			assert.Equal(t, "Roti Keju", item.MenuName)
			assert.Equal(t, int64(20000), item.Price)
			assert.Equal(t, int64(20000), item.Subtotal)
		default:
			t.Fatalf("unexpected menu id %d in order items", item.MenuID)
		}
	}

	// Metode pembayaran menjadi prefix catatan
	assert.True(t, strings.HasPrefix(order.Note, "Metode Pembayaran: Transfer Bank\n"))
	assert.Contains(t, order.Note, "tolong dibungkus rapi")

	// Keranjang dikosongkan setelah checkout
	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Equal(t, int64(0), cartCount)
}

// Mengubah harga menu setelah checkout tidak boleh mengubah total order
// ataupun harga pada item order yang sudah tersimpan.
func TestOrderTotalImmuneToMenuPriceChange(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	user, token := createUser(t, db, "budi@example.com", "rahasia123", models.RoleCustomer)
	menu := createMenu(t, db, "Roti Tawar", 15000, 10)
	assert.NoError(t, db.Create(&models.CartItem{UserID: user.ID, MenuID: menu.ID, Quantity: 3}).Error)

	w := doJSON(t, r, "POST", "/checkout", token, map[string]interface{}{
		"pickup_date":    futurePickupMillis(),
		"delivery":       models.DeliveryPickup,
		"payment_method": "COD",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.NoError(t, db.Model(&menu).Update("price", 99000).Error)

	var order models.Order
	assert.NoError(t, db.Preload("OrderItems").Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, int64(45000), order.TotalAmount)
	assert.Len(t, order.OrderItems, 1)
	assert.Equal(t, int64(15000), order.OrderItems[0].Price)
	assert.Equal(t, int64(45000), order.OrderItems[0].Subtotal)
}

func TestCheckoutValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	user, token := createUser(t, db, "budi@example.com", "rahasia123", models.RoleCustomer)

	// Keranjang kosong
	w := doJSON(t, r, "POST", "/checkout", token, map[string]interface{}{
		"pickup_date":    futurePickupMillis(),
		"delivery":       models.DeliveryPickup,
		"payment_method": "COD",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, "keranjang kosong", resp["message"])

	menu := createMenu(t, db, "Roti Tawar", 15000, 10)
	assert.NoError(t, db.Create(&models.CartItem{UserID: user.ID, MenuID: menu.ID, Quantity: 1}).Error)

	// Tanggal pengantaran di masa lalu
	w = doJSON(t, r, "POST", "/checkout", token, map[string]interface{}{
		"pickup_date":    time.Now().Add(-1 * time.Hour).UnixMilli(),
		"delivery":       models.DeliveryPickup,
		"payment_method": "COD",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Metode pengiriman tidak dikenal
	w = doJSON(t, r, "POST", "/checkout", token, map[string]interface{}{
		"pickup_date":    futurePickupMillis(),
		"delivery":       "teleport",
		"payment_method": "COD",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tidak ada metode pembayaran
	w = doJSON(t, r, "POST", "/checkout", token, map[string]interface{}{
		"pickup_date": futurePickupMillis(),
		"delivery":    models.DeliveryPickup,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tidak ada order yang tersimpan dari percobaan gagal
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateStatusFollowsStateMachine(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	user, _ := createUser(t, db, "budi@example.com", "rahasia123", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", "rahasia123", models.RoleAdmin)

	order := models.Order{
		Code: "RB-TEST0001", UserID: user.ID,
		OrderDate: time.Now(), PickupDate: time.Now().Add(24 * time.Hour),
		Delivery: models.DeliveryPickup, Status: models.StatusAwaitingConfirmation,
		TotalAmount: 15000,
	}
	assert.NoError(t, db.Create(&order).Error)

	statusURL := fmt.Sprintf("/admin/orders/%d/status", order.ID)

	// awaiting_confirmation -> completed dilarang (harus lewat processing)
	w := doJSON(t, r, "PATCH", statusURL, adminToken, map[string]interface{}{"status": models.StatusCompleted})
	assert.Equal(t, http.StatusConflict, w.Code)

	// awaiting_confirmation -> processing
	w = doJSON(t, r, "PATCH", statusURL, adminToken, map[string]interface{}{"status": models.StatusProcessing})
	assert.Equal(t, http.StatusOK, w.Code)

	// processing -> completed
	w = doJSON(t, r, "PATCH", statusURL, adminToken, map[string]interface{}{"status": models.StatusCompleted})
	assert.Equal(t, http.StatusOK, w.Code)

	// Terminal: tidak ada transisi apa pun lagi
	w = doJSON(t, r, "PATCH", statusURL, adminToken, map[string]interface{}{"status": models.StatusProcessing})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Status asing -> 400
	w = doJSON(t, r, "PATCH", statusURL, adminToken, map[string]interface{}{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var saved models.Order
	assert.NoError(t, db.First(&saved, order.ID).Error)
	assert.Equal(t, models.StatusCompleted, saved.Status)
}

func TestCancelOrder(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	user, token := createUser(t, db, "budi@example.com", "rahasia123", models.RoleCustomer)

	order := models.Order{
		Code: "RB-TEST0002", UserID: user.ID,
		OrderDate: time.Now(), PickupDate: time.Now().Add(24 * time.Hour),
		Delivery: models.DeliveryPickup, Status: models.StatusAwaitingConfirmation,
		TotalAmount: 15000,
	}
	assert.NoError(t, db.Create(&order).Error)

	w := doJSON(t, r, "POST", fmt.Sprintf("/orders/%d/cancel", order.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.Order
	assert.NoError(t, db.First(&saved, order.ID).Error)
	assert.Equal(t, models.StatusCancelled, saved.Status)

	// Cancelled adalah terminal: cancel ulang ditolak
	w = doJSON(t, r, "POST", fmt.Sprintf("/orders/%d/cancel", order.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetOrderOwnership(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	userA, _ := createUser(t, db, "a@example.com", "rahasia123", models.RoleCustomer)
	_, tokenB := createUser(t, db, "b@example.com", "rahasia123", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", "rahasia123", models.RoleAdmin)

	order := models.Order{
		Code: "RB-TEST0003", UserID: userA.ID,
		OrderDate: time.Now(), PickupDate: time.Now().Add(24 * time.Hour),
		Delivery: models.DeliveryDelivery, Status: models.StatusAwaitingConfirmation,
		TotalAmount: 20000,
	}
	assert.NoError(t, db.Create(&order).Error)

	// Pelanggan lain -> 403
	w := doJSON(t, r, "GET", fmt.Sprintf("/orders/%d", order.ID), tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin boleh lihat semua
	w = doJSON(t, r, "GET", fmt.Sprintf("/admin/orders/%d", order.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAllOrdersStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	user, _ := createUser(t, db, "budi@example.com", "rahasia123", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", "rahasia123", models.RoleAdmin)

	for i, status := range []string{models.StatusAwaitingConfirmation, models.StatusCompleted, models.StatusCompleted} {
		order := models.Order{
			Code: fmt.Sprintf("RB-FILT%04d", i), UserID: user.ID,
			OrderDate: time.Now(), PickupDate: time.Now().Add(24 * time.Hour),
			Delivery: models.DeliveryPickup, Status: status, TotalAmount: 10000,
		}
		assert.NoError(t, db.Create(&order).Error)
	}

	w := doJSON(t, r, "GET", "/admin/orders?status=completed", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.Len(t, resp["data"], 2)

	w = doJSON(t, r, "GET", "/admin/orders?status=shipped", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
