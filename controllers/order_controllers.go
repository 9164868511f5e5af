package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/rotibox/live"
	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// newOrderCode menghasilkan kode order unik untuk ditampilkan ke user.
func newOrderCode() string {
	return "RB-" + strings.ToUpper(uuid.NewString()[:8])
}

// Checkout -> buat order dari isi keranjang user.
//
// Semua baris keranjang di-snapshot menjadi order items (nama + harga
// disalin dari menu saat ini) dan disimpan bersama order dalam SATU
// transaksi: order tanpa item lengkap tidak pernah tersimpan.
// Pengosongan keranjang dilakukan SETELAH transaksi sebagai operasi
// terpisah, mengikuti perilaku aslinya.
func (oc *OrderController) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req struct {
		PickupDate    int64  `json:"pickup_date" binding:"required"` // unix millis
		Delivery      string `json:"delivery" binding:"required"`
		PaymentMethod string `json:"payment_method"`
		Note          string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Delivery != models.DeliveryPickup && req.Delivery != models.DeliveryDelivery {
		utils.RespondError(c, http.StatusBadRequest, errors.New("metode pengiriman tidak valid"))
		return
	}

	pickupDate := time.UnixMilli(req.PickupDate)
	if !pickupDate.After(time.Now()) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("tanggal pengantaran harus di masa depan"))
		return
	}

	if strings.TrimSpace(req.PaymentMethod) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("pilih metode pembayaran"))
		return
	}

	var cartItems []models.CartItem
	if err := oc.DB.Preload("Menu").
		Where("user_id = ?", userID).
		Find(&cartItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(cartItems) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("keranjang kosong"))
		return
	}

	// Hitung total + bangun snapshot item
	var total int64
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		if ci.Menu.ID == 0 {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("menu untuk item keranjang %d tidak ditemukan", ci.ID))
			return
		}
		subtotal := ci.Menu.Price * int64(ci.Quantity)
		total += subtotal
		orderItems = append(orderItems, models.OrderItem{
			MenuID:   ci.MenuID,
			MenuName: ci.Menu.Name,
			Price:    ci.Menu.Price,
			Quantity: ci.Quantity,
			Subtotal: subtotal,
		})
	}

	fullNote := req.Note
	if req.PaymentMethod != "" {
		fullNote = "Metode Pembayaran: " + req.PaymentMethod + "\n" + req.Note
	}

	order := models.Order{
		Code:        newOrderCode(),
		UserID:      userID,
		OrderDate:   time.Now(),
		PickupDate:  pickupDate,
		Delivery:    req.Delivery,
		Status:      models.StatusAwaitingConfirmation,
		TotalAmount: total,
		Note:        fullNote,
	}

	// Order + items harus mendarat bersama
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		return tx.Create(&orderItems).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Kosongkan keranjang (operasi terpisah, di luar transaksi order)
	if err := oc.DB.Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error; err != nil {
		utils.ErrorLogger.Errorf("Order %s created but cart for user %d not cleared: %v",
			order.Code, userID, err)
	}

	order.OrderItems = orderItems
	live.BroadcastOrderUpdate(order)
	live.BroadcastAdminNotification(fmt.Sprintf("Pesanan baru %s menunggu konfirmasi", order.CodeSuffix()))

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"order_id": order.ID,
		"code":     order.Code,
		"total":    order.TotalAmount,
	})
}

// GetMyOrders -> riwayat pesanan user, terbaru dulu
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var orders []models.Order
	if err := oc.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetAllOrders -> semua order untuk admin, bisa difilter ?status=
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("OrderItems").Preload("User").Order("order_date desc")

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status tidak dikenal: %s", status))
			return
		}
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail 1 order beserta items.
// Pelanggan hanya boleh melihat order miliknya sendiri.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("OrderItems").Preload("User").
		First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	role, _ := c.Get("role")
	if role != models.RoleAdmin {
		userID, _ := currentUserID(c)
		if order.UserID != userID {
			utils.RespondError(c, http.StatusForbidden, errors.New("bukan pesanan anda"))
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateStatus -> pindahkan status order mengikuti state machine.
// Status terminal (completed/cancelled) menolak transisi apa pun.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status tidak dikenal: %s", req.Status))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if order.IsTerminal() {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("order sudah %s dan tidak bisa diubah lagi", order.Status))
		return
	}
	if !order.CanTransitionTo(req.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("transisi %s -> %s tidak diizinkan", order.Status, req.Status))
		return
	}

	order.Status = req.Status
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastOrderUpdate(order)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// CancelOrder -> pelanggan membatalkan pesanannya sendiri selama belum
// terminal; jalur yang sama dengan UpdateStatus untuk legalitas transisi.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var order models.Order
	if err := oc.DB.Where("id = ? AND user_id = ?", c.Param("order_id"), userID).
		First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if order.IsTerminal() {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("order sudah %s dan tidak bisa diubah lagi", order.Status))
		return
	}
	if !order.CanTransitionTo(models.StatusCancelled) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("transisi %s -> %s tidak diizinkan", order.Status, models.StatusCancelled))
		return
	}

	order.Status = models.StatusCancelled
	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastOrderUpdate(order)

	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// DeleteOrder (admin)
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := oc.DB.Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}
