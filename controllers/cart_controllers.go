package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rotibox/live"
	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/utils"
	"gorm.io/gorm"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// GetCart -> isi keranjang user beserta detail menu, terbaru dulu
func (cc *CartController) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var items []models.CartItem
	if err := cc.DB.Preload("Menu").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart items", items)
}

// GetCartCount -> jumlah baris keranjang (badge di UI)
func (cc *CartController) GetCartCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var count int64
	if err := cc.DB.Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart item count", gin.H{"count": count})
}

// AddToCart -> merge semantics: jika pasangan (user, menu) sudah ada,
// quantity ditambahkan ke baris yang sama, bukan membuat baris baru.
// Quantity hasil tidak boleh melebihi stok menu.
func (cc *CartController) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req struct {
		MenuID   uint `json:"menu_id" binding:"required"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var menu models.Menu
	if err := cc.DB.First(&menu, req.MenuID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu tidak ditemukan"))
		return
	}
	if !menu.IsActive {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menu tidak aktif"))
		return
	}

	var item models.CartItem
	tx := cc.DB.Where("user_id = ? AND menu_id = ?", userID, req.MenuID).First(&item)
	if tx.Error == nil {
		newQty := item.Quantity + req.Quantity
		if newQty > menu.Stock {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("jumlah melebihi stok (maksimal %d)", menu.Stock))
			return
		}
		item.Quantity = newQty
		if err := cc.DB.Save(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		live.BroadcastCartUpdate(userID)
		utils.RespondJSON(c, http.StatusOK, "Cart updated", item)
		return
	}
	if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, tx.Error)
		return
	}

	if req.Quantity > menu.Stock {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("jumlah melebihi stok (maksimal %d)", menu.Stock))
		return
	}

	newItem := models.CartItem{
		UserID:   userID,
		MenuID:   req.MenuID,
		Quantity: req.Quantity,
	}
	if err := cc.DB.Create(&newItem).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastCartUpdate(userID)
	utils.RespondJSON(c, http.StatusCreated, "Item added to cart", newItem)
}

// UpdateQuantity -> quantity <= 0 menghapus baris, bukan menyimpan
// nilai non-positif. Quantity baru dibatasi stok menu.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.CartItem
	if err := cc.DB.Where("id = ? AND user_id = ?", c.Param("item_id"), userID).
		First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item tidak ditemukan"))
		return
	}

	if req.Quantity <= 0 {
		if err := cc.DB.Delete(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		live.BroadcastCartUpdate(userID)
		utils.RespondJSON(c, http.StatusOK, "Item removed from cart", gin.H{"item_id": item.ID})
		return
	}

	var menu models.Menu
	if err := cc.DB.First(&menu, item.MenuID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu tidak ditemukan"))
		return
	}
	if req.Quantity > menu.Stock {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("jumlah melebihi stok (maksimal %d)", menu.Stock))
		return
	}

	item.Quantity = req.Quantity
	if err := cc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastCartUpdate(userID)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", item)
}

// RemoveFromCart -> hapus satu baris keranjang
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var item models.CartItem
	if err := cc.DB.Where("id = ? AND user_id = ?", c.Param("item_id"), userID).
		First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("item tidak ditemukan"))
		return
	}

	if err := cc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastCartUpdate(userID)
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", gin.H{"item_id": item.ID})
}

// ClearCart -> kosongkan seluruh keranjang user (dipanggil setelah checkout)
func (cc *CartController) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	if err := cc.DB.Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastCartUpdate(userID)
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
