package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rotibox/live"
	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/utils"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// GetInfoContact -> info kontak toko (baris tunggal).
// Best-effort: belum ada data bukan error, data saja yang null.
func (cc *ContactController) GetInfoContact(c *gin.Context) {
	var info models.InfoContact
	err := cc.DB.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, "Info contact not set", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Info contact", info)
}

// UpdateInfoContact (admin) -> upsert baris tunggal
func (cc *ContactController) UpdateInfoContact(c *gin.Context) {
	var req struct {
		StorePhone   string `json:"store_phone" binding:"required"`
		StoreEmail   string `json:"store_email" binding:"required"`
		StoreAddress string `json:"store_address" binding:"required"`
		InfoPayment  string `json:"info_payment"`
		Description  string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var info models.InfoContact
	err := cc.DB.First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	info.StorePhone = req.StorePhone
	info.StoreEmail = req.StoreEmail
	info.StoreAddress = req.StoreAddress
	info.InfoPayment = req.InfoPayment
	info.Description = req.Description

	if err := cc.DB.Save(&info).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastContactUpdate(info)

	utils.RespondJSON(c, http.StatusOK, "Info contact updated", info)
}
