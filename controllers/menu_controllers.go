package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rotibox/live"
	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	ImageUrl    string `json:"image_url"`
}

func validateMenuRequest(req menuRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("nama menu tidak boleh kosong")
	}
	if req.Price <= 0 {
		return errors.New("harga harus lebih dari 0")
	}
	if req.Stock < 0 {
		return errors.New("stok tidak boleh negatif")
	}
	return nil
}

// GetActiveMenus -> katalog untuk pelanggan (hanya menu aktif)
func (mc *MenuController) GetActiveMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Where("is_active = ?", true).Order("name asc").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of active menus", menus)
}

// GetAllMenus -> semua menu untuk admin
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Order("created_at desc").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByID -> detail 1 menu
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	var menu models.Menu
	if err := mc.DB.First(&menu, c.Param("menu_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// GetMenuCount -> jumlah menu di katalog (dashboard admin)
func (mc *MenuController) GetMenuCount(c *gin.Context) {
	var count int64
	if err := mc.DB.Model(&models.Menu{}).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu count", gin.H{"count": count})
}

// CreateMenu (admin)
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateMenuRequest(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu := models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageUrl:    req.ImageUrl,
		IsActive:    true,
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMenuUpdate(menu)

	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu (admin)
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var menu models.Menu
	if err := mc.DB.First(&menu, c.Param("menu_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateMenuRequest(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu.Name = req.Name
	menu.Description = req.Description
	menu.Price = req.Price
	menu.Stock = req.Stock
	menu.ImageUrl = req.ImageUrl

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMenuUpdate(menu)

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// SetMenuActive -> update sempit: hanya is_active + updated_at
func (mc *MenuController) SetMenuActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, c.Param("menu_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := mc.DB.Model(&menu).Updates(map[string]interface{}{
		"is_active":  *req.IsActive,
		"updated_at": time.Now(),
	}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	menu.IsActive = *req.IsActive
	live.BroadcastMenuUpdate(menu)

	utils.RespondJSON(c, http.StatusOK, "Menu status updated", menu)
}

// DeleteMenu (admin).
// Catatan: cascade ikut menghapus cart_items dan order_items yang
// mereferensikan menu ini, mengikuti skema aslinya.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	var menu models.Menu
	if err := mc.DB.First(&menu, c.Param("menu_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMenuDelete(menu.ID)

	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": menu.ID})
}
