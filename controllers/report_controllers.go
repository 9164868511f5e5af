package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Preset filter laporan
const (
	PresetToday      = "today"
	PresetLast7Days  = "last_7_days"
	PresetLast30Days = "last_30_days"
)

// PresetRange menghitung rentang waktu untuk preset laporan.
// "today" = tengah malam lokal s/d 23:59:59; last_7/30_days berjalan
// mundur dari sekarang (bukan kalender).
func PresetRange(preset string, now time.Time) (time.Time, time.Time, error) {
	switch preset {
	case PresetToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		return start, end, nil
	case PresetLast7Days:
		return now.AddDate(0, 0, -7), now, nil
	case PresetLast30Days:
		return now.AddDate(0, 0, -30), now, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("preset tidak dikenal: %s", preset)
}

// SalesSummary adalah hasil agregasi laporan penjualan.
type SalesSummary struct {
	TotalRevenue      int64 `json:"total_revenue"`
	OrderCount        int64 `json:"order_count"`
	AverageOrderValue int64 `json:"average_order_value"`
}

// Summarize menghitung metrik laporan dari order yang sudah difilter.
// Rata-rata memakai pembagian integer (truncating), mengikuti perilaku
// aplikasi aslinya.
func Summarize(orders []models.Order) SalesSummary {
	var s SalesSummary
	for _, o := range orders {
		s.TotalRevenue += o.TotalAmount
	}
	s.OrderCount = int64(len(orders))
	if s.OrderCount > 0 {
		s.AverageOrderValue = s.TotalRevenue / s.OrderCount
	}
	return s
}

// completedOrdersBetween -> order selesai dengan order_date di dalam
// rentang INKLUSIF [start, end].
func (rc *ReportController) completedOrdersBetween(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := rc.DB.Preload("OrderItems").
		Where("status = ? AND order_date >= ? AND order_date <= ?",
			models.StatusCompleted, start, end).
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

// parseReportRange membaca preset atau pasangan start/end (unix millis)
// dari query string.
func parseReportRange(c *gin.Context) (time.Time, time.Time, error) {
	if preset := c.Query("preset"); preset != "" {
		return PresetRange(preset, time.Now())
	}

	startMs, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parameter start tidak valid")
	}
	endMs, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parameter end tidak valid")
	}
	return time.UnixMilli(startMs), time.UnixMilli(endMs), nil
}

// GetSalesReport -> laporan penjualan untuk admin
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	start, end, err := parseReportRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := rc.completedOrdersBetween(start, end)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	summary := Summarize(orders)

	utils.RespondJSON(c, http.StatusOK, "Sales report", gin.H{
		"start":   start.UnixMilli(),
		"end":     end.UnixMilli(),
		"summary": summary,
		"orders":  orders,
	})
}

// ExportRow adalah bentuk baris untuk export laporan; rendering file
// dilakukan konsumen, bukan di sini.
type ExportRow struct {
	OrderID   string `json:"order_id"`
	Date      string `json:"date"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
}

// GetSalesExportRows -> baris export (kode order, tanggal, jumlah item,
// total) dari order selesai dalam rentang laporan.
func (rc *ReportController) GetSalesExportRows(c *gin.Context) {
	start, end, err := parseReportRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := rc.completedOrdersBetween(start, end)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows := make([]ExportRow, 0, len(orders))
	for _, o := range orders {
		itemCount := 0
		for _, it := range o.OrderItems {
			itemCount += it.Quantity
		}
		rows = append(rows, ExportRow{
			OrderID:   o.CodeSuffix(),
			Date:      o.OrderDate.Format("02/01/2006"),
			ItemCount: itemCount,
			Total:     o.TotalAmount,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Sales export rows", rows)
}

// GetDashboardStats -> statistik untuk dashboard admin
func (rc *ReportController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalOrders  int64 `json:"total_orders"`
		TodayOrders  int64 `json:"today_orders"`
		TotalRevenue int64 `json:"total_revenue"`
		TodayRevenue int64 `json:"today_revenue"`
		MenuCount    int64 `json:"menu_count"`
		OrderStats   struct {
			AwaitingConfirmation int64 `json:"awaiting_confirmation"`
			Processing           int64 `json:"processing"`
			Completed            int64 `json:"completed"`
			Cancelled            int64 `json:"cancelled"`
		} `json:"order_stats"`
	}

	startOfDay, endOfDay, _ := PresetRange(PresetToday, time.Now())

	rc.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	rc.DB.Model(&models.Order{}).
		Where("order_date >= ? AND order_date <= ?", startOfDay, endOfDay).
		Count(&stats.TodayOrders)

	rc.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusAwaitingConfirmation).
		Count(&stats.OrderStats.AwaitingConfirmation)
	rc.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusProcessing).
		Count(&stats.OrderStats.Processing)
	rc.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusCompleted).
		Count(&stats.OrderStats.Completed)
	rc.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusCancelled).
		Count(&stats.OrderStats.Cancelled)

	rc.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&stats.TotalRevenue)

	rc.DB.Model(&models.Order{}).
		Where("status = ? AND order_date >= ? AND order_date <= ?",
			models.StatusCompleted, startOfDay, endOfDay).
		Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&stats.TodayRevenue)

	rc.DB.Model(&models.Menu{}).Count(&stats.MenuCount)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
