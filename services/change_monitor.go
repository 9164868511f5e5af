package services

import (
	"time"

	"github.com/yeremiapane/rotibox/live"
	"github.com/yeremiapane/rotibox/models"
	"github.com/yeremiapane/rotibox/utils"
	"gorm.io/gorm"
)

// ChangeMonitor membaca jurnal db_changes (diisi trigger) dan
// menyiarkan snapshot baru ke subscriber websocket. Ini pengganti
// live-query Room: view yang subscribe selalu menerima hasil terbaru
// setiap tabel di bawahnya berubah.
type ChangeMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewChangeMonitor(db *gorm.DB) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

func (cm *ChangeMonitor) checkChanges() {
	var changes []models.DBChange

	tx := cm.DB.Begin()

	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		utils.ErrorLogger.Errorf("Error fetching changes: %v", err)
		return
	}

	for _, change := range changes {
		switch change.TableName {
		case "menus":
			cm.processMenuChange(change)
		case "orders":
			cm.processOrderChange(change)
		case "cart_items":
			cm.processCartChange(change)
		case "info_contacts":
			cm.processContactChange(change)
		}

		if err := tx.Model(&models.DBChange{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			utils.ErrorLogger.Errorf("Error marking change as processed: %v", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.ErrorLogger.Errorf("Error committing change batch: %v", err)
		tx.Rollback()
	}
}

func (cm *ChangeMonitor) processMenuChange(change models.DBChange) {
	if change.ActionType == "DELETE" {
		live.BroadcastMenuDelete(uint(change.RecordID))
		return
	}

	var menu models.Menu
	if err := cm.DB.First(&menu, change.RecordID).Error; err != nil {
		utils.ErrorLogger.Errorf("Error fetching menu %d: %v", change.RecordID, err)
		return
	}
	live.BroadcastMenuUpdate(menu)
}

func (cm *ChangeMonitor) processOrderChange(change models.DBChange) {
	if change.ActionType == "DELETE" {
		return
	}

	var order models.Order
	if err := cm.DB.Preload("OrderItems").First(&order, change.RecordID).Error; err != nil {
		utils.ErrorLogger.Errorf("Error fetching order %d: %v", change.RecordID, err)
		return
	}
	live.BroadcastOrderUpdate(order)
}

func (cm *ChangeMonitor) processCartChange(change models.DBChange) {
	if change.ActionType == "DELETE" {
		return
	}

	var item models.CartItem
	if err := cm.DB.First(&item, change.RecordID).Error; err != nil {
		return
	}
	live.BroadcastCartUpdate(item.UserID)
}

func (cm *ChangeMonitor) processContactChange(change models.DBChange) {
	if change.ActionType == "DELETE" {
		return
	}

	var info models.InfoContact
	if err := cm.DB.First(&info, change.RecordID).Error; err != nil {
		return
	}
	live.BroadcastContactUpdate(info)
}
