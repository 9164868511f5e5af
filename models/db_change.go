package models

import "time"

// DBChange adalah jurnal perubahan tabel, diisi oleh trigger dan
// dibaca oleh ChangeMonitor untuk broadcast live update.
type DBChange struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	TableName  string    `gorm:"type:varchar(64);not null" json:"table_name"`
	RecordID   int64     `gorm:"not null" json:"record_id"`
	ActionType string    `gorm:"type:varchar(16);not null" json:"action_type"`
	ChangedAt  time.Time `gorm:"not null" json:"changed_at"`
	Processed  bool      `gorm:"not null;default:false" json:"processed"`
}
