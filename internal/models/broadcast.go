package models

import "time"

// Broadcast is a GM announcement shown to every team until acknowledged.
type Broadcast struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// BroadcastReceipt marks that one team has acknowledged one broadcast.
// A broadcast is pending for a team as long as no receipt row exists.
type BroadcastReceipt struct {
	TeamID      uint `gorm:"primaryKey;autoIncrement:false"`
	BroadcastID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (BroadcastReceipt) TableName() string { return "broadcast_receipts" }
