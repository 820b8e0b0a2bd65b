package models

import "time"

// Message is one chat line between a team and the GM, tagged with its origin.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id"`
	FromGM    bool      `json:"from_gm" gorm:"column:from_gm"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
