package models

import "time"

// GameStateID is the fixed primary key of the single timer row.
const GameStateID = 1

// GameState holds the one active round timer. The row is absent while no
// round is running; StartTime stays nil only for defensive reads.
type GameState struct {
	ID              uint       `gorm:"primaryKey"`
	StartTime       *time.Time `gorm:"column:start_time"`
	DurationMinutes int        `gorm:"column:duration_minutes"`
}

func (GameState) TableName() string { return "game_state" }
