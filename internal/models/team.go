package models

// Team is one playing group for the current round. Teams share a single
// identity; joining with an existing name reuses the row.
type Team struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
