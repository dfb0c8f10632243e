package models

import (
	"time"
)

// Event represents a published event in the city
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null;uniqueIndex:idx_events_title_starts_at"`
	Description string    `json:"description" gorm:"not null"`
	StartsAt    time.Time `json:"startsAt" gorm:"not null;uniqueIndex:idx_events_title_starts_at"`
	Location    string    `json:"location" gorm:"not null"`
	Photo       string    `json:"photo" gorm:"not null"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	CategoryID  uint      `json:"categoryId" gorm:"not null;index"`

	// Relations
	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET DEFAULT"`
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET DEFAULT"`
}
