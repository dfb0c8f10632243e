package models

// Role represents a user role (e.g. admin, organizer, attendee)
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}
