package models

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string    `json:"firstName" gorm:"not null;size:100"`
	LastName  string    `json:"lastName" gorm:"not null;size:100"`
	BirthDate time.Time `json:"birthDate" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;not null;size:9"`
	Password  string    `json:"-" gorm:"not null;size:255"` // Password hash is not exposed in JSON
	RoleID    uint      `json:"roleId" gorm:"not null;index"`

	// Relations
	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:SET DEFAULT"`
}
