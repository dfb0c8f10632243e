package models

// UserEvent links a user to an event they attend
type UserEvent struct {
	UserID  uint `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	EventID uint `json:"eventId" gorm:"primaryKey;autoIncrement:false"`

	// Relations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}
