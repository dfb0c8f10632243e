package repositories

import (
	"github.com/eventcity-api/database"
	"github.com/eventcity-api/models"
)

// UserEventRepository handles database operations for event attendance
type UserEventRepository struct{}

// NewUserEventRepository creates a new attendance repository instance
func NewUserEventRepository() *UserEventRepository {
	return &UserEventRepository{}
}

// Create registers a user as attendee of an event
func (r *UserEventRepository) Create(userEvent models.UserEvent) (models.UserEvent, error) {
	result := database.DB.Create(&userEvent)
	return userEvent, result.Error
}

// Delete removes an attendance record
func (r *UserEventRepository) Delete(userID, eventID uint) error {
	result := database.DB.Delete(&models.UserEvent{}, "user_id = ? AND event_id = ?", userID, eventID)
	return result.Error
}

// Exists checks if a user already attends an event
func (r *UserEventRepository) Exists(userID, eventID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.UserEvent{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

// FindUsersByEventID retrieves the users attending an event
func (r *UserEventRepository) FindUsersByEventID(eventID uint) ([]models.User, error) {
	var users []models.User
	err := database.DB.Model(&models.User{}).Preload("Role").
		Joins("JOIN user_events ON user_events.user_id = users.id").
		Where("user_events.event_id = ?", eventID).
		Find(&users).Error
	return users, err
}
