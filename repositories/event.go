package repositories

import (
	"time"

	"github.com/eventcity-api/database"
	"github.com/eventcity-api/models"
)

// EventRepository handles database operations for events
type EventRepository struct{}

// NewEventRepository creates a new event repository instance
func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// FindAll retrieves all events
func (r *EventRepository) FindAll() ([]models.Event, error) {
	var events []models.Event
	result := database.DB.Find(&events)
	return events, result.Error
}

// FindByID retrieves an event by its ID
func (r *EventRepository) FindByID(id uint) (models.Event, error) {
	var event models.Event
	result := database.DB.First(&event, "id = ?", id)
	return event, result.Error
}

// Create inserts a new event into the database
func (r *EventRepository) Create(event models.Event) (models.Event, error) {
	result := database.DB.Create(&event)
	return event, result.Error
}

// Update modifies an existing event
func (r *EventRepository) Update(event models.Event) (models.Event, error) {
	result := database.DB.Save(&event)
	return event, result.Error
}

// Delete removes an event from the database
func (r *EventRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Event{}, "id = ?", id)
	return result.Error
}

// Exists checks if an event exists
func (r *EventRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByTitleAndStartsAt checks if an event with the same title and
// start time is already published
func (r *EventRepository) ExistsByTitleAndStartsAt(title string, startsAt time.Time) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Event{}).
		Where("title = ? AND starts_at = ?", title, startsAt).
		Count(&count).Error
	return count > 0, err
}
