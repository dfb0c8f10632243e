package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/models"
	"gorm.io/gorm"
)

// EventRepository defines the persistence contract the event service expects
type EventRepository interface {
	FindAll() ([]models.Event, error)
	FindByID(id uint) (models.Event, error)
	Create(event models.Event) (models.Event, error)
	Update(event models.Event) (models.Event, error)
	Delete(id uint) error
	ExistsByTitleAndStartsAt(title string, startsAt time.Time) (bool, error)
}

// UserEventRepository defines the persistence contract for attendance
type UserEventRepository interface {
	Create(userEvent models.UserEvent) (models.UserEvent, error)
	Delete(userID, eventID uint) error
	Exists(userID, eventID uint) (bool, error)
	FindUsersByEventID(eventID uint) ([]models.User, error)
}

// ImageStorer sideloads an external image into object storage and returns
// its public URL
type ImageStorer interface {
	Sideload(sourceURL string) (string, error)
}

// EventService handles business logic for events and their attendees
type EventService struct {
	repo         EventRepository
	userRepo     UserRepository
	categoryRepo CategoryRepository
	attendRepo   UserEventRepository
	storage      ImageStorer
}

// NewEventService creates a new event service instance
func NewEventService(
	repo EventRepository,
	userRepo UserRepository,
	categoryRepo CategoryRepository,
	attendRepo UserEventRepository,
	storage ImageStorer,
) *EventService {
	return &EventService{
		repo:         repo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		attendRepo:   attendRepo,
		storage:      storage,
	}
}

// ListEvents retrieves all events. Unlike roles and users, an empty store
// yields an empty list rather than an error.
func (s *EventService) ListEvents() ([]dto.EventResponse, error) {
	events, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.Internal("failed to list events", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toEventResponse(event))
	}
	return responses, nil
}

// GetEvent retrieves an event by its ID
func (s *EventService) GetEvent(id uint) (dto.EventResponse, error) {
	event, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, apperrors.NotFound("event", id)
		}
		return dto.EventResponse{}, apperrors.Internal("failed to get event", err)
	}
	return toEventResponse(event), nil
}

// CreateEvent publishes a new event. The (title, startsAt) pair must be
// unique, organizer and category must exist, and the photo is sideloaded
// into storage before anything is persisted.
func (s *EventService) CreateEvent(req dto.CreateEventRequest) (dto.EventResponse, error) {
	exists, err := s.repo.ExistsByTitleAndStartsAt(req.Title, req.StartsAt)
	if err != nil {
		return dto.EventResponse{}, apperrors.Internal("failed to check event uniqueness", err)
	}
	if exists {
		return dto.EventResponse{}, apperrors.Conflict("event", "title", fmt.Sprintf("an event titled %q at that time already exists", req.Title))
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, apperrors.NotFound("user", req.UserID)
		}
		return dto.EventResponse{}, apperrors.Internal("failed to resolve organizer", err)
	}
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, apperrors.NotFound("category", req.CategoryID)
		}
		return dto.EventResponse{}, apperrors.Internal("failed to resolve category", err)
	}

	// Sideload before persisting so a storage failure leaves no event behind
	photoURL, err := s.storage.Sideload(req.Photo)
	if err != nil {
		return dto.EventResponse{}, err
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		Location:    req.Location,
		Photo:       photoURL,
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
	}

	created, err := s.repo.Create(event)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.EventResponse{}, apperrors.Conflict("event", "title", fmt.Sprintf("an event titled %q at that time already exists", req.Title))
		}
		return dto.EventResponse{}, apperrors.Internal("failed to create event", err)
	}
	return toEventResponse(created), nil
}

// UpdateEvent applies a partial update: only the fields present in the
// request overwrite the stored event. A photo URL provided here replaces
// the stored one as-is, sideloading only happens on creation.
func (s *EventService) UpdateEvent(id uint, req dto.UpdateEventRequest) (dto.EventResponse, error) {
	event, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EventResponse{}, apperrors.NotFound("event", id)
		}
		return dto.EventResponse{}, apperrors.Internal("failed to get event", err)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Photo != nil {
		event.Photo = *req.Photo
	}
	if req.UserID != nil {
		if _, err := s.userRepo.FindByID(*req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.EventResponse{}, apperrors.NotFound("user", *req.UserID)
			}
			return dto.EventResponse{}, apperrors.Internal("failed to resolve organizer", err)
		}
		event.UserID = *req.UserID
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.EventResponse{}, apperrors.NotFound("category", *req.CategoryID)
			}
			return dto.EventResponse{}, apperrors.Internal("failed to resolve category", err)
		}
		event.CategoryID = *req.CategoryID
	}

	updated, err := s.repo.Update(event)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.EventResponse{}, apperrors.Conflict("event", "title", fmt.Sprintf("an event titled %q at that time already exists", event.Title))
		}
		return dto.EventResponse{}, apperrors.Internal("failed to update event", err)
	}
	return toEventResponse(updated), nil
}

// DeleteEvent removes an event by its ID
func (s *EventService) DeleteEvent(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("event", id)
		}
		return apperrors.Internal("failed to get event", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.Internal("failed to delete event", err)
	}
	return nil
}

// Attend registers a user as attendee of an event
func (s *EventService) Attend(eventID uint, req dto.AttendRequest) error {
	if _, err := s.repo.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("event", eventID)
		}
		return apperrors.Internal("failed to get event", err)
	}
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user", req.UserID)
		}
		return apperrors.Internal("failed to get user", err)
	}

	exists, err := s.attendRepo.Exists(req.UserID, eventID)
	if err != nil {
		return apperrors.Internal("failed to check attendance", err)
	}
	if exists {
		return apperrors.Conflict("attendance", "userId", fmt.Sprintf("user %d already attends event %d", req.UserID, eventID))
	}

	if _, err := s.attendRepo.Create(models.UserEvent{UserID: req.UserID, EventID: eventID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("attendance", "userId", fmt.Sprintf("user %d already attends event %d", req.UserID, eventID))
		}
		return apperrors.Internal("failed to register attendance", err)
	}
	return nil
}

// ListAttendees retrieves the users attending an event
func (s *EventService) ListAttendees(eventID uint) ([]dto.UserResponse, error) {
	if _, err := s.repo.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event", eventID)
		}
		return nil, apperrors.Internal("failed to get event", err)
	}

	users, err := s.attendRepo.FindUsersByEventID(eventID)
	if err != nil {
		return nil, apperrors.Internal("failed to list attendees", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses, nil
}

// Unattend removes an attendance record
func (s *EventService) Unattend(eventID, userID uint) error {
	exists, err := s.attendRepo.Exists(userID, eventID)
	if err != nil {
		return apperrors.Internal("failed to check attendance", err)
	}
	if !exists {
		return apperrors.NotFoundMsg("attendance", fmt.Sprintf("user %d does not attend event %d", userID, eventID))
	}
	if err := s.attendRepo.Delete(userID, eventID); err != nil {
		return apperrors.Internal("failed to remove attendance", err)
	}
	return nil
}

func toEventResponse(event models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		Location:    event.Location,
		Photo:       event.Photo,
		OrganizerID: event.UserID,
		CategoryID:  event.CategoryID,
	}
}
