package dto

import "time"

// CreateEventRequest carries the payload for publishing an event. Photo is
// the source URL of the image to sideload into storage.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Photo       string    `json:"photo" binding:"required"`
	UserID      uint      `json:"userId" binding:"required"`
	CategoryID  uint      `json:"categoryId" binding:"required"`
}

// UpdateEventRequest carries a partial update. Nil fields are left untouched.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartsAt    *time.Time `json:"startsAt"`
	Location    *string    `json:"location"`
	Photo       *string    `json:"photo"`
	UserID      *uint      `json:"userId"`
	CategoryID  *uint      `json:"categoryId"`
}

// EventResponse represents an event in API responses. Organizer and
// category are exposed as bare ids to avoid serializing lazy relations.
type EventResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"startsAt"`
	Location    string    `json:"location"`
	Photo       string    `json:"photo"`
	OrganizerID uint      `json:"organizerId"`
	CategoryID  uint      `json:"categoryId"`
}

// AttendRequest registers a user as attendee of an event
type AttendRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
