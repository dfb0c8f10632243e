package controllers

import (
	"net/http"
	"time"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/config"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/repositories"
	"github.com/eventcity-api/services"
	"github.com/gin-gonic/gin"
)

// EventController handles HTTP requests for events and their attendees
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new event controller instance
func NewEventController() *EventController {
	storage := services.NewStorageService(
		config.StorageURL(),
		config.StorageKey(),
		config.StorageBucket(),
		services.NewHTTPFetcher(30*time.Second),
	)
	return &EventController{
		eventService: services.NewEventService(
			repositories.NewEventRepository(),
			repositories.NewUserRepository(),
			repositories.NewCategoryRepository(),
			repositories.NewUserEventRepository(),
			storage,
		),
	}
}

// GetEvents handles GET /api/events
func (c *EventController) GetEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/events/:id
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEvent(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// CreateEvent handles POST /api/events
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var request dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	event, err := c.eventService.CreateEvent(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

// UpdateEvent handles PATCH /api/events/:id
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	event, err := c.eventService.UpdateEvent(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/events/:id
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddAttendee handles POST /api/events/:id/attendees
func (c *EventController) AddAttendee(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.AttendRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	if err := c.eventService.Attend(id, request); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"eventId": id, "userId": request.UserID})
}

// GetAttendees handles GET /api/events/:id/attendees
func (c *EventController) GetAttendees(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	users, err := c.eventService.ListAttendees(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// RemoveAttendee handles DELETE /api/events/:id/attendees/:userId
func (c *EventController) RemoveAttendee(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}

	if err := c.eventService.Unattend(id, userID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
