package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/app/services"
	"github.com/emre/uniportal/internal/middleware"
)

// EventController serves events and announcements.
type EventController struct {
	eventService        *services.EventService
	announcementService *services.AnnouncementService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService, announcementService *services.AnnouncementService) *EventController {
	return &EventController{
		eventService:        eventService,
		announcementService: announcementService,
	}
}

// Events returns upcoming, past and registered events
// @Summary Get events page
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EventsResponse}
// @Router /events [get]
func (c *EventController) Events(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	events, err := c.eventService.Events(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// RegisterForEvent signs the caller up for an event
// @Summary Register for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /events/{id}/register [post]
func (c *EventController) RegisterForEvent(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || eventID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.eventService.Register(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Registered for event"))
}

// Announcements lists recent announcements
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Router /announcements [get]
func (c *EventController) Announcements(ctx *gin.Context) {
	announcements, err := c.announcementService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}
