package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "quiniela-tool-backend/internal/common/errors"
	"quiniela-tool-backend/internal/common/middleware"
	"quiniela-tool-backend/internal/features/events/models"
	"quiniela-tool-backend/internal/features/events/repository"
	eventservice "quiniela-tool-backend/internal/features/events/service"
)

type EventHandler struct {
	service eventservice.EventService
}

func NewEventHandler(service eventservice.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")
	{
		events.POST("", h.create)
		events.GET("", h.listSelectable)
		events.GET("/:id", h.getByID)
	}
}

// @Summary Add a sporting event to the catalog
// @Tags events
// @Accept json
// @Produce json
// @Param input body models.Event true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) create(c *gin.Context) {
	var input models.Event
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to create event"))
		return
	}

	c.JSON(http.StatusCreated, event)
}

// @Summary List selectable events
// @Description Lists the catalog events a new quiniela may still include, soonest first. Optional sport and league filters.
// @Tags events
// @Produce json
// @Param sport query string false "Sport filter"
// @Param league query string false "League filter"
// @Success 200 {array} models.Event
// @Failure 500 {object} map[string]string
// @Router /events [get]
func (h *EventHandler) listSelectable(c *gin.Context) {
	filter := eventservice.EventFilter{
		Sport:  c.Query("sport"),
		League: c.Query("league"),
	}

	events, err := h.service.ListSelectable(c.Request.Context(), filter)
	if err != nil {
		middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to list events"))
		return
	}

	c.JSON(http.StatusOK, events)
}

// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) getByID(c *gin.Context) {
	event, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			middleware.SendError(c, apperrors.NewEventNotFoundError(c.Param("id")))
			return
		}
		middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to get event"))
		return
	}

	c.JSON(http.StatusOK, event)
}
