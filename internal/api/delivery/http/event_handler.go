package http

import (
	"net/http"
	"strconv"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/service"
	"presscraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

// EventHandler handles HTTP requests for calendar events.
type EventHandler struct {
	eventService   service.EventService
	maxUploadBytes int64
	logger         *logger.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService service.EventService, maxUploadBytes int64, logger *logger.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, maxUploadBytes: maxUploadBytes, logger: logger}
}

// RegisterRoutes registers the event routes to the Echo group.
func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateEvent)
	g.GET("", h.GetAllEvents)
	g.GET("/:id", h.GetEventByID)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	g.POST("/:id/performance-file", h.AttachPerformanceFile)
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event  body    dto.EventRequest   true    "Event to create"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.eventService.CreateEvent(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetAllEvents godoc
// @Summary List calendar events
// @Tags events
// @Produce  json
// @Param   from  query  string  false  "First day (YYYY-MM-DD)"
// @Param   to    query  string  false  "Last day (YYYY-MM-DD)"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func (h *EventHandler) GetAllEvents(c echo.Context) error {
	resp, err := h.eventService.GetAllEvents(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetEventByID godoc
// @Summary Get a calendar event by ID
// @Tags events
// @Produce  json
// @Param   id  path    int true    "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEventByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid event ID"})
	}

	resp, err := h.eventService.GetEventByID(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateEvent godoc
// @Summary Update a calendar event
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id     path    int                true    "Event ID"
// @Param   event  body    dto.EventRequest   true    "Event fields"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid event ID"})
	}

	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.eventService.UpdateEvent(c.Request().Context(), uint(id), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteEvent godoc
// @Summary Delete a calendar event
// @Tags events
// @Param   id  path    int true    "Event ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid event ID"})
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AttachPerformanceFile godoc
// @Summary Attach a performance report to an event
// @Description Derive date, title and article count from the report and store them on the event.
// @Tags events
// @Accept  multipart/form-data
// @Produce  json
// @Param   id    path      int   true  "Event ID"
// @Param   file  formData  file  true  "Performance report"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/performance-file [post]
func (h *EventHandler) AttachPerformanceFile(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid event ID"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	data, err := readUpload(fh, h.maxUploadBytes)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp, err := h.eventService.AttachPerformanceFile(c.Request().Context(), uint(id), fh.Filename, data)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
