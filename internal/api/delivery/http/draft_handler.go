package http

import (
	"net/http"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/service"
	"presscraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DraftHandler handles HTTP requests for press release drafts.
type DraftHandler struct {
	draftService service.DraftService
	logger       *logger.Logger
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService service.DraftService, logger *logger.Logger) *DraftHandler {
	return &DraftHandler{draftService: draftService, logger: logger}
}

// RegisterRoutes registers the draft routes to the Echo group.
func (h *DraftHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/drafts", h.GenerateDraft)
	g.POST("/specs/stories", h.MapStories)
}

// GenerateDraft godoc
// @Summary Generate a press release draft
// @Description Render a draft for the fact sheet's angle. With eventId the draft is stored on the event.
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   request  body    dto.GenerateDraftRequest   true    "Fact sheet and specifications"
// @Success 200 {object} dto.GenerateDraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /drafts [post]
func (h *DraftHandler) GenerateDraft(c echo.Context) error {
	var req dto.GenerateDraftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.draftService.GenerateDraft(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// MapStories godoc
// @Summary Convert specifications into benefit sentences
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   request  body    dto.MapStoriesRequest   true    "Specifications"
// @Success 200 {object} dto.MapStoriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /specs/stories [post]
func (h *DraftHandler) MapStories(c echo.Context) error {
	var req dto.MapStoriesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	return c.JSON(http.StatusOK, h.draftService.MapStories(&req))
}
