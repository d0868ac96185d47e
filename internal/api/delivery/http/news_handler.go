package http

import (
	"net/http"
	"strconv"

	"presscraft/internal/api/service"
	"presscraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler serves grouped news timelines.
type NewsHandler struct {
	timelineService service.TimelineService
	logger          *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(timelineService service.TimelineService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{timelineService: timelineService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/timeline", h.GetTimeline)
}

// GetTimeline godoc
// @Summary Get a grouped news timeline
// @Description Search news, group near-duplicate titles and bucket the groups by day.
// @Tags news
// @Produce  json
// @Param   query  query  string  true   "Search query"
// @Param   sort   query  string  false  "date or sim"
// @Param   pages  query  int     false  "Result pages to fetch (1-10)"
// @Success 200 {object} dto.TimelineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /news/timeline [get]
func (h *NewsHandler) GetTimeline(c echo.Context) error {
	pages := 1
	if raw := c.QueryParam("pages"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid pages"})
		}
		pages = n
	}

	resp, err := h.timelineService.GetTimeline(c.Request().Context(), c.QueryParam("query"), c.QueryParam("sort"), pages)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
