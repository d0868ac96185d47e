package http

import (
	"net/http"
	"net/url"
	"strings"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/service"
	"presscraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles fact sheet extraction requests.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	maxUploadBytes  int64
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, maxUploadBytes int64, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, maxUploadBytes: maxUploadBytes, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/link", h.AnalyzeLink)
	g.POST("/file", h.AnalyzeFile)
}

// AnalyzeLink godoc
// @Summary Extract a fact sheet from a product page
// @Description Scrape the page and extract a fact sheet with the LLM, falling back to heuristics.
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeLinkRequest   true    "Product page URL"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/link [post]
func (h *AnalysisHandler) AnalyzeLink(c echo.Context) error {
	var req dto.AnalyzeLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	u, err := url.ParseRequestURI(strings.TrimSpace(req.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid URL"})
	}

	resp, err := h.analysisService.AnalyzeLink(c.Request().Context(), u.String())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AnalyzeFile godoc
// @Summary Extract a fact sheet from a document
// @Description Upload a .txt, .docx, .pdf or image file.
// @Tags analysis
// @Accept  multipart/form-data
// @Produce  json
// @Param   file  formData  file  true  "Source document"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/file [post]
func (h *AnalysisHandler) AnalyzeFile(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}

	data, err := readUpload(fh, h.maxUploadBytes)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp, err := h.analysisService.AnalyzeFile(c.Request().Context(), fh.Filename, data)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
