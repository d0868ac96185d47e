package http

import (
	"fmt"
	"net/http"

	"presscraft/internal/api/service"
	"presscraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles performance report requests.
type ReportHandler struct {
	reportService  service.ReportService
	maxUploadBytes int64
	maxFiles       int
	logger         *logger.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, maxUploadBytes int64, maxFiles int, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, maxUploadBytes: maxUploadBytes, maxFiles: maxFiles, logger: logger}
}

// RegisterRoutes registers the report routes to the Echo group.
func (h *ReportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/metadata", h.ExtractMetadata)
	g.GET("/coverage", h.GetCoverage)
}

// ExtractMetadata godoc
// @Summary Extract metadata from performance reports
// @Description Each uploaded file yields its date, title and article count, in upload order.
// @Tags reports
// @Accept  multipart/form-data
// @Produce  json
// @Param   files  formData  file  true  "Performance reports"
// @Success 200 {object} dto.BulkMetadataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports/metadata [post]
func (h *ReportHandler) ExtractMetadata(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid multipart form"})
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "files are required"})
	}
	if h.maxFiles > 0 && len(headers) > h.maxFiles {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("at most %d files per request", h.maxFiles)})
	}

	files := make([]service.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readUpload(fh, h.maxUploadBytes)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("%s: %v", fh.Filename, err)})
		}
		files = append(files, service.UploadedFile{Name: fh.Filename, Data: data})
	}

	return c.JSON(http.StatusOK, h.reportService.ExtractMetadata(c.Request().Context(), files))
}

// GetCoverage godoc
// @Summary Get the coverage rollup
// @Description Article counts of calendar events per month, ISO week and type. Defaults to the last 30 days.
// @Tags reports
// @Produce  json
// @Param   from  query  string  false  "First day (YYYY-MM-DD)"
// @Param   to    query  string  false  "Last day (YYYY-MM-DD)"
// @Success 200 {object} coverage.Rollup
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/coverage [get]
func (h *ReportHandler) GetCoverage(c echo.Context) error {
	rollup, err := h.reportService.Coverage(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, rollup)
}
