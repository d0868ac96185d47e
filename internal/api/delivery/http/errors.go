package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"presscraft/internal/api/service"
	"presscraft/pkg/logger"
	"presscraft/pkg/textextract"

	"github.com/labstack/echo/v4"
)

var errFileTooLarge = errors.New("file exceeds the upload size limit")

// respondError maps service errors onto HTTP status codes.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, textextract.ErrUnsupportedFormat), errors.Is(err, errFileTooLarge):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrSubscriptionNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInsufficientText), errors.Is(err, service.ErrPageUnavailable):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	default:
		log.Error("Request failed", logger.StringField("path", c.Path()), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

// readUpload reads one multipart file, refusing bodies over maxBytes.
func readUpload(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, errFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if maxBytes <= 0 {
		return io.ReadAll(f)
	}
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, errFileTooLarge
	}
	return data, nil
}
