package http

import (
	"net/http"
	"strconv"

	"presscraft/internal/api/dto"
	"presscraft/internal/api/service"
	"presscraft/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler handles HTTP requests for clipping subscriptions.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
	logger              *logger.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, logger: logger}
}

// RegisterRoutes registers the subscription routes to the Echo group.
func (h *SubscriptionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateSubscription)
	g.GET("", h.GetAllSubscriptions)
	g.GET("/:id", h.GetSubscriptionByID)
	g.PUT("/:id", h.UpdateSubscription)
	g.DELETE("/:id", h.DeleteSubscription)
	g.GET("/:id/runs", h.GetRuns)
}

// CreateSubscription godoc
// @Summary Create a clipping subscription
// @Tags subscriptions
// @Accept  json
// @Produce  json
// @Param   subscription  body    dto.SubscriptionRequest   true    "Subscription to create"
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	var req dto.SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.subscriptionService.CreateSubscription(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// GetAllSubscriptions godoc
// @Summary List clipping subscriptions
// @Tags subscriptions
// @Produce  json
// @Success 200 {array} dto.SubscriptionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) GetAllSubscriptions(c echo.Context) error {
	resp, err := h.subscriptionService.GetAllSubscriptions(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSubscriptionByID godoc
// @Summary Get a clipping subscription by ID
// @Tags subscriptions
// @Produce  json
// @Param   id  path    int true    "Subscription ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscriptionByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid subscription ID"})
	}

	resp, err := h.subscriptionService.GetSubscriptionByID(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateSubscription godoc
// @Summary Update a clipping subscription
// @Tags subscriptions
// @Accept  json
// @Produce  json
// @Param   id            path    int                       true    "Subscription ID"
// @Param   subscription  body    dto.SubscriptionRequest   true    "Subscription fields"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subscriptions/{id} [put]
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid subscription ID"})
	}

	var req dto.SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.subscriptionService.UpdateSubscription(c.Request().Context(), uint(id), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteSubscription godoc
// @Summary Delete a clipping subscription and its run history
// @Tags subscriptions
// @Param   id  path    int true    "Subscription ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid subscription ID"})
	}

	if err := h.subscriptionService.DeleteSubscription(c.Request().Context(), uint(id)); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRuns godoc
// @Summary List the run history of a subscription
// @Tags subscriptions
// @Produce  json
// @Param   id  path    int true    "Subscription ID"
// @Success 200 {array} dto.RunResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /subscriptions/{id}/runs [get]
func (h *SubscriptionHandler) GetRuns(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid subscription ID"})
	}

	resp, err := h.subscriptionService.GetRuns(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
