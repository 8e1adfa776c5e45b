package handler

import (
	"log/slog"
	"net/http"

	"bootwatcher/internal/delivery/api/response"
	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MarkerHandlerParams holds dependencies for MarkerHandler, injected by Fx.
type MarkerHandlerParams struct {
	fx.In

	MarkerUC usecase.MarkerUsecase
	Logger   *slog.Logger
}

// MarkerHandler holds dependencies for custom marker handlers
type MarkerHandler struct {
	markerUC usecase.MarkerUsecase
	logger   *slog.Logger
}

// NewMarkerHandler is the constructor for MarkerHandler
func NewMarkerHandler(params MarkerHandlerParams) *MarkerHandler {
	return &MarkerHandler{
		markerUC: params.MarkerUC,
		logger:   params.Logger,
	}
}

// CreateMarkerRequest represents the request body for adding a custom marker
type CreateMarkerRequest struct {
	Name     string             `json:"name,omitempty"`
	Location *entity.Coordinate `json:"location" validate:"required"`
}

// ListMarkers returns every custom marker
func (h *MarkerHandler) ListMarkers(c echo.Context) error {
	markers, err := h.markerUC.ListMarkers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, markers)
}

// CreateMarker adds a custom marker
func (h *MarkerHandler) CreateMarker(c echo.Context) error {
	var req CreateMarkerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid marker input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	marker, err := h.markerUC.AddMarker(c.Request().Context(), req.Name, *req.Location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, marker)
}

// DeleteMarker removes a custom marker
func (h *MarkerHandler) DeleteMarker(c echo.Context) error {
	if err := h.markerUC.DeleteMarker(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Marker deleted successfully"})
}
