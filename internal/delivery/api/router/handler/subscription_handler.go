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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for subscribing to a lot
type SubscribeRequest struct {
	PhoneNumber  string `json:"phoneNumber" validate:"required,phone10"`
	ParkingLot   string `json:"parkingLot" validate:"required"`
	ParkingLotID string `json:"parkingLotId,omitempty"`
}

// ProcessQRRequest represents the request body for subscribing from a scanned QR code
type ProcessQRRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone10"`
	QRData      string `json:"qrData" validate:"required"`
}

// Subscribe handles subscribing a phone number to a lot
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	subscription, err := h.subscriptionUC.AddSubscription(c.Request().Context(), req.PhoneNumber, entity.LotRef{
		ID:   req.ParkingLotID,
		Name: req.ParkingLot,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// ProcessQRSubscription handles subscribing from QR code data
func (h *SubscriptionHandler) ProcessQRSubscription(c echo.Context) error {
	var req ProcessQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	subscription, err := h.subscriptionUC.ProcessQRSubscription(c.Request().Context(), req.PhoneNumber, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}
