package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bootwatcher/config"
	"bootwatcher/internal/delivery/api/response"
	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/usecase"
	"bootwatcher/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LotHandlerParams holds dependencies for LotHandler, injected by Fx.
type LotHandlerParams struct {
	fx.In

	MapUC          usecase.MapUsecase
	SubscriptionUC usecase.SubscriptionUsecase
	DispatchUC     usecase.DispatchUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// LotHandler serves the map, lot panel and dispatch routes
type LotHandler struct {
	mapUC          usecase.MapUsecase
	subscriptionUC usecase.SubscriptionUsecase
	dispatchUC     usecase.DispatchUsecase
	window         time.Duration
	logger         *slog.Logger
}

// NewLotHandler is the constructor for LotHandler
func NewLotHandler(params LotHandlerParams) *LotHandler {
	return &LotHandler{
		mapUC:          params.MapUC,
		subscriptionUC: params.SubscriptionUC,
		dispatchUC:     params.DispatchUC,
		window:         params.Config.Notification.Window,
		logger:         params.Logger,
	}
}

// NotifyLotRequest represents the request body for notifying a lot
type NotifyLotRequest struct {
	ParkingLot string `json:"parkingLot" validate:"required"`
	Message    string `json:"message,omitempty"`
}

// CountResponse is the body of GET /lots/count
type CountResponse struct {
	ParkingLot string `json:"parkingLot"`
	Count      int    `json:"count"`
	Window     string `json:"window"`
}

// SubscribersResponse is the body of GET /lots/subscribers
type SubscribersResponse struct {
	ParkingLot   string   `json:"parkingLot"`
	PhoneNumbers []string `json:"phoneNumbers"`
}

// viewerFromQuery reads lat/lng; a missing or malformed pair yields nil
func viewerFromQuery(c echo.Context) *entity.Coordinate {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return nil
	}

	return &entity.Coordinate{Lat: lat, Lng: lng}
}

func lotFromQuery(c echo.Context) entity.LotRef {
	return entity.LotRef{
		ID:   strings.TrimSpace(c.QueryParam("id")),
		Name: c.QueryParam("name"),
	}
}

// GetMap returns the markers around the viewer
func (h *LotHandler) GetMap(c echo.Context) error {
	viewer := h.mapUC.ResolveViewer(viewerFromQuery(c))

	return response.Success(c, http.StatusOK, h.mapUC.LoadMap(c.Request().Context(), viewer))
}

// FindLots runs one nearby lookup
func (h *LotHandler) FindLots(c echo.Context) error {
	center := h.mapUC.ResolveViewer(viewerFromQuery(c))

	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "VALIDATION_FAILED", "radius must be a positive number of meters")
		}
		radius = parsed
	}

	return response.Success(c, http.StatusOK, h.mapUC.FindLots(c.Request().Context(), center, radius))
}

// GetPanel opens the lot panel for the lifetime of the request
func (h *LotHandler) GetPanel(c echo.Context) error {
	lot := lotFromQuery(c)
	if strings.TrimSpace(lot.Name) == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "name is required")
	}

	panel := h.mapUC.OpenPanel(c.Request().Context(), lot)
	defer panel.Close()

	view, err := panel.View()
	if err != nil {
		// The client went away before the count arrived.
		return response.Error(c, http.StatusRequestTimeout, "REQUEST_CANCELLED", "Request cancelled", nil)
	}

	return response.Success(c, http.StatusOK, view)
}

// CountRecent returns the subscriber count of a lot in a trailing window. The
// response names the window that was applied, the configured one when omitted.
func (h *LotHandler) CountRecent(c echo.Context) error {
	name := c.QueryParam("name")
	if strings.TrimSpace(name) == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "name is required")
	}

	window := h.window
	if raw := c.QueryParam("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "VALIDATION_FAILED", "window must be a positive duration such as 1h or 168h")
		}
		window = parsed
	}

	count := h.subscriptionUC.CountRecent(c.Request().Context(), name, window)

	return response.Success(c, http.StatusOK, CountResponse{ParkingLot: name, Count: count, Window: util.FormatWindow(window)})
}

// ListSubscribers returns the phone numbers subscribed to a lot
func (h *LotHandler) ListSubscribers(c echo.Context) error {
	name := c.QueryParam("name")
	if strings.TrimSpace(name) == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "name is required")
	}

	return response.Success(c, http.StatusOK, SubscribersResponse{
		ParkingLot:   name,
		PhoneNumbers: h.subscriptionUC.ListPhoneNumbers(c.Request().Context(), name),
	})
}

// NotifyLot dispatches a message to every subscriber of a lot
func (h *LotHandler) NotifyLot(c echo.Context) error {
	var req NotifyLotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notify input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.dispatchUC.NotifyLot(c.Request().Context(), req.ParkingLot, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GenerateLotQR returns a PNG QR code linking to the lot's panel
func (h *LotHandler) GenerateLotQR(c echo.Context) error {
	lot := lotFromQuery(c)
	if strings.TrimSpace(lot.Name) == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "name is required")
	}

	qrCode, err := h.subscriptionUC.GenerateLotQR(c.Request().Context(), lot)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=lot-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
