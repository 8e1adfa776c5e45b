package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bootwatcher/config"
	"bootwatcher/internal/delivery/api/response"
	"bootwatcher/internal/domain/entity"
	domainerrors "bootwatcher/internal/domain/errors"
	"bootwatcher/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	welcomeMessage       = "Welcome to the bootwatcher relay API!"
	smsCompletedMessage  = "SMS processing completed"
	invalidSendSMSBody   = "phoneNumbers must be a non-empty array and message is required"
	fetchUsersFailedBody = "Failed to fetch users"
)

// RelayHandlerParams holds dependencies for RelayHandler, injected by Fx.
type RelayHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	UserUC     usecase.UserUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// RelayHandler serves the unversioned relay routes used by existing clients
type RelayHandler struct {
	dispatchUC    usecase.DispatchUsecase
	userUC        usecase.UserUsecase
	writeTimeout  time.Duration
	ratePerSecond float64
	logger        *slog.Logger
}

// NewRelayHandler is the constructor for RelayHandler
func NewRelayHandler(params RelayHandlerParams) *RelayHandler {
	return &RelayHandler{
		dispatchUC:    params.DispatchUC,
		userUC:        params.UserUC,
		writeTimeout:  params.Config.HTTP.Timeouts.WriteTimeout,
		ratePerSecond: params.Config.SMS.RatePerSecond,
		logger:        params.Logger,
	}
}

// SendSMSRequest represents the request body of POST /send-sms
type SendSMSRequest struct {
	PhoneNumbers []string `json:"phoneNumbers" validate:"required,min=1"`
	Message      string   `json:"message" validate:"required"`
	ParkingLot   string   `json:"parkingLot,omitempty"`
}

// SendSMSResponse represents the body of a completed dispatch
type SendSMSResponse struct {
	Success    bool                     `json:"success"`
	Message    string                   `json:"message"`
	ParkingLot string                   `json:"parkingLot,omitempty"`
	Results    []entity.DeliveryOutcome `json:"results"`
}

// SendSMS relays one message to every number in the request
func (h *RelayHandler) SendSMS(c echo.Context) error {
	var req SendSMSRequest
	if err := c.Bind(&req); err != nil {
		return response.Legacy(c, http.StatusBadRequest, invalidSendSMSBody)
	}

	if err := c.Validate(&req); err != nil {
		return response.Legacy(c, http.StatusBadRequest, invalidSendSMSBody)
	}

	h.extendWriteDeadline(c, len(req.PhoneNumbers))

	result, err := h.dispatchUC.Dispatch(c.Request().Context(), &usecase.DispatchRequest{
		PhoneNumbers: req.PhoneNumbers,
		Message:      req.Message,
		ParkingLot:   req.ParkingLot,
	})
	if err != nil {
		return h.sendSMSError(c, err)
	}

	return c.JSON(http.StatusOK, SendSMSResponse{
		Success:    true,
		Message:    smsCompletedMessage,
		ParkingLot: req.ParkingLot,
		Results:    result.Results,
	})
}

// extendWriteDeadline keeps the connection open while the rate limiter
// releases every send of the fan-out.
func (h *RelayHandler) extendWriteDeadline(c echo.Context, recipients int) {
	budget := dispatchBudget(h.writeTimeout, h.ratePerSecond, recipients)
	if budget <= h.writeTimeout {
		return
	}

	if err := http.NewResponseController(c.Response()).SetWriteDeadline(time.Now().Add(budget)); err != nil {
		h.logger.Debug("Write deadline not extended",
			slog.Int("recipients", recipients),
			slog.Any("error", err),
		)
	}
}

// dispatchBudget is the write timeout plus the time a limiter at rate sends
// per second needs for n sends. Without a timeout or a rate it is the timeout.
func dispatchBudget(writeTimeout time.Duration, rate float64, n int) time.Duration {
	if writeTimeout <= 0 || rate <= 0 {
		return writeTimeout
	}

	return writeTimeout + time.Duration(float64(n)/rate*float64(time.Second))
}

func (h *RelayHandler) sendSMSError(c echo.Context, err error) error {
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return response.Legacy(c, http.StatusBadRequest, invalidSendSMSBody)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Details()
		if message == "" {
			message = appErr.Message()
		}

		return response.LegacyFailure(c, http.StatusInternalServerError, message)
	}

	return response.LegacyFailure(c, http.StatusInternalServerError, domainerrors.ErrSMSUnavailable.Message())
}

// ListUsers returns the raw users mapping
func (h *RelayHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.Legacy(c, http.StatusInternalServerError, fetchUsersFailedBody)
	}

	return c.JSON(http.StatusOK, users)
}

// Welcome is the liveness text of the relay
func (h *RelayHandler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, welcomeMessage)
}

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
