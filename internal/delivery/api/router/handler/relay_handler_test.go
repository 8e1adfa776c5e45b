package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bootwatcher/config"
	"bootwatcher/internal/domain/entity"
	domainerrors "bootwatcher/internal/domain/errors"
	mockUC "bootwatcher/internal/mocks/usecase"
	"bootwatcher/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRelayHandler(dispatchUC usecase.DispatchUsecase, userUC usecase.UserUsecase) *RelayHandler {
	return NewRelayHandler(RelayHandlerParams{
		DispatchUC: dispatchUC,
		UserUC:     userUC,
		Config:     &config.Config{},
		Logger:     newTestLogger(),
	})
}

func TestRelayHandler_SendSMS(t *testing.T) {
	t.Run("completed dispatch returns every outcome", func(t *testing.T) {
		dispatchUC := mockUC.NewMockDispatchUsecase(t)
		dispatchUC.EXPECT().
			Dispatch(mock.Anything, &usecase.DispatchRequest{
				PhoneNumbers: []string{"5551234567", "5559876543"},
				Message:      "Boot officer at Main St Garage",
				ParkingLot:   "Main St Garage",
			}).
			Return(&entity.DispatchResult{
				ParkingLot: "Main St Garage",
				State:      entity.DispatchCompleted,
				Results: []entity.DeliveryOutcome{
					{PhoneNumber: "5551234567", SID: "SM1"},
					{PhoneNumber: "5559876543", Error: "invalid number"},
				},
				TotalSent:  1,
				TotalError: 1,
			}, nil).
			Once()

		e := newTestEcho()
		req := newJSONRequest(http.MethodPost, "/send-sms",
			`{"phoneNumbers":["5551234567","5559876543"],"message":"Boot officer at Main St Garage","parkingLot":"Main St Garage"}`)
		rec := httptest.NewRecorder()

		err := newRelayHandler(dispatchUC, mockUC.NewMockUserUsecase(t)).SendSMS(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "SMS processing completed", body["message"])
		assert.Equal(t, "Main St Garage", body["parkingLot"])

		results, ok := body["results"].([]any)
		require.True(t, ok)
		require.Len(t, results, 2)
		assert.Equal(t, "SM1", results[0].(map[string]any)["sid"])
		assert.Equal(t, "invalid number", results[1].(map[string]any)["error"])
	})

	t.Run("malformed bodies are rejected before dispatch", func(t *testing.T) {
		bodies := map[string]string{
			"missing numbers":   `{"message":"hi"}`,
			"empty numbers":     `{"phoneNumbers":[],"message":"hi"}`,
			"numbers not array": `{"phoneNumbers":"5551234567","message":"hi"}`,
			"missing message":   `{"phoneNumbers":["5551234567"]}`,
		}

		for name, raw := range bodies {
			t.Run(name, func(t *testing.T) {
				dispatchUC := mockUC.NewMockDispatchUsecase(t)

				e := newTestEcho()
				rec := httptest.NewRecorder()

				err := newRelayHandler(dispatchUC, mockUC.NewMockUserUsecase(t)).
					SendSMS(e.NewContext(newJSONRequest(http.MethodPost, "/send-sms", raw), rec))
				require.NoError(t, err)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, invalidSendSMSBody, decodeBody(t, rec)["error"])
			})
		}
	})

	t.Run("unreachable provider is a failure with the provider message", func(t *testing.T) {
		dispatchUC := mockUC.NewMockDispatchUsecase(t)
		dispatchUC.EXPECT().
			Dispatch(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrSMSUnavailable.WithDetails("Authenticate")).
			Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()

		err := newRelayHandler(dispatchUC, mockUC.NewMockUserUsecase(t)).SendSMS(e.NewContext(
			newJSONRequest(http.MethodPost, "/send-sms", `{"phoneNumbers":["5551234567"],"message":"hi"}`), rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Authenticate", body["error"])
	})

	t.Run("validation error from dispatch is a bad request", func(t *testing.T) {
		dispatchUC := mockUC.NewMockDispatchUsecase(t)
		dispatchUC.EXPECT().
			Dispatch(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("message is required")).
			Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()

		err := newRelayHandler(dispatchUC, mockUC.NewMockUserUsecase(t)).SendSMS(e.NewContext(
			newJSONRequest(http.MethodPost, "/send-sms", `{"phoneNumbers":["5551234567"],"message":" "}`), rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRelayHandler_ListUsers(t *testing.T) {
	t.Run("returns the raw mapping", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		userUC.EXPECT().ListUsers(mock.Anything).Return(map[string]any{
			"u1": map[string]any{"name": "Ada"},
		}, nil).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()

		err := newRelayHandler(mockUC.NewMockDispatchUsecase(t), userUC).
			ListUsers(e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"u1":{"name":"Ada"}}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		userUC := mockUC.NewMockUserUsecase(t)
		userUC.EXPECT().ListUsers(mock.Anything).Return(nil, errors.New("permission denied")).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()

		err := newRelayHandler(mockUC.NewMockDispatchUsecase(t), userUC).
			ListUsers(e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch users"}`, rec.Body.String())
	})
}

func TestRelayHandler_Welcome(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()

	h := newRelayHandler(mockUC.NewMockDispatchUsecase(t), mockUC.NewMockUserUsecase(t))
	require.NoError(t, h.Welcome(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, welcomeMessage, rec.Body.String())
}

func TestDispatchBudget(t *testing.T) {
	tests := []struct {
		name         string
		writeTimeout time.Duration
		rate         float64
		recipients   int
		expected     time.Duration
	}{
		{name: "adds limiter time", writeTimeout: 30 * time.Second, rate: 10, recipients: 500, expected: 80 * time.Second},
		{name: "fractional rate", writeTimeout: time.Second, rate: 4, recipients: 3, expected: 1750 * time.Millisecond},
		{name: "no rate limit", writeTimeout: 30 * time.Second, rate: 0, recipients: 500, expected: 30 * time.Second},
		{name: "no write timeout", writeTimeout: 0, rate: 10, recipients: 500, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dispatchBudget(tt.writeTimeout, tt.rate, tt.recipients))
		})
	}
}

func TestRelayHandler_SendSMSOutlastsWriteTimeout(t *testing.T) {
	dispatchUC := mockUC.NewMockDispatchUsecase(t)
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("*usecase.DispatchRequest")).
		RunAndReturn(func(_ context.Context, req *usecase.DispatchRequest) (*entity.DispatchResult, error) {
			time.Sleep(250 * time.Millisecond)

			results := make([]entity.DeliveryOutcome, 0, len(req.PhoneNumbers))
			for _, phone := range req.PhoneNumbers {
				results = append(results, entity.DeliveryOutcome{PhoneNumber: phone, SID: "SM" + phone})
			}

			return &entity.DispatchResult{State: entity.DispatchCompleted, Results: results, TotalSent: len(results)}, nil
		}).
		Once()

	cfg := &config.Config{}
	cfg.HTTP.Timeouts.WriteTimeout = 100 * time.Millisecond
	cfg.SMS.RatePerSecond = 4

	h := NewRelayHandler(RelayHandlerParams{
		DispatchUC: dispatchUC,
		UserUC:     mockUC.NewMockUserUsecase(t),
		Config:     cfg,
		Logger:     newTestLogger(),
	})

	e := newTestEcho()
	e.POST("/send-sms", h.SendSMS)

	srv := httptest.NewUnstartedServer(e)
	srv.Config.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	srv.Start()
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/send-sms", echo.MIMEApplicationJSON,
		strings.NewReader(`{"phoneNumbers":["5551234567","5559876543","5550001111"],"message":"Boot officer at Main St Garage"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
