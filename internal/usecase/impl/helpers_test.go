package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bootwatcher/config"
	mockSvc "bootwatcher/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

const testWindow = 7 * 24 * time.Hour

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Notification.Window = testWindow
	cfg.Notification.MessageBody = "A parking enforcement officer was reported at a lot you are watching. Check your car!"
	cfg.Map.DefaultLat = 37.7749
	cfg.Map.DefaultLng = -122.4194
	cfg.Places = &config.PlacesConfig{RadiusMeters: 3000, Category: "parking"}

	return cfg
}

// newNopMetrics returns a recorder that accepts any call.
func newNopMetrics(t *testing.T) *mockSvc.MockMetricsRecorder {
	m := mockSvc.NewMockMetricsRecorder(t)
	m.EXPECT().RecordSubscription(mock.Anything).Maybe()
	m.EXPECT().RecordDelivery(mock.Anything).Maybe()
	m.EXPECT().RecordDispatch(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordLookup(mock.Anything).Maybe()
	m.EXPECT().RecordStoreReadFailure(mock.Anything).Maybe()

	return m
}
