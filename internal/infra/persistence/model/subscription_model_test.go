package model

import (
	"encoding/json"
	"testing"
	"time"

	"bootwatcher/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRecord_TimestampMatchesISOString(t *testing.T) {
	ts := time.Date(2024, 3, 9, 17, 4, 5, 123_000_000, time.FixedZone("PST", -8*3600))
	record := FromSubscriptionDomain(&entity.Subscription{
		PhoneNumber: "5551234567",
		ParkingLot:  "Main St Garage",
		Timestamp:   ts,
	})

	raw, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"phoneNumber": "5551234567",
		"parkingLot": "Main St Garage",
		"timestamp": "2024-03-10T01:04:05.123Z"
	}`, string(raw))

	var decoded SubscriptionRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))

	sub := decoded.ToDomain("-Nx1")
	assert.Equal(t, "-Nx1", sub.ID)
	assert.True(t, ts.Equal(sub.Timestamp))
	assert.Equal(t, "Main St Garage", sub.ParkingLot)
}

func TestSubscriptionRecord_DecodeTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected time.Time
	}{
		{
			name:     "iso string",
			body:     `{"timestamp":"2025-10-09T08:53:20.000Z"}`,
			expected: time.UnixMilli(1760000000000),
		},
		{
			name:     "epoch milliseconds",
			body:     `{"timestamp":1760000000000}`,
			expected: time.UnixMilli(1760000000000),
		},
		{
			name: "unparseable string",
			body: `{"timestamp":"yesterday"}`,
		},
		{
			name: "unexpected type",
			body: `{"timestamp":{"seconds":1}}`,
		},
		{
			name: "missing",
			body: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record SubscriptionRecord
			require.NoError(t, json.Unmarshal([]byte(tt.body), &record))

			sub := record.ToDomain("id")
			assert.True(t, tt.expected.Equal(sub.Timestamp), "got %v", sub.Timestamp)
		})
	}
}

func TestSubscriptionRecord_UnparseableTimestampOutsideWindow(t *testing.T) {
	var record SubscriptionRecord
	require.NoError(t, json.Unmarshal([]byte(`{"phoneNumber":"5551234567","parkingLot":"Lot","timestamp":"yesterday"}`), &record))

	sub := record.ToDomain("id")
	assert.True(t, sub.Timestamp.IsZero())
	assert.False(t, sub.WithinWindow(time.Now(), 24*time.Hour))
}
