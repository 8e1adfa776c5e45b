package rtdb

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bootwatcher/internal/domain/entity"
	domainerrors "bootwatcher/internal/domain/errors"
	"bootwatcher/internal/errors"
	"bootwatcher/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_CreatePushesUnderPhoneNumbers(t *testing.T) {
	client, fake := newTestClient(t)
	repo := NewSubscriptionRepository(client, newTestLogger())

	sub := &entity.Subscription{
		PhoneNumber:  "5551234567",
		ParkingLot:   "Main St Garage",
		ParkingLotID: "ChIJ123",
		Timestamp:    time.Date(2025, 10, 9, 8, 53, 20, 0, time.UTC),
	}
	require.NoError(t, repo.CreateSubscription(context.Background(), sub))
	require.NotEmpty(t, sub.ID)

	raw, ok := fake.child(model.SubscriptionsPath, sub.ID)
	require.True(t, ok, "record not stored under %s/%s", model.SubscriptionsPath, sub.ID)
	assert.JSONEq(t, `{
		"phoneNumber": "5551234567",
		"parkingLot": "Main St Garage",
		"parkingLotId": "ChIJ123",
		"timestamp": "2025-10-09T08:53:20.000Z"
	}`, string(raw))
}

func TestSubscriptionRepository_FindByLotQueriesParkingLotChild(t *testing.T) {
	client, fake := newTestClient(t)
	repo := NewSubscriptionRepository(client, newTestLogger())

	fake.seed(model.SubscriptionsPath, "-a", `{"phoneNumber":"5551234567","parkingLot":"Main St Garage","timestamp":"2025-10-09T08:53:20.000Z"}`)
	fake.seed(model.SubscriptionsPath, "-b", `{"phoneNumber":"5559876543","parkingLot":"Lot B","timestamp":"2025-10-09T08:53:20.000Z"}`)

	subs, err := repo.FindSubscriptionsByLot(context.Background(), "Main St Garage")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "-a", subs[0].ID)
	assert.Equal(t, "5551234567", subs[0].PhoneNumber)

	query := fake.lastQuery()
	assert.Equal(t, `"parkingLot"`, query.Get("orderBy"))
	assert.Equal(t, `"Main St Garage"`, query.Get("equalTo"))
	assert.Equal(t, "test", query.Get("ns"))
}

func TestSubscriptionRepository_FindByLotToleratesForeignRecords(t *testing.T) {
	client, fake := newTestClient(t)
	repo := NewSubscriptionRepository(client, newTestLogger())

	fake.seed(model.SubscriptionsPath, "-a", `{"phoneNumber":"5551234567","parkingLot":"Main St Garage","timestamp":"2025-10-09T08:53:20.000Z"}`)
	fake.seed(model.SubscriptionsPath, "-b", `{"phoneNumber":"5559876543","parkingLot":"Main St Garage","timestamp":1760000000000}`)
	fake.seed(model.SubscriptionsPath, "-c", `{"phoneNumber":5550001111,"parkingLot":"Main St Garage"}`)

	subs, err := repo.FindSubscriptionsByLot(context.Background(), "Main St Garage")
	require.NoError(t, err)
	require.Len(t, subs, 2)

	byID := map[string]*entity.Subscription{}
	for _, sub := range subs {
		byID[sub.ID] = sub
	}
	require.Contains(t, byID, "-a")
	require.Contains(t, byID, "-b")

	want := time.UnixMilli(1760000000000)
	assert.True(t, want.Equal(byID["-a"].Timestamp))
	assert.True(t, want.Equal(byID["-b"].Timestamp))
	assert.True(t, byID["-b"].WithinWindow(want.Add(time.Hour), 24*time.Hour))
}

func TestSubscriptionRepository_FindByLotMissingNode(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewSubscriptionRepository(client, newTestLogger())

	subs, err := repo.FindSubscriptionsByLot(context.Background(), "Main St Garage")
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSubscriptionRepository_StoreFailure(t *testing.T) {
	client, fake := newTestClient(t)
	repo := NewSubscriptionRepository(client, newTestLogger())
	fake.deny()

	_, err := repo.FindSubscriptionsByLot(context.Background(), "Main St Garage")
	assert.True(t, errors.Is(err, domainerrors.ErrProviderFailed))

	err = repo.CreateSubscription(context.Background(), &entity.Subscription{PhoneNumber: "5551234567", ParkingLot: "Lot"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "Permission denied")
}

func TestSubscriptionRepository_RoundTrip(t *testing.T) {
	client, fake := newTestClient(t)
	repo := NewSubscriptionRepository(client, newTestLogger())
	ctx := context.Background()
	ts := time.Date(2025, 10, 9, 8, 53, 20, 123_000_000, time.UTC)

	first := &entity.Subscription{PhoneNumber: "5551234567", ParkingLot: "Main St Garage", Timestamp: ts}
	second := &entity.Subscription{PhoneNumber: "5551234567", ParkingLot: "Main St Garage", Timestamp: ts}
	require.NoError(t, repo.CreateSubscription(ctx, first))
	require.NoError(t, repo.CreateSubscription(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)

	subs, err := repo.FindSubscriptionsByLot(ctx, "Main St Garage")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	for _, sub := range subs {
		assert.True(t, ts.Equal(sub.Timestamp))
	}

	raw, ok := fake.child(model.SubscriptionsPath, first.ID)
	require.True(t, ok)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.NotContains(t, stored, "parkingLotId")
}
