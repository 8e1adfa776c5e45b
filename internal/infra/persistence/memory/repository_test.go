package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_AppendOnlyWithDuplicates(t *testing.T) {
	repo := NewSubscriptionRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	first := &entity.Subscription{PhoneNumber: "5551234567", ParkingLot: "Main St Garage", Timestamp: now}
	second := &entity.Subscription{PhoneNumber: "5551234567", ParkingLot: "Main St Garage", Timestamp: now}
	other := &entity.Subscription{PhoneNumber: "5559876543", ParkingLot: "main st garage", Timestamp: now}

	require.NoError(t, repo.CreateSubscription(ctx, first))
	require.NoError(t, repo.CreateSubscription(ctx, second))
	require.NoError(t, repo.CreateSubscription(ctx, other))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	found, err := repo.FindSubscriptionsByLot(ctx, "Main St Garage")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, first.ID, found[0].ID)
	assert.Equal(t, second.ID, found[1].ID)
}

func TestSubscriptionRepository_ConcurrentAppends(t *testing.T) {
	repo := NewSubscriptionRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.CreateSubscription(ctx, &entity.Subscription{PhoneNumber: "5551234567", ParkingLot: "Lot A"})
		}()
	}
	wg.Wait()

	found, err := repo.FindSubscriptionsByLot(ctx, "Lot A")
	require.NoError(t, err)
	assert.Len(t, found, 50)
}

func TestSubscriptionRepository_CanceledContext(t *testing.T) {
	repo := NewSubscriptionRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.CreateSubscription(ctx, &entity.Subscription{PhoneNumber: "5551234567", ParkingLot: "Lot A"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindSubscriptionsByLot(ctx, "Lot A")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMarkerRepository_CreateListDelete(t *testing.T) {
	repo := NewMarkerRepository()
	ctx := context.Background()

	a := &entity.CustomMarker{Name: "A", Location: entity.Coordinate{Lat: 1, Lng: 2}}
	b := &entity.CustomMarker{Name: "B", Location: entity.Coordinate{Lat: 3, Lng: 4}}
	require.NoError(t, repo.CreateMarker(ctx, a))
	require.NoError(t, repo.CreateMarker(ctx, b))

	markers, err := repo.FindAllMarkers(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, "A", markers[0].Name)

	require.NoError(t, repo.DeleteMarker(ctx, a.ID))
	assert.ErrorIs(t, repo.DeleteMarker(ctx, a.ID), repository.ErrMarkerNotFound)

	markers, err = repo.FindAllMarkers(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, b.ID, markers[0].ID)
}

func TestUserRepository_ReturnsCopy(t *testing.T) {
	repo := NewUserRepository(map[string]any{"u1": map[string]any{"name": "Ada"}})

	users, err := repo.FindAllUsers(context.Background())
	require.NoError(t, err)
	users["u2"] = "x"

	again, err := repo.FindAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 1)

	empty, err := NewUserRepository(nil).FindAllUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}
