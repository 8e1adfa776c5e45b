package places

import (
	"context"
	"net/http"
	"testing"

	"bootwatcher/config"
	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	placesapi "google.golang.org/api/places/v1"
)

func place(id, name string, lat, lng float64) *placesapi.GoogleMapsPlacesV1Place {
	return &placesapi.GoogleMapsPlacesV1Place{
		Id:          id,
		DisplayName: &placesapi.GoogleTypeLocalizedText{Text: name},
		Location:    &placesapi.GoogleTypeLatLng{Latitude: lat, Longitude: lng},
	}
}

func TestGoogleService_FindNearby_SortsAndFilters(t *testing.T) {
	center := entity.Coordinate{Lat: 37.7749, Lng: -122.4194}

	var captured *placesapi.GoogleMapsPlacesV1SearchNearbyRequest
	svc := newGoogleService(func(ctx context.Context, req *placesapi.GoogleMapsPlacesV1SearchNearbyRequest) (*placesapi.GoogleMapsPlacesV1SearchNearbyResponse, error) {
		captured = req

		return &placesapi.GoogleMapsPlacesV1SearchNearbyResponse{
			Places: []*placesapi.GoogleMapsPlacesV1Place{
				place("far", "Far Garage", 37.7900, -122.4194),   // ~1.7 km
				place("near", "Near Lot", 37.7759, -122.4194),    // ~110 m
				place("out", "Out Of Range", 37.9000, -122.4194), // ~14 km
				{Id: "nolocation"},
			},
		}, nil
	}, 0)

	lots, err := svc.FindNearby(context.Background(), center, 3000, "parking")
	require.NoError(t, err)

	require.Len(t, lots, 2)
	assert.Equal(t, "near", lots[0].ID)
	assert.Equal(t, "Near Lot", lots[0].Name)
	assert.Equal(t, "far", lots[1].ID)
	assert.Less(t, lots[0].DistanceMeters, lots[1].DistanceMeters)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"parking"}, captured.IncludedTypes)
	assert.Equal(t, int64(defaultMaxResultCount), captured.MaxResultCount)
	assert.InDelta(t, 3000, captured.LocationRestriction.Circle.Radius, 1e-9)
	assert.InDelta(t, 37.7749, captured.LocationRestriction.Circle.Center.Latitude, 1e-9)
}

func TestGoogleService_FindNearby_NoResultsIsNotAnError(t *testing.T) {
	svc := newGoogleService(func(ctx context.Context, req *placesapi.GoogleMapsPlacesV1SearchNearbyRequest) (*placesapi.GoogleMapsPlacesV1SearchNearbyResponse, error) {
		return &placesapi.GoogleMapsPlacesV1SearchNearbyResponse{}, nil
	}, 5)

	lots, err := svc.FindNearby(context.Background(), entity.Coordinate{Lat: 37.7749, Lng: -122.4194}, 3000, "parking")

	require.NoError(t, err)
	assert.NotNil(t, lots)
	assert.Empty(t, lots)
}

func TestGoogleService_FindNearby_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want entity.LookupStatus
	}{
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden}, entity.LookupAccessDenied},
		{"unauthorized", &googleapi.Error{Code: http.StatusUnauthorized}, entity.LookupAccessDenied},
		{"bad key message", &googleapi.Error{Code: http.StatusBadRequest, Message: "API key not valid. Please pass a valid API key."}, entity.LookupAccessDenied},
		{"too many requests", &googleapi.Error{Code: http.StatusTooManyRequests}, entity.LookupRateLimited},
		{"quota message", &googleapi.Error{Code: http.StatusBadRequest, Message: "Quota exceeded"}, entity.LookupRateLimited},
		{"server error", &googleapi.Error{Code: http.StatusInternalServerError}, entity.LookupUnknown},
		{"transport", errors.New("connection reset"), entity.LookupUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newGoogleService(func(ctx context.Context, req *placesapi.GoogleMapsPlacesV1SearchNearbyRequest) (*placesapi.GoogleMapsPlacesV1SearchNearbyResponse, error) {
				return nil, tt.err
			}, 0)

			lots, err := svc.FindNearby(context.Background(), entity.Coordinate{}, 3000, "parking")

			assert.Nil(t, lots)
			var lookupErr *service.LookupError
			require.True(t, errors.As(err, &lookupErr))
			assert.Equal(t, tt.want, lookupErr.Status)
		})
	}
}

func TestNewGoogleService_RequiresAPIKey(t *testing.T) {
	_, err := NewGoogleService(context.Background(), nil)
	assert.Error(t, err)

	_, err = NewGoogleService(context.Background(), &config.PlacesConfig{})
	assert.Error(t, err)
}
