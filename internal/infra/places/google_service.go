// Package places implements the nearby parking lookup on the Google Places API.
package places

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"bootwatcher/config"
	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	placesapi "google.golang.org/api/places/v1"
)

const defaultMaxResultCount = 20

// searchFunc performs one searchNearby call.
type searchFunc func(ctx context.Context, req *placesapi.GoogleMapsPlacesV1SearchNearbyRequest) (*placesapi.GoogleMapsPlacesV1SearchNearbyResponse, error)

type googleService struct {
	search         searchFunc
	maxResultCount int64
}

// NewGoogleService creates a PlacesService backed by the Places API (New)
func NewGoogleService(ctx context.Context, cfg *config.PlacesConfig) (service.PlacesService, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("places apiKey is required")
	}

	api, err := placesapi.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create places client")
	}

	search := func(ctx context.Context, req *placesapi.GoogleMapsPlacesV1SearchNearbyRequest) (*placesapi.GoogleMapsPlacesV1SearchNearbyResponse, error) {
		return api.Places.SearchNearby(req).
			Fields("places.id", "places.displayName", "places.location").
			Context(ctx).
			Do()
	}

	return newGoogleService(search, cfg.MaxResultCount), nil
}

func newGoogleService(search searchFunc, maxResultCount int64) *googleService {
	if maxResultCount <= 0 || maxResultCount > defaultMaxResultCount {
		maxResultCount = defaultMaxResultCount
	}

	return &googleService{
		search:         search,
		maxResultCount: maxResultCount,
	}
}

// FindNearby searches places of one category inside a circle around center
func (s *googleService) FindNearby(ctx context.Context, center entity.Coordinate, radiusMeters float64, category string) ([]entity.ParkingLot, error) {
	req := &placesapi.GoogleMapsPlacesV1SearchNearbyRequest{
		IncludedTypes:  []string{category},
		MaxResultCount: s.maxResultCount,
		RankPreference: "DISTANCE",
		LocationRestriction: &placesapi.GoogleMapsPlacesV1SearchNearbyRequestLocationRestriction{
			Circle: &placesapi.GoogleMapsPlacesV1Circle{
				Center: &placesapi.GoogleTypeLatLng{
					Latitude:  center.Lat,
					Longitude: center.Lng,
				},
				Radius: radiusMeters,
			},
		},
	}

	resp, err := s.search(ctx, req)
	if err != nil {
		return nil, &service.LookupError{Status: classifyError(err), Err: err}
	}

	return toParkingLots(resp, center, radiusMeters), nil
}

// toParkingLots converts provider places, drops ones outside the radius and
// orders the rest nearest first.
func toParkingLots(resp *placesapi.GoogleMapsPlacesV1SearchNearbyResponse, center entity.Coordinate, radiusMeters float64) []entity.ParkingLot {
	if resp == nil {
		return []entity.ParkingLot{}
	}

	origin := orb.Point{center.Lng, center.Lat}
	lots := make([]entity.ParkingLot, 0, len(resp.Places))
	for _, place := range resp.Places {
		if place == nil || place.Location == nil {
			continue
		}

		location := entity.Coordinate{Lat: place.Location.Latitude, Lng: place.Location.Longitude}
		distance := geo.Distance(origin, orb.Point{location.Lng, location.Lat})
		if radiusMeters > 0 && distance > radiusMeters {
			continue
		}

		name := ""
		if place.DisplayName != nil {
			name = place.DisplayName.Text
		}

		lots = append(lots, entity.ParkingLot{
			ID:             place.Id,
			Name:           name,
			Location:       location,
			DistanceMeters: distance,
		})
	}

	slices.SortStableFunc(lots, func(a, b entity.ParkingLot) int {
		switch {
		case a.DistanceMeters < b.DistanceMeters:
			return -1
		case a.DistanceMeters > b.DistanceMeters:
			return 1
		default:
			return 0
		}
	})

	return lots
}

// classifyError maps provider failures to lookup statuses.
func classifyError(err error) entity.LookupStatus {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return entity.LookupAccessDenied
		case http.StatusTooManyRequests:
			return entity.LookupRateLimited
		}

		message := strings.ToUpper(apiErr.Message)
		switch {
		case strings.Contains(message, "PERMISSION_DENIED"), strings.Contains(message, "API KEY"):
			return entity.LookupAccessDenied
		case strings.Contains(message, "RESOURCE_EXHAUSTED"), strings.Contains(message, "QUOTA"):
			return entity.LookupRateLimited
		}
	}

	return entity.LookupUnknown
}
