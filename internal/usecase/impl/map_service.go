package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bootwatcher/config"
	deliverycontext "bootwatcher/internal/delivery/context"
	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/domain/repository"
	"bootwatcher/internal/domain/service"
	"bootwatcher/internal/usecase"
	"bootwatcher/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const viewerMarkerKey = "viewer"

type mapService struct {
	placesService  service.PlacesService
	markerRepo     repository.MarkerRepository
	subscriptionUC usecase.SubscriptionUsecase
	dispatchUC     usecase.DispatchUsecase
	metrics        service.MetricsRecorder
	defaultViewer  entity.Coordinate
	radiusMeters   float64
	category       string
	window         time.Duration
	logger         *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	PlacesService  service.PlacesService `optional:"true"`
	MarkerRepo     repository.MarkerRepository
	SubscriptionUC usecase.SubscriptionUsecase
	DispatchUC     usecase.DispatchUsecase
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMapService creates a new map service instance. A nil places service
// reports every lookup as access denied.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	svc := &mapService{
		placesService:  params.PlacesService,
		markerRepo:     params.MarkerRepo,
		subscriptionUC: params.SubscriptionUC,
		dispatchUC:     params.DispatchUC,
		metrics:        params.Metrics,
		defaultViewer:  entity.Coordinate{Lat: params.Config.Map.DefaultLat, Lng: params.Config.Map.DefaultLng},
		window:         params.Config.Notification.Window,
		logger:         params.Logger,
	}
	if params.Config.Places != nil {
		svc.radiusMeters = params.Config.Places.RadiusMeters
		svc.category = params.Config.Places.Category
	}

	return svc
}

func (s *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ResolveViewer substitutes the default coordinate for a missing or invalid one
func (s *mapService) ResolveViewer(viewer *entity.Coordinate) entity.Coordinate {
	if viewer == nil || !viewer.Valid() {
		return s.defaultViewer
	}

	return *viewer
}

// FindLots runs one nearby lookup and classifies the outcome
func (s *mapService) FindLots(ctx context.Context, center entity.Coordinate, radiusMeters float64) *usecase.LotSearch {
	if radiusMeters <= 0 {
		radiusMeters = s.radiusMeters
	}

	search := &usecase.LotSearch{Lots: []entity.ParkingLot{}}

	switch lots, err := s.lookup(ctx, center, radiusMeters); {
	case err != nil:
		search.Status = entity.LookupUnknown
		var lookupErr *service.LookupError
		if errors.As(err, &lookupErr) {
			search.Status = lookupErr.Status
		}
		s.log(ctx).Warn("Nearby lookup failed", slog.String("status", string(search.Status)), slog.Any("error", err))
	case len(lots) == 0:
		search.Status = entity.LookupNoResults
	default:
		search.Status = entity.LookupOK
		search.Lots = lots
	}

	search.Message = search.Status.UserMessage()
	s.metrics.RecordLookup(search.Status)

	return search
}

func (s *mapService) lookup(ctx context.Context, center entity.Coordinate, radiusMeters float64) ([]entity.ParkingLot, error) {
	if s.placesService == nil {
		return nil, &service.LookupError{Status: entity.LookupAccessDenied, Err: errors.New("places API key is not configured")}
	}

	return s.placesService.FindNearby(ctx, center, radiusMeters, s.category)
}

// LoadMap builds the markers for the viewer, nearby lots and custom markers
func (s *mapService) LoadMap(ctx context.Context, viewer entity.Coordinate) *entity.MapView {
	search := s.FindLots(ctx, viewer, 0)

	markers := make([]entity.Marker, 0, len(search.Lots)+1)
	markers = append(markers, entity.Marker{
		Key:      viewerMarkerKey,
		Kind:     entity.MarkerViewer,
		Title:    "You are here",
		Position: viewer,
	})

	for _, lot := range search.Lots {
		key := lot.ID
		if key == "" {
			key = lot.DisplayName()
		}
		markers = append(markers, entity.Marker{
			Key:      key,
			Kind:     entity.MarkerLot,
			Title:    lot.DisplayName(),
			Position: lot.Location,
		})
	}

	customMarkers, err := s.markerRepo.FindAllMarkers(ctx)
	if err != nil {
		s.metrics.RecordStoreReadFailure("find_markers")
		s.log(ctx).Error("Custom marker read failed", slog.Any("error", err))
	}
	for _, marker := range customMarkers {
		markers = append(markers, entity.Marker{
			Key:      marker.ID,
			Kind:     entity.MarkerCustom,
			Title:    marker.Name,
			Position: marker.Location,
		})
	}

	return &entity.MapView{
		Viewer:  viewer,
		Status:  search.Status,
		Message: search.Message,
		Markers: markers,
	}
}

// OpenPanel opens a lot panel and starts its count query in the background
func (s *mapService) OpenPanel(ctx context.Context, lot entity.LotRef) usecase.Panel {
	panelCtx, cancel := context.WithCancel(ctx)

	p := &panel{
		lot:            lot,
		window:         s.window,
		subscriptionUC: s.subscriptionUC,
		dispatchUC:     s.dispatchUC,
		cancel:         cancel,
		done:           make(chan struct{}),
	}

	go p.load(panelCtx)

	return p
}

// panel holds the state of one open lot panel. Nothing is shared between panels.
type panel struct {
	lot            entity.LotRef
	window         time.Duration
	subscriptionUC usecase.SubscriptionUsecase
	dispatchUC     usecase.DispatchUsecase

	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	count  int
	loaded bool
}

func (p *panel) load(ctx context.Context) {
	defer close(p.done)

	count := p.subscriptionUC.CountRecent(ctx, p.lot.Name, p.window)

	p.mu.Lock()
	defer p.mu.Unlock()

	// A result arriving after Close is dropped.
	if ctx.Err() == nil {
		p.count = count
		p.loaded = true
	}
}

func (p *panel) Lot() entity.LotRef {
	return p.lot
}

func (p *panel) Count() (int, error) {
	<-p.done

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		return 0, usecase.ErrPanelClosed
	}

	return p.count, nil
}

func (p *panel) View() (*entity.PanelView, error) {
	count, err := p.Count()
	if err != nil {
		return nil, err
	}

	return &entity.PanelView{
		ParkingLot:    p.lot.Name,
		ParkingLotID:  p.lot.ID,
		Count:         count,
		Window:        p.window,
		WindowSeconds: int64(p.window / time.Second),
		WindowLabel:   util.FormatWindow(p.window),
	}, nil
}

func (p *panel) Subscribe(ctx context.Context, phoneNumber string) (*entity.Subscription, error) {
	return p.subscriptionUC.AddSubscription(ctx, phoneNumber, p.lot)
}

func (p *panel) Notify(ctx context.Context, message string) (*entity.DispatchResult, error) {
	return p.dispatchUC.NotifyLot(ctx, p.lot.Name, message)
}

func (p *panel) Close() {
	p.cancel()
}
