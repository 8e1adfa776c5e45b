package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bootwatcher/internal/domain/entity"
	domainerrors "bootwatcher/internal/domain/errors"
	mockUC "bootwatcher/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMarkerHandler(markerUC *mockUC.MockMarkerUsecase) *MarkerHandler {
	return NewMarkerHandler(MarkerHandlerParams{MarkerUC: markerUC, Logger: newTestLogger()})
}

func TestMarkerHandler_ListMarkers(t *testing.T) {
	markerUC := mockUC.NewMockMarkerUsecase(t)
	markerUC.EXPECT().ListMarkers(mock.Anything).Return([]*entity.CustomMarker{
		{ID: "m1", Name: "Side street", Location: entity.Coordinate{Lat: 1, Lng: 2}},
	}, nil).Once()

	e := newTestEcho()
	rec := httptest.NewRecorder()

	err := newMarkerHandler(markerUC).ListMarkers(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/markers", nil), rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"], 1)
}

func TestMarkerHandler_CreateMarker(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		markerUC := mockUC.NewMockMarkerUsecase(t)
		markerUC.EXPECT().AddMarker(mock.Anything, "", entity.Coordinate{Lat: 1.5, Lng: 2.5}).
			Return(&entity.CustomMarker{ID: "m2", Name: entity.DefaultCustomMarkerName, Location: entity.Coordinate{Lat: 1.5, Lng: 2.5}}, nil).
			Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()

		err := newMarkerHandler(markerUC).CreateMarker(e.NewContext(
			newJSONRequest(http.MethodPost, "/api/v1/markers", `{"location":{"lat":1.5,"lng":2.5}}`), rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, entity.DefaultCustomMarkerName, data["name"])
	})

	t.Run("location is required", func(t *testing.T) {
		markerUC := mockUC.NewMockMarkerUsecase(t)

		e := newTestEcho()
		rec := httptest.NewRecorder()

		err := newMarkerHandler(markerUC).CreateMarker(e.NewContext(
			newJSONRequest(http.MethodPost, "/api/v1/markers", `{"name":"Side street"}`), rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMarkerHandler_DeleteMarker(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		markerUC := mockUC.NewMockMarkerUsecase(t)
		markerUC.EXPECT().DeleteMarker(mock.Anything, "m1").Return(nil).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/v1/markers/m1", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("m1")

		require.NoError(t, newMarkerHandler(markerUC).DeleteMarker(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown marker", func(t *testing.T) {
		markerUC := mockUC.NewMockMarkerUsecase(t)
		markerUC.EXPECT().DeleteMarker(mock.Anything, "missing").Return(domainerrors.ErrMarkerNotFound).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/v1/markers/missing", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		require.NoError(t, newMarkerHandler(markerUC).DeleteMarker(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MARKER_NOT_FOUND", errorCode(t, rec))
	})
}
