package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ItineraryResponse), args.Error(1)
}

func (m *MockService) SearchPlaces(ctx context.Context, city string, vibe types.Vibe, intensity types.Intensity, hotel *types.Coordinate) (*types.PlacesResponse, error) {
	args := m.Called(ctx, city, vibe, intensity, hotel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PlacesResponse), args.Error(1)
}

func (m *MockService) CurrentWeather(ctx context.Context, city string) (*types.WeatherResponse, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeatherResponse), args.Error(1)
}

func setupHandlerTest() (*MockService, http.Handler) {
	svc := new(MockService)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	h := NewHandlerImpl(svc, logger)

	r := chi.NewRouter()
	r.Post("/api/v1/itineraries", h.GenerateItinerary)
	r.Get("/api/v1/places", h.SearchPlaces)
	r.Get("/api/v1/weather/{city}", h.CurrentWeather)
	return svc, r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.Response {
	t.Helper()
	var resp types.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandler_GenerateItinerary(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, router := setupHandlerTest()
		want := &types.ItineraryResponse{
			Itinerary: types.Itinerary{City: "Rome", Places: []types.Place{{Name: "Colosseum", Latitude: 41.8902, Longitude: 12.4922}}},
			Status:    map[string]types.AdapterStatus{types.AdapterPlaces: {State: types.AdapterOK}},
		}
		svc.On("GenerateItinerary", mock.Anything, types.TripRequest{Destination: "Rome", Intensity: types.IntensityChill}).Return(want, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", strings.NewReader(`{"destination":"Rome","intensity":"Chill"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got types.ItineraryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Colosseum", got.Itinerary.Places[0].Name)
		assert.Equal(t, types.AdapterOK, got.Status[types.AdapterPlaces].State)
		svc.AssertExpectations(t)
	})

	t.Run("duration posted as a form string", func(t *testing.T) {
		svc, router := setupHandlerTest()
		svc.On("GenerateItinerary", mock.Anything, types.TripRequest{Destination: "Rome", Duration: 2}).
			Return(&types.ItineraryResponse{Itinerary: types.Itinerary{City: "Rome", Duration: 2}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", strings.NewReader(`{"destination":"Rome","duration":"2"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("destination required", func(t *testing.T) {
		svc, router := setupHandlerTest()
		svc.On("GenerateItinerary", mock.Anything, mock.Anything).Return(nil, ErrDestinationRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", strings.NewReader(`{"destination":""}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "Please enter a destination.", body.Error)
	})

	t.Run("malformed body never reaches the service", func(t *testing.T) {
		svc, router := setupHandlerTest()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", strings.NewReader(`{"destination":`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GenerateItinerary", mock.Anything, mock.Anything)
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc, router := setupHandlerTest()
		svc.On("GenerateItinerary", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", strings.NewReader(`{"destination":"Rome"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rec).Error)
	})
}

func TestHandler_SearchPlaces(t *testing.T) {
	t.Run("passes the hotel coordinate", func(t *testing.T) {
		svc, router := setupHandlerTest()
		hotel := &types.Coordinate{Latitude: 41.9, Longitude: 12.49}
		svc.On("SearchPlaces", mock.Anything, "Rome", types.VibeFoodie, types.IntensityChill, hotel).
			Return(&types.PlacesResponse{City: "Rome", Category: "restaurants", Places: []types.Place{}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places?city=Rome&vibe=Foodie&intensity=Chill&lat=41.9&lon=12.49", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("half a coordinate is rejected", func(t *testing.T) {
		_, router := setupHandlerTest()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places?city=Rome&lat=41.9", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "lat and lon must be given together", decodeError(t, rec).Error)
	})

	t.Run("provider failure is a bad gateway", func(t *testing.T) {
		svc, router := setupHandlerTest()
		svc.On("SearchPlaces", mock.Anything, "Rome", types.Vibe(""), types.Intensity(""), (*types.Coordinate)(nil)).
			Return(nil, ErrPlacesUnavailable).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/places?city=Rome", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestHandler_CurrentWeather(t *testing.T) {
	svc, router := setupHandlerTest()
	svc.On("CurrentWeather", mock.Anything, "Rome").
		Return(&types.WeatherResponse{City: "Rome", Weather: &types.WeatherSnapshot{Temperature: 21, Condition: "Clouds"}, Stale: true}, nil).Once()
	svc.On("CurrentWeather", mock.Anything, "Atlantis").Return(nil, ErrWeatherUnavailable).Once()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/weather/Rome", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got types.WeatherResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Stale)
	assert.Equal(t, "Clouds", got.Weather.Condition)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/weather/Atlantis", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestParseHotel(t *testing.T) {
	c, err := parseHotel("", "")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = parseHotel("41.9", "12.49")
	require.NoError(t, err)
	assert.Equal(t, &types.Coordinate{Latitude: 41.9, Longitude: 12.49}, c)

	_, err = parseHotel("91", "0")
	assert.Error(t, err)
	_, err = parseHotel("abc", "0")
	assert.Error(t, err)
	_, err = parseHotel("0", "181")
	assert.Error(t, err)
}
