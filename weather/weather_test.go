package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheKalyaniMohite/TableGrapeAgent/weather"
)

const stubDaily = `{
	"daily": {
		"time": ["2026-03-01", "2026-03-02", "2026-03-03"],
		"temperature_2m_min": [12.1, 13.4],
		"temperature_2m_max": [28.5, 30.2, null],
		"precipitation_sum": [0, 4.2, 0.8]
	}
}`

func TestGetForecastShapesDays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "19.9975", r.URL.Query().Get("latitude"))
		assert.Equal(t, "73.7898", r.URL.Query().Get("longitude"))
		assert.Equal(t, "3", r.URL.Query().Get("forecast_days"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stubDaily))
	}))
	defer server.Close()

	client := weather.NewWithBaseURL(server.URL, 0)
	forecast, err := client.GetForecast(context.Background(), 19.9975, 73.7898, 3)
	require.NoError(t, err)

	require.Len(t, forecast.Days, 3)
	assert.Equal(t, "2026-03-01", forecast.Days[0].Date)
	require.NotNil(t, forecast.Days[0].TempMin)
	assert.InDelta(t, 12.1, *forecast.Days[0].TempMin, 0.001)

	// short min array pads the third day with nil
	assert.Nil(t, forecast.Days[2].TempMin)
	// explicit null stays nil
	assert.Nil(t, forecast.Days[2].TempMax)
	require.NotNil(t, forecast.Days[2].PrecipitationSum)
	assert.InDelta(t, 0.8, *forecast.Days[2].PrecipitationSum, 0.001)
}

func TestGetForecastCachesWithinTTL(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(stubDaily))
	}))
	defer server.Close()

	client := weather.NewWithBaseURL(server.URL, time.Hour)

	_, err := client.GetForecast(context.Background(), 19.9975, 73.7898, 3)
	require.NoError(t, err)
	_, err = client.GetForecast(context.Background(), 19.9975, 73.7898, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// different coordinates miss the cache
	_, err = client.GetForecast(context.Background(), 20.0, 73.7898, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestGetForecastServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	client := weather.NewWithBaseURL(server.URL, 0)
	_, err := client.GetForecast(context.Background(), 1, 2, 7)
	assert.Error(t, err)
}
