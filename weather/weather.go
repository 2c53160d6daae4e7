// Package weather fetches daily forecasts from Open-Meteo and caches
// them per coordinate pair.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/httpclient"
	"github.com/TheKalyaniMohite/TableGrapeAgent/config"
)

// Day is one day of forecast in the shape the rest of the app consumes.
type Day struct {
	Date             string   `json:"date"`
	TempMin          *float64 `json:"temp_min"`
	TempMax          *float64 `json:"temp_max"`
	PrecipitationSum *float64 `json:"precipitation_sum"`
}

// Forecast is the shaped Open-Meteo response.
type Forecast struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Days []Day   `json:"days"`
}

// openMeteoResponse mirrors the provider's daily block.
type openMeteoResponse struct {
	Daily struct {
		Time             []string   `json:"time"`
		TempMin          []*float64 `json:"temperature_2m_min"`
		TempMax          []*float64 `json:"temperature_2m_max"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

type cacheEntry struct {
	forecast *Forecast
	storedAt time.Time
}

// Client fetches and caches forecasts.
type Client struct {
	base *httpclient.BaseClient
	ttl  time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// New builds a forecast client from app config.
func New() *Client {
	cfg := config.GetConfig().Weather
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1/forecast"
	}
	ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute

	hc := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
	return &Client{
		base:  httpclient.NewBaseClientWithClient(hc, baseURL),
		ttl:   ttl,
		cache: map[string]cacheEntry{},
	}
}

// NewWithBaseURL is used by tests to point the client at a stub server.
func NewWithBaseURL(baseURL string, ttl time.Duration) *Client {
	hc := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
	return &Client{
		base:  httpclient.NewBaseClientWithClient(hc, baseURL),
		ttl:   ttl,
		cache: map[string]cacheEntry{},
	}
}

// GetForecast returns up to days days of forecast for the coordinates.
func (c *Client) GetForecast(ctx context.Context, lat, lon float64, days int) (*Forecast, error) {
	if days <= 0 {
		days = 7
	}
	key := fmt.Sprintf("%.4f_%.4f_%d", lat, lon, days)

	if c.ttl > 0 {
		c.mu.Lock()
		if entry, ok := c.cache[key]; ok && time.Since(entry.storedAt) < c.ttl {
			c.mu.Unlock()
			return entry.forecast, nil
		}
		c.mu.Unlock()
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("daily", "temperature_2m_min,temperature_2m_max,precipitation_sum")
	query.Set("timezone", "auto")
	query.Set("forecast_days", strconv.Itoa(days))

	req, err := c.base.NewRequest(ctx, http.MethodGet, "", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}

	body, err := httpclient.ReadBody(resp, 1<<20)
	if err != nil {
		return nil, fmt.Errorf("open-meteo response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo request failed: status=%d body=%s", resp.StatusCode, body)
	}

	var raw openMeteoResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	forecast := &Forecast{Lat: lat, Lon: lon, Days: shapeDays(raw)}

	if c.ttl > 0 {
		c.mu.Lock()
		c.cache[key] = cacheEntry{forecast: forecast, storedAt: time.Now()}
		c.mu.Unlock()
	}
	return forecast, nil
}

// shapeDays zips the provider's parallel arrays into per-day records.
// Rows missing from any array are padded with nils rather than dropped.
func shapeDays(raw openMeteoResponse) []Day {
	days := make([]Day, 0, len(raw.Daily.Time))
	for i, date := range raw.Daily.Time {
		d := Day{Date: date}
		if i < len(raw.Daily.TempMin) {
			d.TempMin = raw.Daily.TempMin[i]
		}
		if i < len(raw.Daily.TempMax) {
			d.TempMax = raw.Daily.TempMax[i]
		}
		if i < len(raw.Daily.PrecipitationSum) {
			d.PrecipitationSum = raw.Daily.PrecipitationSum[i]
		}
		days = append(days, d)
	}
	return days
}
