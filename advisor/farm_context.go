package advisor

// FarmContext is the compact JSON document attached to the model
// prompt. Field names are part of the prompt contract; keep them
// stable.
type FarmContext struct {
	Farm             ContextFarm         `json:"farm"`
	Block            *ContextBlock       `json:"block"`
	LatestStatus     *ContextStatus      `json:"latest_status"`
	RecentScouting   []ContextScouting   `json:"recent_scouting"`
	RecentIrrigation []ContextIrrigation `json:"recent_irrigation"`
	RecentBrix       []ContextBrix       `json:"recent_brix"`
	LastScan         *ContextScan        `json:"last_scan"`
	WeatherForecast  *ContextForecast    `json:"weather_forecast"`
}

type ContextFarm struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
}

type ContextBlock struct {
	Name           string `json:"name"`
	Variety        string `json:"variety"`
	IrrigationType string `json:"irrigation_type"`
}

type ContextStatus struct {
	Stage          string   `json:"stage"`
	Brix           float64  `json:"brix,omitempty"`
	Issues         []string `json:"issues"`
	LastIrrigation string   `json:"last_irrigation,omitempty"`
	LastSpray      string   `json:"last_spray,omitempty"`
	RecordedAt     string   `json:"recorded_at,omitempty"`
}

type ContextScouting struct {
	Issue      string `json:"issue"`
	Severity   string `json:"severity,omitempty"`
	Notes      string `json:"notes,omitempty"`
	ObservedAt string `json:"observed_at,omitempty"`
	HasPhoto   bool   `json:"has_photo"`
}

type ContextIrrigation struct {
	AmountMM    float64 `json:"amount_mm"`
	DurationMin int     `json:"duration_min"`
	IrrigatedAt string  `json:"irrigated_at,omitempty"`
}

type ContextBrix struct {
	Brix      float64 `json:"brix"`
	SampledAt string  `json:"sampled_at,omitempty"`
}

type ContextScan struct {
	Issue      string `json:"issue"`
	Severity   string `json:"severity,omitempty"`
	Summary    string `json:"summary,omitempty"`
	ObservedAt string `json:"observed_at,omitempty"`
}

type ContextForecast struct {
	Next7Days []ContextForecastDay `json:"next_7_days"`
}

type ContextForecastDay struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Precipitation float64 `json:"precipitation"`
}
