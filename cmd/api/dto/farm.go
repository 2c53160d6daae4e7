package dto

// FarmCreateRequestDTO is the body of POST /farms.
type FarmCreateRequestDTO struct {
	Name              string  `json:"name" example:"My Farm"`
	Lat               float64 `json:"lat" binding:"required" example:"19.9975"`
	Lon               float64 `json:"lon" binding:"required" example:"73.7898"`
	CountryCode       string  `json:"country_code" example:"IN"`
	PreferredLanguage string  `json:"preferred_language" example:"en"`
}

// FarmResponseDTO mirrors the stored farm document.
type FarmResponseDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
	CountryCode       string  `json:"country_code,omitempty"`
	PreferredLanguage string  `json:"preferred_language"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}
