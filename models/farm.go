package models

import "time"

// Farm is the top-level entity scoping all advisory and chat state.
// Collection: farms
//
// IDs are opaque string tokens (UUIDs) rather than ObjectIDs so they
// can round-trip through clients and local storage unchanged.
type Farm struct {
	ID                string    `bson:"_id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Lat               float64   `bson:"lat" json:"lat"`
	Lon               float64   `bson:"lon" json:"lon"`
	CountryCode       string    `bson:"country_code,omitempty" json:"country_code,omitempty"`
	PreferredLanguage string    `bson:"preferred_language" json:"preferred_language"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// Block is one crop block inside a farm.
// Collection: blocks
type Block struct {
	ID             string    `bson:"_id" json:"id"`
	FarmID         string    `bson:"farm_id" json:"farm_id"`
	Name           string    `bson:"name" json:"name"`
	Variety        string    `bson:"variety,omitempty" json:"variety,omitempty"`
	PlantingYear   int       `bson:"planting_year,omitempty" json:"planting_year,omitempty"`
	SoilType       string    `bson:"soil_type,omitempty" json:"soil_type,omitempty"`
	IrrigationType string    `bson:"irrigation_type,omitempty" json:"irrigation_type,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
