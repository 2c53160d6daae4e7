package models

import "time"

// ScoutingLog records an observed field issue, optionally with a photo
// from the crop-health scanner.
// Collection: scouting_logs
type ScoutingLog struct {
	ID         string    `bson:"_id" json:"id"`
	FarmID     string    `bson:"farm_id" json:"farm_id"`
	BlockID    string    `bson:"block_id,omitempty" json:"block_id,omitempty"`
	ObservedAt time.Time `bson:"observed_at" json:"observed_at"`
	IssueType  string    `bson:"issue_type" json:"issue_type"`
	Severity   string    `bson:"severity,omitempty" json:"severity,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoPath  string    `bson:"photo_path,omitempty" json:"photo_path,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// IrrigationLog records one irrigation event.
// Collection: irrigation_logs
type IrrigationLog struct {
	ID          string    `bson:"_id" json:"id"`
	FarmID      string    `bson:"farm_id" json:"farm_id"`
	BlockID     string    `bson:"block_id,omitempty" json:"block_id,omitempty"`
	IrrigatedAt time.Time `bson:"irrigated_at" json:"irrigated_at"`
	AmountMM    float64   `bson:"amount_mm,omitempty" json:"amount_mm,omitempty"`
	DurationMin int       `bson:"duration_min,omitempty" json:"duration_min,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// BrixSample records one sweetness measurement.
// Collection: brix_samples
type BrixSample struct {
	ID        string    `bson:"_id" json:"id"`
	FarmID    string    `bson:"farm_id" json:"farm_id"`
	BlockID   string    `bson:"block_id,omitempty" json:"block_id,omitempty"`
	SampledAt time.Time `bson:"sampled_at" json:"sampled_at"`
	Brix      float64   `bson:"brix" json:"brix"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
