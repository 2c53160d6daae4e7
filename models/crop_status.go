package models

import "time"

// CropStatus is a point-in-time check-in for a farm's crop.
// Collection: crop_status
type CropStatus struct {
	ID             string    `bson:"_id" json:"id"`
	FarmID         string    `bson:"farm_id" json:"farm_id"`
	BlockID        string    `bson:"block_id,omitempty" json:"block_id,omitempty"`
	RecordedAt     time.Time `bson:"recorded_at" json:"recorded_at"`
	Stage          string    `bson:"stage" json:"stage"`
	SweetnessBrix  float64   `bson:"sweetness_brix,omitempty" json:"sweetness_brix,omitempty"`
	Cracking       bool      `bson:"cracking" json:"cracking"`
	Sunburn        bool      `bson:"sunburn" json:"sunburn"`
	MildewSigns    bool      `bson:"mildew_signs" json:"mildew_signs"`
	BotrytisSigns  bool      `bson:"botrytis_signs" json:"botrytis_signs"`
	PestSigns      bool      `bson:"pest_signs" json:"pest_signs"`
	LastIrrigation string    `bson:"last_irrigation,omitempty" json:"last_irrigation,omitempty"`
	LastSpray      string    `bson:"last_spray,omitempty" json:"last_spray,omitempty"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
