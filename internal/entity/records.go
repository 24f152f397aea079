package entity

import (
	"time"

	"github.com/google/uuid"
)

// SoilReport is a persisted soil analysis result.
type SoilReport struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	SoilReport map[string]any `json:"soilReport"`
	Solution   map[string]any `json:"solution"`
	Language   string         `json:"language"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// DiseaseAnalysis is a persisted diagnosis result.
type DiseaseAnalysis struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	FileType  string         `json:"fileType"`
	Diagnosis map[string]any `json:"diagnosis"`
	Language  string         `json:"language"`
	CreatedAt time.Time      `json:"createdAt"`
}

// WeatherSnapshot is a stored forecast fetch.
type WeatherSnapshot struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId,omitempty"`
	Lat       float64        `json:"lat"`
	Lon       float64        `json:"lon"`
	Provider  string         `json:"provider"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}

// MarketSnapshot is a stored regional price series.
type MarketSnapshot struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Region    string           `json:"region"`
	Prices    []map[string]any `json:"prices"`
	Source    string           `json:"source"`
	CreatedAt time.Time        `json:"createdAt"`
}

// FertilizerPlan is a stored fertilizer application plan.
type FertilizerPlan struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	Crop      string         `json:"crop"`
	Stage     string         `json:"stage"`
	Plan      map[string]any `json:"plan"`
	Language  string         `json:"language"`
	CreatedAt time.Time      `json:"createdAt"`
}
