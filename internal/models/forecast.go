package models

import "time"

// ForecastType distinguishes the two prediction flavours.
type ForecastType string

const (
	ForecastExhaustion ForecastType = "exhaustion"
	ForecastThreshold  ForecastType = "threshold"
)

// TrendAnalysis summarizes one metric's fitted trend.
type TrendAnalysis struct {
	MetricName   string  `json:"metric_name"`
	Direction    string  `json:"direction"` // "increasing", "decreasing", "stable"
	RatePerHour  float64 `json:"rate_per_hour"`
	CurrentValue float64 `json:"current_value"`
	DataPoints   int     `json:"data_points"`
}

// Forecast is a predicted future crossing of a value.
type Forecast struct {
	MetricName     string       `json:"metric_name"`
	ForecastType   ForecastType `json:"forecast_type"`
	CurrentValue   float64      `json:"current_value"`
	PredictedValue float64      `json:"predicted_value"`
	PredictionAt   time.Time    `json:"prediction_at"`
	Confidence     float64      `json:"confidence"`
	Message        string       `json:"message"`
	DataPoints     int          `json:"data_points"`
	GeneratedAt    time.Time    `json:"generated_at"`
}
