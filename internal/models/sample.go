package models

import "time"

// Sample is a single recorded metric value. Samples are immutable once
// recorded; samples sharing a Name form a time series ordered by Timestamp.
type Sample struct {
	Name      string            `json:"name"`
	Value     float64           `json:"value"`
	Timestamp time.Time         `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
	Source    string            `json:"source,omitempty"`
}

// SeriesWindow holds one metric's samples for API responses.
type SeriesWindow struct {
	Name    string   `json:"name"`
	Samples []Sample `json:"samples"`
}
