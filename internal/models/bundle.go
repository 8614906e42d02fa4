package models

import "time"

// RunBundle is the loosely-typed snapshot+findings+changes package produced
// by external procedure runners. Every field except the id is optional, and
// the id itself may arrive under either key.
type RunBundle struct {
	ID        string                 `json:"id,omitempty"`
	BundleID  string                 `json:"bundle_id,omitempty"`
	Timestamp *time.Time             `json:"timestamp,omitempty"`
	Source    string                 `json:"source,omitempty"`
	Snapshot  map[string]interface{} `json:"snapshot,omitempty"`
	Findings  []BundleFinding        `json:"findings,omitempty"`
	Applied   []AppliedChange        `json:"applied,omitempty"`
}

// BundleFinding is one observation inside a run bundle. Severity and Type
// are free-form; ingestion decides the event class from them.
type BundleFinding struct {
	ID       string `json:"id,omitempty"`
	Severity string `json:"severity,omitempty"`
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// AppliedChange records a change an external runner already performed.
type AppliedChange struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Target string `json:"target,omitempty"`
	Result string `json:"result,omitempty"`
}

// IngestResult reports what one ingestion call recorded.
type IngestResult struct {
	MetricsRecorded int    `json:"metrics_recorded"`
	EventsRecorded  int    `json:"events_recorded"`
	BundleID        string `json:"bundle_id,omitempty"`
	EnvelopeID      string `json:"envelope_id,omitempty"`
}
