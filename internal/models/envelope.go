package models

import "time"

// EvidenceEnvelope is the schema-typed bundle emitted by diagnostic tools.
// Version and EnvelopeID are mandatory; ingestion rejects the envelope
// before any writes when either is missing.
type EvidenceEnvelope struct {
	Version    string             `json:"version"`
	EnvelopeID string             `json:"envelope_id"`
	CreatedAt  *time.Time         `json:"created_at,omitempty"`
	Source     EnvelopeSource     `json:"source"`
	Artifacts  []Artifact         `json:"artifacts"`
	Findings   []EnvelopeFinding  `json:"findings,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

// EnvelopeSource names the tool and host that produced an envelope.
type EnvelopeSource struct {
	Tool string `json:"tool,omitempty"`
	Host string `json:"host,omitempty"`
}

// Artifact is a file reference captured alongside findings.
type Artifact struct {
	ArtifactID string `json:"artifact_id,omitempty"`
	Type       string `json:"type,omitempty"`
	Path       string `json:"path,omitempty"`
	SizeBytes  int64  `json:"size_bytes,omitempty"`
}

// EnvelopeFinding is a schema-typed finding with a severity from the
// envelope vocabulary (info, low, medium, high, critical).
type EnvelopeFinding struct {
	FindingID   string `json:"finding_id"`
	Severity    string `json:"severity"`
	Category    string `json:"category,omitempty"`
	Title       string `json:"title,omitempty"`
	AutoFixable bool   `json:"auto_fixable,omitempty"`
}

// Event is what the ingestion side channel hands to an event recorder.
type Event struct {
	Type      string                 `json:"type"` // "anomaly", "metric", "change"
	Source    string                 `json:"source"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}
