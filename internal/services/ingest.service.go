package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/hyperpolymath/ambientops/internal/models"
)

// EventRecorder receives the ingestion side channel: one call per finding
// or applied change. Recording is fire-and-forget; ingestion never depends
// on the recorder's behavior.
type EventRecorder interface {
	RecordEvent(eventType, source string, data map[string]interface{})
}

// LogEventRecorder writes events to the process log. It is the fallback
// recorder when no other sink is wired.
type LogEventRecorder struct{}

func (LogEventRecorder) RecordEvent(eventType, source string, data map[string]interface{}) {
	log.Printf("[INGEST] event %s from %s: %v", eventType, source, data)
}

// IngestService normalizes run bundles and evidence envelopes into store
// writes plus recorded events.
type IngestService struct {
	store    *MetricsStore
	recorder EventRecorder
}

func NewIngestService(store *MetricsStore, recorder EventRecorder) *IngestService {
	if recorder == nil {
		recorder = LogEventRecorder{}
	}
	return &IngestService{store: store, recorder: recorder}
}

// Ingest normalizes a run bundle. A missing id gets a synthetic one;
// non-numeric snapshot entries are skipped silently.
func (s *IngestService) Ingest(bundle models.RunBundle) (*models.IngestResult, error) {
	id := bundle.ID
	if id == "" {
		id = bundle.BundleID
	}
	if id == "" {
		id = "bundle-" + uuid.NewString()
	}

	source := bundle.Source
	if source == "" {
		source = "run_bundle"
	}

	result := &models.IngestResult{BundleID: id}
	tags := map[string]string{"bundle_id": id}

	for name, raw := range bundle.Snapshot {
		value, numeric := asFloat(raw)
		if !numeric {
			continue
		}
		s.store.Record(name, value, tags, source)
		result.MetricsRecorded++
	}

	for _, finding := range bundle.Findings {
		s.recorder.RecordEvent(bundleEventType(finding), source, map[string]interface{}{
			"bundle_id": id,
			"id":        finding.ID,
			"severity":  finding.Severity,
			"type":      finding.Type,
			"title":     finding.Title,
			"detail":    finding.Detail,
		})
		result.EventsRecorded++
	}

	for _, change := range bundle.Applied {
		s.recorder.RecordEvent("change", source, map[string]interface{}{
			"bundle_id": id,
			"id":        change.ID,
			"title":     change.Title,
			"target":    change.Target,
			"result":    change.Result,
		})
		result.EventsRecorded++
	}

	return result, nil
}

// IngestEnvelope normalizes an evidence envelope. Validation happens before
// any write, so a malformed envelope has no partial side effects.
func (s *IngestService) IngestEnvelope(envelope models.EvidenceEnvelope) (*models.IngestResult, error) {
	if envelope.Version == "" {
		return nil, ErrMissingVersion
	}
	if envelope.EnvelopeID == "" {
		return nil, ErrMissingEnvelopeID
	}

	source := envelope.Source.Tool
	if source == "" {
		source = "envelope"
	}

	result := &models.IngestResult{EnvelopeID: envelope.EnvelopeID}
	tags := map[string]string{"envelope_id": envelope.EnvelopeID}

	for _, finding := range envelope.Findings {
		s.recorder.RecordEvent(envelopeEventType(finding.Severity), source, map[string]interface{}{
			"envelope_id":  envelope.EnvelopeID,
			"finding_id":   finding.FindingID,
			"severity":     finding.Severity,
			"category":     finding.Category,
			"title":        finding.Title,
			"auto_fixable": finding.AutoFixable,
		})
		result.EventsRecorded++
	}

	for name, value := range envelope.Metrics {
		s.store.Record(name, value, tags, source)
		result.MetricsRecorded++
	}

	// The artifact count is recorded even when the envelope carries none.
	s.store.Record("envelope_artifacts", float64(len(envelope.Artifacts)), tags, source)
	result.MetricsRecorded++

	return result, nil
}

// bundleEventType classes a loosely-typed finding: severities or types from
// {critical, error, anomaly} are anomalies, everything else is a metric.
func bundleEventType(finding models.BundleFinding) string {
	for _, marker := range []string{finding.Severity, finding.Type} {
		switch marker {
		case "critical", "error", "anomaly":
			return "anomaly"
		}
	}
	return "metric"
}

// envelopeEventType maps the envelope severity vocabulary.
func envelopeEventType(severity string) string {
	switch severity {
	case "critical", "high":
		return "anomaly"
	}
	return "metric"
}

// asFloat coerces the numeric shapes a loose JSON snapshot can carry.
func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
