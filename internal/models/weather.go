package models

import "time"

// WeatherState is the point-in-time health classification.
type WeatherState string

const (
	StateCalm  WeatherState = "calm"
	StateWatch WeatherState = "watch"
	StateAct   WeatherState = "act"
)

// Rank orders states by severity (calm < watch < act).
func (s WeatherState) Rank() int {
	switch s {
	case StateAct:
		return 2
	case StateWatch:
		return 1
	default:
		return 0
	}
}

// TrendDirection describes where a metric is heading.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDegrading TrendDirection = "degrading"
)

// CategoryEvaluation is the per-category verdict against its thresholds.
type CategoryEvaluation struct {
	State             WeatherState `json:"state"`
	Summary           string       `json:"summary"`
	MetricValue       float64      `json:"metric_value"`
	MetricUnit        string       `json:"metric_unit"`
	ThresholdWarning  float64      `json:"threshold_warning"`
	ThresholdCritical float64      `json:"threshold_critical"`
}

// NotificationConfig tells the UI whether and how to notify.
type NotificationConfig struct {
	ShouldNotify     bool           `json:"should_notify"`
	NotificationType string         `json:"notification_type"`
	SnoozeOptions    []SnoozeOption `json:"snooze_options"`
}

// SnoozeOption is one snooze duration offered alongside a notification.
type SnoozeOption struct {
	Label           string `json:"label"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// SuggestedAction is an advisory action reference. It carries only
// identifiers and display text; the pipeline never executes anything.
type SuggestedAction struct {
	ActionID    string `json:"action_id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Handler     string `json:"handler"`
}

// Trend is one metric's direction plus an optional human-readable rate.
type Trend struct {
	Direction TrendDirection `json:"direction"`
	Rate      string         `json:"rate,omitempty"`
}

// WeatherSource identifies what produced the readings behind a report.
type WeatherSource struct {
	Tool     string    `json:"tool"`
	LastScan time.Time `json:"last_scan"`
}

// WeatherReport is the full weather output. Regenerated on every call,
// never mutated in place.
type WeatherReport struct {
	Version       string                        `json:"version"`
	Timestamp     time.Time                     `json:"timestamp"`
	State         WeatherState                  `json:"state"`
	Summary       string                        `json:"summary"`
	Categories    map[string]CategoryEvaluation `json:"categories"`
	Notifications NotificationConfig            `json:"notifications"`
	Actions       []SuggestedAction             `json:"actions"`
	Trends        map[string]Trend              `json:"trends,omitempty"`
	Source        *WeatherSource                `json:"source,omitempty"`
}
