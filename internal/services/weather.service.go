package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hyperpolymath/ambientops/internal/models"
)

const weatherVersion = "1.0.0"

// trendEpsilon is the change between the two most recent samples below
// which a metric counts as stable.
const trendEpsilon = 5.0

// categoryRule drives the evaluation of one tracked category. Adding a
// category is a table edit, not new control flow.
type categoryRule struct {
	Name      string
	MetricKey string
	Warning   float64
	Critical  float64
	Unit      string
}

var categoryRules = []categoryRule{
	{Name: "disk", MetricKey: "disk_percent", Warning: 80, Critical: 90, Unit: "%"},
	{Name: "memory", MetricKey: "memory_percent", Warning: 75, Critical: 90, Unit: "%"},
	{Name: "cpu", MetricKey: "cpu_percent", Warning: 80, Critical: 95, Unit: "%"},
}

// WeatherService classifies the current metric snapshot into a weather
// report. It never mutates the store.
type WeatherService struct {
	store *MetricsStore
	now   func() time.Time
}

func NewWeatherService(store *MetricsStore) *WeatherService {
	return &WeatherService{store: store, now: time.Now}
}

// Generate builds a weather report from the latest fresh sample of each
// tracked category's metric. Categories without a fresh sample are omitted.
func (w *WeatherService) Generate() *models.WeatherReport {
	readings := make(map[string]float64)
	for _, rule := range categoryRules {
		if sample, ok := w.store.Latest(rule.MetricKey); ok {
			readings[rule.MetricKey] = sample.Value
		}
	}
	return w.report(readings, w.trends())
}

// GenerateFrom evaluates an explicit reading set keyed by metric key
// (disk_percent, memory_percent, cpu_percent), bypassing the store
// entirely. Explicit readings carry no history, so every trend is stable.
func (w *WeatherService) GenerateFrom(readings map[string]float64) *models.WeatherReport {
	return w.report(readings, stableTrends())
}

func (w *WeatherService) report(readings map[string]float64, trends map[string]models.Trend) *models.WeatherReport {
	categories := make(map[string]models.CategoryEvaluation)
	for _, rule := range categoryRules {
		value, ok := readings[rule.MetricKey]
		if !ok {
			continue
		}
		categories[rule.Name] = evaluateCategory(rule, value)
	}

	overall := overallState(categories)
	return &models.WeatherReport{
		Version:       weatherVersion,
		Timestamp:     w.now(),
		State:         overall,
		Summary:       summarize(overall, categories),
		Categories:    categories,
		Notifications: notificationPolicy(overall),
		Actions:       suggestedActions(categories),
		Trends:        trends,
		Source: &models.WeatherSource{
			Tool:     "ambientops",
			LastScan: w.now(),
		},
	}
}

func evaluateCategory(rule categoryRule, value float64) models.CategoryEvaluation {
	state := models.StateCalm
	summary := fmt.Sprintf("%s usage at %.1f%s", rule.Name, value, rule.Unit)
	switch {
	case value >= rule.Critical:
		state = models.StateAct
		summary = fmt.Sprintf("%s usage at %.1f%s, above critical threshold %.0f%s",
			rule.Name, value, rule.Unit, rule.Critical, rule.Unit)
	case value >= rule.Warning:
		state = models.StateWatch
		summary = fmt.Sprintf("%s usage at %.1f%s, above warning threshold %.0f%s",
			rule.Name, value, rule.Unit, rule.Warning, rule.Unit)
	}
	return models.CategoryEvaluation{
		State:             state,
		Summary:           summary,
		MetricValue:       value,
		MetricUnit:        rule.Unit,
		ThresholdWarning:  rule.Warning,
		ThresholdCritical: rule.Critical,
	}
}

// overallState is the severity-max across categories, not an average.
func overallState(categories map[string]models.CategoryEvaluation) models.WeatherState {
	overall := models.StateCalm
	for _, eval := range categories {
		if eval.State.Rank() > overall.Rank() {
			overall = eval.State
		}
	}
	return overall
}

func summarize(overall models.WeatherState, categories map[string]models.CategoryEvaluation) string {
	switch overall {
	case models.StateAct:
		var parts []string
		for _, name := range sortedCategoryNames(categories) {
			if categories[name].State == models.StateAct {
				parts = append(parts, categories[name].Summary)
			}
		}
		return strings.Join(parts, "; ")
	case models.StateWatch:
		var names []string
		for _, name := range sortedCategoryNames(categories) {
			if categories[name].State == models.StateWatch {
				names = append(names, name)
			}
		}
		return "Keeping an eye on: " + strings.Join(names, ", ")
	default:
		return "All systems nominal"
	}
}

func sortedCategoryNames(categories map[string]models.CategoryEvaluation) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// notificationPolicy is a fixed, total mapping from overall state.
func notificationPolicy(state models.WeatherState) models.NotificationConfig {
	switch state {
	case models.StateAct:
		return models.NotificationConfig{
			ShouldNotify:     true,
			NotificationType: "toast",
			SnoozeOptions: []models.SnoozeOption{
				{Label: "30 minutes", DurationSeconds: 1800},
				{Label: "1 hour", DurationSeconds: 3600},
			},
		}
	case models.StateWatch:
		return models.NotificationConfig{
			ShouldNotify:     true,
			NotificationType: "badge",
			SnoozeOptions: []models.SnoozeOption{
				{Label: "1 hour", DurationSeconds: 3600},
				{Label: "4 hours", DurationSeconds: 14400},
			},
		}
	default:
		return models.NotificationConfig{
			ShouldNotify:     false,
			NotificationType: "silent",
			SnoozeOptions:    []models.SnoozeOption{},
		}
	}
}

// suggestedActions derives advisory action references. Action ids are
// deterministic functions of the category name.
func suggestedActions(categories map[string]models.CategoryEvaluation) []models.SuggestedAction {
	var actions []models.SuggestedAction
	for _, name := range sortedCategoryNames(categories) {
		switch categories[name].State {
		case models.StateAct:
			actions = append(actions, models.SuggestedAction{
				ActionID:    "fix_" + name,
				Label:       "Fix " + name + " now",
				Description: categories[name].Summary,
				Priority:    "high",
				Handler:     "remediate_now",
			})
		case models.StateWatch:
			actions = append(actions, models.SuggestedAction{
				ActionID:    "investigate_" + name,
				Label:       "Investigate " + name,
				Description: categories[name].Summary,
				Priority:    "medium",
				Handler:     "open_diagnostics",
			})
		}
	}
	return actions
}

// trends compares the two most recent samples of each tracked metric. For
// usage metrics a rise is degradation.
func (w *WeatherService) trends() map[string]models.Trend {
	trends := make(map[string]models.Trend, len(categoryRules)+1)
	overall := models.TrendStable
	for _, rule := range categoryRules {
		direction := models.TrendStable
		rate := ""
		series := w.store.Series(rule.MetricKey)
		if n := len(series); n >= 2 {
			delta := series[n-1].Value - series[n-2].Value
			switch {
			case delta > trendEpsilon:
				direction = models.TrendDegrading
				rate = fmt.Sprintf("+%.1f%s", delta, rule.Unit)
			case delta < -trendEpsilon:
				direction = models.TrendImproving
				rate = fmt.Sprintf("%.1f%s", delta, rule.Unit)
			}
		}
		trends[rule.Name] = models.Trend{Direction: direction, Rate: rate}

		if direction == models.TrendDegrading {
			overall = models.TrendDegrading
		} else if direction == models.TrendImproving && overall == models.TrendStable {
			overall = models.TrendImproving
		}
	}
	trends["overall"] = models.Trend{Direction: overall}
	return trends
}

func stableTrends() map[string]models.Trend {
	trends := make(map[string]models.Trend, len(categoryRules)+1)
	for _, rule := range categoryRules {
		trends[rule.Name] = models.Trend{Direction: models.TrendStable}
	}
	trends["overall"] = models.Trend{Direction: models.TrendStable}
	return trends
}

// TrackedMetricKeys lists the metric keys behind the category table.
func TrackedMetricKeys() []string {
	keys := make([]string, 0, len(categoryRules))
	for _, rule := range categoryRules {
		keys = append(keys, rule.MetricKey)
	}
	return keys
}

// criticalThresholdFor resolves a metric key to its category's critical
// threshold, if the metric backs a tracked category.
func criticalThresholdFor(metricKey string) (float64, bool) {
	for _, rule := range categoryRules {
		if rule.MetricKey == metricKey {
			return rule.Critical, true
		}
	}
	return 0, false
}
