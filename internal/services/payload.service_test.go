package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperpolymath/ambientops/internal/models"
)

func newPayloadFixture(t *testing.T) (*MetricsStore, *PayloadService) {
	t.Helper()
	store := NewMetricsStore(time.Hour)
	weather := NewWeatherService(store)
	return store, NewPayloadService(weather, NewThemeRegistry())
}

func TestPayloadBadgeCountsNonCalmCategories(t *testing.T) {
	_, payloads := newPayloadFixture(t)

	calm := payloads.GenerateFrom(map[string]float64{
		"disk_percent": 20, "memory_percent": 30, "cpu_percent": 10,
	}, "")
	assert.False(t, calm.Badge.Visible)
	assert.Zero(t, calm.Badge.Count)
	assert.Empty(t, calm.Badge.Color)

	one := payloads.GenerateFrom(map[string]float64{
		"disk_percent": 85, "memory_percent": 30, "cpu_percent": 10,
	}, "")
	assert.True(t, one.Badge.Visible)
	assert.Equal(t, 1, one.Badge.Count)
	assert.Equal(t, "#FF9800", one.Badge.Color)

	two := payloads.GenerateFrom(map[string]float64{
		"disk_percent": 95, "memory_percent": 92, "cpu_percent": 10,
	}, "")
	assert.True(t, two.Badge.Visible)
	assert.Equal(t, 2, two.Badge.Count)
	assert.Equal(t, "#F44336", two.Badge.Color)
}

func TestPayloadIndicatorFollowsThemeAndState(t *testing.T) {
	_, payloads := newPayloadFixture(t)

	result := payloads.GenerateFrom(map[string]float64{"disk_percent": 95}, "default")
	assert.Equal(t, "storm", result.Indicator.Icon)
	assert.Equal(t, "#F44336", result.Indicator.Color)
	assert.Equal(t, "bounce", result.Indicator.Animation)
	assert.Equal(t, models.StateAct, result.Indicator.State)
	assert.Contains(t, result.Indicator.Tooltip, "disk usage at 95.0%")

	result = payloads.GenerateFrom(map[string]float64{"disk_percent": 95}, "minimal")
	assert.Equal(t, "dot", result.Indicator.Icon)
	assert.Equal(t, "#F44336", result.Indicator.Color)
}

func TestPayloadUnknownThemeUsesDefault(t *testing.T) {
	_, payloads := newPayloadFixture(t)

	result := payloads.GenerateFrom(map[string]float64{"disk_percent": 10}, "no-such-theme")
	assert.Equal(t, "default", result.ThemeID)
	assert.Equal(t, "sun", result.Indicator.Icon)
}

func TestPayloadPopoverMetrics(t *testing.T) {
	_, payloads := newPayloadFixture(t)
	readings := map[string]float64{
		"disk_percent": 85, "memory_percent": 40, "cpu_percent": 10,
	}

	full := payloads.GenerateFrom(readings, "default")
	require.Len(t, full.Popover.Metrics, 3)
	assert.Equal(t, "cpu", full.Popover.Metrics[0].Label)
	assert.Equal(t, "85.0%", full.Popover.Metrics[1].Value)
	assert.Equal(t, models.StateWatch, full.Popover.Metrics[1].State)
	assert.Equal(t, "watch: Keeping an eye on: disk", full.Popover.Headline)

	// The minimal theme hides metrics but the list stays non-nil.
	minimal := payloads.GenerateFrom(readings, "minimal")
	require.NotNil(t, minimal.Popover.Metrics)
	assert.Empty(t, minimal.Popover.Metrics)
	assert.Equal(t, "Keeping an eye on: disk", minimal.Popover.Headline)
}

func TestPayloadRefreshSchedule(t *testing.T) {
	_, payloads := newPayloadFixture(t)

	cases := []struct {
		readings map[string]float64
		interval int
	}{
		{map[string]float64{"disk_percent": 10}, 60},
		{map[string]float64{"disk_percent": 85}, 30},
		{map[string]float64{"disk_percent": 95}, 10},
	}
	for _, tc := range cases {
		result := payloads.GenerateFrom(tc.readings, "")
		assert.Equal(t, tc.interval, result.Schedule.RefreshIntervalSeconds)
		assert.WithinDuration(t,
			result.Timestamp.Add(time.Duration(tc.interval)*time.Second),
			result.Schedule.NextRefresh, time.Second)
	}
}

func TestPayloadQuickActionsMirrorWeatherActions(t *testing.T) {
	_, payloads := newPayloadFixture(t)

	result := payloads.GenerateFrom(map[string]float64{
		"disk_percent": 95, "cpu_percent": 85,
	}, "")

	require.Len(t, result.QuickActions, 2)
	assert.Equal(t, "investigate_cpu", result.QuickActions[0].ActionID)
	assert.Equal(t, "fix_disk", result.QuickActions[1].ActionID)
	assert.Equal(t, "high", result.QuickActions[1].Priority)
}

func TestPayloadFromStore(t *testing.T) {
	store, payloads := newPayloadFixture(t)
	store.Record("disk_percent", 85, nil, "test")
	store.Record("memory_percent", 20, nil, "test")
	store.Record("cpu_percent", 15, nil, "test")

	result := payloads.GenerateWithTheme("tech")
	assert.Equal(t, "1.0.0", result.Version)
	assert.Equal(t, "tech", result.ThemeID)
	assert.Equal(t, models.StateWatch, result.Indicator.State)
	assert.Equal(t, "[watch] Keeping an eye on: disk", result.Popover.Headline)
}
