package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRecordAndAllFresh(t *testing.T) {
	store := NewMetricsStore(time.Hour)

	store.Record("disk_percent", 42, map[string]string{"host": "a"}, "test")
	store.Record("cpu_percent", 13, nil, "test")
	store.RecordAt("disk_percent", 99, time.Now().Add(-2*time.Hour))

	fresh := store.AllFresh()
	require.Len(t, fresh, 2)
	for _, sample := range fresh {
		assert.NotEqual(t, 99.0, sample.Value, "stale sample must not be fresh")
	}
}

func TestStoreFreshnessEvaluatedAtReadTime(t *testing.T) {
	store := NewMetricsStore(time.Hour)

	// Just inside the window: still fresh even though it was backdated.
	store.RecordAt("memory_percent", 55, time.Now().Add(-59*time.Minute))
	require.Len(t, store.AllFresh(), 1)

	// Outside the window: stale but never deleted.
	store.RecordAt("memory_percent", 66, time.Now().Add(-61*time.Minute))
	assert.Len(t, store.AllFresh(), 1)
	assert.Len(t, store.Series("memory_percent"), 2)
}

func TestStoreSeriesSortedAscending(t *testing.T) {
	store := NewMetricsStore(time.Hour)
	now := time.Now()

	store.RecordAt("disk_percent", 30, now.Add(-1*time.Hour))
	store.RecordAt("disk_percent", 10, now.Add(-3*time.Hour))
	store.RecordAt("disk_percent", 20, now.Add(-2*time.Hour))

	series := store.Series("disk_percent")
	require.Len(t, series, 3)
	assert.Equal(t, 10.0, series[0].Value)
	assert.Equal(t, 20.0, series[1].Value)
	assert.Equal(t, 30.0, series[2].Value)
}

func TestStoreLatest(t *testing.T) {
	store := NewMetricsStore(time.Hour)
	now := time.Now()

	store.RecordAt("cpu_percent", 10, now.Add(-30*time.Minute))
	store.RecordAt("cpu_percent", 20, now.Add(-10*time.Minute))

	latest, ok := store.Latest("cpu_percent")
	require.True(t, ok)
	assert.Equal(t, 20.0, latest.Value)

	_, ok = store.Latest("unknown_metric")
	assert.False(t, ok)

	store.RecordAt("stale_only", 5, now.Add(-2*time.Hour))
	_, ok = store.Latest("stale_only")
	assert.False(t, ok, "stale samples must not surface as latest")
}

func TestStoreSeriesCap(t *testing.T) {
	store := NewMetricsStore(time.Hour)
	base := time.Now().Add(-time.Hour)

	for i := 0; i < maxSeriesLength+25; i++ {
		store.RecordAt("disk_percent", float64(i), base.Add(time.Duration(i)*time.Second))
	}

	series := store.Series("disk_percent")
	require.Len(t, series, maxSeriesLength)
	assert.Equal(t, 25.0, series[0].Value, "oldest samples are dropped first")
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewMetricsStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Record("cpu_percent", float64(j), nil, "writer")
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.AllFresh()
				store.Series("cpu_percent")
			}
		}()
	}
	wg.Wait()

	assert.Len(t, store.Series("cpu_percent"), 800)
}
