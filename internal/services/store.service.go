package services

import (
	"sort"
	"sync"
	"time"

	"github.com/hyperpolymath/ambientops/internal/models"
)

// maxSeriesLength bounds memory per metric; the oldest samples are dropped
// once a series exceeds it.
const maxSeriesLength = 1000

// MetricsStore is the only mutable shared state in the pipeline: an
// append-only, time-indexed sample store with a freshness window.
// Staleness is evaluated at read time, so a sample can go stale without
// ever being deleted.
type MetricsStore struct {
	mu     sync.RWMutex
	series map[string][]models.Sample
	ttl    time.Duration
	now    func() time.Time
}

// NewMetricsStore creates a store whose freshness window is ttl.
func NewMetricsStore(ttl time.Duration) *MetricsStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MetricsStore{
		series: make(map[string][]models.Sample),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the store's freshness window.
func (s *MetricsStore) TTL() time.Duration {
	return s.ttl
}

// Record appends a sample stamped with the current time.
func (s *MetricsStore) Record(name string, value float64, tags map[string]string, source string) {
	s.record(models.Sample{
		Name:      name,
		Value:     value,
		Timestamp: s.now(),
		Tags:      tags,
		Source:    source,
	})
}

// RecordAt appends a sample with an explicit timestamp, letting callers
// backfill or simulate time for forecasting.
func (s *MetricsStore) RecordAt(name string, value float64, at time.Time) {
	s.record(models.Sample{Name: name, Value: value, Timestamp: at})
}

func (s *MetricsStore) record(sample models.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	samples := append(s.series[sample.Name], sample)
	if len(samples) > maxSeriesLength {
		samples = samples[len(samples)-maxSeriesLength:]
	}
	s.series[sample.Name] = samples
}

// AllFresh returns every sample not older than the TTL, across all metric
// names, as a flat copy.
func (s *MetricsStore) AllFresh() []models.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Add(-s.ttl)
	var fresh []models.Sample
	for _, samples := range s.series {
		for _, sample := range samples {
			if !sample.Timestamp.Before(cutoff) {
				fresh = append(fresh, sample)
			}
		}
	}
	return fresh
}

// Series returns all retained samples for one metric, fresh or not, sorted
// ascending by timestamp. Forecasting deliberately looks past the
// freshness window to have enough points.
func (s *MetricsStore) Series(name string) []models.Sample {
	s.mu.RLock()
	samples := s.series[name]
	out := make([]models.Sample, len(samples))
	copy(out, samples)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// MetricNames returns every metric name with at least one retained sample.
func (s *MetricsStore) MetricNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.series))
	for name := range s.series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Latest returns the most recent fresh sample for one metric.
func (s *MetricsStore) Latest(name string) (models.Sample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Add(-s.ttl)
	samples := s.series[name]
	best := -1
	for i, sample := range samples {
		if sample.Timestamp.Before(cutoff) {
			continue
		}
		if best < 0 || !sample.Timestamp.Before(samples[best].Timestamp) {
			best = i
		}
	}
	if best < 0 {
		return models.Sample{}, false
	}
	return samples[best], true
}
