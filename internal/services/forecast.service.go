package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hyperpolymath/ambientops/internal/models"
)

// minDataPoints is the smallest series a forecast can be fitted to.
const minDataPoints = 3

// ForecastService fits linear trends to stored series and extrapolates
// future crossings. It reads past the freshness window on purpose.
type ForecastService struct {
	store *MetricsStore
	now   func() time.Time
}

func NewForecastService(store *MetricsStore) *ForecastService {
	return &ForecastService{store: store, now: time.Now}
}

// AnalyzeTrend fits a first-to-last rate over one metric's series.
func (f *ForecastService) AnalyzeTrend(metricName string) (*models.TrendAnalysis, error) {
	series := f.store.Series(metricName)
	if len(series) < minDataPoints {
		return nil, fmt.Errorf("%s has %d samples, need %d: %w",
			metricName, len(series), minDataPoints, ErrInsufficientData)
	}

	first := series[0]
	last := series[len(series)-1]
	elapsedHours := last.Timestamp.Sub(first.Timestamp).Hours()

	rate := 0.0
	if elapsedHours > 0 {
		rate = (last.Value - first.Value) / elapsedHours
	}

	direction := "stable"
	if rate > 0 {
		direction = "increasing"
	} else if rate < 0 {
		direction = "decreasing"
	}

	return &models.TrendAnalysis{
		MetricName:   metricName,
		Direction:    direction,
		RatePerHour:  rate,
		CurrentValue: last.Value,
		DataPoints:   len(series),
	}, nil
}

// PredictExhaustion extrapolates when an increasing metric reaches a
// budget ceiling.
func (f *ForecastService) PredictExhaustion(metricName string, targetValue float64) (*models.Forecast, error) {
	trend, err := f.AnalyzeTrend(metricName)
	if err != nil {
		return nil, err
	}
	if trend.Direction != "increasing" {
		return nil, fmt.Errorf("%s trend is %s: %w", metricName, trend.Direction, ErrNotTrending)
	}
	if trend.CurrentValue >= targetValue {
		return nil, fmt.Errorf("%s already at %.1f against budget %.1f: %w",
			metricName, trend.CurrentValue, targetValue, ErrAlreadyBreached)
	}

	forecast := f.extrapolate(trend, targetValue, models.ForecastExhaustion)
	forecast.Message = fmt.Sprintf("%s is on track to exhaust its budget of %.1f around %s",
		metricName, targetValue, forecast.PredictionAt.Format(time.RFC3339))
	return forecast, nil
}

// PredictThresholdBreach extrapolates when an increasing metric crosses a
// threshold it has not reached yet.
func (f *ForecastService) PredictThresholdBreach(metricName string, threshold float64) (*models.Forecast, error) {
	trend, err := f.AnalyzeTrend(metricName)
	if err != nil {
		return nil, err
	}
	if trend.CurrentValue >= threshold {
		return nil, fmt.Errorf("%s already at %.1f against threshold %.1f: %w",
			metricName, trend.CurrentValue, threshold, ErrAlreadyBreached)
	}
	if trend.Direction != "increasing" {
		return nil, fmt.Errorf("%s trend is %s: %w", metricName, trend.Direction, ErrNotTrending)
	}

	forecast := f.extrapolate(trend, threshold, models.ForecastThreshold)
	forecast.Message = fmt.Sprintf("%s is projected to breach threshold %.1f around %s",
		metricName, threshold, forecast.PredictionAt.Format(time.RFC3339))
	return forecast, nil
}

func (f *ForecastService) extrapolate(trend *models.TrendAnalysis, target float64, kind models.ForecastType) *models.Forecast {
	metricName := trend.MetricName
	hoursToTarget := (target - trend.CurrentValue) / trend.RatePerHour
	generatedAt := f.now()

	return &models.Forecast{
		MetricName:     metricName,
		ForecastType:   kind,
		CurrentValue:   trend.CurrentValue,
		PredictedValue: target,
		PredictionAt:   generatedAt.Add(time.Duration(hoursToTarget * float64(time.Hour))),
		Confidence:     f.confidence(metricName, trend),
		DataPoints:     trend.DataPoints,
		GeneratedAt:    generatedAt,
	}
}

// confidence scores a forecast in [0,1]: half from sample count (saturating
// at 12 points), half from the fraction of consecutive deltas agreeing with
// the overall direction. Deterministic for a given series.
func (f *ForecastService) confidence(metricName string, trend *models.TrendAnalysis) float64 {
	series := f.store.Series(metricName)
	if len(series) < 2 {
		return 0
	}

	points := float64(len(series))
	if points > 12 {
		points = 12
	}
	countScore := points / 12

	agreeing := 0
	for i := 1; i < len(series); i++ {
		delta := series[i].Value - series[i-1].Value
		if (trend.RatePerHour > 0 && delta > 0) || (trend.RatePerHour < 0 && delta < 0) {
			agreeing++
		}
	}
	consistency := float64(agreeing) / float64(len(series)-1)

	return 0.5*countScore + 0.5*consistency
}

// Generate runs trend forecasting across every metric with enough data and
// returns the successful forecasts sorted by confidence descending. An
// empty result is valid, not an error.
func (f *ForecastService) Generate() []models.Forecast {
	var forecasts []models.Forecast
	for _, name := range f.store.MetricNames() {
		if strings.HasSuffix(name, "_percent") {
			if forecast, err := f.PredictExhaustion(name, 100); err == nil {
				forecasts = append(forecasts, *forecast)
			}
		}
		if critical, tracked := criticalThresholdFor(name); tracked {
			if forecast, err := f.PredictThresholdBreach(name, critical); err == nil {
				forecasts = append(forecasts, *forecast)
			}
		}
	}

	sort.SliceStable(forecasts, func(i, j int) bool {
		if forecasts[i].Confidence != forecasts[j].Confidence {
			return forecasts[i].Confidence > forecasts[j].Confidence
		}
		return forecasts[i].MetricName < forecasts[j].MetricName
	})
	return forecasts
}
