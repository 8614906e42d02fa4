package services

import (
	"fmt"
	"time"

	"github.com/hyperpolymath/ambientops/internal/models"
)

const payloadVersion = "1.0.0"

// refreshIntervalFor mirrors the overall state: the worse the weather, the
// sooner the UI should ask again.
func refreshIntervalFor(state models.WeatherState) int {
	switch state {
	case models.StateAct:
		return 10
	case models.StateWatch:
		return 30
	default:
		return 60
	}
}

// PayloadService renders weather reports into theme-styled ambient
// payloads. It holds no state of its own.
type PayloadService struct {
	weather *WeatherService
	themes  *ThemeRegistry
	now     func() time.Time
}

func NewPayloadService(weather *WeatherService, themes *ThemeRegistry) *PayloadService {
	return &PayloadService{weather: weather, themes: themes, now: time.Now}
}

// Generate builds an ambient payload with the default theme.
func (p *PayloadService) Generate() *models.AmbientPayload {
	return p.GenerateWithTheme(defaultThemeID)
}

// GenerateWithTheme builds an ambient payload from the current weather.
func (p *PayloadService) GenerateWithTheme(themeID string) *models.AmbientPayload {
	return p.render(p.weather.Generate(), themeID)
}

// GenerateFrom builds an ambient payload from explicit readings, bypassing
// the store.
func (p *PayloadService) GenerateFrom(readings map[string]float64, themeID string) *models.AmbientPayload {
	if themeID == "" {
		themeID = defaultThemeID
	}
	return p.render(p.weather.GenerateFrom(readings), themeID)
}

func (p *PayloadService) render(report *models.WeatherReport, themeID string) *models.AmbientPayload {
	theme := p.themes.Get(themeID)
	style := p.themes.ApplyState(theme, report.State)
	now := p.now()

	attention := 0
	for _, eval := range report.Categories {
		if eval.State != models.StateCalm {
			attention++
		}
	}

	badge := models.Badge{Visible: attention > 0, Count: attention}
	if badge.Visible {
		badge.Color = style.Color
	}

	interval := refreshIntervalFor(report.State)
	return &models.AmbientPayload{
		Version:   payloadVersion,
		Timestamp: now,
		ThemeID:   theme.ID,
		Indicator: models.Indicator{
			Icon:      style.Icon,
			Color:     style.Color,
			Animation: style.Animation,
			State:     report.State,
			Tooltip:   report.Summary,
		},
		Badge: badge,
		Popover: models.PayloadPopover{
			Headline:    p.themes.FormatHeadline(theme, report.State, report.Summary),
			Metrics:     popoverMetrics(theme, report),
			LastUpdated: now,
		},
		Notifications: report.Notifications,
		QuickActions:  quickActions(report.Actions),
		Schedule: models.RefreshSchedule{
			RefreshIntervalSeconds: interval,
			NextRefresh:            now.Add(time.Duration(interval) * time.Second),
		},
	}
}

func popoverMetrics(theme models.Theme, report *models.WeatherReport) []models.MetricLine {
	lines := []models.MetricLine{}
	if !theme.Popover.ShowMetrics {
		return lines
	}
	for _, name := range sortedCategoryNames(report.Categories) {
		if len(lines) >= theme.Popover.MaxMetrics {
			break
		}
		eval := report.Categories[name]
		lines = append(lines, models.MetricLine{
			Label: name,
			Value: fmt.Sprintf("%.1f%s", eval.MetricValue, eval.MetricUnit),
			State: eval.State,
		})
	}
	return lines
}

func quickActions(actions []models.SuggestedAction) []models.ActionRef {
	refs := make([]models.ActionRef, 0, len(actions))
	for _, action := range actions {
		refs = append(refs, models.ActionRef{
			ActionID:    action.ActionID,
			Label:       action.Label,
			Description: action.Description,
			Priority:    action.Priority,
		})
	}
	return refs
}
