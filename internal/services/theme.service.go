package services

import (
	"sort"
	"strings"

	"github.com/hyperpolymath/ambientops/internal/models"
)

const defaultThemeID = "default"

// ThemeRegistry holds the static, immutable theme set. Lookup is total:
// unknown ids resolve to the default theme.
type ThemeRegistry struct {
	themes map[string]models.Theme
}

func NewThemeRegistry() *ThemeRegistry {
	return &ThemeRegistry{themes: builtinThemes()}
}

func builtinThemes() map[string]models.Theme {
	return map[string]models.Theme{
		"default": {
			ID:   "default",
			Name: "Default",
			States: map[models.WeatherState]models.StateStyle{
				models.StateCalm:  {Icon: "sun", Color: "#4CAF50", Animation: "none"},
				models.StateWatch: {Icon: "cloud", Color: "#FF9800", Animation: "pulse"},
				models.StateAct:   {Icon: "storm", Color: "#F44336", Animation: "bounce"},
			},
			Popover: models.PopoverRules{
				HeadlineFormat: "{state}: {summary}",
				ShowMetrics:    true,
				MaxMetrics:     3,
			},
		},
		"minimal": {
			ID:   "minimal",
			Name: "Minimal",
			States: map[models.WeatherState]models.StateStyle{
				models.StateCalm:  {Icon: "dot", Color: "#9E9E9E", Animation: "none"},
				models.StateWatch: {Icon: "dot", Color: "#FFC107", Animation: "none"},
				models.StateAct:   {Icon: "dot", Color: "#F44336", Animation: "none"},
			},
			Popover: models.PopoverRules{
				HeadlineFormat: "{summary}",
				ShowMetrics:    false,
				MaxMetrics:     0,
			},
		},
		"tech": {
			ID:   "tech",
			Name: "Tech",
			States: map[models.WeatherState]models.StateStyle{
				models.StateCalm:  {Icon: "terminal", Color: "#00E676", Animation: "none"},
				models.StateWatch: {Icon: "terminal", Color: "#FFEA00", Animation: "glow"},
				models.StateAct:   {Icon: "terminal", Color: "#FF1744", Animation: "pulse"},
			},
			Popover: models.PopoverRules{
				HeadlineFormat: "[{state}] {summary}",
				ShowMetrics:    true,
				MaxMetrics:     3,
			},
		},
	}
}

// Get resolves a theme id, falling back to the default theme. Never fails.
func (r *ThemeRegistry) Get(id string) models.Theme {
	if theme, ok := r.themes[id]; ok {
		return theme
	}
	return r.themes[defaultThemeID]
}

// List returns all registered theme ids.
func (r *ThemeRegistry) List() []string {
	ids := make([]string, 0, len(r.themes))
	for id := range r.themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ApplyState returns the visual triple for a state within a theme, falling
// back to the theme's calm entry when the state is missing.
func (r *ThemeRegistry) ApplyState(theme models.Theme, state models.WeatherState) models.StateStyle {
	if style, ok := theme.States[state]; ok {
		return style
	}
	return theme.States[models.StateCalm]
}

// FormatHeadline substitutes {state} and {summary} in the theme's headline
// format.
func (r *ThemeRegistry) FormatHeadline(theme models.Theme, state models.WeatherState, summary string) string {
	headline := strings.ReplaceAll(theme.Popover.HeadlineFormat, "{state}", string(state))
	return strings.ReplaceAll(headline, "{summary}", summary)
}
