package models

// StateStyle is the visual triple a theme assigns to one weather state.
type StateStyle struct {
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Animation string `json:"animation"`
}

// PopoverRules controls how a theme renders the indicator popover.
type PopoverRules struct {
	HeadlineFormat string `json:"headline_format"`
	ShowMetrics    bool   `json:"show_metrics"`
	MaxMetrics     int    `json:"max_metrics"`
}

// Theme maps weather states to visual attributes. Themes are static and
// immutable; unknown ids resolve to the default theme.
type Theme struct {
	ID      string                      `json:"id"`
	Name    string                      `json:"name"`
	States  map[WeatherState]StateStyle `json:"states"`
	Popover PopoverRules                `json:"popover"`
}
