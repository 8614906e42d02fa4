package models

import "time"

// Indicator is the dock/tray indicator state.
type Indicator struct {
	Icon      string       `json:"icon"`
	Color     string       `json:"color"`
	Animation string       `json:"animation"`
	State     WeatherState `json:"state"`
	Tooltip   string       `json:"tooltip"`
}

// Badge marks the indicator when categories need attention.
type Badge struct {
	Visible bool   `json:"visible"`
	Count   int    `json:"count"`
	Color   string `json:"color,omitempty"`
}

// MetricLine is one row in the popover metric list.
type MetricLine struct {
	Label string       `json:"label"`
	Value string       `json:"value"`
	State WeatherState `json:"state"`
}

// PayloadPopover is the click-through popover content.
type PayloadPopover struct {
	Headline    string       `json:"headline"`
	Metrics     []MetricLine `json:"metrics"`
	LastUpdated time.Time    `json:"last_updated"`
}

// ActionRef exposes a weather action to the UI without any execution
// capability; it is a display reference only.
type ActionRef struct {
	ActionID    string `json:"action_id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
}

// RefreshSchedule tells the UI when to ask again.
type RefreshSchedule struct {
	RefreshIntervalSeconds int       `json:"refresh_interval_seconds"`
	NextRefresh            time.Time `json:"next_refresh"`
}

// AmbientPayload is the theme-rendered advisory for ambient UI surfaces.
// Derived entirely from a WeatherReport plus a Theme.
type AmbientPayload struct {
	Version       string             `json:"version"`
	Timestamp     time.Time          `json:"timestamp"`
	ThemeID       string             `json:"theme_id"`
	Indicator     Indicator          `json:"indicator"`
	Badge         Badge              `json:"badge"`
	Popover       PayloadPopover     `json:"popover"`
	Notifications NotificationConfig `json:"notifications"`
	QuickActions  []ActionRef        `json:"quick_actions"`
	Schedule      RefreshSchedule    `json:"schedule"`
}
