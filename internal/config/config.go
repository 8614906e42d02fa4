package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything tunable at process start.
type Config struct {
	Server struct {
		Port           int      `mapstructure:"port"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"server"`
	Store struct {
		TTLMinutes int `mapstructure:"ttl_minutes"`
	} `mapstructure:"store"`
	Collector struct {
		Enabled         bool   `mapstructure:"enabled"`
		IntervalSeconds int    `mapstructure:"interval_seconds"`
		DiskPath        string `mapstructure:"disk_path"`
	} `mapstructure:"collector"`
	Ambient struct {
		DefaultTheme     string `mapstructure:"default_theme"`
		BroadcastSeconds int    `mapstructure:"broadcast_seconds"`
	} `mapstructure:"ambient"`
}

// StoreTTL returns the freshness window as a duration.
func (c *Config) StoreTTL() time.Duration {
	return time.Duration(c.Store.TTLMinutes) * time.Minute
}

// CollectorInterval returns the sampling interval as a duration.
func (c *Config) CollectorInterval() time.Duration {
	return time.Duration(c.Collector.IntervalSeconds) * time.Second
}

// BroadcastInterval returns the websocket refresh interval as a duration.
func (c *Config) BroadcastInterval() time.Duration {
	return time.Duration(c.Ambient.BroadcastSeconds) * time.Second
}

// Load reads config.yaml from path (plus matching environment variables)
// and falls back to defaults when the file is absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[CONFIG] no config file, using defaults: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("store.ttl_minutes", 60)
	v.SetDefault("collector.enabled", true)
	v.SetDefault("collector.interval_seconds", 30)
	v.SetDefault("collector.disk_path", "/")
	v.SetDefault("ambient.default_theme", "default")
	v.SetDefault("ambient.broadcast_seconds", 10)
}
