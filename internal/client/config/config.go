// Package config handles configuration for the terminal client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the newsbrief client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - DatabaseDSN: sqlite DSN for the client's local store.
//   - RequestTimeout: per-request HTTP timeout; 0 disables it.
//   - WeatherAPIKey / WeatherCity: OpenWeatherMap settings for the home
//     screen. An empty key disables the weather fetch.
//   - SettingsWired: when true the profile screen's "settings" action opens
//     the real account actions; when false it shows the placeholder notice.
type Config struct {
	ServerBaseURL  string
	DatabaseDSN    string
	RequestTimeout time.Duration
	WeatherAPIKey  string
	WeatherCity    string
	SettingsWired  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.DatabaseDSN = "newsbrief.db"
	c.RequestTimeout = 15 * time.Second
	c.WeatherAPIKey = ""
	c.WeatherCity = "Colombo"
	c.SettingsWired = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
