package config

import (
	"encoding/json"
	"os"

	"github.com/mpetrovs/newsbrief/internal/flagx"
	"github.com/mpetrovs/newsbrief/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	DatabaseDSN    string         `json:"database_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	WeatherAPIKey  string         `json:"weather_api_key"`
	WeatherCity    string         `json:"weather_city"`
	SettingsWired  bool           `json:"settings_wired"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. When no file is named the function returns without
// touching cfg. Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, later stages overriding earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.DatabaseDSN = jc.DatabaseDSN
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.WeatherAPIKey = jc.WeatherAPIKey
	cfg.WeatherCity = jc.WeatherCity
	cfg.SettingsWired = jc.SettingsWired
}
