package config

import (
	"flag"
	"os"
	"time"

	"github.com/mpetrovs/newsbrief/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    base URL of the backend server
//	-d string    sqlite DSN for the local store
//	-t int       request timeout in seconds
//	-wk string   OpenWeatherMap API key
//	-wc string   city for the weather display
//	-s           wire the profile "settings" action to real account actions
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-wk", "-wc", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN for the local store")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.WeatherAPIKey, "wk", cfg.WeatherAPIKey, "OpenWeatherMap API key")
	fs.StringVar(&cfg.WeatherCity, "wc", cfg.WeatherCity, "city for the weather display")
	fs.BoolVar(&cfg.SettingsWired, "s", cfg.SettingsWired, "wire the profile settings action")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
