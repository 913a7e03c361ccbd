// Package weather fetches current conditions for the home screen from the
// OpenWeatherMap API. The home screen treats any failure here as cosmetic:
// it degrades to a placeholder and never surfaces an error to the user.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Report is the subset of the API response the home screen renders.
type Report struct {
	Temp      float64
	Condition string
}

type Client struct {
	baseURL string
	apiKey  string
	city    string
	http    *http.Client
}

func NewClient(apiKey, city string, timeout time.Duration) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		city:    city,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the client at an alternative endpoint. Used in tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Current fetches the current conditions in metric units.
func (c *Client) Current(ctx context.Context) (*Report, error) {
	q := url.Values{}
	q.Set("q", c.city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api: %s", resp.Status)
	}

	var payload struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	r := &Report{Temp: payload.Main.Temp}
	if len(payload.Weather) > 0 {
		r.Condition = payload.Weather[0].Main
	}
	return r, nil
}
