// Package weather fetches current conditions from Open-Meteo. No API key is
// required; failures degrade to an "N/A" report rather than an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	geocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	forecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// Report is the weather block of the briefing page.
type Report struct {
	Temp      string   `json:"temp"`
	Condition string   `json:"condition"`
	Humidity  *float64 `json:"humidity,omitempty"`
	Location  string   `json:"location,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
	LocalTime string   `json:"local_time"`
}

// Location selects the forecast point: either a zip code to geocode or
// explicit coordinates.
type Location struct {
	ZipCode string
	Lat     string
	Lon     string
}

type Client struct {
	http     *http.Client
	strategy retry.Strategy
	geoURL   string
	fcURL    string
}

func NewClient(strategy retry.Strategy) *Client {
	return &Client{
		http:     &http.Client{Timeout: 5 * time.Second},
		strategy: strategy,
		geoURL:   geocodingURL,
		fcURL:    forecastURL,
	}
}

// Current resolves the location and fetches current conditions.
func (c *Client) Current(ctx context.Context, loc Location) Report {
	lat, lon := loc.Lat, loc.Lon
	locationName := ""

	if lat == "" || lon == "" {
		if loc.ZipCode == "" {
			return stamped(Report{Temp: "N/A", Condition: "No location set"}, "")
		}

		geo, err := c.geocode(ctx, loc.ZipCode)
		if err != nil {
			zlog.Logger.Debug().Err(err).Msg("weather geocode failed")
			return stamped(Report{Temp: "N/A", Condition: "Location not found"}, "")
		}

		lat = strconv.FormatFloat(geo.Latitude, 'f', -1, 64)
		lon = strconv.FormatFloat(geo.Longitude, 'f', -1, 64)
		locationName = geo.Name
	}

	report, err := c.forecast(ctx, lat, lon)
	if err != nil {
		zlog.Logger.Debug().Err(err).Msg("weather fetch failed")
		return stamped(Report{Temp: "N/A", Condition: "Unable to fetch"}, "")
	}

	report.Location = locationName
	return stamped(report, report.Timezone)
}

type geoResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

func (c *Client) geocode(ctx context.Context, zip string) (geoResult, error) {
	q := url.Values{}
	q.Set("name", zip)
	q.Set("count", "1")
	q.Set("language", "en")

	var payload struct {
		Results []geoResult `json:"results"`
	}

	if err := c.getJSON(ctx, c.geoURL+"?"+q.Encode(), &payload); err != nil {
		return geoResult{}, err
	}
	if len(payload.Results) == 0 {
		return geoResult{}, fmt.Errorf("no geocoding results for %q", zip)
	}

	return payload.Results[0], nil
}

func (c *Client) forecast(ctx context.Context, lat, lon string) (Report, error) {
	q := url.Values{}
	q.Set("latitude", lat)
	q.Set("longitude", lon)
	q.Set("current", "temperature_2m,weather_code,relative_humidity_2m")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("timezone", "auto")

	var payload struct {
		Timezone string `json:"timezone"`
		Current  struct {
			Temperature *float64 `json:"temperature_2m"`
			WeatherCode *int     `json:"weather_code"`
			Humidity    *float64 `json:"relative_humidity_2m"`
		} `json:"current"`
	}

	if err := c.getJSON(ctx, c.fcURL+"?"+q.Encode(), &payload); err != nil {
		return Report{}, err
	}

	report := Report{Temp: "N/A", Condition: "Unknown", Timezone: payload.Timezone}
	if payload.Current.Temperature != nil {
		report.Temp = strconv.Itoa(int(*payload.Current.Temperature))
	}
	if payload.Current.WeatherCode != nil {
		report.Condition = codeText(*payload.Current.WeatherCode)
	}
	report.Humidity = payload.Current.Humidity

	return report, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	return retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("open-meteo status %s", resp.Status)
		}

		return json.NewDecoder(resp.Body).Decode(out)
	}, c.strategy)
}

func stamped(report Report, tzName string) Report {
	loc := time.Local
	if tzName != "" {
		if parsed, err := time.LoadLocation(tzName); err == nil {
			loc = parsed
		}
	}

	if report.Timezone == "" {
		report.Timezone = loc.String()
	}
	report.LocalTime = time.Now().In(loc).Format(time.RFC3339)

	return report
}

// codeText maps WMO weather interpretation codes to display text.
func codeText(code int) string {
	switch code {
	case 0:
		return "Clear"
	case 1:
		return "Mainly clear"
	case 2:
		return "Partly cloudy"
	case 3:
		return "Overcast"
	case 45:
		return "Fog"
	case 48:
		return "Depositing rime fog"
	case 51:
		return "Light drizzle"
	case 53:
		return "Drizzle"
	case 55:
		return "Dense drizzle"
	case 56, 57:
		return "Freezing drizzle"
	case 61:
		return "Slight rain"
	case 63:
		return "Rain"
	case 65:
		return "Heavy rain"
	case 66, 67:
		return "Freezing rain"
	case 71:
		return "Slight snow"
	case 73:
		return "Snow"
	case 75:
		return "Heavy snow"
	case 77:
		return "Snow grains"
	case 80, 81:
		return "Rain showers"
	case 82:
		return "Violent rain showers"
	case 85, 86:
		return "Snow showers"
	case 95:
		return "Thunderstorm"
	case 96, 99:
		return "Thunderstorm with hail"
	default:
		return "Unknown"
	}
}
