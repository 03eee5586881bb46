package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"

	"cropguard-service/metrics"
)

// Reading is one current-weather observation.
type Reading struct {
	Temperature float64
	Humidity    float64
}

type coords struct {
	Lat float64
	Lon float64
}

// Supported city coordinates. Unknown locations resolve to mumbai.
var cityCoords = map[string]coords{
	"mumbai":        {19.0760, 72.8777},
	"delhi":         {28.7041, 77.1025},
	"bangalore":     {12.9716, 77.5946},
	"hyderabad":     {17.3850, 78.4867},
	"chennai":       {13.0827, 80.2707},
	"kolkata":       {22.5726, 88.3639},
	"pune":          {18.5204, 73.8567},
	"ahmedabad":     {23.0225, 72.5714},
	"jaipur":        {26.9124, 75.7873},
	"lucknow":       {26.8467, 80.9462},
	"kanpur":        {26.4499, 80.3319},
	"nagpur":        {21.1458, 79.0882},
	"indore":        {22.7196, 75.8577},
	"thane":         {19.2183, 72.9781},
	"bhopal":        {23.2599, 77.4126},
	"visakhapatnam": {17.6868, 83.2185},
	"pimpri":        {18.6298, 73.7997},
	"patna":         {25.5941, 85.1376},
	"vadodara":      {22.3072, 73.1812},
	"ludhiana":      {30.9010, 75.8573},
}

// Per-city readings used when the upstream API is unreachable.
var fallbackReadings = map[string]Reading{
	"mumbai":        {28, 85},
	"delhi":         {32, 65},
	"bangalore":     {26, 70},
	"hyderabad":     {30, 75},
	"chennai":       {29, 80},
	"kolkata":       {31, 85},
	"pune":          {27, 70},
	"ahmedabad":     {33, 60},
	"jaipur":        {34, 55},
	"lucknow":       {30, 70},
	"kanpur":        {31, 68},
	"nagpur":        {29, 72},
	"indore":        {28, 65},
	"thane":         {27, 75},
	"bhopal":        {29, 70},
	"visakhapatnam": {30, 80},
	"pimpri":        {27, 72},
	"patna":         {30, 75},
	"vadodara":      {32, 68},
	"ludhiana":      {33, 60},
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
	} `json:"current"`
}

// Client fetches current weather from the Open-Meteo API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a weather client. The timeout bounds the single outbound
// call; on expiry the caller gets the fallback reading.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CurrentFor returns the current weather for a supported city. Upstream
// failure of any kind degrades to the fixed per-city fallback reading, never
// an error.
func (c *Client) CurrentFor(location string) Reading {
	key := strings.ToLower(location)
	co, ok := cityCoords[key]
	if !ok {
		co = cityCoords["mumbai"]
	}

	reading, err := c.fetch(co)
	if err != nil {
		log.Warnf("Weather API failed for %s, using fallback data: %v", location, err)
		metrics.WeatherFallbackTotal.Inc()
		fb, ok := fallbackReadings[key]
		if !ok {
			fb = fallbackReadings["mumbai"]
		}
		return fb
	}
	return reading
}

func (c *Client) fetch(co coords) (Reading, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", co.Lat))
	params.Set("longitude", fmt.Sprintf("%.4f", co.Lon))
	params.Set("current", "temperature_2m,relative_humidity_2m")
	params.Set("timezone", "Asia/Kolkata")

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return Reading{}, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return Reading{}, fmt.Errorf("decoding forecast response: %w", err)
	}

	return Reading{
		Temperature: fr.Current.Temperature,
		Humidity:    fr.Current.Humidity,
	}, nil
}

// AssessRisk maps a reading to a disease risk level and alert message.
func AssessRisk(r Reading) (string, string) {
	switch {
	case r.Humidity > 80 && r.Temperature > 25:
		return "high", "High humidity and temperature create favorable conditions for fungal diseases. Monitor crops closely."
	case r.Humidity > 70 || r.Temperature > 30:
		return "medium", "Moderate risk conditions detected. Consider preventive measures."
	default:
		return "low", "Weather conditions are favorable for healthy crops."
	}
}
