package landscape

import (
	"encoding/json"
	"fmt"
	"time"
)

// PrecipKind is the form of precipitation.
type PrecipKind uint8

// Precipitation kinds.
const (
	PrecipNone PrecipKind = iota
	PrecipRain
	PrecipSnow
)

var precipNames = [...]string{"none", "rain", "snow"}

// String returns the kind name.
func (k PrecipKind) String() string {
	if int(k) >= len(precipNames) {
		return "unknown"
	}
	return precipNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k PrecipKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PrecipKind) UnmarshalText(b []byte) error {
	for i, n := range precipNames {
		if n == string(b) {
			*k = PrecipKind(i) // #nosec G115 -- three kinds
			return nil
		}
	}
	if len(b) == 0 {
		*k = PrecipNone
		return nil
	}
	return fmt.Errorf("landscape: unknown precipitation kind %q", b)
}

// Precipitation is a kind plus an intensity in mm/h.
type Precipitation struct {
	Kind      PrecipKind `json:"kind"`
	Intensity float64    `json:"intensity"`
}

// Conditions is the weather at one point in time.
type Conditions struct {
	Time          time.Time     `json:"time"`
	Temperature   float64       `json:"temperature"`
	CloudCover    float64       `json:"cloud_cover"`
	Precipitation Precipitation `json:"precipitation"`
	WindSpeed     float64       `json:"wind_speed"`
	WindDirection float64       `json:"wind_direction"`
}

// WeatherSnapshot is a read-only view of current weather and its forecast.
type WeatherSnapshot struct {
	Current  Conditions   `json:"current"`
	Forecast []Conditions `json:"forecast"`
}

// MoonPhase describes the moon as reported by an ephemeris.
type MoonPhase struct {
	AgePercent          float64 `json:"age_percent"`
	IlluminationPercent float64 `json:"illumination_percent"`
	DistanceKm          float64 `json:"distance_km"`
	// Elongation is positive while the moon is waxing.
	Elongation float64 `json:"elongation"`
}

// Illumination returns the lit fraction in [0, 1].
func (m MoonPhase) Illumination() float64 {
	return max(0, min(1, m.IlluminationPercent/100))
}

// Waxing reports whether the moon is growing.
func (m MoonPhase) Waxing() bool {
	return m.Elongation > 0
}

// Astronomy carries the sun and moon data for the rendered day.
type Astronomy struct {
	Sunrise      time.Time `json:"sunrise"`
	Sunset       time.Time `json:"sunset"`
	NextFullMoon time.Time `json:"next_full_moon"`
	Moon         MoonPhase `json:"moon"`
}

// Input bundles everything a scene is rendered from.
type Input struct {
	Weather   WeatherSnapshot `json:"weather"`
	Astronomy Astronomy       `json:"astronomy"`
	// Now is the render time; zero means the current time.
	Now time.Time `json:"now,omitempty"`
}

// DecodeInput parses a JSON input document.
func DecodeInput(data []byte) (Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("landscape: decode input: %w", err)
	}
	return in, nil
}
