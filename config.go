package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sun_reflector/reflector"
	"sun_reflector/sundata"
)

// Config describes one panel study.
type Config struct {
	Location LocationConfig `yaml:"location"`
	Sun      SunConfig      `yaml:"sun"`
	Panel    PanelConfig    `yaml:"panel"`
	Skyline  SkylineConfig  `yaml:"skyline"`
	Output   OutputConfig   `yaml:"output"`
}

type LocationConfig struct {
	Latitude  float64 `yaml:"latitude"`  // degree, north positive
	Longitude float64 `yaml:"longitude"` // degree, east positive
	TimeZone  float64 `yaml:"timeZone"`  // h
}

// SunConfig selects the sun data source. Year, day and hour fields only
// apply to generated data.
type SunConfig struct {
	Method    string  `yaml:"method"`
	Path      string  `yaml:"path"`
	Year      int     `yaml:"year"`
	StartDay  int     `yaml:"startDay"`
	DayCount  int     `yaml:"dayCount"`
	StartHour float64 `yaml:"startHour"`
	EndHour   float64 `yaml:"endHour"`
	Interval  string  `yaml:"interval"`
}

// PanelConfig is the panel orientation in degrees. A non-empty Direction
// overrides TiltAxisAzimuth.
type PanelConfig struct {
	Direction       string  `yaml:"direction"`
	TiltAxisAzimuth float64 `yaml:"tiltAxisAzimuth"`
	Tilt            float64 `yaml:"tilt"`
	Dip             float64 `yaml:"dip"`
}

type SkylineConfig struct {
	Enabled bool                     `yaml:"enabled"`
	Points  []reflector.SkylinePoint `yaml:"points"`
}

type OutputConfig struct {
	Dir          string `yaml:"dir"`
	SaveRays     bool   `yaml:"saveRays"`
	SaveSunData  bool   `yaml:"saveSunData"`
	SaveSkyline  bool   `yaml:"saveSkyline"`
	PrintSummary bool   `yaml:"printSummary"`
}

func defaultConfig() *Config {
	return &Config{
		Location: LocationConfig{
			Latitude:  40.0,
			Longitude: -75.0,
			TimeZone:  -5,
		},
		Sun: SunConfig{
			Method:    string(sundata.MethodCalc),
			Year:      2023,
			StartDay:  1,
			DayCount:  365,
			StartHour: 4,
			EndHour:   20,
			Interval:  string(reflector.IntervalM6),
		},
		Output: OutputConfig{
			Dir:          ".",
			PrintSummary: true,
		},
	}
}

// loadConfig reads a YAML file over the defaults. An empty path gives the
// defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

var validIntervals = map[string]bool{"1h": true, "30m": true, "15m": true, "6m": true}

var validDirections = map[string]bool{
	"n": true, "ne": true, "e": true, "se": true,
	"s": true, "sw": true, "w": true, "nw": true,
}

// Validate checks the fields enum lookups would otherwise panic on, and the
// ranges of the generated data window.
func (c *Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", c.Location.Latitude)
	}
	if c.Panel.Direction != "" && !validDirections[c.Panel.Direction] {
		return fmt.Errorf("unknown panel direction %q", c.Panel.Direction)
	}

	switch sundata.Method(c.Sun.Method) {
	case sundata.MethodFile, sundata.MethodCSV:
		if c.Sun.Path == "" {
			return fmt.Errorf("sun method %q needs a path", c.Sun.Method)
		}
	case sundata.MethodCalc, sundata.MethodMeeus:
		if !validIntervals[c.Sun.Interval] {
			return fmt.Errorf("unknown interval %q", c.Sun.Interval)
		}
		if c.Sun.StartDay < 1 || c.Sun.StartDay > 366 {
			return fmt.Errorf("start day %d out of range [1, 366]", c.Sun.StartDay)
		}
		if c.Sun.DayCount < 1 {
			return errors.New("day count must be positive")
		}
		if c.Sun.StartHour < 0 || c.Sun.EndHour > 24 || c.Sun.StartHour > c.Sun.EndHour {
			return fmt.Errorf("hour window [%g, %g] invalid", c.Sun.StartHour, c.Sun.EndHour)
		}
	default:
		return fmt.Errorf("%w: %q", sundata.ErrUnknownMethod, c.Sun.Method)
	}

	if c.Output.Dir == "" {
		return errors.New("output dir must not be empty")
	}
	return nil
}

func (c *Config) location() reflector.Location {
	return reflector.Location{
		Latitude:  c.Location.Latitude,
		Longitude: c.Location.Longitude,
		TimeZone:  c.Location.TimeZone,
	}
}

func (c *Config) sunRequest() sundata.Request {
	req := sundata.Request{
		Method:   sundata.Method(c.Sun.Method),
		Path:     c.Sun.Path,
		Location: c.location(),
	}
	if req.Method == sundata.MethodCalc || req.Method == sundata.MethodMeeus {
		req.Year = c.Sun.Year
		req.StartDay = c.Sun.StartDay
		req.DayCount = c.Sun.DayCount
		req.StartHour = c.Sun.StartHour
		req.EndHour = c.Sun.EndHour
		req.Interval = reflector.IntervalFromString(c.Sun.Interval)
	}
	return req
}

func (c *Config) orientation() reflector.Orientation {
	az := reflector.Deg2Rad(c.Panel.TiltAxisAzimuth)
	if c.Panel.Direction != "" {
		az = reflector.DirectionFromString(c.Panel.Direction).Azimuth()
	}
	return reflector.Orientation{
		TiltAxisAzimuth: az,
		Tilt:            reflector.Deg2Rad(c.Panel.Tilt),
		Dip:             reflector.Deg2Rad(c.Panel.Dip),
	}
}

// applySkyline paints the configured outline onto sky.
func (c *Config) applySkyline(sky *reflector.Skyline) {
	sky.LoadPoints(c.Skyline.Points)
	sky.SetEnabled(c.Skyline.Enabled)
}
