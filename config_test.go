package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sun_reflector/reflector"
	"sun_reflector/sundata"
)

const sampleConfig = `
location:
  latitude: 35.5
  longitude: 139.7
  timeZone: 9
sun:
  method: meeus
  year: 2024
  startDay: 100
  dayCount: 30
  startHour: 5
  endHour: 19
  interval: 15m
panel:
  direction: e
  tilt: 30
  dip: 5
skyline:
  enabled: true
  points:
    - {azimuth: 170, altitude: 10}
    - {azimuth: 190, altitude: 12}
output:
  dir: out
  saveRays: true
`

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 35.5, cfg.Location.Latitude)
	assert.Equal(t, "meeus", cfg.Sun.Method)
	assert.Equal(t, 30, cfg.Sun.DayCount)
	assert.True(t, cfg.Output.SaveRays)
	// untouched fields keep their defaults
	assert.True(t, cfg.Output.PrintSummary)

	req := cfg.sunRequest()
	assert.Equal(t, sundata.MethodMeeus, req.Method)
	assert.Equal(t, reflector.IntervalM15, req.Interval)
	assert.Equal(t, reflector.Location{Latitude: 35.5, Longitude: 139.7, TimeZone: 9}, req.Location)

	o := cfg.orientation()
	assert.InDelta(t, math.Pi/2, o.TiltAxisAzimuth, 1e-12)
	assert.InDelta(t, reflector.Deg2Rad(30), o.Tilt, 1e-12)
	assert.InDelta(t, reflector.Deg2Rad(5), o.Dip, 1e-12)

	sky := reflector.NewSkyline()
	cfg.applySkyline(sky)
	assert.True(t, sky.Enabled())
	assert.InDelta(t, reflector.Deg2Rad(12), sky.BlockingAltitude(math.Pi), 1e-12)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, string(sundata.MethodCalc), cfg.Sun.Method)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "sun: [not, a, map]"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"latitude", func(c *Config) { c.Location.Latitude = 91 }},
		{"direction", func(c *Config) { c.Panel.Direction = "up" }},
		{"method", func(c *Config) { c.Sun.Method = "noaa" }},
		{"file without path", func(c *Config) { c.Sun.Method = "file" }},
		{"interval", func(c *Config) { c.Sun.Interval = "5m" }},
		{"start day", func(c *Config) { c.Sun.StartDay = 0 }},
		{"day count", func(c *Config) { c.Sun.DayCount = 0 }},
		{"hours", func(c *Config) { c.Sun.StartHour, c.Sun.EndHour = 20, 4 }},
		{"output", func(c *Config) { c.Output.Dir = "" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			c.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := defaultConfig()
	cfg.Sun.Method = "noaa"
	assert.True(t, errors.Is(cfg.Validate(), sundata.ErrUnknownMethod))

	// file data ignores the generated window
	cfg = defaultConfig()
	cfg.Sun.Method, cfg.Sun.Path, cfg.Sun.DayCount = "file", "sun.txt", 0
	assert.NoError(t, cfg.Validate())
}

func TestOrientationInDegrees(t *testing.T) {
	cfg := defaultConfig()
	cfg.Panel.TiltAxisAzimuth = 200
	assert.InDelta(t, reflector.Deg2Rad(200), cfg.orientation().TiltAxisAzimuth, 1e-12)

	cfg.Panel.Direction = "sw"
	assert.InDelta(t, reflector.Deg2Rad(225), cfg.orientation().TiltAxisAzimuth, 1e-12)
}

func TestApplyFlags(t *testing.T) {
	var f cliFlags
	fs := newFlagSet(&f)
	require.NoError(t, fs.Parse([]string{"-tilt", "25", "-sun", "file", "-sun_path", "a.txt", "-tilt_axis", "90"}))

	cfg, err := loadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	applyFlags(fs, cfg, &f)

	assert.Equal(t, 25.0, cfg.Panel.Tilt)
	assert.Equal(t, "file", cfg.Sun.Method)
	assert.Equal(t, "a.txt", cfg.Sun.Path)
	assert.Equal(t, 90.0, cfg.Panel.TiltAxisAzimuth)
	assert.Empty(t, cfg.Panel.Direction)

	// flags left unset do not override the file
	assert.Equal(t, 35.5, cfg.Location.Latitude)
	assert.Equal(t, 5.0, cfg.Panel.Dip)
	assert.Equal(t, "out", cfg.Output.Dir)
}
