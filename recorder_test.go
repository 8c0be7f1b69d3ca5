package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sun_reflector/reflector"
)

func readRows[T any](t *testing.T, path string) []*T {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var rows []*T
	require.NoError(t, gocsv.UnmarshalFile(f, &rows))
	return rows
}

func TestRecorderExport(t *testing.T) {
	series := reflector.NewSunPositionSeries(31, reflector.Location{Latitude: 40}, []float64{12, 12.1}, 0.1)
	series.AddDay([]reflector.Sample{
		{Azimuth: reflector.Deg2Rad(180), Altitude: reflector.Deg2Rad(30)},
		{Azimuth: reflector.Deg2Rad(182), Altitude: reflector.Deg2Rad(-2)},
	})
	series.AddDay([]reflector.Sample{
		{Azimuth: reflector.Deg2Rad(180), Altitude: reflector.Deg2Rad(31)},
		{Azimuth: reflector.Deg2Rad(182), Altitude: reflector.Deg2Rad(29)},
	})
	result := reflector.ComputeAll(series, reflector.Orientation{})
	summary := reflector.Summarize(series, result, nil)

	sky := reflector.NewSkyline()
	sky.SetAltitude(0, reflector.Deg2Rad(15))

	dir := t.TempDir()
	rec := NewRecorder(dir)
	rec.recordDays(series.StartDay, summary)
	rec.recordRays(series, result)
	rec.recordSkyline(sky)
	rec.recordPanel(reflector.ComputeAll(series, reflector.Orientation{TiltAxisAzimuth: reflector.Deg2Rad(90), Tilt: reflector.Deg2Rad(30)}))
	require.NoError(t, rec.export())

	daily := readRows[DailyRow](t, filepath.Join(dir, dailyFileName))
	require.Len(t, daily, 2)
	assert.Equal(t, 32, daily[1].Day)
	assert.Equal(t, "Feb 01", daily[1].Date)
	assert.InDelta(t, summary.Days[1].FixedPanel, daily[1].FixedPanelHours, 1e-9)
	assert.InDelta(t, 0.1, daily[0].SunFacingHours, 1e-9)

	rays := readRows[RayRow](t, filepath.Join(dir, raysFileName))
	require.Len(t, rays, 4)
	assert.Equal(t, 31, rays[1].Day)
	assert.Equal(t, 12.1, rays[1].Hour)
	assert.False(t, rays[1].Visible)
	assert.Equal(t, 0.0, rays[1].Insolation)
	assert.True(t, rays[0].Visible)
	assert.InDelta(t, 30, rays[0].ReflAlt, 1e-6)
	assert.InDelta(t, 0.5, rays[0].Insolation, 1e-9)

	skyline := readRows[SkylineRow](t, filepath.Join(dir, skylineFileName))
	require.Len(t, skyline, reflector.SkylineBuckets)
	assert.InDelta(t, 15, skyline[0].Altitude, 1e-9)
	assert.Equal(t, 359, skyline[359].Azimuth)

	panel := readRows[PanelRow](t, filepath.Join(dir, panelFileName))
	require.Len(t, panel, 1)
	assert.InDelta(t, 90, panel[0].TiltAxisAzimuth, 1e-9)
	assert.InDelta(t, 30, panel[0].Tilt, 1e-9)
	assert.InDelta(t, 0, panel[0].NormalEast, 1e-9)
	assert.InDelta(t, -0.5, panel[0].NormalNorth, 1e-9)
	assert.InDelta(t, math.Sqrt(3)/2, panel[0].NormalUp, 1e-9)
	assert.InDelta(t, 180, panel[0].NormalAz, 1e-6)
	assert.InDelta(t, 60, panel[0].NormalAlt, 1e-6)

	header, err := os.ReadFile(filepath.Join(dir, raysFileName))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(header), "day,hour,sun_az,sun_alt,refl_az,refl_alt,insolation,visible\n"))
}

func TestRecorderSkipsUnrecorded(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(dir)
	rec.recordDays(1, reflector.Summary{Days: []reflector.SunHours{{FixedPanel: 1, SunFacing: 2}}})
	require.NoError(t, rec.export())

	assert.FileExists(t, filepath.Join(dir, dailyFileName))
	assert.NoFileExists(t, filepath.Join(dir, raysFileName))
	assert.NoFileExists(t, filepath.Join(dir, skylineFileName))
}

func TestRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sun.StartDay = 172
	cfg.Sun.DayCount = 3
	cfg.Sun.Interval = "30m"
	cfg.Panel.Direction = "e"
	cfg.Panel.Tilt = 40
	cfg.Output.Dir = filepath.Join(t.TempDir(), "out")
	cfg.Output.SaveRays = true
	cfg.Output.SaveSunData = true
	cfg.Output.SaveSkyline = true
	cfg.Output.PrintSummary = false
	require.NoError(t, cfg.Validate())

	require.NoError(t, run(cfg))

	daily := readRows[DailyRow](t, filepath.Join(cfg.Output.Dir, dailyFileName))
	require.Len(t, daily, 3)
	assert.Equal(t, "Jun 21", daily[0].Date)
	for _, d := range daily {
		assert.Greater(t, d.SunFacingHours, 10.0)
		assert.Greater(t, d.FixedPanelHours, 0.0)
		assert.LessOrEqual(t, d.FixedPanelHours, d.SunFacingHours)
	}

	rays := readRows[RayRow](t, filepath.Join(cfg.Output.Dir, raysFileName))
	assert.Len(t, rays, 3*33)

	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "sun_data.txt"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, skylineFileName))

	panel := readRows[PanelRow](t, filepath.Join(cfg.Output.Dir, panelFileName))
	require.Len(t, panel, 1)
	assert.InDelta(t, 180, panel[0].NormalAz, 1e-6)
	assert.InDelta(t, 50, panel[0].NormalAlt, 1e-6)
}

func TestRunBadSunFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sun.Method = "file"
	cfg.Sun.Path = filepath.Join(t.TempDir(), "missing.txt")
	cfg.Output.Dir = t.TempDir()
	cfg.Output.PrintSummary = false
	assert.Error(t, run(cfg))
}
