package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"sun_reflector/internal/log"
	"sun_reflector/reflector"
)

const (
	dailyFileName   = "result_daily.csv"
	raysFileName    = "result_rays.csv"
	skylineFileName = "skyline.csv"
	panelFileName   = "panel.csv"
)

// DailyRow is one day of sun hours.
type DailyRow struct {
	Day             int     `csv:"day"` // day of year
	Date            string  `csv:"date"`
	FixedPanelHours float64 `csv:"fixed_panel_hours"`
	SunFacingHours  float64 `csv:"sun_facing_hours"`
}

// RayRow is one sample of the sun ray and its reflection; angles in degrees.
type RayRow struct {
	Day        int     `csv:"day"`
	Hour       float64 `csv:"hour"`
	SunAz      float64 `csv:"sun_az"`
	SunAlt     float64 `csv:"sun_alt"`
	ReflAz     float64 `csv:"refl_az"`
	ReflAlt    float64 `csv:"refl_alt"`
	Insolation float64 `csv:"insolation"`
	Visible    bool    `csv:"visible"`
}

// SkylineRow is one skyline bucket; degrees.
type SkylineRow struct {
	Azimuth  int     `csv:"azimuth"`
	Altitude float64 `csv:"altitude"`
}

// PanelRow is the orientation and resulting normal; angles in degrees.
type PanelRow struct {
	TiltAxisAzimuth float64 `csv:"tilt_axis_azimuth"`
	Tilt            float64 `csv:"tilt"`
	Dip             float64 `csv:"dip"`
	NormalEast      float64 `csv:"normal_east"`
	NormalNorth     float64 `csv:"normal_north"`
	NormalUp        float64 `csv:"normal_up"`
	NormalAz        float64 `csv:"normal_az"`
	NormalAlt       float64 `csv:"normal_alt"`
}

// Recorder collects result tables and exports them as CSV files.
type Recorder struct {
	dir     string
	daily   []*DailyRow
	rays    []*RayRow
	skyline []*SkylineRow
	panel   []*PanelRow
}

func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir}
}

// recordDays records the per-day sun hours of a summary.
func (r *Recorder) recordDays(startDay int, summary reflector.Summary) {
	r.daily = make([]*DailyRow, len(summary.Days))
	for d, h := range summary.Days {
		r.daily[d] = &DailyRow{
			Day:             startDay + d,
			Date:            reflector.FormatDate(startDay + d),
			FixedPanelHours: h.FixedPanel,
			SunFacingHours:  h.SunFacing,
		}
	}
}

// recordRays records every sun sample with its reflection and insolation.
func (r *Recorder) recordRays(series *reflector.SunPositionSeries, result *reflector.Result) {
	r.rays = make([]*RayRow, 0, series.DayCount()*series.SamplesPerDay())
	for d := 0; d < series.DayCount(); d++ {
		suns := series.Day(d)
		refls := result.Reflections(d)
		ins := result.Insolation(d)
		for k := 0; k < len(suns) && k < len(refls) && k < len(series.Hours); k++ {
			r.rays = append(r.rays, &RayRow{
				Day:        series.StartDay + d,
				Hour:       series.Hours[k],
				SunAz:      reflector.Rad2Deg(suns[k].Azimuth),
				SunAlt:     reflector.Rad2Deg(suns[k].Altitude),
				ReflAz:     reflector.Rad2Deg(refls[k].Azimuth),
				ReflAlt:    reflector.Rad2Deg(refls[k].Altitude),
				Insolation: ins[k].Fraction,
				Visible:    ins[k].Visible,
			})
		}
	}
}

func (r *Recorder) recordSkyline(sky *reflector.Skyline) {
	alts := sky.Altitudes()
	r.skyline = make([]*SkylineRow, len(alts))
	for i, alt := range alts {
		r.skyline[i] = &SkylineRow{Azimuth: i, Altitude: reflector.Rad2Deg(alt)}
	}
}

// recordPanel records the orientation and normal a result was computed for.
func (r *Recorder) recordPanel(result *reflector.Result) {
	n := result.NormalVec()
	az, alt := result.NormalAzAlt()
	o := result.Orientation
	r.panel = []*PanelRow{{
		TiltAxisAzimuth: reflector.Rad2Deg(o.TiltAxisAzimuth),
		Tilt:            reflector.Rad2Deg(o.Tilt),
		Dip:             reflector.Rad2Deg(o.Dip),
		NormalEast:      n.X,
		NormalNorth:     n.Y,
		NormalUp:        n.Z,
		NormalAz:        reflector.Rad2Deg(az),
		NormalAlt:       reflector.Rad2Deg(alt),
	}}
}

// export writes every table that has been recorded.
func (r *Recorder) export() error {
	if r.daily != nil {
		if err := r.write(dailyFileName, r.daily); err != nil {
			return err
		}
	}
	if r.rays != nil {
		if err := r.write(raysFileName, r.rays); err != nil {
			return err
		}
	}
	if r.skyline != nil {
		if err := r.write(skylineFileName, r.skyline); err != nil {
			return err
		}
	}
	if r.panel != nil {
		if err := r.write(panelFileName, r.panel); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) write(name string, rows interface{}) error {
	path := filepath.Join(r.dir, name)
	log.Infof("Save results to `%s`", path)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
