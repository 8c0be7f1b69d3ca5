// Package sundata produces sun position series from files or from solar
// position formulas.
package sundata

import (
	"errors"
	"fmt"

	"sun_reflector/internal/log"
	"sun_reflector/reflector"
)

var (
	ErrMalformedHeader = errors.New("malformed sun data header")
	ErrRaggedData      = errors.New("ragged sun data")
	ErrUnknownMethod   = errors.New("unknown sun data method")
	ErrNoData          = errors.New("no sun data")
)

type Method string

const (
	MethodFile  Method = "file"  // tab-delimited text
	MethodCSV   Method = "csv"   // long CSV
	MethodCalc  Method = "calc"  // simplified solar position formulas
	MethodMeeus Method = "meeus" // ephemeris
)

// Request describes where sun data comes from.
type Request struct {
	Method   Method
	Path     string // MethodFile, MethodCSV
	Location reflector.Location

	// generated data only
	Year      int
	StartDay  int
	DayCount  int
	StartHour float64
	EndHour   float64
	Interval  reflector.Interval
}

func (r Request) generated() bool {
	return r.Method == MethodCalc || r.Method == MethodMeeus
}

func (r Request) validate() error {
	if !r.generated() {
		return nil
	}
	if r.StartDay < 1 || r.StartDay > 366 {
		return fmt.Errorf("start day %d out of range [1, 366]", r.StartDay)
	}
	if r.DayCount < 1 {
		return fmt.Errorf("day count %d must be positive", r.DayCount)
	}
	if r.StartHour < 0 || r.EndHour > 24 || r.StartHour > r.EndHour {
		return fmt.Errorf("hour window [%g, %g] invalid", r.StartHour, r.EndHour)
	}
	return nil
}

/*
Makes a sun position series.

	Args:
		req: data source and, for generated data, the sampling window

	Returns:
		the series
*/
func Make(req Request) (*reflector.SunPositionSeries, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	switch req.Method {
	case MethodFile:
		log.Infof("Load sun data from `%s`", req.Path)
		return ReadTextFile(req.Path)
	case MethodCSV:
		log.Infof("Load sun data from CSV `%s`", req.Path)
		return ReadCSVFile(req.Path, req.Location)
	case MethodCalc:
		log.Infof("Make sun data from the solar position formulas")
		return generate(req, calcSolarPosition), nil
	case MethodMeeus:
		log.Infof("Make sun data from the meeus ephemeris")
		return generate(req, ephemerisSolarPosition), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method)
	}
}

type positionFunc func(loc reflector.Location, year, startDay, dayCount int, hours []float64) [][]reflector.Sample

func generate(req Request, f positionFunc) *reflector.SunPositionSeries {
	hours := req.Interval.HoursBetween(req.StartHour, req.EndHour)
	log.Debugf("%d days from day %d, %d samples per day", req.DayCount, req.StartDay, len(hours))

	series := reflector.NewSunPositionSeries(req.StartDay, req.Location, hours, req.Interval.Hours())
	for _, day := range f(req.Location, req.Year, req.StartDay, req.DayCount, hours) {
		series.AddDay(day)
	}
	return series
}
