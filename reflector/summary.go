package reflector

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the daily sun hours of a whole series.
type Summary struct {
	Days     []SunHours // per day
	Mean     SunHours   // daily mean, h
	Max      SunHours   // best day, h
	Min      SunHours   // worst day, h
	Total    SunHours   // sum over all days, h
	BestDay  int        // day index with the most fixed panel hours
	WorstDay int        // day index with the fewest fixed panel hours
	Captured float64    // Total.FixedPanel / Total.SunFacing, 0 when no sun
}

/*
Daily sun hours over every day of a series.

	Args:
		series: sun positions, may be nil
		r: result computed from series
		shading: skyline or other obstruction

	Returns:
		the summary; empty when there is no data
*/
func Summarize(series *SunPositionSeries, r *Result, shading Shading) Summary {
	var s Summary
	n := series.DayCount()
	if n == 0 || r == nil {
		return s
	}

	s.Days = make([]SunHours, n)
	fixed := make([]float64, n)
	facing := make([]float64, n)
	for d := 0; d < n; d++ {
		s.Days[d] = r.SunHours(d, series, shading)
		fixed[d] = s.Days[d].FixedPanel
		facing[d] = s.Days[d].SunFacing
	}

	s.Mean = SunHours{FixedPanel: stat.Mean(fixed, nil), SunFacing: stat.Mean(facing, nil)}
	s.Max = SunHours{FixedPanel: floats.Max(fixed), SunFacing: floats.Max(facing)}
	s.Min = SunHours{FixedPanel: floats.Min(fixed), SunFacing: floats.Min(facing)}
	s.Total = SunHours{FixedPanel: floats.Sum(fixed), SunFacing: floats.Sum(facing)}
	s.BestDay = floats.MaxIdx(fixed)
	s.WorstDay = floats.MinIdx(fixed)
	if s.Total.SunFacing > 0 {
		s.Captured = s.Total.FixedPanel / s.Total.SunFacing
	}
	return s
}
