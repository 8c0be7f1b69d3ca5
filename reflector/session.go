package reflector

import "gonum.org/v1/gonum/spatial/r3"

// Session owns the adjustable state of one panel study: the sun data, the
// panel orientation, the skyline, the selected moment and the last result.
type Session struct {
	series      *SunPositionSeries
	orientation Orientation
	skyline     *Skyline
	moment      *Moment
	result      *Result
	version     uint64
}

func NewSession() *Session {
	s := &Session{
		skyline: NewSkyline(),
		moment:  DefaultMoment(),
	}
	s.Reload()
	return s
}

// Load replaces the sun data, resets the moment and recomputes.
func (s *Session) Load(series *SunPositionSeries) {
	s.series = series
	if series == nil {
		s.moment = DefaultMoment()
	} else {
		s.moment = NewMoment(series.StartDay, series.Hours, series.DayCount())
	}
	s.Reload()
}

func (s *Session) Series() *SunPositionSeries { return s.series }
func (s *Session) Skyline() *Skyline          { return s.skyline }
func (s *Session) Moment() *Moment            { return s.moment }
func (s *Session) Orientation() Orientation   { return s.orientation }
func (s *Session) Result() *Result            { return s.result }

// The setters below do not recompute; call Reload afterwards.

func (s *Session) SetTiltAxisAzimuth(theta float64) { s.orientation.TiltAxisAzimuth = theta }
func (s *Session) SetTilt(theta float64)            { s.orientation.Tilt = theta }
func (s *Session) SetDip(theta float64)             { s.orientation.Dip = theta }
func (s *Session) SetOrientation(o Orientation)     { s.orientation = o }

// Reload recomputes the normal, reflections and insolation for the current
// orientation and swaps them in as one result.
func (s *Session) Reload() {
	r := ComputeAll(s.series, s.orientation)
	s.version++
	r.Version = s.version
	s.result = r
}

// Normal is the panel normal of the last reload as azimuth and altitude, rad.
func (s *Session) Normal() (float64, float64) {
	return s.result.NormalAzAlt()
}

// NormalVec is the panel normal of the last reload as an East/North/Up vector.
func (s *Session) NormalVec() r3.Vec {
	return s.result.NormalVec()
}

// RayData returns the sun ray and the reflected ray at a time index of the
// current day. ok is false without sun data or for an invalid index.
func (s *Session) RayData(timeIndex int) (sun, reflected Sample, ok bool) {
	day := s.moment.DayNumber()
	suns := s.series.Day(day)
	refls := s.result.Reflections(day)
	if timeIndex < 0 || timeIndex >= len(suns) || timeIndex >= len(refls) {
		return Sample{}, Sample{}, false
	}
	return suns[timeIndex], refls[timeIndex], true
}

// RayVisibility reports whether the sun ray and the reflected ray at a time
// index of the current day are visible.
func (s *Session) RayVisibility(timeIndex int) (sunVis, reflVis bool) {
	sun, _, ok := s.RayData(timeIndex)
	if !ok {
		return false, false
	}
	ins := s.result.Insolation(s.moment.DayNumber())[timeIndex]
	return RayVisibility(sun, ins, s.skyline)
}

// Insolation is the insolation fraction at a time index of the current day.
func (s *Session) Insolation(timeIndex int) float64 {
	ins := s.result.Insolation(s.moment.DayNumber())
	if timeIndex < 0 || timeIndex >= len(ins) {
		return 0
	}
	return ins[timeIndex].Fraction
}

// TotalSunHours is the sun hours of the current day.
func (s *Session) TotalSunHours() SunHours {
	return s.result.SunHours(s.moment.DayNumber(), s.series, s.skyline)
}

// Summary aggregates sun hours over every loaded day.
func (s *Session) Summary() Summary {
	return Summarize(s.series, s.result, s.skyline)
}
