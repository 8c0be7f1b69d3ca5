package reflector

// Sample is one sun or ray position.
type Sample struct {
	Azimuth  float64 // azimuth, clockwise from North, rad
	Altitude float64 // altitude, rad
}

// Location is where the sun data was computed.
type Location struct {
	Latitude  float64 // degree, north positive
	Longitude float64 // degree, east positive
	TimeZone  float64 // offset from UTC, h
}

// SunPositionSeries holds sun positions for consecutive days at shared times of day.
type SunPositionSeries struct {
	StartDay int       // day of year of day 0 (Jan 1 = 1)
	Location Location  // site of the data
	Hours    []float64 // times of day, h, [k]
	TimeStep float64   // sampling interval, h
	Days     [][]Sample
}

// DefaultTimeStep is the sampling interval of the reference data, h.
const DefaultTimeStep = 0.1

func NewSunPositionSeries(startDay int, loc Location, hours []float64, timeStep float64) *SunPositionSeries {
	if timeStep <= 0 {
		timeStep = DefaultTimeStep
	}
	return &SunPositionSeries{
		StartDay: startDay,
		Location: loc,
		Hours:    hours,
		TimeStep: timeStep,
	}
}

// AddDay appends one day of samples. samples must have one entry per element
// of Hours; a shorter day is not padded and its missing times count as empty
// in ComputeAll.
func (s *SunPositionSeries) AddDay(samples []Sample) {
	s.Days = append(s.Days, samples)
}

func (s *SunPositionSeries) DayCount() int {
	if s == nil {
		return 0
	}
	return len(s.Days)
}

func (s *SunPositionSeries) SamplesPerDay() int {
	if s == nil {
		return 0
	}
	return len(s.Hours)
}

// Day returns the samples of day d, or nil when d is out of range.
func (s *SunPositionSeries) Day(d int) []Sample {
	if s == nil || d < 0 || d >= len(s.Days) {
		return nil
	}
	return s.Days[d]
}

func (s *SunPositionSeries) timeStep() float64 {
	if s.TimeStep <= 0 {
		return DefaultTimeStep
	}
	return s.TimeStep
}
