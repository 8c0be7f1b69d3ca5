package reflector

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Insolation is the direct sunlight on the panel for one sample.
type Insolation struct {
	Fraction float64 // share of the full-on intensity, [0, 1]
	Visible  bool    // false when the sun is behind the panel or below the horizon
}

// Result is everything derived from one orientation over one series.
// It is replaced as a whole, never patched.
type Result struct {
	Version     uint64
	Orientation Orientation
	Normal      quat.Number

	samples     int          // samples per day, stride of the tables
	reflections []Sample     // [day*samples + k]
	insolation  []Insolation // [day*samples + k]
}

func (r *Result) DayCount() int {
	if r == nil || r.samples == 0 {
		return 0
	}
	return len(r.reflections) / r.samples
}

// Reflections returns the reflected rays of day d, or nil when out of range.
func (r *Result) Reflections(d int) []Sample {
	if d < 0 || d >= r.DayCount() {
		return nil
	}
	return r.reflections[d*r.samples : (d+1)*r.samples]
}

// Insolation returns the insolation samples of day d, or nil when out of range.
func (r *Result) Insolation(d int) []Insolation {
	if d < 0 || d >= r.DayCount() {
		return nil
	}
	return r.insolation[d*r.samples : (d+1)*r.samples]
}

// NormalVec is the panel normal as an East/North/Up unit vector.
func (r *Result) NormalVec() r3.Vec {
	return Vec(r.Normal)
}

// NormalAzAlt is the panel normal as azimuth and altitude, rad.
func (r *Result) NormalAzAlt() (float64, float64) {
	return ToAzAlt(r.Normal)
}

/*
Insolation and reflection of one sun sample.

	Args:
		normal: panel normal (unit pure quaternion)
		sun: sun position

	Returns:
		(1) insolation on the panel
		(2) the reflected ray

	Notes:
		A sun striking the back of the panel or lying below the horizon gives
		no insolation and is not visible. The reflection is computed either way.
*/
func sampleReflection(normal quat.Number, sun Sample) (Insolation, Sample) {
	// going out toward the sun
	sunbeam := ToDirection(sun.Azimuth, sun.Altitude)

	var ins Insolation
	ang := Angle(normal, sunbeam)
	if ang <= math.Pi/2 && sun.Altitude >= 0 {
		ins = Insolation{Fraction: math.Cos(ang), Visible: true}
	}

	// coming in, not going out
	reflected := Reflect(normal, quat.Conj(sunbeam))
	az, alt := ToAzAlt(reflected)
	return ins, Sample{Azimuth: az, Altitude: alt}
}

/*
Reflections and insolation at all times and days.

	Args:
		series: sun positions, may be nil
		o: panel orientation

	Returns:
		the result; without sun data it carries only the normal

	Notes:
		Every day is stored with one slot per entry of series.Hours. A day
		with fewer samples leaves its trailing slots zero: no insolation and
		not visible. The sundata readers reject such data before it gets here.
*/
func ComputeAll(series *SunPositionSeries, o Orientation) *Result {
	r := &Result{
		Orientation: o,
		Normal:      o.Normal(),
	}
	if series == nil {
		return r
	}

	n := series.SamplesPerDay()
	days := series.DayCount()
	r.samples = n
	r.reflections = make([]Sample, days*n)
	r.insolation = make([]Insolation, days*n)
	for d, day := range series.Days {
		off := d * n
		for k := 0; k < n && k < len(day); k++ {
			r.insolation[off+k], r.reflections[off+k] = sampleReflection(r.Normal, day[k])
		}
	}
	return r
}

// SunHours is the direct sunlight of one day.
type SunHours struct {
	FixedPanel float64 // hours of full-on sunlight on the panel, h
	SunFacing  float64 // hours on a surface always facing the sun, h
}

/*
Sun hours of one day from computed insolation.

	Args:
		sun: sun positions of the day, [k]
		ins: insolation of the day, [k]
		shading: skyline or other obstruction
		timeStep: sampling interval, h

	Returns:
		the sun hours of the day
*/
func daySunHours(sun []Sample, ins []Insolation, shading Shading, timeStep float64) SunHours {
	n := len(sun)
	if len(ins) < n {
		n = len(ins)
	}
	if n == 0 {
		return SunHours{}
	}
	if shading == nil {
		shading = NoShading{}
	}

	transmission := make([]float64, n)
	fractions := make([]float64, n)
	for k := 0; k < n; k++ {
		transmission[k] = shading.Transmission(sun[k].Azimuth, sun[k].Altitude)
		fractions[k] = ins[k].Fraction
	}
	return SunHours{
		FixedPanel: floats.Dot(fractions, transmission) * timeStep,
		SunFacing:  floats.Sum(transmission) * timeStep,
	}
}

/*
Total sun hours on a day.

	Args:
		day: day index
		series: sun positions, may be nil
		o: panel orientation
		shading: skyline; nil means only the horizon blocks

	Returns:
		sun hours, zero when there is no data for the day
*/
func TotalSunHours(day int, series *SunPositionSeries, o Orientation, shading Shading) SunHours {
	sun := series.Day(day)
	if sun == nil {
		return SunHours{}
	}
	normal := o.Normal()
	ins := make([]Insolation, len(sun))
	for k, s := range sun {
		ins[k], _ = sampleReflection(normal, s)
	}
	return daySunHours(sun, ins, shading, series.timeStep())
}

// SunHours is TotalSunHours read off an already computed result.
func (r *Result) SunHours(day int, series *SunPositionSeries, shading Shading) SunHours {
	sun := series.Day(day)
	if sun == nil || r == nil {
		return SunHours{}
	}
	return daySunHours(sun, r.Insolation(day), shading, series.timeStep())
}

/*
Visibility of the sun ray and its reflection.

	Args:
		sun: sun position
		ins: insolation of the same sample
		sky: skyline, may be nil

	Returns:
		(1) true if the sun ray reaches the panel
		(2) true if the reflected ray leaves the front of the panel
*/
func RayVisibility(sun Sample, ins Insolation, sky *Skyline) (bool, bool) {
	sunVis := sun.Altitude >= 0
	if sunVis && sky != nil && sky.Enabled() {
		sunVis = !sky.Blocks(sun.Azimuth, sun.Altitude)
	}
	return sunVis, sunVis && ins.Visible
}
