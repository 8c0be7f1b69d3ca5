package reflector

import (
	"math"
)

// Shading decides how much of a direct sun ray reaches the panel.
type Shading interface {
	/*
		Transmission of a sun ray.

		Args:
			az: sun azimuth, rad
			alt: sun altitude, rad

		Returns:
			1 if the ray passes, 0 if it is blocked
	*/
	Transmission(az, alt float64) float64
}

// NoShading blocks only what is below the horizon.
type NoShading struct{}

func (NoShading) Transmission(az, alt float64) float64 {
	if alt < 0 {
		return 0
	}
	return 1
}

// SkylineBuckets is the number of one-degree azimuth buckets.
const SkylineBuckets = 360

// Skyline is the altitude below which the sun is blocked, per degree of azimuth.
type Skyline struct {
	altitudes [SkylineBuckets]float64 // blocking altitude, rad, index = azimuth in degrees
	enabled   bool
}

func NewSkyline() *Skyline {
	return &Skyline{}
}

func (s *Skyline) Enabled() bool {
	return s != nil && s.enabled
}

// SetEnabled toggles blocking. Stored altitudes are kept either way.
func (s *Skyline) SetEnabled(b bool) {
	s.enabled = b
}

// bucket maps any azimuth to its one-degree bucket.
func bucket(az float64) int {
	deg := round(Rad2Deg(NormalizeAzimuth(az)))
	return deg % SkylineBuckets
}

/*
Altitude below which the sun is blocked.

	Args:
		az: azimuth, rad

	Returns:
		blocking altitude, rad (0 when disabled or nil)
*/
func (s *Skyline) BlockingAltitude(az float64) float64 {
	if s == nil || !s.enabled {
		return 0
	}
	return s.altitudes[bucket(az)]
}

/*
Set the blocking altitude at an azimuth.

	Args:
		az: azimuth, rad
		alt: blocking altitude, rad

	Notes:
		The altitude is clamped into [0, π/2]. The azimuth goes through the same
		bucket mapping as BlockingAltitude, so -180° and +180° land in one bucket.
*/
func (s *Skyline) SetAltitude(az, alt float64) {
	alt = clamp(alt, 0, math.Pi/2)
	s.altitudes[bucket(az)] = alt
}

/*
Paint a run of buckets with one altitude.

	Args:
		from: previous azimuth of the stroke, rad
		to: current azimuth of the stroke, rad
		alt: blocking altitude, rad

	Notes:
		When the stroke jumps more than one degree, every whole-degree step from
		from toward to along the shorter arc gets alt, so a fast drag leaves no
		holes and a stroke across North stays near North. Intermediate buckets
		take the new altitude; nothing is blended.
*/
func (s *Skyline) PaintRange(from, to, alt float64) {
	s.SetAltitude(to, alt)
	delta := math.Remainder(to-from, 2*math.Pi)
	if math.Abs(delta) <= Deg2Rad(1) {
		return
	}
	step := Deg2Rad(math.Copysign(1, delta))
	for i := 0; float64(i) < Rad2Deg(math.Abs(delta)); i++ {
		s.SetAltitude(from+float64(i)*step, alt)
	}
}

// Blocks reports whether the skyline hides a sun at (az, alt).
func (s *Skyline) Blocks(az, alt float64) bool {
	return s.BlockingAltitude(az) > alt
}

// Transmission also cuts everything below the horizon, since a disabled
// skyline has a blocking altitude of 0.
func (s *Skyline) Transmission(az, alt float64) float64 {
	if s.Blocks(az, alt) {
		return 0
	}
	return 1
}

// Altitudes returns a copy of the stored profile, rad.
func (s *Skyline) Altitudes() []float64 {
	out := make([]float64, SkylineBuckets)
	copy(out, s.altitudes[:])
	return out
}

// SetAltitudes replaces the stored profile. Extra values are ignored and
// each value is clamped into [0, π/2].
func (s *Skyline) SetAltitudes(alts []float64) {
	for i := 0; i < SkylineBuckets && i < len(alts); i++ {
		s.altitudes[i] = clamp(alts[i], 0, math.Pi/2)
	}
}

// SkylinePoint is one vertex of a skyline outline, degrees.
type SkylinePoint struct {
	Azimuth  float64 `yaml:"azimuth"`
	Altitude float64 `yaml:"altitude"`
}

// LoadPoints paints the outline point by point, filling the gap between
// consecutive points with the later point's altitude.
func (s *Skyline) LoadPoints(points []SkylinePoint) {
	for i, p := range points {
		az, alt := Deg2Rad(p.Azimuth), Deg2Rad(p.Altitude)
		if i == 0 {
			s.SetAltitude(az, alt)
			continue
		}
		s.PaintRange(Deg2Rad(points[i-1].Azimuth), az, alt)
	}
}
