package sundata

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"sun_reflector/reflector"
)

// localToUTC converts a day of year and local standard time of day to UTC.
func localToUTC(year, dayOfYear int, hour, timeZone float64) time.Time {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
	return t.Add(time.Duration((hour - timeZone) * float64(time.Hour)))
}

/*
Sun position from the apparent solar coordinates.

	Args:
		g: observer, meeus convention (longitude positive west)
		t: instant, UTC

	Returns:
		sun position, azimuth clockwise from North, rad

	Notes:
		The horizontal azimuth is measured from South toward West, so π is
		added. Dynamical and universal time are not distinguished; the
		difference is well below the sample spacing.
*/
func ephemerisPosition(g *globe.Coord, t time.Time) reflector.Sample {
	jd := julian.TimeToJD(t)
	α, δ := solar.ApparentEquatorial(jd)
	st := sidereal.Apparent(jd)

	eq := &coord.Equatorial{RA: α, Dec: δ}
	hz := new(coord.Horizontal).EqToHz(eq, g, st)

	return reflector.Sample{
		Azimuth:  reflector.NormalizeAzimuth(hz.Az.Rad() + math.Pi),
		Altitude: hz.Alt.Rad(),
	}
}

/*
Sun positions from the meeus ephemeris.

	Args:
		loc: site and time zone
		year: calendar year of the data
		startDay: day of year of the first day (Jan 1 = 1)
		dayCount: number of days
		hours: times of day in local standard time, h, [k]

	Returns:
		per day, per time: sun azimuth and altitude, rad
*/
func ephemerisSolarPosition(loc reflector.Location, year, startDay, dayCount int, hours []float64) [][]reflector.Sample {
	g := &globe.Coord{
		Lat: unit.AngleFromDeg(loc.Latitude),
		Lon: unit.AngleFromDeg(-loc.Longitude),
	}

	days := make([][]reflector.Sample, dayCount)
	for i := 0; i < dayCount; i++ {
		samples := make([]reflector.Sample, len(hours))
		for k, h := range hours {
			samples[k] = ephemerisPosition(g, localToUTC(year, startDay+i, h, loc.TimeZone))
		}
		days[i] = samples
	}
	return days
}
