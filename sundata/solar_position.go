package sundata

import (
	"math"

	"sun_reflector/reflector"
)

/*
   Sun positions from the simplified solar position formulas.

   Args:
       loc: site and time zone
       year: calendar year of the data
       startDay: day of year of the first day (Jan 1 = 1)
       dayCount: number of days
       hours: times of day in local standard time, h, [k]

   Returns:
       per day, per time: sun azimuth (clockwise from North) and altitude, rad
*/
func calcSolarPosition(loc reflector.Location, year, startDay, dayCount int, hours []float64) [][]reflector.Sample {

	// latitude, rad
	phi_loc := reflector.Deg2Rad(loc.Latitude)

	// longitude, rad
	lambda_loc := reflector.Deg2Rad(loc.Longitude)

	// standard meridian of the time zone, rad
	lambda_loc_mer := _get_lambda_loc_mer(loc.TimeZone)

	// years since 1968
	n := year - 1968

	// perihelion passage on the mean orbit, days from 1968-01-01 noon
	d_0 := _get_d_0(n)

	days := make([][]reflector.Sample, dayCount)
	for i := 0; i < dayCount; i++ {
		d := float64(startDay + i)

		// mean anomaly, rad
		m := _get_m(d, d_0)

		// angle between perihelion and winter solstice, rad
		epsilon := _get_epsilon(m, n)

		// true anomaly, rad
		v := _get_v(m)

		// equation of time, rad
		e_t := _get_e_t(m, epsilon, v)

		// declination, rad
		delta := _get_delta(epsilon, v)

		samples := make([]reflector.Sample, len(hours))
		for k, t_m := range hours {
			// hour angle, rad
			omega := _get_omega(t_m, lambda_loc, lambda_loc_mer, e_t)

			// sun altitude, rad
			h_sun := _get_h_sun(phi_loc, omega, delta)

			samples[k] = reflector.Sample{
				Azimuth:  _get_a_sun(delta, h_sun, omega, phi_loc),
				Altitude: h_sun,
			}
		}
		days[i] = samples
	}

	return days
}

/*
   Standard meridian of a time zone.

   Args:
       timeZone: offset from UTC, h

   Returns:
       longitude of the standard meridian, rad
*/
func _get_lambda_loc_mer(timeZone float64) float64 {
	return timeZone * 15.0 * math.Pi / 180.0
}

/*
   Perihelion passage on the mean orbit.

   Args:
       n: years since 1968

   Returns:
       perihelion passage on the mean orbit, days from 1968-01-01 noon (ephemeris time)
*/
func _get_d_0(n int) float64 {
	return 3.71 + 0.2596*float64(n) - float64((n+3)/4)
}

/*
   Mean anomaly.

   Args:
       d: day of year (Jan 1 = 1)
       d_0: perihelion passage on the mean orbit, d

   Returns:
       mean anomaly, rad
*/
func _get_m(d float64, d_0 float64) float64 {

	// anomalistic year, d
	d_ay := 365.2596

	return 2 * math.Pi * (d - d_0) / d_ay
}

/*
   Angle between perihelion and winter solstice.

   Args:
       m: mean anomaly, rad
       n: years since 1968

   Returns:
       angle between perihelion and winter solstice, rad
*/
func _get_epsilon(m float64, n int) float64 {
	return (12.3901 + 0.0172*(float64(n)+m/(2*math.Pi))) * math.Pi / 180.0
}

/*
   True anomaly.

   Args:
       m: mean anomaly, rad

   Returns:
       true anomaly, rad
*/
func _get_v(m float64) float64 {
	return m + (1.914*math.Sin(m)+0.02*math.Sin(2*m))*math.Pi/180.0
}

/*
   Equation of time.

   Args:
       m: mean anomaly, rad
       epsilon: angle between perihelion and winter solstice, rad
       v: true anomaly, rad

   Returns:
       equation of time, rad
*/
func _get_e_t(m float64, epsilon float64, v float64) float64 {
	return (m - v) - math.Atan(0.043*math.Sin(2.0*(v+epsilon))/(1.0-0.043*math.Cos(2.0*(v+epsilon))))
}

/*
   Declination.

   Args:
       epsilon: angle between perihelion and winter solstice, rad
       v: true anomaly, rad

   Returns:
       declination, rad

   Notes:
       the declination lies in [-π/2, π/2]
*/
func _get_delta(epsilon float64, v float64) float64 {

	// declination at the northern winter solstice, rad
	const delta_0 = -23.4393 * math.Pi / 180.0

	return math.Asin(math.Cos(v+epsilon) * math.Sin(delta_0))
}

/*
   Hour angle.

   Args:
       t_m: local standard time, h
       lambda_loc: longitude, rad
       lambda_loc_mer: longitude of the standard meridian, rad
       e_t: equation of time, rad

   Returns:
       hour angle, rad
*/
func _get_omega(t_m float64, lambda_loc float64, lambda_loc_mer float64, e_t float64) float64 {
	return ((t_m-12.0)*15.0)*math.Pi/180.0 + (lambda_loc - lambda_loc_mer) + e_t
}

/*
   Sun altitude.

   Args:
       phi_loc: latitude, rad
       omega: hour angle, rad
       delta: declination, rad

   Returns:
       sun altitude, rad

   Notes:
       negative while the sun is down
*/
func _get_h_sun(phi_loc float64, omega float64, delta float64) float64 {
	return math.Asin(math.Sin(phi_loc)*math.Sin(delta) + math.Cos(phi_loc)*math.Cos(delta)*math.Cos(omega))
}

/*
   Sun azimuth.

   Args:
       delta: declination, rad
       h_sun: sun altitude, rad
       omega: hour angle, rad
       phi_loc: latitude, rad

   Returns:
       sun azimuth, clockwise from North, rad

   Notes:
       The formulas measure from South, westward positive, so π is added.
       The azimuth is undefined with the sun at the zenith; 0 is returned.
*/
func _get_a_sun(delta, h_sun, omega, phi_loc float64) float64 {
	if h_sun == math.Pi/2 {
		return 0
	}
	sin_a_sun := math.Cos(delta) * math.Sin(omega) / math.Cos(h_sun)
	cos_a_sun := (math.Sin(h_sun)*math.Sin(phi_loc) - math.Sin(delta)) / (math.Cos(h_sun) * math.Cos(phi_loc))
	return reflector.NormalizeAzimuth(math.Atan2(sin_a_sun, cos_a_sun) + math.Pi)
}
