package reflector

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Unit axes of the local frame. Imag = East, Jmag = North, Kmag = Up.
var (
	XEast  = quat.Number{Imag: 1}
	YNorth = quat.Number{Jmag: 1}
	ZUp    = quat.Number{Kmag: 1}
	ZDown  = quat.Conj(ZUp)
)

// horizontal component below which the azimuth of a direction is undefined
const zenithEpsilon = 1e-12

/*
Rotate a vector about an axis.

	Args:
		v: vector to rotate (pure quaternion)
		axis: rotation axis (unit pure quaternion)
		theta: rotation angle, rad

	Returns:
		the rotated vector

	Notes:
		Half-angle rotor sandwich with R = (cos θ/2, axis sin θ/2).
		A positive angle turns right-handed about axis, so turning North about
		Down by az lands on compass azimuth az (clockwise from North).
		A non-unit axis does not give an isometry.
*/
func Rotate(v, axis quat.Number, theta float64) quat.Number {
	sin, cos := math.Sincos(theta / 2)
	rot := quat.Number{Real: cos, Imag: axis.Imag * sin, Jmag: axis.Jmag * sin, Kmag: axis.Kmag * sin}
	return quat.Mul(quat.Mul(rot, v), quat.Conj(rot))
}

/*
Reflect an incoming vector off a surface.

	Args:
		normal: surface normal (unit pure quaternion)
		in: incoming vector (unit pure quaternion)

	Returns:
		the outgoing vector

	Notes:
		normal ⊗ in ⊗ normal. normal is a mirror plane normal, not a rotor,
		so it is not conjugated.
*/
func Reflect(normal, in quat.Number) quat.Number {
	return quat.Mul(quat.Mul(normal, in), normal)
}

// Angle returns the angle between two quaternions treated as 4-vectors, rad.
func Angle(a, b quat.Number) float64 {
	n := quat.Abs(a) * quat.Abs(b)
	if n == 0 {
		return 0
	}
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	return math.Acos(clamp(dot/n, -1, 1))
}

/*
Unit vector pointing at an azimuth and altitude.

	Args:
		az: azimuth, clockwise from North, rad
		alt: altitude, rad

	Returns:
		unit pure quaternion
*/
func ToDirection(az, alt float64) quat.Number {
	q := Rotate(YNorth, ZDown, az)
	altAxis := Rotate(XEast, ZDown, az)
	return Rotate(q, altAxis, alt)
}

/*
Azimuth and altitude of a vector.

	Args:
		q: pure quaternion

	Returns:
		(1) azimuth, rad, [0, 2π)
		(2) altitude, rad

	Notes:
		The azimuth is undefined at the zenith and nadir; 0 is returned there.
*/
func ToAzAlt(q quat.Number) (az, alt float64) {
	alt = math.Pi/2 - Angle(ZUp, q)
	if math.Hypot(q.Imag, q.Jmag) < zenithEpsilon*quat.Abs(q) {
		return 0, alt
	}
	az = NormalizeAzimuth(math.Pi/2 - math.Atan2(q.Jmag, q.Imag))
	return az, alt
}

// NormalizeAzimuth reduces az into [0, 2π).
func NormalizeAzimuth(az float64) float64 {
	az = math.Mod(az, 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}
	if az >= 2*math.Pi {
		az = 0
	}
	return az
}

// Vec converts a pure quaternion to an East/North/Up vector.
func Vec(q quat.Number) r3.Vec {
	return r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }

// round is round-half-up, so -0.5 goes to 0 and 359.5 to 360.
func round(d float64) int {
	return int(math.Floor(d + 0.5))
}
