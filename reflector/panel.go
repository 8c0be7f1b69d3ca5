package reflector

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Orientation is the rotational state of the panel.
type Orientation struct {
	TiltAxisAzimuth float64 // azimuth of the tilt axis, rad
	Tilt            float64 // rotation about the tilt axis, rad
	Dip             float64 // rotation about the dip axis, rad
}

// TiltAxis is the horizontal unit vector at the tilt axis azimuth.
func (o Orientation) TiltAxis() quat.Number {
	sin, cos := math.Sincos(o.TiltAxisAzimuth)
	return quat.Number{Imag: sin, Jmag: cos}
}

/*
Dip axis of the panel.

	Returns:
		unit pure quaternion

	Notes:
		The tilt axis turned a quarter turn clockwise about Up, then carried
		along by the tilt, so it stays perpendicular to the tilted tilt axis.
*/
func (o Orientation) DipAxis() quat.Number {
	tiltAxis := o.TiltAxis()
	dipAxis := Rotate(tiltAxis, ZUp, -math.Pi/2)
	return Rotate(dipAxis, tiltAxis, o.Tilt)
}

// Apply rotates q about the tilt axis by Tilt, then about the dip axis by Dip.
func (o Orientation) Apply(q quat.Number) quat.Number {
	q = Rotate(q, o.TiltAxis(), o.Tilt)
	return Rotate(q, o.DipAxis(), o.Dip)
}

// Normal is the outward panel normal.
func (o Orientation) Normal() quat.Number {
	return o.Apply(ZUp)
}
