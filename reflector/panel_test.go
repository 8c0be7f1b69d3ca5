package reflector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNormalAtZeroOrientation(t *testing.T) {
	n := Orientation{}.Normal()
	assert.InDelta(t, 0, n.Imag, eps)
	assert.InDelta(t, 0, n.Jmag, eps)
	assert.InDelta(t, 1, n.Kmag, eps)

	// tilt axis azimuth alone does not move the normal
	n = Orientation{TiltAxisAzimuth: 1.3}.Normal()
	assert.InDelta(t, 1, n.Kmag, eps)
}

func TestTiltAxis(t *testing.T) {
	a := Orientation{TiltAxisAzimuth: math.Pi / 2}.TiltAxis()
	assert.InDelta(t, 1, a.Imag, eps)
	assert.InDelta(t, 0, a.Jmag, eps)

	a = Orientation{TiltAxisAzimuth: DirectionS.Azimuth()}.TiltAxis()
	assert.InDelta(t, -1, a.Jmag, eps)
}

func TestTiltAboutEastAxis(t *testing.T) {
	// tilting about an East axis turns Up toward South
	o := Orientation{TiltAxisAzimuth: math.Pi / 2, Tilt: Deg2Rad(30)}
	az, alt := ToAzAlt(o.Normal())
	assertAzimuth(t, math.Pi, az)
	assert.InDelta(t, Deg2Rad(60), alt, 1e-7)
}

func TestDipAxisStaysPerpendicular(t *testing.T) {
	for _, o := range []Orientation{
		{TiltAxisAzimuth: 0.3, Tilt: 0.2},
		{TiltAxisAzimuth: 2, Tilt: -1.1, Dip: 0.4},
		{TiltAxisAzimuth: 5, Tilt: 1.5, Dip: -0.9},
	} {
		dip := Vec(o.DipAxis())
		assert.InDelta(t, 1, r3.Norm(dip), eps)
		assert.InDelta(t, 0, r3.Dot(dip, Vec(o.TiltAxis())), eps)
	}
}

func TestNormalIsUnit(t *testing.T) {
	for _, o := range []Orientation{
		{TiltAxisAzimuth: 0.3, Tilt: 0.2, Dip: 0.1},
		{TiltAxisAzimuth: 4, Tilt: -1.1, Dip: 2.4},
	} {
		assert.InDelta(t, 1, quat.Abs(o.Normal()), eps)
	}
}

func TestDipRotatesAboutDipAxis(t *testing.T) {
	// a North tilt axis puts the dip axis on East, so dipping turns Up
	// toward South
	o := Orientation{TiltAxisAzimuth: 0, Dip: Deg2Rad(20)}
	d := Vec(o.DipAxis())
	assert.InDelta(t, 1, d.X, eps)

	n := Vec(o.Normal())
	assert.InDelta(t, 0, n.X, eps)
	assert.InDelta(t, -math.Sin(Deg2Rad(20)), n.Y, eps)
	assert.InDelta(t, math.Cos(Deg2Rad(20)), n.Z, eps)
}
