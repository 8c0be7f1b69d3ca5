package reflector

import (
	"math"
)

// Direction is a compass preset for the tilt axis of a panel.
type Direction string

const (
	DirectionN  Direction = "n"
	DirectionNE Direction = "ne"
	DirectionE  Direction = "e"
	DirectionSE Direction = "se"
	DirectionS  Direction = "s"
	DirectionSW Direction = "sw"
	DirectionW  Direction = "w"
	DirectionNW Direction = "nw"
)

func DirectionFromString(str string) Direction {
	switch str {
	case "n":
		return DirectionN
	case "ne":
		return DirectionNE
	case "e":
		return DirectionE
	case "se":
		return DirectionSE
	case "s":
		return DirectionS
	case "sw":
		return DirectionSW
	case "w":
		return DirectionW
	case "nw":
		return DirectionNW
	default:
		panic("invalid direction")
	}
}

/*
Compass azimuth of the preset.

	Returns:
		azimuth, clockwise from North, rad
*/
func (d Direction) Azimuth() float64 {
	switch d {
	case DirectionN:
		return math.Pi * 0.0 / 180.0
	case DirectionNE:
		return math.Pi * 45.0 / 180.0
	case DirectionE:
		return math.Pi * 90.0 / 180.0
	case DirectionSE:
		return math.Pi * 135.0 / 180.0
	case DirectionS:
		return math.Pi * 180.0 / 180.0
	case DirectionSW:
		return math.Pi * 225.0 / 180.0
	case DirectionW:
		return math.Pi * 270.0 / 180.0
	case DirectionNW:
		return math.Pi * 315.0 / 180.0
	default:
		panic("invalid direction")
	}
}
