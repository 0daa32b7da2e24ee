// Package pad samples a physical gamepad and decomposes its state
// into button snapshots: face buttons directly, thumbsticks via polar
// eight-way direction math, triggers via a threshold.
package pad

import (
	"math"

	"github.com/padbind/padbind/button"
)

// Stick selects which thumbstick a direction refers to.
type Stick int

const (
	LeftStick Stick = iota
	RightStick
)

// Direction is an eight-way compass direction for a thumbstick, in
// math convention (up is positive Y).
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

// ComputePolar converts stick deflection to (radius, theta). Theta is
// in [-pi, pi], zero pointing right. A fully centered stick cannot be
// decomposed, so both components are nudged to the smallest positive
// value before the conversion.
func ComputePolar(x, y float64) (radius, theta float64) {
	if x == 0 && y == 0 {
		x = math.SmallestNonzeroFloat64
		y = math.SmallestNonzeroFloat64
	}
	return math.Hypot(x, y), math.Atan2(y, x)
}

// Sector boundaries sit at odd multiples of pi/8 so each of the eight
// directions spans a quarter-pi arc centered on its compass heading.
const eighth = math.Pi / 8

// DirectionForTheta buckets a polar angle into its compass direction.
func DirectionForTheta(theta float64) Direction {
	switch {
	case theta >= -eighth && theta <= eighth:
		return DirRight
	case theta > eighth && theta < 3*eighth:
		return DirUpRight
	case theta >= 3*eighth && theta <= 5*eighth:
		return DirUp
	case theta > 5*eighth && theta < 7*eighth:
		return DirUpLeft
	case theta >= 7*eighth || theta <= -7*eighth:
		// The left sector wraps across the +-pi discontinuity.
		return DirLeft
	case theta > -7*eighth && theta < -5*eighth:
		return DirDownLeft
	case theta >= -5*eighth && theta <= -3*eighth:
		return DirDown
	case theta > -3*eighth && theta < -eighth:
		return DirDownRight
	}
	return DirNone
}

// ButtonForDirection maps a stick direction to its virtual button.
func ButtonForDirection(d Direction, s Stick) button.Button {
	left := s == LeftStick
	switch d {
	case DirUp:
		return pick(left, button.LeftThumbUp, button.RightThumbUp)
	case DirUpRight:
		return pick(left, button.LeftThumbUpRight, button.RightThumbUpRight)
	case DirRight:
		return pick(left, button.LeftThumbRight, button.RightThumbRight)
	case DirDownRight:
		return pick(left, button.LeftThumbDownRight, button.RightThumbDownRight)
	case DirDown:
		return pick(left, button.LeftThumbDown, button.RightThumbDown)
	case DirDownLeft:
		return pick(left, button.LeftThumbDownLeft, button.RightThumbDownLeft)
	case DirLeft:
		return pick(left, button.LeftThumbLeft, button.RightThumbLeft)
	case DirUpLeft:
		return pick(left, button.LeftThumbUpLeft, button.RightThumbUpLeft)
	}
	return button.NotSet
}

func pick(left bool, l, r button.Button) button.Button {
	if left {
		return l
	}
	return r
}
