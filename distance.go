package optics

import (
	"math"
	"strconv"
)

// Distance is a squared distance that is either a finite non-negative value
// or undefined. Undefined orders after every finite value, so it can stand in
// for "not yet reachable" without overloading a floating-point maximum.
//
// The zero value is undefined.
type Distance struct {
	value   float64
	defined bool
}

// DistanceOf returns a defined Distance holding v.
// Panics if v is negative or NaN; distances are non-negative by construction.
func DistanceOf(v float64) Distance {
	if v < 0 || math.IsNaN(v) {
		panic("optics: distance must be a non-negative number, got " + strconv.FormatFloat(v, 'g', -1, 64))
	}
	return Distance{value: v, defined: true}
}

// Undefined returns the undefined Distance.
func Undefined() Distance {
	return Distance{}
}

// IsDefined reports whether d holds a finite value.
func (d Distance) IsDefined() bool { return d.defined }

// Value returns the finite value held by d.
// Panics if d is undefined; callers must check IsDefined first.
func (d Distance) Value() float64 {
	if !d.defined {
		panic("optics: Value called on undefined distance")
	}
	return d.value
}

// Less reports whether d orders strictly before other.
// Undefined compares greater than every defined distance, and two undefined
// distances compare equal (neither is less).
func (d Distance) Less(other Distance) bool {
	switch {
	case !d.defined:
		return false
	case !other.defined:
		return true
	default:
		return d.value < other.value
	}
}

// String formats d for diagnostics and CSV output.
func (d Distance) String() string {
	if !d.defined {
		return "undefined"
	}
	return strconv.FormatFloat(d.value, 'g', -1, 64)
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Squared rather than true Euclidean: every consumer only compares or
// thresholds distances, so the square root is never needed.
// Panics if the points have different dimensionality.
func SquaredDistance(a, b *Point) float64 {
	if len(a.coords) != len(b.coords) {
		panic("optics: points must have the same dimensionality")
	}
	var sum float64
	for i := range a.coords {
		d := a.coords[i] - b.coords[i]
		sum += d * d
	}
	return sum
}
