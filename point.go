package optics

import "sync/atomic"

// pointIDs hands out construction-ordered identifiers. The frontier uses
// these as the deterministic tie-break when two reachability distances are
// exactly equal, so points constructed earlier order first.
var pointIDs atomic.Int64

// Point is a multi-dimensional data point together with the per-run state
// the ordering algorithm mutates in place: the reachability distance and the
// processed flag. Points are created by the caller, handed to Run by
// reference, and remain owned by the caller afterwards.
//
// A Point is not safe for concurrent mutation; see the package documentation
// for the concurrency contract.
type Point struct {
	// Label is an opaque payload for tracing a point back to external data.
	// It has no effect on the algorithm.
	Label any

	coords       []float64
	reachability Distance
	processed    bool
	id           int64
}

// NewPoint returns a Point with the given coordinates, undefined
// reachability and the processed flag cleared.
func NewPoint(coords ...float64) *Point {
	return &Point{
		coords: coords,
		id:     pointIDs.Add(1),
	}
}

// NewLabeledPoint is NewPoint with an attached opaque label.
func NewLabeledPoint(label any, coords ...float64) *Point {
	p := NewPoint(coords...)
	p.Label = label
	return p
}

// NewDataset converts rows of coordinates into points, one per row, in row
// order. All rows must have the same length; the algorithm panics on the
// first mixed-dimensionality comparison otherwise.
func NewDataset(rows [][]float64) []*Point {
	points := make([]*Point, len(rows))
	for i, row := range rows {
		coords := make([]float64, len(row))
		copy(coords, row)
		points[i] = NewPoint(coords...)
	}
	return points
}

// Dims returns the dimensionality of p.
func (p *Point) Dims() int { return len(p.coords) }

// Coord returns the i-th coordinate of p.
// Panics if i is outside [0, Dims()).
func (p *Point) Coord(i int) float64 { return p.coords[i] }

// Coords returns the underlying coordinate slice. Mutating it between runs
// is allowed; mutating it during a run corrupts the ordering.
func (p *Point) Coords() []float64 { return p.coords }

// Reachability returns the current reachability distance of p. After a
// completed run it is final: undefined for expansion roots and points no
// core point reached, finite otherwise.
func (p *Point) Reachability() Distance { return p.reachability }

// SetReachability sets the reachability distance of p. Negative values are
// rejected at construction of the Distance itself (see DistanceOf).
func (p *Point) SetReachability(d Distance) { p.reachability = d }

// Processed reports whether p has been emitted into an ordering.
func (p *Point) Processed() bool { return p.processed }

// SetProcessed sets the processed flag. Callers reusing points across runs
// must clear it (and usually the reachability) before the next run.
func (p *Point) SetProcessed(b bool) { p.processed = b }
