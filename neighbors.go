package optics

import "fmt"

// Neighbors returns every point of dataset within the eps-ball around p,
// p itself included, in dataset order. The scan is exhaustive: O(n) per
// call, O(n²) over a full run. Returns an error if eps is negative.
func Neighbors(p *Point, eps float64, dataset []*Point) ([]*Point, error) {
	if eps < 0 {
		return nil, fmt.Errorf("%w: eps must be >= 0, got %g", ErrInvalidArgument, eps)
	}
	return scanNeighbors(p, eps, dataset), nil
}

// scanNeighbors is the validated-input core of Neighbors. Comparisons are in
// squared space, so eps is squared once up front.
func scanNeighbors(p *Point, eps float64, dataset []*Point) []*Point {
	epsSq := eps * eps

	var result []*Point
	for _, q := range dataset {
		if SquaredDistance(p, q) <= epsSq {
			result = append(result, q)
		}
	}
	return result
}
