package optics

import "fmt"

// CoreDistance returns the squared core distance of p: the squared distance
// to its minPts-th closest neighbor (0-indexed position minPts, so p itself
// at distance 0 occupies position 0). neighborhood must be the eps-ball
// around p, p included, as returned by Neighbors.
//
// The result is undefined when len(neighborhood) <= minPts — a core point
// needs strictly more than minPts neighbors including itself. Returns an
// error if minPts is 0.
func CoreDistance(p *Point, minPts int, neighborhood []*Point) (Distance, error) {
	if minPts <= 0 {
		return Undefined(), fmt.Errorf("%w: minPts must be > 0, got %d", ErrInvalidArgument, minPts)
	}
	return coreDistance(p, minPts, neighborhood), nil
}

// coreDistance is the validated-input core of CoreDistance.
func coreDistance(p *Point, minPts int, neighborhood []*Point) Distance {
	if len(neighborhood) <= minPts {
		return Undefined()
	}

	dists := make([]float64, len(neighborhood))
	for i, q := range neighborhood {
		dists[i] = SquaredDistance(p, q)
	}
	return DistanceOf(nthElement(dists, minPts))
}

// nthElement returns the value that would be at a[k] if a were sorted
// ascending, using quickselect. Partial selection: a is reordered, not
// sorted. O(n) expected.
func nthElement(a []float64, k int) float64 {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := partition(a, lo, hi)
		switch {
		case p == k:
			return a[k]
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
	return a[k]
}

// partition picks a median-of-three pivot, partitions a[lo:hi+1] around it,
// and returns the pivot's final index.
func partition(a []float64, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if a[mid] < a[lo] {
		a[mid], a[lo] = a[lo], a[mid]
	}
	if a[hi] < a[lo] {
		a[hi], a[lo] = a[lo], a[hi]
	}
	if a[hi] < a[mid] {
		a[hi], a[mid] = a[mid], a[hi]
	}
	// Median now at mid; move it to hi and run Lomuto.
	a[mid], a[hi] = a[hi], a[mid]
	pivot := a[hi]

	i := lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}
