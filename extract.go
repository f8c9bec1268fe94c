package optics

import "fmt"

// ExtractClusters partitions a completed ordering into clusters at the
// given border indices. Group 0 is the outlier bucket; group i+1 is the
// contiguous slice ordering[borders[i-1]:borders[i]] (with an implicit
// leading border 0 and trailing border len(ordering)), minus any member
// whose reachability exceeds outlierThreshold — those are redirected into
// the outlier bucket. Relative order is preserved within every group.
//
// outlierThreshold <= 0 disables outlier filtering entirely. With filtering
// enabled, undefined reachability counts as above any threshold.
//
// Borders typically come from a valley/peak detector over
// Result.Reachabilities. They must be sorted ascending and lie in
// [0, len(ordering)]; otherwise an ErrInvalidArgument error is returned.
// The ordering is not mutated.
func ExtractClusters(ordering []*Point, borders []int, outlierThreshold float64) ([][]*Point, error) {
	prev := 0
	for i, b := range borders {
		if b < prev {
			return nil, fmt.Errorf("%w: borders must be sorted ascending and non-negative, got %d at index %d", ErrInvalidArgument, b, i)
		}
		if b > len(ordering) {
			return nil, fmt.Errorf("%w: border %d at index %d exceeds ordering length %d", ErrInvalidArgument, b, i, len(ordering))
		}
		prev = b
	}

	filter := outlierThreshold > 0

	groups := make([][]*Point, 1, len(borders)+2)
	groups[0] = []*Point{}

	lower := 0
	for i := 0; i <= len(borders); i++ {
		upper := len(ordering)
		if i < len(borders) {
			upper = borders[i]
		}

		cluster := []*Point{}
		for _, p := range ordering[lower:upper] {
			if filter && exceedsThreshold(p.reachability, outlierThreshold) {
				groups[0] = append(groups[0], p)
			} else {
				cluster = append(cluster, p)
			}
		}
		groups = append(groups, cluster)
		lower = upper
	}
	return groups, nil
}

// exceedsThreshold reports whether d lies above the outlier threshold.
// Undefined reachability means the point was never density-reached, which
// is above any finite threshold.
func exceedsThreshold(d Distance, threshold float64) bool {
	return !d.IsDefined() || d.Value() > threshold
}
