package optics

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument distinguishes precondition violations detectable from
// arguments alone: negative epsilon, non-positive minPts, bad cluster
// borders. Wrapped errors match via errors.Is.
var ErrInvalidArgument = errors.New("optics: invalid argument")

// Config controls one ordering run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Eps is the neighborhood radius. A point's eps-ball is every point at
	// Euclidean distance <= Eps (comparisons happen in squared space).
	// Must be >= 0.
	Eps float64

	// MinPts is the density threshold: a point is a core point only when
	// its eps-ball holds strictly more than MinPts points, itself included.
	// Must be > 0. Default: 5.
	MinPts int

	// OnPointProcessed, when non-nil, is called synchronously once per
	// point, at the moment that point is appended to the ordering, with the
	// point just appended. Returning a non-nil error aborts the run: Run
	// returns the ordering built so far together with that error. Points
	// processed before the abort stay processed.
	OnPointProcessed func(p *Point) error

	// Workers sets the number of goroutines for the neighbor scan, the only
	// parallelizable stage. The scan result is identical to the sequential
	// scan. <= 1 means scan sequentially. Default: 0 (sequential).
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults. Eps has no
// useful default and must be set from the data scale.
func DefaultConfig() Config {
	return Config{
		MinPts: 5,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not. MinPts deliberately has no zero-value fallback: a zero
// MinPts is a contract violation, not a request for a default.
func validateConfig(cfg *Config) error {
	if cfg.Eps < 0 {
		return fmt.Errorf("%w: Eps must be >= 0, got %g", ErrInvalidArgument, cfg.Eps)
	}
	if cfg.MinPts <= 0 {
		return fmt.Errorf("%w: MinPts must be > 0, got %d", ErrInvalidArgument, cfg.MinPts)
	}
	return nil
}

// scan dispatches the eps-ball query to the sequential or parallel scanner.
func (cfg *Config) scan(p *Point, dataset []*Point) []*Point {
	if cfg.Workers > 1 {
		return scanNeighborsParallel(p, cfg.Eps, dataset, cfg.Workers)
	}
	return scanNeighbors(p, cfg.Eps, dataset)
}

// Result contains the output of one ordering run.
type Result struct {
	// Ordering is the OPTICS output sequence: every dataset point exactly
	// once, each with its final reachability distance. Cluster structure is
	// read off the reachability values (valleys are clusters); see
	// ExtractClusters.
	Ordering []*Point
}

// Reachabilities returns the reachability distance of every ordered point,
// in ordering sequence. This is the series handed to an external
// valley/peak detector to find cluster borders.
func (r *Result) Reachabilities() []Distance {
	out := make([]Distance, len(r.Ordering))
	for i, p := range r.Ordering {
		out[i] = p.reachability
	}
	return out
}

// Run computes the OPTICS cluster ordering of dataset.
//
// Every point is emitted into the ordering exactly once, in an order that
// walks density-connected regions before jumping to the next unreached
// region. Run mutates the reachability distance and processed flag of every
// dataset point; the points themselves stay owned by the caller. The run is
// deterministic: same dataset order, same parameters, same ordering.
//
// Returns an error if the config is invalid, or the partial result plus the
// hook's error if Config.OnPointProcessed aborts the run.
func Run(dataset []*Point, cfg Config) (*Result, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	result := &Result{Ordering: make([]*Point, 0, len(dataset))}

	for _, p := range dataset {
		if p.processed {
			continue
		}
		if err := expandClusterOrder(dataset, p, &cfg, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// expandClusterOrder processes root and, if root is a core point, walks the
// density-connected region around it: a frontier of discovered points is
// kept ordered by reachability, the closest is popped, emitted, and its
// neighborhood folded back into the frontier. Non-core roots are emitted
// alone.
func expandClusterOrder(dataset []*Point, root *Point, cfg *Config, result *Result) error {
	neighborhood := cfg.scan(root, dataset)
	// A root has no predecessor, so its own reachability is meaningless.
	root.reachability = Undefined()
	rootCoreDist := coreDistance(root, cfg.MinPts, neighborhood)
	if err := emit(root, cfg, result); err != nil {
		return err
	}

	if !rootCoreDist.IsDefined() {
		return nil
	}

	seeds := newSeedQueue()
	updateSeeds(neighborhood, root, rootCoreDist, seeds)

	for seeds.Len() > 0 {
		q := seeds.popMin()

		qNeighborhood := cfg.scan(q, dataset)
		qCoreDist := coreDistance(q, cfg.MinPts, qNeighborhood)
		if err := emit(q, cfg, result); err != nil {
			return err
		}
		if qCoreDist.IsDefined() {
			updateSeeds(qNeighborhood, q, qCoreDist, seeds)
		}
	}
	return nil
}

// emit marks p processed, appends it to the ordering, and notifies the
// progress hook with p — the point just appended, never the expansion
// center. From this moment p's reachability is final.
func emit(p *Point, cfg *Config, result *Result) error {
	p.processed = true
	result.Ordering = append(result.Ordering, p)
	if cfg.OnPointProcessed != nil {
		return cfg.OnPointProcessed(p)
	}
	return nil
}

// updateSeeds folds the neighborhood of a freshly processed core point
// center into the frontier. For every unprocessed neighbor o the candidate
// reachability is max(coreDist, dist(center, o)) — the distance at which o
// is directly density-reachable from center. First discovery inserts o;
// a strictly better candidate re-keys o via remove-then-push; anything else
// leaves o untouched. Reachability is therefore the minimum over all paths
// seen so far, and only ever decreases while o sits in the frontier.
func updateSeeds(neighborhood []*Point, center *Point, coreDist Distance, seeds *seedQueue) {
	cd := coreDist.Value()

	for _, o := range neighborhood {
		if o.processed {
			continue
		}

		candidate := max(cd, SquaredDistance(center, o))

		switch {
		case !o.reachability.IsDefined():
			o.reachability = DistanceOf(candidate)
			seeds.push(o)
		case candidate < o.reachability.Value():
			seeds.remove(o)
			o.reachability = DistanceOf(candidate)
			seeds.push(o)
		}
	}
}
