package optics

import (
	"fmt"
	"sync"
)

// NeighborsParallel is Neighbors with the scan split across numWorkers
// goroutines. Each worker handles a contiguous range of the dataset and
// collects its matches locally; the ranges are concatenated in dataset
// order, so the result is identical to Neighbors — same members, same
// order. Falls back to the sequential scan if numWorkers <= 1.
//
// Only the read-only scan is parallel; all point mutation stays on the
// calling goroutine.
func NeighborsParallel(p *Point, eps float64, dataset []*Point, numWorkers int) ([]*Point, error) {
	if eps < 0 {
		return nil, fmt.Errorf("%w: eps must be >= 0, got %g", ErrInvalidArgument, eps)
	}
	return scanNeighborsParallel(p, eps, dataset, numWorkers), nil
}

// scanNeighborsParallel is the validated-input core of NeighborsParallel.
func scanNeighborsParallel(p *Point, eps float64, dataset []*Point, numWorkers int) []*Point {
	n := len(dataset)
	if numWorkers <= 1 || n <= 1 {
		return scanNeighbors(p, eps, dataset)
	}

	epsSq := eps * eps
	pointsPerWorker := (n + numWorkers - 1) / numWorkers

	// One result slot per worker; slots are disjoint, so no synchronization
	// is needed for the writes.
	partial := make([][]*Point, numWorkers)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		start := w * pointsPerWorker
		end := start + pointsPerWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(slot, start, end int) {
			defer wg.Done()
			var local []*Point
			for _, q := range dataset[start:end] {
				if SquaredDistance(p, q) <= epsSq {
					local = append(local, q)
				}
			}
			partial[slot] = local
		}(w, start, end)
	}

	wg.Wait()

	var result []*Point
	for _, local := range partial {
		result = append(result, local...)
	}
	return result
}
