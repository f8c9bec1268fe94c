// Package optics implements OPTICS (Ordering Points To Identify the
// Clustering Structure), the density-based cluster-ordering algorithm of
// Ankerst, Breunig, Kriegel & Sander.
//
// OPTICS does not produce a flat clustering directly. It produces an
// ordering of the points annotated with reachability distances: walking the
// ordering, runs of low reachability are dense clusters and spikes mark the
// jumps between them. Clusters of arbitrary shape and varying density can
// then be cut out of the ordering, either by hand or by running a peak
// detector over the reachability series.
//
// Basic usage:
//
//	points := optics.NewDataset(rows)
//	cfg := optics.DefaultConfig()
//	cfg.Eps = 2.0
//	cfg.MinPts = 10
//	result, err := optics.Run(points, cfg)
//	// result.Ordering is the cluster ordering
//	// result.Reachabilities() is the series to find valleys in
//
// Once border indices are known (from a peak detector, or picked off a
// reachability plot), cut the ordering into clusters:
//
//	groups, err := optics.ExtractClusters(result.Ordering, borders, threshold)
//	// groups[0] holds the outliers, groups[1:] the clusters
//
// All distances in this package are squared Euclidean distances: every
// consumer only compares or thresholds them, so square roots are skipped
// throughout. Core distances, reachability values and the outlier
// threshold are all in squared space.
//
// # Concurrency
//
// A run is single-threaded over shared mutable point state. Running two
// orderings over overlapping point sets concurrently is unsafe. The
// neighbor scan, a read-only stage, may be parallelized internally via
// Config.Workers without changing any output.
package optics
