package main

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TrevorS/optics"
)

var (
	extractEps       float64
	extractMinPts    int
	extractWorkers   int
	extractBorders   []int
	extractThreshold float64
	extractOutput    string
)

var extractCmd = &cobra.Command{
	Use:   "extract [input.csv]",
	Short: "Compute the ordering and cut it into clusters at given borders",
	Long: `Runs the ordering like the order subcommand, then partitions it at the
given border indices. Writes one row per point: the cluster number, the
input row index, the squared reachability distance, and the coordinates.
Cluster 0 is the outlier bucket; with --threshold > 0, points whose squared
reachability exceeds the threshold (including unreached points) are
redirected into it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := readPoints(args[0])
		if err != nil {
			return err
		}

		result, err := optics.Run(points, optics.Config{
			Eps:     extractEps,
			MinPts:  extractMinPts,
			Workers: extractWorkers,
		})
		if err != nil {
			return err
		}

		groups, err := optics.ExtractClusters(result.Ordering, extractBorders, extractThreshold)
		if err != nil {
			return err
		}

		out, closeOut, err := openOutput(extractOutput)
		if err != nil {
			return err
		}
		defer closeOut()

		w := csv.NewWriter(out)
		for cluster, group := range groups {
			for _, p := range group {
				if err := writePointRow(w, p, fmt.Sprint(cluster), fmt.Sprint(p.Label)); err != nil {
					return err
				}
			}
		}
		w.Flush()
		return w.Error()
	},
}

func init() {
	extractCmd.Flags().Float64Var(&extractEps, "eps", 0, "neighborhood radius (required)")
	extractCmd.Flags().IntVar(&extractMinPts, "min-pts", 5, "density threshold: a core point needs more than this many neighbors")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "goroutines for the neighbor scan (0 = sequential)")
	extractCmd.Flags().IntSliceVar(&extractBorders, "borders", nil, "ascending border indexes into the ordering")
	extractCmd.Flags().Float64Var(&extractThreshold, "threshold", 0, "squared reachability outlier threshold (<= 0 disables)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "-", "output file (\"-\" for stdout)")
	_ = extractCmd.MarkFlagRequired("eps")
	rootCmd.AddCommand(extractCmd)
}
