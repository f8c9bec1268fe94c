package main

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TrevorS/optics"
)

var (
	orderEps     float64
	orderMinPts  int
	orderWorkers int
	orderOutput  string
)

var orderCmd = &cobra.Command{
	Use:   "order [input.csv]",
	Short: "Compute the cluster ordering and reachability distances",
	Long: `Reads points from the input CSV ("-" for stdin) and writes one row per
ordered point: the input row index, the squared reachability distance
("undefined" for points no core point reached), and the coordinates.
The reachability column, read top to bottom, is the series to feed a
valley/peak detector to find cluster borders.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := readPoints(args[0])
		if err != nil {
			return err
		}

		result, err := optics.Run(points, optics.Config{
			Eps:     orderEps,
			MinPts:  orderMinPts,
			Workers: orderWorkers,
		})
		if err != nil {
			return err
		}

		out, closeOut, err := openOutput(orderOutput)
		if err != nil {
			return err
		}
		defer closeOut()

		w := csv.NewWriter(out)
		for _, p := range result.Ordering {
			if err := writePointRow(w, p, fmt.Sprint(p.Label)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	},
}

func init() {
	orderCmd.Flags().Float64Var(&orderEps, "eps", 0, "neighborhood radius (required)")
	orderCmd.Flags().IntVar(&orderMinPts, "min-pts", 5, "density threshold: a core point needs more than this many neighbors")
	orderCmd.Flags().IntVar(&orderWorkers, "workers", 0, "goroutines for the neighbor scan (0 = sequential)")
	orderCmd.Flags().StringVarP(&orderOutput, "output", "o", "-", "output file (\"-\" for stdout)")
	_ = orderCmd.MarkFlagRequired("eps")
	rootCmd.AddCommand(orderCmd)
}
