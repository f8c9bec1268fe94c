package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TrevorS/optics"
)

var rootCmd = &cobra.Command{
	Use:   "optics",
	Short: "Compute OPTICS cluster orderings over CSV point data",
	Long: `optics reads multi-dimensional points from a CSV file (one point per row,
one coordinate per column), computes the OPTICS cluster ordering, and writes
the ordered points with their reachability distances. Cluster borders found
by an external peak detector (or read off a reachability plot) can then be
applied with the extract subcommand.

All distances are squared Euclidean distances: eps is given as a plain
radius, but reachability values and the outlier threshold are in squared
space.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readPoints loads one point per CSV row from path ("-" for stdin). Each
// point is labeled with its input row index.
func readPoints(path string) ([]*optics.Point, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1 // dimensionality checked by the library

	var points []*optics.Point
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		coords := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", row+1, i+1, err)
			}
			coords[i] = v
		}
		points = append(points, optics.NewLabeledPoint(row, coords...))
		row++
	}
	return points, nil
}

// openOutput returns the writer for path ("-" for stdout) and a close func.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// writePointRow appends one CSV row: the leading fields, then the point's
// reachability and coordinates.
func writePointRow(w *csv.Writer, p *optics.Point, leading ...string) error {
	record := append([]string(nil), leading...)
	record = append(record, p.Reachability().String())
	for i := 0; i < p.Dims(); i++ {
		record = append(record, strconv.FormatFloat(p.Coord(i), 'g', -1, 64))
	}
	return w.Write(record)
}
