package optics

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

const floatTol = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// blobRows draws perBlob points from an isotropic Gaussian around each
// center. Deterministic for a given seed.
func blobRows(seed uint64, centers [][]float64, perBlob int, sigma float64) [][]float64 {
	norm := distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed),
	}

	var rows [][]float64
	for _, c := range centers {
		for i := 0; i < perBlob; i++ {
			row := make([]float64, len(c))
			for j := range row {
				row[j] = c[j] + norm.Rand()
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// twoBlobRows is the workhorse fixture: two well-separated 2D Gaussian
// blobs of 30 points each.
func twoBlobRows(seed uint64) [][]float64 {
	return blobRows(seed, [][]float64{{0, 0}, {50, 50}}, 30, 1.0)
}

// orderingIndexes maps an ordering back to dataset positions via the
// point labels set by labeledDataset.
func orderingIndexes(t *testing.T, ordering []*Point) []int {
	t.Helper()
	out := make([]int, len(ordering))
	for i, p := range ordering {
		idx, ok := p.Label.(int)
		if !ok {
			t.Fatalf("ordering[%d] has no int label", i)
		}
		out[i] = idx
	}
	return out
}

// labeledDataset builds points from rows with Label set to the row index.
func labeledDataset(rows [][]float64) []*Point {
	points := make([]*Point, len(rows))
	for i, row := range rows {
		points[i] = NewLabeledPoint(i, row...)
	}
	return points
}
