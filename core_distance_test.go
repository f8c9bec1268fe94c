package optics

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoreDistance_3PointsLine(t *testing.T) {
	// x-axis at 0, 1, 3. Squared distances from point 0: 0, 1, 9.
	dataset := NewDataset([][]float64{{0, 0}, {1, 0}, {3, 0}})
	neighborhood, err := Neighbors(dataset[0], 10, dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// minPts=1: 3 neighbors > 1, core distance is the 1st (0-indexed)
	// closest squared distance = 1.
	cd, err := CoreDistance(dataset[0], 1, neighborhood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cd.IsDefined() || !almostEqual(cd.Value(), 1, floatTol) {
		t.Errorf("core distance = %v, expected 1", cd)
	}

	// minPts=2: position 2 is the farthest, squared distance 9.
	cd, err = CoreDistance(dataset[0], 2, neighborhood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cd.IsDefined() || !almostEqual(cd.Value(), 9, floatTol) {
		t.Errorf("core distance = %v, expected 9", cd)
	}
}

func TestCoreDistance_StrictThreshold(t *testing.T) {
	// The neighborhood size must be strictly greater than minPts; equality
	// means not a core point.
	dataset := NewDataset([][]float64{{0, 0}, {1, 0}, {3, 0}})
	neighborhood, err := Neighbors(dataset[0], 10, dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cd, err := CoreDistance(dataset[0], 3, neighborhood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cd.IsDefined() {
		t.Errorf("len(neighborhood) == minPts must give undefined, got %v", cd)
	}
}

func TestCoreDistance_IsolatedPoint(t *testing.T) {
	// An isolated point whose neighborhood is only itself, minPts >= 2.
	dataset := NewDataset([][]float64{{0, 0}, {100, 100}})
	neighborhood, err := Neighbors(dataset[0], 1, dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(neighborhood) != 1 {
		t.Fatalf("fixture broken: expected 1 neighbor, got %d", len(neighborhood))
	}

	cd, err := CoreDistance(dataset[0], 2, neighborhood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cd.IsDefined() {
		t.Errorf("isolated point must have undefined core distance, got %v", cd)
	}
}

func TestCoreDistance_ZeroMinPts(t *testing.T) {
	dataset := NewDataset([][]float64{{0, 0}})
	_, err := CoreDistance(dataset[0], 0, dataset)
	assert.ErrorIs(t, err, ErrInvalidArgument, "minPts=0 must be rejected")
}

func TestCoreDistance_MatchesFullSort(t *testing.T) {
	// Partial selection must return exactly what a full sort followed by
	// direct indexing would, for every neighborhood size / minPts combination
	// where the core distance is defined.
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(40)
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = []float64{rng.Float64() * 100, rng.Float64() * 100}
		}
		dataset := NewDataset(rows)
		p := dataset[rng.Intn(n)]

		for minPts := 1; minPts < n; minPts++ {
			cd, err := CoreDistance(p, minPts, dataset)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !cd.IsDefined() {
				t.Fatalf("trial %d minPts %d: expected defined core distance", trial, minPts)
			}

			sorted := make([]float64, n)
			for i, q := range dataset {
				sorted[i] = SquaredDistance(p, q)
			}
			sort.Float64s(sorted)

			if cd.Value() != sorted[minPts] {
				t.Errorf("trial %d minPts %d: quickselect %v != sorted[%d] %v",
					trial, minPts, cd.Value(), minPts, sorted[minPts])
			}
		}
	}
}

func TestCoreDistance_DuplicateDistances(t *testing.T) {
	// Four points equidistant from the center plus the center itself.
	dataset := NewDataset([][]float64{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}})
	cd, err := CoreDistance(dataset[0], 3, dataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cd.IsDefined() || cd.Value() != 1 {
		t.Errorf("core distance = %v, expected 1", cd)
	}
}

func TestNthElement_AllEqual(t *testing.T) {
	a := []float64{3, 3, 3, 3, 3}
	for k := 0; k < len(a); k++ {
		b := make([]float64, len(a))
		copy(b, a)
		if v := nthElement(b, k); v != 3 {
			t.Errorf("nthElement(k=%d) = %v, expected 3", k, v)
		}
	}
}

func TestNthElement_Reversed(t *testing.T) {
	a := []float64{9, 7, 5, 3, 1}
	want := []float64{1, 3, 5, 7, 9}
	for k := range want {
		b := make([]float64, len(a))
		copy(b, a)
		if v := nthElement(b, k); v != want[k] {
			t.Errorf("nthElement(k=%d) = %v, expected %v", k, v, want[k])
		}
	}
}
