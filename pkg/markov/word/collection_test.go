package word

import (
	"math"
	"testing"

	"github.com/cognicore/markov/pkg/markov/pos"
)

func TestNewProjectionCollectionConcatenates(t *testing.T) {
	p1 := Projection{
		Magnitudes: []float64{1},
		Distances:  [][]float64{{1, 0}},
		Keys:       []string{"a"},
		Pos:        []pos.Pos{pos.Noun},
	}
	p2 := Projection{
		Magnitudes: []float64{2},
		Distances:  [][]float64{{0, 1}},
		Keys:       []string{"b"},
		Pos:        []pos.Pos{pos.Noun},
	}

	c := NewProjectionCollection([]Projection{p1, p2})
	if c.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", c.Len())
	}
	if c.Keys[0] != "a" || c.Keys[1] != "b" {
		t.Fatalf("unexpected key order: %v", c.Keys)
	}
}

func TestProbabilityMatrixNormalizesColumns(t *testing.T) {
	c := NewProjectionCollection([]Projection{
		{Magnitudes: []float64{1}, Distances: [][]float64{{1, 0}}, Keys: []string{"a"}, Pos: []pos.Pos{pos.Noun}},
		{Magnitudes: []float64{3}, Distances: [][]float64{{1, 0}}, Keys: []string{"b"}, Pos: []pos.Pos{pos.Noun}},
	})

	m := c.ProbabilityMatrix()
	// column 0: weighted values 1 and 3, total 4 -> 0.25 and 0.75
	if math.Abs(m[0][0]-0.25) > 1e-9 {
		t.Errorf("m[0][0] = %v, want 0.25", m[0][0])
	}
	if math.Abs(m[1][0]-0.75) > 1e-9 {
		t.Errorf("m[1][0] = %v, want 0.75", m[1][0])
	}

	// column 1 has zero weighted sum: NaN by design.
	if !math.IsNaN(m[0][1]) {
		t.Errorf("expected NaN for zero-sum column, got %v", m[0][1])
	}
}

func TestColumnExtraction(t *testing.T) {
	m := [][]float64{{1, 2}, {3, 4}}
	got := Column(m, 1)
	want := []float64{2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Column(1) = %v, want %v", got, want)
		}
	}
}

func TestEmptyCollectionHasZeroLen(t *testing.T) {
	c := NewProjectionCollection(nil)
	if c.Len() != 0 {
		t.Errorf("expected empty collection, got len %d", c.Len())
	}
	if c.ProbabilityMatrix() != nil {
		t.Error("expected nil matrix for empty collection")
	}
}
