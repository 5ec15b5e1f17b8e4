package word

import "github.com/cognicore/markov/pkg/markov/pos"

// ProjectionCollection concatenates several anchor words' projections
// into one candidate pool: magnitudes and distance rows are stacked,
// keys and pos are extended.
type ProjectionCollection struct {
	Magnitudes []float64
	Distances  [][]float64
	Keys       []string
	Pos        []pos.Pos
}

// NewProjectionCollection concatenates the given projections in order.
// An empty input yields an empty, zero-length collection — not an error.
func NewProjectionCollection(projections []Projection) *ProjectionCollection {
	c := &ProjectionCollection{}
	for _, p := range projections {
		c.Keys = append(c.Keys, p.Keys...)
		c.Pos = append(c.Pos, p.Pos...)
		c.Magnitudes = append(c.Magnitudes, p.Magnitudes...)
		c.Distances = append(c.Distances, p.Distances...)
	}
	return c
}

// Len reports the number of candidate neighbors across every
// concatenated projection.
func (c *ProjectionCollection) Len() int { return len(c.Keys) }

// ProbabilityMatrix computes P = (D ⊙ M) / colsum(D ⊙ M), where M
// broadcasts across every column of each row. Columns whose sum is zero
// produce NaN; callers must only consult columns they know are
// non-zero (the blank-slot column of interest during generation).
func (c *ProjectionCollection) ProbabilityMatrix() [][]float64 {
	rows := len(c.Keys)
	if rows == 0 {
		return nil
	}
	cols := len(c.Distances[0])

	weighted := make([][]float64, rows)
	colSums := make([]float64, cols)
	for r := 0; r < rows; r++ {
		weighted[r] = make([]float64, cols)
		for col := 0; col < cols; col++ {
			v := c.Distances[r][col] * c.Magnitudes[r]
			weighted[r][col] = v
			colSums[col] += v
		}
	}

	p := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		p[r] = make([]float64, cols)
		for col := 0; col < cols; col++ {
			p[r][col] = weighted[r][col] / colSums[col] // NaN when colSums[col] == 0, by design
		}
	}
	return p
}

// Column extracts one column of the probability matrix — the
// distribution a generator sweep needs for the blank slot it is
// filling.
func Column(p [][]float64, col int) []float64 {
	out := make([]float64, len(p))
	for r, row := range p {
		out[r] = row[col]
	}
	return out
}
