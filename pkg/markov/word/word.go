// Package word implements a vocabulary entry — text, part of speech,
// and its neighbor co-occurrence map — together with the projection
// operation that turns it into a distribution over candidate fillers
// for another slot.
package word

import (
	"sort"

	"github.com/cognicore/markov/pkg/markov/neighbor"
	"github.com/cognicore/markov/pkg/markov/pos"
)

// Word is a vocabulary entry: its text, its part of speech, and a map
// from neighbor text to neighbor record.
type Word struct {
	Text      string
	Pos       pos.Pos
	neighbors map[string]*neighbor.Neighbor
}

// New creates an empty word ready to receive neighbors.
func New(text string, p pos.Pos) *Word {
	return &Word{Text: text, Pos: p, neighbors: make(map[string]*neighbor.Neighbor)}
}

// FromStored reconstructs a Word from its trie payload plus a
// previously-decoded neighbor map.
func FromStored(text string, p pos.Pos, neighbors map[string]*neighbor.Neighbor) *Word {
	if neighbors == nil {
		neighbors = make(map[string]*neighbor.Neighbor)
	}
	return &Word{Text: text, Pos: p, neighbors: neighbors}
}

// Neighbors exposes the backing map for serialization; callers must not
// mutate it directly except through SetNeighbor.
func (w *Word) Neighbors() map[string]*neighbor.Neighbor {
	return w.neighbors
}

// GetNeighbor looks up a neighbor by text; a miss returns nil, never an
// error.
func (w *Word) GetNeighbor(text string) *neighbor.Neighbor {
	return w.neighbors[text]
}

// SetNeighbor inserts or overwrites the neighbor keyed by its own text.
func (w *Word) SetNeighbor(n *neighbor.Neighbor) {
	if w.neighbors == nil {
		w.neighbors = make(map[string]*neighbor.Neighbor)
	}
	w.neighbors[n.Text] = n
}

// SelectNeighbors filters this word's neighbors down to the requested
// POS, sorted by neighbor text so the order is deterministic; the
// trainer's insertion order is not kept.
func (w *Word) SelectNeighbors(target pos.Pos) []*neighbor.Neighbor {
	var out []*neighbor.Neighbor
	for _, n := range w.neighbors {
		if pos.Pos(n.Pos) == target {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Text < out[b].Text })
	return out
}

// Projection is the result of projecting this word's neighbors of a
// given POS onto a sentence of length L: a magnitude per neighbor and a
// dense per-slot distance distribution, plus the neighbor identities
// needed to resolve a sampled index back to a word.
type Projection struct {
	Magnitudes []float64   // len == len(Keys)
	Distances  [][]float64 // len(Distances) == len(Keys), len(Distances[i]) == L
	Keys       []string
	Pos        []pos.Pos
}

// Len reports the number of candidate neighbors in the projection. A
// zero-length projection is not an error — it just means this word has
// no neighbors of the requested POS.
func (p *Projection) Len() int { return len(p.Keys) }

// Project is the central operation: given this word's slot index i in a
// sentence of length L, and the POS to generate, it builds a magnitude
// vector and a dense distance matrix over every neighbor of that POS.
//
//  1. N = SelectNeighbors(targetPos)
//  2. For each neighbor n and each histogram index j, s := (j-K)+i; if
//     0 <= s < L, set D[n][s] = n.Dist[j].
//  3. M[n] = weightCount*n.Values.Count + weightRating*n.Values.Rating.
func (w *Word) Project(i, l int, targetPos pos.Pos, windowSize int, weightCount, weightRating float64) Projection {
	neighbors := w.SelectNeighbors(targetPos)

	keys := make([]string, len(neighbors))
	poses := make([]pos.Pos, len(neighbors))
	magnitudes := make([]float64, len(neighbors))
	distances := make([][]float64, len(neighbors))

	for idx, n := range neighbors {
		keys[idx] = n.Text
		poses[idx] = pos.Pos(n.Pos)

		row := make([]float64, l)
		for j, distValue := range n.Dist {
			s := (j - windowSize) + i
			if s < 0 || s >= l {
				continue
			}
			row[s] = float64(distValue)
		}
		distances[idx] = row

		magnitudes[idx] = n.Magnitude(weightCount, weightRating)
	}

	return Projection{Magnitudes: magnitudes, Distances: distances, Keys: keys, Pos: poses}
}
