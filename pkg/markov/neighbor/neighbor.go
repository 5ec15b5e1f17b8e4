// Package neighbor implements one word's view of a single co-occurring
// word: counts, an externally adjustable rating, and a distance
// histogram over the training window.
package neighbor

import "github.com/cognicore/markov/pkg/markov/internalerr"

// Values holds the count/rating pair backing a neighbor's magnitude.
type Values struct {
	Count  int64
	Rating float64
}

// Neighbor is one word's observed relationship to a candidate neighbor
// text: its POS, its count/rating values, and its distance histogram.
//
// Invariants: len(Dist) == 2*K+1; Dist[K] == 0; every entry is
// non-negative; Count == sum(Dist) immediately after training.
type Neighbor struct {
	Text   string
	Pos    int // pos.Pos code, kept as the plain int the snapshot stores
	Values Values
	Dist   []int64
}

// New builds a fresh, zeroed neighbor record for a word observed for
// the first time, sized for the given window K.
func New(text string, posCode int, windowSize int) *Neighbor {
	return &Neighbor{
		Text:   text,
		Pos:    posCode,
		Values: Values{},
		Dist:   make([]int64, 2*windowSize+1),
	}
}

// FromStored reconstructs a Neighbor from its on-disk representation:
// (pos_code, values, dist).
func FromStored(text string, posCode int, count int64, rating float64, dist []int64) *Neighbor {
	d := make([]int64, len(dist))
	copy(d, dist)
	return &Neighbor{
		Text:   text,
		Pos:    posCode,
		Values: Values{Count: count, Rating: rating},
		Dist:   d,
	}
}

// ToStored serializes the neighbor to the (text, [pos_code, values, dist])
// pair the trie snapshot schema expects.
func (n *Neighbor) ToStored() (string, int, Values, []int64) {
	return n.Text, n.Pos, n.Values, n.Dist
}

// DistanceOneHot returns a length 2*windowSize+1 vector with a single 1
// at index signedOffset+windowSize. It fails with ErrOutOfWindow when
// |signedOffset| > windowSize.
func DistanceOneHot(signedOffset, windowSize int) ([]int64, error) {
	if signedOffset < -windowSize || signedOffset > windowSize {
		return nil, internalerr.ErrOutOfWindow
	}
	v := make([]int64, 2*windowSize+1)
	v[signedOffset+windowSize] = 1
	return v, nil
}

// AddDistance folds a training observation at the given signed offset
// into the histogram in place, incrementing Count by one.
func (n *Neighbor) AddDistance(signedOffset, windowSize int) error {
	oneHot, err := DistanceOneHot(signedOffset, windowSize)
	if err != nil {
		return err
	}
	if len(n.Dist) != len(oneHot) {
		// Window size changed since this neighbor was created; resize
		// conservatively by zero-extending/truncating around the center.
		n.Dist = resize(n.Dist, len(oneHot))
	}
	for i, v := range oneHot {
		n.Dist[i] += v
	}
	n.Values.Count++
	return nil
}

func resize(dist []int64, n int) []int64 {
	out := make([]int64, n)
	oldK, newK := (len(dist)-1)/2, (n-1)/2
	for j, v := range dist {
		if k := j - oldK + newK; k >= 0 && k < n {
			out[k] = v
		}
	}
	return out
}

// Magnitude computes w_count*Count + w_rating*Rating, the scalar weight
// the projection step uses for this neighbor.
func (n *Neighbor) Magnitude(weightCount, weightRating float64) float64 {
	return weightCount*float64(n.Values.Count) + weightRating*n.Values.Rating
}
