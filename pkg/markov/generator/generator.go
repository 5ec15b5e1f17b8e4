// Package generator iteratively fills a part-of-speech skeleton by
// projecting the neighbors of already-filled slots and weighted
// sampling, anchored on a set of subject words.
package generator

import (
	"github.com/cognicore/markov/pkg/markov/internalerr"
	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/trie"
	"github.com/cognicore/markov/pkg/markov/word"
)

// Rand is the seedable randomness dependency the generator samples
// from. math/rand/v2's *rand.Rand satisfies it; tests inject a fixed
// seed to make §8 scenarios reproducible.
type Rand interface {
	Float64() float64
}

// Config carries the knobs the generator and the projections it
// triggers need.
type Config struct {
	WindowSize         int
	WeightCount        float64
	WeightRating       float64
	SubjectPOSPriority []pos.Pos
}

// Generator fills a skeleton of Pos tags (with EOS separators) anchored
// by a list of subject words, sampling from the given store.
type Generator struct {
	store trie.Accessor
	cfg   Config
	rng   Rand
}

// New builds a generator reading from store, configured by cfg, and
// sampling from rng.
func New(store trie.Accessor, cfg Config, rng Rand) *Generator {
	return &Generator{store: store, cfg: cfg, rng: rng}
}

type sentence struct {
	structure []pos.Pos
	slots     []*word.Word
}

// Generate fills skeleton, anchored by subjects, and returns one
// sequence of words per sentence (EOS sentinels stripped). It returns
// ErrNoAnchor when some sentence receives no subject, or ErrStuck when
// a full pass over every sentence makes no progress; no partial
// sentence is ever returned in either case.
func (g *Generator) Generate(skeleton []pos.Pos, subjects []*word.Word) ([][]*word.Word, error) {
	sentences := splitSentences(skeleton)
	sorted := sortSubjects(subjects, g.cfg.SubjectPOSPriority)

	if err := assignSubjects(sentences, sorted); err != nil {
		return nil, err
	}

	if err := g.fill(sentences); err != nil {
		return nil, err
	}

	out := make([][]*word.Word, len(sentences))
	for i, s := range sentences {
		out[i] = s.slots
	}
	return out, nil
}

// splitSentences walks skeleton, cutting at each EOS; empty segments
// (consecutive or trailing EOS) are discarded.
func splitSentences(skeleton []pos.Pos) []*sentence {
	var out []*sentence
	start := 0
	for i, p := range skeleton {
		if p != pos.EOS {
			continue
		}
		seg := skeleton[start:i]
		start = i + 1
		if len(seg) == 0 {
			continue
		}
		out = append(out, &sentence{structure: append([]pos.Pos{}, seg...), slots: make([]*word.Word, len(seg))})
	}
	return out
}

// sortSubjects orders subjects by the configured priority list,
// earlier priorities first, stable within a priority. Subjects whose
// POS is absent from the priority list are dropped entirely — this is
// the resolved behavior for spec.md §9 open question 1.
func sortSubjects(subjects []*word.Word, priority []pos.Pos) []*word.Word {
	var out []*word.Word
	for _, p := range priority {
		for _, s := range subjects {
			if s.Pos == p {
				out = append(out, s)
			}
		}
	}
	return out
}

// assignSubjects scans each sentence left to right, placing the first
// subject (in priority order) whose POS matches a slot's POS. Subjects
// are not marked consumed once placed, so the same subject can fill a
// slot in more than one sentence (spec.md §9 open question 3 — kept,
// flagged, not fixed). A sentence that receives no subject at all fails
// the whole generation with ErrNoAnchor (open question 2's resolution).
func assignSubjects(sentences []*sentence, subjects []*word.Word) error {
	for _, s := range sentences {
		assigned := false
		for slotIdx, p := range s.structure {
			for _, subj := range subjects {
				if subj.Pos == p {
					s.slots[slotIdx] = subj
					assigned = true
					break
				}
			}
		}
		if !assigned {
			return internalerr.ErrNoAnchor
		}
	}
	return nil
}

func workRemaining(sentences []*sentence) int {
	left := 0
	for _, s := range sentences {
		for _, w := range s.slots {
			if w == nil {
				left++
			}
		}
	}
	return left
}

// fill runs the iterative right-to-left / left-to-right sweep pair over
// every sentence until no blanks remain or a full pass makes no
// progress.
func (g *Generator) fill(sentences []*sentence) error {
	oldWorkLeft := workRemaining(sentences)

	for {
		for _, s := range sentences {
			g.sweep(s, false)
			g.sweep(s, true)
		}

		newWorkLeft := workRemaining(sentences)
		switch {
		case newWorkLeft == 0:
			return nil
		case newWorkLeft == oldWorkLeft:
			return internalerr.ErrStuck
		default:
			oldWorkLeft = newWorkLeft
		}
	}
}

// sweep performs one directional scan of a sentence: every blank slot
// it passes becomes blankIdx, and the walk stops at the first filled
// slot within the configured window of the latest blank, which becomes
// the anchor; then it hands off to handleProjections. The forward walk
// goes left to right, so the anchor lies to the right of the blank;
// reversed walks right to left, so the anchor lies to its left.
func (g *Generator) sweep(s *sentence, reversed bool) {
	l := len(s.slots)

	blankIdx := -1
	var projectIdx []int

	iterate := func(idx int) bool {
		if s.slots[idx] == nil {
			blankIdx = idx
			return true
		}
		if blankIdx >= 0 && abs(blankIdx-idx) <= g.cfg.WindowSize {
			projectIdx = append(projectIdx, idx)
			return false
		}
		return true
	}

	if !reversed {
		for idx := 0; idx < l; idx++ {
			if !iterate(idx) {
				break
			}
		}
	} else {
		for idx := l - 1; idx >= 0; idx-- {
			if !iterate(idx) {
				break
			}
		}
	}

	g.handleProjections(s, blankIdx, projectIdx)
}

// handleProjections projects every anchor in projectIdx toward
// blankIdx's POS, concatenates the results, samples a neighbor
// proportional to the blank column of the probability matrix, and
// resolves the sampled text back through the store. A failed store
// lookup, or an empty projection collection, leaves the slot blank —
// the next sweep gets another chance.
func (g *Generator) handleProjections(s *sentence, blankIdx int, projectIdx []int) {
	if blankIdx < 0 || len(projectIdx) == 0 {
		return
	}

	blankPos := s.structure[blankIdx]
	l := len(s.slots)

	var projections []word.Projection
	for _, anchorIdx := range projectIdx {
		anchor := s.slots[anchorIdx]
		projections = append(projections, anchor.Project(anchorIdx, l, blankPos, g.cfg.WindowSize, g.cfg.WeightCount, g.cfg.WeightRating))
	}

	collection := word.NewProjectionCollection(projections)
	if collection.Len() == 0 {
		return // ErrEmptyProjection: this sweep no-ops, never propagated
	}

	probabilities := collection.ProbabilityMatrix()
	column := word.Column(probabilities, blankIdx)

	idx, ok := sampleIndex(column, g.rng)
	if !ok {
		return
	}

	selected := g.store.Select(collection.Keys[idx])
	if selected == nil {
		return // lookup failed; leave the slot blank
	}
	s.slots[blankIdx] = selected
}

// sampleIndex draws one index proportional to p, skipping any NaN
// entries (a zero-sum column produces NaN by design — see
// word.ProjectionCollection.ProbabilityMatrix). Returns ok=false when
// every weight is zero or NaN.
func sampleIndex(p []float64, rng Rand) (int, bool) {
	var total float64
	for _, v := range p {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return 0, false
	}

	r := rng.Float64() * total
	var cum float64
	for i, v := range p {
		if !(v > 0) {
			continue
		}
		cum += v
		if r < cum {
			return i, true
		}
	}
	return len(p) - 1, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
