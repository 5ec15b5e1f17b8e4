// Package trainer folds a segmented document's n-grams into a trie
// store's word/neighbor records.
package trainer

import (
	"github.com/cognicore/markov/pkg/markov/neighbor"
	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/trie"
	"github.com/cognicore/markov/pkg/markov/word"
)

// Token is the minimal shape the black-box tokenizer/tagger contract
// (spec.md §6) needs to expose: a surface text and a Pos already
// resolved by a pos.Adapter.
type Token struct {
	Text string
	Pos  pos.Pos
}

// Sentence is an ordered run of tokens that co-occurrence is computed
// within; Document is a sequence of sentences, matching the "document
// iterable by sentences, sentence iterable by tokens" tokenizer
// contract.
type Sentence []Token
type Document []Sentence

type ngram struct {
	a, b Token
	dist int
}

// ngramify enumerates every ordered pair (a, b) of tokens in the same
// sentence with 0 < |index(b)-index(a)| <= windowSize, recording the
// signed offset index(b)-index(a).
func ngramify(s Sentence, windowSize int) []ngram {
	var out []ngram
	for ai, a := range s {
		for bi, b := range s {
			dist := bi - ai
			if dist == 0 {
				continue
			}
			if dist < -windowSize || dist > windowSize {
				continue
			}
			out = append(out, ngram{a: a, b: b, dist: dist})
		}
	}
	return out
}

// Trainer folds a Document's co-occurrence statistics into a trie
// store.
type Trainer struct {
	store      trie.Accessor
	windowSize int
}

// New builds a trainer writing into store with the given window size K.
func New(store trie.Accessor, windowSize int) *Trainer {
	return &Trainer{store: store, windowSize: windowSize}
}

// Learn processes every sentence of doc, updating (or creating) the
// word and neighbor records the n-grams touch. Within a single Learn
// call, a word read from the store is cached by text so repeated
// mutations to the same word accumulate instead of clobbering each
// other through separate trie round-trips — this caching is an
// observable part of the semantics, not an optimization detail.
func (t *Trainer) Learn(doc Document) {
	rowCache := make(map[string]*word.Word)

	for _, sentence := range doc {
		for _, ng := range ngramify(sentence, t.windowSize) {
			w, ok := rowCache[ng.a.Text]
			if !ok {
				w = t.store.Select(ng.a.Text)
				if w == nil {
					w = word.New(ng.a.Text, ng.a.Pos)
				}
			}

			n := w.GetNeighbor(ng.b.Text)
			if n == nil {
				n = neighbor.New(ng.b.Text, int(ng.b.Pos), t.windowSize)
			}

			// AddDistance bumps Count and folds the one-hot offset into
			// Dist in a single step (count == sum(dist) holds exactly
			// after this call).
			if err := n.AddDistance(ng.dist, t.windowSize); err != nil {
				// ng.dist is bounded by ngramify to [-windowSize, windowSize],
				// so this can only happen if windowSize itself was
				// misconfigured; skip rather than corrupt the histogram.
				continue
			}

			w.SetNeighbor(n)

			if t.store.Update(w) == nil {
				t.store.Insert(w)
			}

			rowCache[ng.a.Text] = w
		}
	}
}
