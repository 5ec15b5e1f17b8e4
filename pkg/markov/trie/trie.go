// Package trie implements the case-insensitive character trie that
// indexes the engine's vocabulary, plus its compressed snapshot
// format.
package trie

import (
	"strings"

	"github.com/cognicore/markov/pkg/markov/neighbor"
	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/word"
)

// node is one character's position in the trie. children is keyed by
// lowercased rune; payload is present only at nodes that terminate a
// stored word.
type node struct {
	children map[rune]*node
	payload  *payload
}

type payload struct {
	text string
	pos  pos.Pos
	// neighbors holds the neighbor records themselves, so Save encodes
	// them without round-tripping through word.Word.
	neighbors map[string]*neighbor.Neighbor
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Accessor is the read/write surface the trainer and generator need.
// *Store satisfies it directly; cache.Store wraps a *Store behind an
// LRU and satisfies the same shape so either can be handed to
// trainer.New/generator.New interchangeably.
type Accessor interface {
	Select(text string) *word.Word
	Insert(w *word.Word) *word.Word
	Update(w *word.Word) *word.Word
}

// Store is the trie-backed vocabulary index. It is not safe for
// concurrent writers; concurrent readers are safe while no writer is
// active (see cache.Store and the memstore-style sync.RWMutex wrapper
// callers may add around it, per spec.md §5).
type Store struct {
	root *node
}

// New creates an empty store.
func New() *Store {
	return &Store{root: newNode()}
}

func lowerPath(text string) []rune {
	return []rune(strings.ToLower(text))
}

func (s *Store) getNode(text string) *node {
	if text == "" {
		return nil
	}
	n := s.root
	for _, c := range lowerPath(text) {
		child, ok := n.children[c]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Select looks up a word by text (case-insensitively). A miss returns
// nil, never an error.
func (s *Store) Select(text string) *word.Word {
	n := s.getNode(text)
	if n == nil || n.payload == nil {
		return nil
	}
	return word.FromStored(n.payload.text, n.payload.pos, n.payload.neighbors)
}

// Insert creates any missing character nodes along text's path and
// writes w's payload there, overwriting whatever was present.
func (s *Store) Insert(w *word.Word) *word.Word {
	if w.Text == "" {
		return nil
	}
	n := s.root
	for _, c := range lowerPath(w.Text) {
		child, ok := n.children[c]
		if !ok {
			child = newNode()
			n.children[c] = child
		}
		n = child
	}
	n.payload = &payload{text: w.Text, pos: w.Pos, neighbors: w.Neighbors()}
	return word.FromStored(n.payload.text, n.payload.pos, n.payload.neighbors)
}

// Update writes w's payload only if one already exists at that path. A
// miss returns nil and creates nothing.
func (s *Store) Update(w *word.Word) *word.Word {
	n := s.getNode(w.Text)
	if n == nil || n.payload == nil {
		return nil
	}
	n.payload = &payload{text: w.Text, pos: w.Pos, neighbors: w.Neighbors()}
	return word.FromStored(n.payload.text, n.payload.pos, n.payload.neighbors)
}
