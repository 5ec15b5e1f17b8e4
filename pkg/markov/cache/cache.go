// Package cache wraps a trie.Store's Select with a bounded LRU cache,
// the role golang-lru/v2 plays for hot, repeated lookups — the
// generator re-selects the same high-frequency words across every
// sweep of every sentence.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/markov/pkg/markov/trie"
	"github.com/cognicore/markov/pkg/markov/word"
)

// Store fronts a *trie.Store with a fixed-size LRU cache, keyed by
// lowercased word text (matching the trie's own case-folding).
//
// golang-lru/v2's Cache is not safe for unsynchronized concurrent use
// on its own; Store adds the mutex spec.md §5 expects a wrapper to
// provide, mirroring the sync.RWMutex korel's memstore uses around its
// own maps.
type Store struct {
	mu    sync.Mutex
	trie  *trie.Store
	cache *lru.Cache[string, *word.Word]
}

// New wraps trieStore with an LRU cache holding up to size entries.
func New(trieStore *trie.Store, size int) (*Store, error) {
	if size <= 0 {
		size = 1024
	}
	c, err := lru.New[string, *word.Word](size)
	if err != nil {
		return nil, err
	}
	return &Store{trie: trieStore, cache: c}, nil
}

func key(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Select returns the cached word if present, otherwise falls through to
// the backing trie and populates the cache.
func (s *Store) Select(text string) *word.Word {
	k := key(text)

	s.mu.Lock()
	if w, ok := s.cache.Get(k); ok {
		s.mu.Unlock()
		return w
	}
	s.mu.Unlock()

	w := s.trie.Select(text)
	if w == nil {
		return nil
	}

	s.mu.Lock()
	s.cache.Add(k, w)
	s.mu.Unlock()
	return w
}

// Insert writes through to the trie and invalidates the cache entry.
func (s *Store) Insert(w *word.Word) *word.Word {
	inserted := s.trie.Insert(w)
	s.invalidate(w.Text)
	return inserted
}

// Update writes through to the trie and invalidates the cache entry so
// the next Select re-reads the fresh payload.
func (s *Store) Update(w *word.Word) *word.Word {
	updated := s.trie.Update(w)
	s.invalidate(w.Text)
	return updated
}

func (s *Store) invalidate(text string) {
	s.mu.Lock()
	s.cache.Remove(key(text))
	s.mu.Unlock()
}

// Trie exposes the backing store, e.g. for Load/Save, which bypass the
// cache entirely (a full reload invalidates everything anyway).
func (s *Store) Trie() *trie.Store { return s.trie }

// Purge drops every cached entry, used after a Load replaces the
// backing trie wholesale.
func (s *Store) Purge() {
	s.mu.Lock()
	s.cache.Purge()
	s.mu.Unlock()
}
