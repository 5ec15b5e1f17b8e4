package cache

import (
	"testing"

	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/trie"
	"github.com/cognicore/markov/pkg/markov/word"
)

func TestSelectFallsThroughToTrieOnMiss(t *testing.T) {
	underlying := trie.New()
	underlying.Insert(word.New("dog", pos.Noun))

	c, err := New(underlying, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := c.Select("dog")
	if got == nil {
		t.Fatal("expected cache miss to fall through to the trie")
	}
}

func TestInsertInvalidatesCacheEntry(t *testing.T) {
	underlying := trie.New()
	c, err := New(underlying, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.Insert(word.New("dog", pos.Noun))
	if c.Select("dog") == nil {
		t.Fatal("expected dog to be selectable after Insert")
	}

	c.Insert(word.New("dog", pos.Verb))
	got := c.Select("dog")
	if got.Pos != pos.Verb {
		t.Errorf("expected re-selected dog to reflect the latest insert, got pos %v", got.Pos)
	}
}

func TestUpdateMissLeavesCacheUntouched(t *testing.T) {
	underlying := trie.New()
	c, err := New(underlying, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if c.Update(word.New("ghost", pos.Noun)) != nil {
		t.Error("expected Update to return nil for a word never inserted")
	}
	if c.Select("ghost") != nil {
		t.Error("Update on a miss must not create an entry")
	}
}

func TestPurgeClearsCache(t *testing.T) {
	underlying := trie.New()
	underlying.Insert(word.New("dog", pos.Noun))
	c, err := New(underlying, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.Select("dog")
	c.Purge()

	// Replace the backing trie wholesale (simulating engine.Load) and
	// confirm Purge forced a fresh read rather than serving stale data.
	fresh := trie.New()
	fresh.Insert(word.New("dog", pos.Verb))
	c.trie = fresh

	got := c.Select("dog")
	if got.Pos != pos.Verb {
		t.Errorf("expected Purge to drop the stale cached entry, got pos %v", got.Pos)
	}
}
