package trie

import (
	"testing"

	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/word"
)

func TestSelectMissReturnsNil(t *testing.T) {
	s := New()
	if s.Select("dog") != nil {
		t.Error("expected nil on empty store")
	}
}

func TestInsertThenSelectIsCaseInsensitive(t *testing.T) {
	s := New()
	s.Insert(word.New("Dog", pos.Noun))

	got := s.Select("DOG")
	if got == nil {
		t.Fatal("expected case-insensitive lookup to hit")
	}
	if got.Text != "Dog" {
		t.Errorf("expected stored text 'Dog', got %q", got.Text)
	}
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	s := New()
	if s.Update(word.New("dog", pos.Noun)) != nil {
		t.Error("expected Update to return nil for an unknown word")
	}
	if s.Select("dog") != nil {
		t.Error("Update must not create an entry on a miss")
	}
}

func TestUpdateOverwritesExisting(t *testing.T) {
	s := New()
	s.Insert(word.New("dog", pos.Noun))

	w := word.New("dog", pos.Verb)
	if s.Update(w) == nil {
		t.Fatal("expected Update to succeed for an existing word")
	}

	got := s.Select("dog")
	if got.Pos != pos.Verb {
		t.Errorf("expected updated pos Verb, got %v", got.Pos)
	}
}

func TestSharedPrefixesDoNotCollide(t *testing.T) {
	s := New()
	s.Insert(word.New("cat", pos.Noun))
	s.Insert(word.New("car", pos.Noun))
	s.Insert(word.New("ca", pos.Noun))

	if s.Select("cat") == nil || s.Select("car") == nil || s.Select("ca") == nil {
		t.Fatal("expected all three prefix-sharing words to be retrievable")
	}
	if s.Select("c") != nil {
		t.Error("a non-terminating prefix must not resolve to a word")
	}
}
