package trie

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/markov/pkg/markov/neighbor"
	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/word"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	dog := word.New("dog", pos.Noun)
	n := neighbor.New("ran", int(pos.Verb), 2)
	if err := n.AddDistance(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n.Values.Rating = 1.5
	dog.SetNeighbor(n)
	s.Insert(dog)
	s.Insert(word.New("cat", pos.Noun))

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.bin")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := New()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := loaded.Select("dog")
	if got == nil {
		t.Fatal("expected dog to survive round trip")
	}
	gotN := got.GetNeighbor("ran")
	if gotN == nil {
		t.Fatal("expected neighbor 'ran' to survive round trip")
	}
	if gotN.Values.Count != 1 {
		t.Errorf("expected count 1 after round trip, got %d", gotN.Values.Count)
	}
	if gotN.Values.Rating != 1.5 {
		t.Errorf("expected rating 1.5 after round trip, got %v", gotN.Values.Rating)
	}
	if gotN.Dist[3] != 1 {
		t.Errorf("expected dist[3] == 1 after round trip, got %v", gotN.Dist)
	}

	if loaded.Select("cat") == nil {
		t.Error("expected cat to survive round trip")
	}
}

func TestLoadCorruptSnapshotLeavesStoreUntouched(t *testing.T) {
	s := New()
	s.Insert(word.New("dog", pos.Noun))

	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.bin")
	if err := os.WriteFile(path, []byte("not a zlib stream"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	err := s.Load(path)
	if err == nil {
		t.Fatal("expected an error loading a corrupt snapshot")
	}
	if s.Select("dog") == nil {
		t.Error("a failed Load must leave the existing store untouched")
	}
}
