package trainer

import (
	"testing"

	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/trie"
)

func TestLearnSingleBigram(t *testing.T) {
	store := trie.New()
	tr := New(store, 2)

	doc := Document{
		Sentence{
			{Text: "A", Pos: pos.Noun},
			{Text: "B", Pos: pos.Verb},
		},
	}
	tr.Learn(doc)

	a := store.Select("A")
	if a == nil {
		t.Fatal("expected word A to be created")
	}
	n := a.GetNeighbor("B")
	if n == nil {
		t.Fatal("expected A to have neighbor B")
	}
	if n.Values.Count != 1 {
		t.Errorf("expected count 1, got %d", n.Values.Count)
	}
	want := []int64{0, 0, 0, 1, 0}
	for i := range want {
		if n.Dist[i] != want[i] {
			t.Fatalf("dist = %v, want %v", n.Dist, want)
		}
	}

	b := store.Select("B")
	if b == nil {
		t.Fatal("expected word B to be created")
	}
	bn := b.GetNeighbor("A")
	if bn == nil {
		t.Fatal("expected B to have neighbor A (bidirectional observation)")
	}
	wantB := []int64{0, 1, 0, 0, 0}
	for i := range wantB {
		if bn.Dist[i] != wantB[i] {
			t.Fatalf("B's dist = %v, want %v", bn.Dist, wantB)
		}
	}
}

func TestLearnClipsToWindow(t *testing.T) {
	store := trie.New()
	tr := New(store, 1)

	doc := Document{
		Sentence{
			{Text: "A", Pos: pos.Noun},
			{Text: "B", Pos: pos.Verb},
			{Text: "C", Pos: pos.Noun},
		},
	}
	tr.Learn(doc)

	a := store.Select("A")
	if a.GetNeighbor("C") != nil {
		t.Error("A and C are 2 apart with window 1; must not co-occur")
	}
	if a.GetNeighbor("B") == nil {
		t.Error("A and B are 1 apart; must co-occur")
	}
}

func TestLearnAccumulatesAcrossSentences(t *testing.T) {
	store := trie.New()
	tr := New(store, 2)

	doc := Document{
		Sentence{{Text: "A", Pos: pos.Noun}, {Text: "B", Pos: pos.Verb}},
		Sentence{{Text: "A", Pos: pos.Noun}, {Text: "B", Pos: pos.Verb}},
	}
	tr.Learn(doc)

	a := store.Select("A")
	n := a.GetNeighbor("B")
	if n.Values.Count != 2 {
		t.Errorf("expected count 2 across two sentences, got %d", n.Values.Count)
	}
	if n.Dist[3] != 2 {
		t.Errorf("expected dist[3] == 2, got %v", n.Dist)
	}
}
