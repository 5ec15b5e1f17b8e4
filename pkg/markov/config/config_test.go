package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/markov/pkg/markov/pos"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.WindowSize != 8 {
		t.Errorf("expected default window size 8, got %d", cfg.WindowSize)
	}
	if cfg.WeightCount != 1.0 || cfg.WeightRating != 1.0 {
		t.Errorf("expected default weights 1.0/1.0, got %v/%v", cfg.WeightCount, cfg.WeightRating)
	}
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := "weight_count: 2.5\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.WeightCount != 2.5 {
		t.Errorf("expected weight_count 2.5 from file, got %v", cfg.WeightCount)
	}
	if cfg.WindowSize != 8 {
		t.Errorf("expected default window_size to fill in, got %d", cfg.WindowSize)
	}
	if len(cfg.SubjectPOSPriority) == 0 {
		t.Error("expected default subject pos priority to fill in")
	}
}

func TestPriorityPosResolvesNames(t *testing.T) {
	cfg := Config{SubjectPOSPriority: []string{"NOUN", "VERB"}}
	got := cfg.PriorityPos()
	want := []pos.Pos{pos.Noun, pos.Verb}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PriorityPos = %v, want %v", got, want)
		}
	}
}

func TestAdapterBuildsFromTagMap(t *testing.T) {
	cfg := Config{TagMap: map[string]string{"NN": "NOUN"}}
	a := cfg.Adapter()
	if a.Resolve("NN") != pos.Noun {
		t.Error("expected Adapter to resolve NN to Noun via TagMap")
	}
}
