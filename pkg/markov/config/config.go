// Package config loads the markov engine's tunable knobs — window
// size, projection weights, subject priority, and the tagger->Pos
// map — from YAML, the same way korel's own config package loads its
// taxonomy and stoplist files.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/markov/pkg/markov/pos"
)

// Config holds every externally-configurable knob spec.md §6 names.
type Config struct {
	WindowSize         int               `yaml:"window_size"`
	WeightCount        float64           `yaml:"weight_count"`
	WeightRating       float64           `yaml:"weight_rating"`
	SubjectPOSPriority []string          `yaml:"subject_pos_priority"`
	TagMap             map[string]string `yaml:"tag_map"`
}

// Default returns the documented defaults: window_size 8, both
// projection weights 1.0, and a noun-first subject priority.
func Default() Config {
	return Config{
		WindowSize:         8,
		WeightCount:        1.0,
		WeightRating:       1.0,
		SubjectPOSPriority: []string{"NOUN", "PRON", "VERB"},
		TagMap:             map[string]string{},
	}
}

// Load reads and parses a YAML config file, filling in defaults for any
// zero-valued field the file leaves unset.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.WindowSize <= 0 {
		cfg.WindowSize = 8
	}
	if cfg.WeightCount == 0 {
		cfg.WeightCount = 1.0
	}
	if cfg.WeightRating == 0 {
		cfg.WeightRating = 1.0
	}
	if len(cfg.SubjectPOSPriority) == 0 {
		cfg.SubjectPOSPriority = Default().SubjectPOSPriority
	}

	return cfg, nil
}

// PriorityPos resolves the configured priority name list to Pos values.
func (c Config) PriorityPos() []pos.Pos {
	out := make([]pos.Pos, len(c.SubjectPOSPriority))
	for i, name := range c.SubjectPOSPriority {
		out[i] = pos.Parse(name)
	}
	return out
}

// Adapter builds the tag->Pos adapter described by TagMap.
func (c Config) Adapter() *pos.Adapter {
	return pos.NewAdapter(c.TagMap)
}
