// Package engine is the markov engine's facade: it wires config, the
// trie store (behind a lookup cache), the trainer, the generator, and
// the ratings journal behind the five surfaces spec.md §6 names plus
// AdjustRating,
// mirroring the shape of korel.Korel in pkg/korel/korel.go.
package engine

import (
	"context"
	cryptorand "crypto/rand"
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/markov/pkg/markov/cache"
	"github.com/cognicore/markov/pkg/markov/config"
	"github.com/cognicore/markov/pkg/markov/generator"
	"github.com/cognicore/markov/pkg/markov/internalerr"
	"github.com/cognicore/markov/pkg/markov/pos"
	"github.com/cognicore/markov/pkg/markov/ratings"
	"github.com/cognicore/markov/pkg/markov/trainer"
	"github.com/cognicore/markov/pkg/markov/trie"
	"github.com/cognicore/markov/pkg/markov/word"
)

// Options configures a new Engine. Journal and CacheSize are optional —
// a nil Journal disables rating persistence (AdjustRating still mutates
// the in-memory trie), and CacheSize <= 0 takes cache.New's default.
type Options struct {
	Config    config.Config
	Journal   *ratings.Journal
	CacheSize int
	Rand      generator.Rand // nil uses a process-seeded math/rand/v2 source
}

// Engine is the markov text engine's single entry point.
type Engine struct {
	cfg     config.Config
	adapter *pos.Adapter
	trie    *trie.Store
	cache   *cache.Store
	journal *ratings.Journal
	rng     generator.Rand
	entropy *ulid.MonotonicEntropy
}

// New constructs an Engine from opts. It always starts with an empty
// trie; load a snapshot with Load to populate it.
func New(opts Options) (*Engine, error) {
	t := trie.New()
	c, err := cache.New(t, opts.CacheSize)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Engine{
		cfg:     opts.Config,
		adapter: opts.Config.Adapter(),
		trie:    t,
		cache:   c,
		journal: opts.Journal,
		rng:     rng,
		entropy: ulid.Monotonic(cryptorand.Reader, 0),
	}, nil
}

// Close releases the ratings journal, if one is configured.
func (e *Engine) Close() error {
	if e.journal == nil {
		return nil
	}
	return e.journal.Close()
}

// Adapter exposes the tagger->Pos adapter built from the engine's
// configuration, for callers assembling trainer.Document values.
func (e *Engine) Adapter() *pos.Adapter { return e.adapter }

// Train folds doc's co-occurrence statistics into the vocabulary.
func (e *Engine) Train(doc trainer.Document) {
	trainer.New(e.cache, e.cfg.WindowSize).Learn(doc)
}

// Select looks up a word by text. A miss returns nil, never an error.
func (e *Engine) Select(text string) *word.Word {
	return e.cache.Select(text)
}

// Generate fills skeleton anchored by subjects and returns one sequence
// of words per sentence. A nil result paired with a non-nil error means
// generation failed with ErrNoAnchor or ErrStuck — never a partial
// sentence.
func (e *Engine) Generate(skeleton []pos.Pos, subjects []*word.Word) ([][]*word.Word, error) {
	gen := generator.New(e.cache, generator.Config{
		WindowSize:         e.cfg.WindowSize,
		WeightCount:        e.cfg.WeightCount,
		WeightRating:       e.cfg.WeightRating,
		SubjectPOSPriority: e.cfg.PriorityPos(),
	}, e.rng)
	return gen.Generate(skeleton, subjects)
}

// Load replaces the vocabulary from a snapshot file, atomically at the
// file level (trie.Store.Load builds a fresh tree before swapping it
// in), then replays any recorded rating adjustments on top of it.
func (e *Engine) Load(ctx context.Context, path string) error {
	if err := e.trie.Load(path); err != nil {
		return err
	}
	e.cache.Purge()

	if e.journal != nil {
		if err := e.journal.Replay(ctx, e.trie); err != nil {
			return err
		}
		e.cache.Purge()
	}
	return nil
}

// Save writes the current vocabulary to a snapshot file. Rating
// adjustments recorded in the journal are not baked into the snapshot —
// they replay on every Load, so the journal remains the single source
// of truth for them (spec.md §1's "no incremental on-disk mutation").
func (e *Engine) Save(path string) error {
	return e.trie.Save(path)
}

// AdjustRating applies delta to the rating of neighborText as seen from
// wordText, both in memory and (when a journal is configured) in the
// durable audit log, so a future Load can replay it.
func (e *Engine) AdjustRating(ctx context.Context, wordText, neighborText string, delta float64, reason string) error {
	w := e.cache.Select(wordText)
	if w == nil {
		return internalerr.ErrNotFound
	}
	n := w.GetNeighbor(neighborText)
	if n == nil {
		return internalerr.ErrNotFound
	}

	n.Values.Rating += delta
	w.SetNeighbor(n)
	e.cache.Update(w)

	if e.journal == nil {
		return nil
	}
	return e.journal.Record(ctx, ratings.Adjustment{
		ID:           ulid.MustNew(ulid.Now(), e.entropy).String(),
		WordText:     wordText,
		NeighborText: neighborText,
		Delta:        delta,
		Reason:       reason,
		At:           time.Now(),
	})
}
