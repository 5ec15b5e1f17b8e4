// Package ratings implements the append-only audit journal backing a
// neighbor's externally-adjustable rating (spec.md §3's "rating: an
// externally adjustable signed quality score"). Adjustments are
// recorded here and replayed onto a trie.Store's neighbors, rather than
// mutating the snapshot in place — the trie itself stays a
// snapshot-only structure (spec.md §1's "no incremental on-disk
// mutation").
package ratings

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/markov/pkg/markov/trie"
)

// Adjustment is one recorded rating delta applied to a neighbor
// relationship.
type Adjustment struct {
	ID           string
	WordText     string
	NeighborText string
	Delta        float64
	Reason       string
	At           time.Time
}

// Journal is a SQLite-backed append-only log of rating adjustments.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if necessary) a rating journal at path.
func Open(ctx context.Context, path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS rating_adjustments (
	id            TEXT PRIMARY KEY,
	word_text     TEXT NOT NULL,
	neighbor_text TEXT NOT NULL,
	delta         REAL NOT NULL,
	reason        TEXT,
	at            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rating_adjustments_word
	ON rating_adjustments(word_text, neighbor_text);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends one adjustment to the journal. It does not itself
// touch the trie — callers apply the delta in memory (Engine.AdjustRating
// does both in one step) and rely on Replay to reconstruct it after a
// fresh Load.
func (j *Journal) Record(ctx context.Context, a Adjustment) error {
	const stmt = `
INSERT INTO rating_adjustments (id, word_text, neighbor_text, delta, reason, at)
VALUES (?, ?, ?, ?, ?, ?)
`
	_, err := j.db.ExecContext(ctx, stmt, a.ID, a.WordText, a.NeighborText, a.Delta, a.Reason, a.At.UTC().Format(time.RFC3339Nano))
	return err
}

// Replay folds every recorded adjustment onto the matching neighbor's
// rating in store, in the order they were recorded. Adjustments whose
// word or neighbor no longer exists in store are skipped — the
// snapshot they applied to may have been retrained since.
func (j *Journal) Replay(ctx context.Context, store *trie.Store) error {
	const query = `
SELECT word_text, neighbor_text, delta
FROM rating_adjustments
ORDER BY at ASC, rowid ASC
`
	rows, err := j.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var wordText, neighborText string
		var delta float64
		if err := rows.Scan(&wordText, &neighborText, &delta); err != nil {
			return err
		}

		w := store.Select(wordText)
		if w == nil {
			continue
		}
		n := w.GetNeighbor(neighborText)
		if n == nil {
			continue
		}
		n.Values.Rating += delta
		w.SetNeighbor(n)
		store.Update(w)
	}

	return rows.Err()
}
