// Package internalerr collects the sentinel errors shared across the
// markov engine, so callers can use errors.Is instead of string matching.
package internalerr

import "errors"

// Sentinel errors for the engine's documented failure kinds.
var (
	// ErrNotFound is returned by Engine.AdjustRating when the word or
	// neighbor it targets doesn't exist. Plain Select/GetNeighbor lookups
	// still return an absent value, not an error.
	ErrNotFound = errors.New("markov: not found")

	// ErrNoAnchor is returned by Generate when some sentence in the
	// skeleton received no subject during assignment.
	ErrNoAnchor = errors.New("markov: no anchor placed for sentence")

	// ErrStuck is returned by Generate when a full sweep over every
	// sentence made no progress filling blanks.
	ErrStuck = errors.New("markov: generation made no progress")

	// ErrEmptyProjection names the case of a sweep that found no
	// projectable candidates. No function returns it: Generate treats
	// such a sweep as a no-op.
	ErrEmptyProjection = errors.New("markov: projection sweep had no candidates")

	// ErrCorruptSnapshot is returned by Store.Load when decompression or
	// structural validation of the snapshot fails. The store is left
	// untouched.
	ErrCorruptSnapshot = errors.New("markov: snapshot is corrupt")

	// ErrOutOfWindow is returned when a signed offset outside [-K, K] is
	// passed to a distance one-hot computation.
	ErrOutOfWindow = errors.New("markov: offset exceeds window size")

	// ErrOutOfRange is returned by OneHot when the requested index falls
	// outside [0, n).
	ErrOutOfRange = errors.New("markov: index out of range")
)
