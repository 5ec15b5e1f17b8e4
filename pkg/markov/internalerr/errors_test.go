package internalerr

import (
	"errors"
	"testing"
)

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{ErrNotFound, ErrNoAnchor, ErrStuck, ErrEmptyProjection, ErrCorruptSnapshot, ErrOutOfWindow, ErrOutOfRange}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d and %d should not match via errors.Is", i, j)
			}
		}
	}
}
