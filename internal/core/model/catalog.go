package model

import (
	"errors"
	"fmt"
)

// ErrRunIndex indicates a catalog index outside the program.
var ErrRunIndex = errors.New("run index out of range")

// Catalog is the ordered collection of runs making up the program.
type Catalog []Run

// Clone returns a copy that can be mutated without touching the receiver.
// Runs share their interval slices, which are never written after construction.
func (catalog Catalog) Clone() Catalog {
	out := make(Catalog, len(catalog))
	copy(out, catalog)
	return out
}

// Toggle flips the completion flag of run i and returns the new value.
func (catalog Catalog) Toggle(i int) (bool, error) {
	if err := catalog.check(i); err != nil {
		return false, err
	}
	catalog[i].Completed = !catalog[i].Completed
	return catalog[i].Completed, nil
}

// MarkCompleted sets the completion flag of run i.
func (catalog Catalog) MarkCompleted(i int) error {
	if err := catalog.check(i); err != nil {
		return err
	}
	catalog[i].Completed = true
	return nil
}

// NextIncomplete returns the index of the first run not yet completed, or -1.
func (catalog Catalog) NextIncomplete() int {
	for i, run := range catalog {
		if !run.Completed {
			return i
		}
	}
	return -1
}

// CompletedCount returns how many runs are marked completed.
func (catalog Catalog) CompletedCount() int {
	count := 0
	for _, run := range catalog {
		if run.Completed {
			count++
		}
	}
	return count
}

func (catalog Catalog) check(i int) error {
	if i < 0 || i >= len(catalog) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrRunIndex, i, len(catalog))
	}
	return nil
}
