// Package compare keeps the per-user selection of records for side-by-side
// viewing: at most three distinct record ids, in insertion order.
package compare

import (
	"context"
	"errors"
)

// Capacity is the maximum number of records one user can compare at once.
const Capacity = 3

var (
	// ErrDuplicate: the record is already selected. The set is unchanged.
	ErrDuplicate = errors.New("record already selected for comparison")
	// ErrFull: the set already holds Capacity records. The set is unchanged.
	ErrFull = errors.New("comparison set is full")
)

// Store is a keyed comparison-set store, created lazily as empty per user.
// Add fails closed with ErrDuplicate or ErrFull — callers distinguish the
// two to word the user-facing message. Clear always succeeds.
type Store interface {
	Get(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, recordID string) ([]string, error)
	Clear(ctx context.Context, userID string) error
}

// add is the shared capacity/dedup rule for both backends.
func add(ids []string, recordID string) ([]string, error) {
	for _, id := range ids {
		if id == recordID {
			return ids, ErrDuplicate
		}
	}
	if len(ids) >= Capacity {
		return ids, ErrFull
	}
	return append(ids[:len(ids):len(ids)], recordID), nil
}
