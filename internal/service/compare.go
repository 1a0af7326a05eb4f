package service

import (
	"context"

	"unihub/internal/catalog"
	"unihub/internal/compare"
	"unihub/internal/model"
)

// CompareService manages the per-user comparison selection and resolves it
// against the live catalog snapshot.
type CompareService struct {
	catalog *catalog.Catalog
	sets    compare.Store
}

func NewCompareService(cat *catalog.Catalog, sets compare.Store) *CompareService {
	return &CompareService{catalog: cat, sets: sets}
}

// Add selects a record for comparison. The id must exist in the current
// catalog snapshot; compare.ErrDuplicate and compare.ErrFull pass through
// so the caller can word the two refusals differently. On success the new
// size of the set is returned.
func (c *CompareService) Add(ctx context.Context, userID, recordID string) (int, error) {
	if _, ok := c.catalog.ByID(recordID); !ok {
		return 0, &model.NotFoundError{Resource: "record", ID: recordID}
	}
	ids, err := c.sets.Add(ctx, userID, recordID)
	if err != nil {
		return len(ids), err
	}
	return len(ids), nil
}

// Clear empties the user's comparison set. Always succeeds.
func (c *CompareService) Clear(ctx context.Context, userID string) error {
	return c.sets.Clear(ctx, userID)
}

// Resolve maps the stored ids through the catalog, silently dropping ids
// that vanished in a reload instead of failing the whole view.
func (c *CompareService) Resolve(ctx context.Context, userID string) ([]model.Record, error) {
	ids, err := c.sets.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := c.catalog.ByID(id); ok {
			out = append(out, *rec)
		}
	}
	return out, nil
}
