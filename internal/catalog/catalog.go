package catalog

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"strings"
	"sync/atomic"

	"unihub/internal/model"
)

// snapshot is one fully-built generation of the catalog. It is never
// mutated after construction, so readers can use it lock-free.
type snapshot struct {
	records     []model.Record
	byID        map[string]*model.Record
	cities      []string
	specialties []string
}

var emptySnapshot = &snapshot{byID: map[string]*model.Record{}}

// Catalog is the shared in-memory record collection plus its derived
// city/specialty indexes. Load replaces the whole snapshot atomically:
// concurrent readers observe either the old or the new generation, never
// a mix of the two.
type Catalog struct {
	source Source
	snap   atomic.Pointer[snapshot]
}

// New returns an empty catalog backed by the given source.
func New(source Source) *Catalog {
	c := &Catalog{source: source}
	c.snap.Store(emptySnapshot)
	return c
}

// Load (re)ingests the source and swaps in the new snapshot. On error the
// current snapshot is kept — an initial load failure leaves the catalog
// empty, a reload failure keeps serving the previous generation.
func (c *Catalog) Load(ctx context.Context) (int, error) {
	rows, err := c.source.Rows(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	snap := buildSnapshot(rows)
	c.snap.Store(snap)
	return len(snap.records), nil
}

func buildSnapshot(rows []model.Record) *snapshot {
	snap := &snapshot{
		// Full capacity up front: byID stores pointers into this slice,
		// so it must never reallocate while rows are appended.
		records: make([]model.Record, 0, len(rows)),
		byID:    make(map[string]*model.Record, len(rows)),
	}
	citySet := map[string]struct{}{}
	specSet := map[string]struct{}{}

	for _, rec := range rows {
		rec.ID = strings.TrimSpace(rec.ID)
		if rec.ID == "" {
			log.Printf("catalog: dropping row without id (name=%q)", rec.Name)
			continue
		}
		if _, dup := snap.byID[rec.ID]; dup {
			log.Printf("catalog: dropping duplicate id %s (name=%q)", rec.ID, rec.Name)
			continue
		}

		snap.records = append(snap.records, rec)
		snap.byID[rec.ID] = &snap.records[len(snap.records)-1]

		if city := strings.TrimSpace(rec.City); city != "" {
			citySet[city] = struct{}{}
		}
		for _, token := range rec.SpecialtyTokens() {
			specSet[token] = struct{}{}
		}
	}

	snap.cities = sortedKeys(citySet)
	snap.specialties = sortedKeys(specSet)
	return snap
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Records returns all records in load order. Callers must not mutate the
// returned slice.
func (c *Catalog) Records() []model.Record {
	return c.snap.Load().records
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.snap.Load().records)
}

// ByID looks a record up by id in the current snapshot.
func (c *Catalog) ByID(id string) (*model.Record, bool) {
	rec, ok := c.snap.Load().byID[strings.TrimSpace(id)]
	return rec, ok
}

// Cities returns the sorted distinct non-empty city values.
func (c *Catalog) Cities() []string {
	return c.snap.Load().cities
}

// Specialties returns the sorted distinct specialty tokens.
func (c *Catalog) Specialties() []string {
	return c.snap.Load().specialties
}

// Random picks a uniformly random record. ok is false when the catalog
// is empty.
func (c *Catalog) Random() (*model.Record, bool) {
	records := c.snap.Load().records
	if len(records) == 0 {
		return nil, false
	}
	return &records[rand.IntN(len(records))], true
}
