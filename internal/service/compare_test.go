package service

import (
	"context"
	"errors"
	"testing"

	"unihub/internal/catalog"
	"unihub/internal/compare"
	"unihub/internal/model"
)

func newCompare(t *testing.T) (*CompareService, *catalog.Catalog, *staticSource) {
	t.Helper()
	src := &staticSource{rows: defaultRows()}
	cat := catalog.New(src)
	if _, err := cat.Load(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return NewCompareService(cat, compare.NewMemoryStore()), cat, src
}

func TestCompareAddUpToThreeThenRefuse(t *testing.T) {
	svc, _, _ := newCompare(t)
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		n, err := svc.Add(ctx, "u1", id)
		if err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
		if n != i+1 {
			t.Fatalf("add %s: expected size %d, got %d", id, i+1, n)
		}
	}

	if _, err := svc.Add(ctx, "u1", "d"); !errors.Is(err, compare.ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if _, err := svc.Add(ctx, "u1", "a"); !errors.Is(err, compare.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCompareAddUnknownRecord(t *testing.T) {
	svc, _, _ := newCompare(t)

	var nf *model.NotFoundError
	if _, err := svc.Add(context.Background(), "u1", "ghost"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCompareResolveKeepsInsertionOrder(t *testing.T) {
	svc, _, _ := newCompare(t)
	ctx := context.Background()

	for _, id := range []string{"c", "a"} {
		if _, err := svc.Add(ctx, "u1", id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	records, err := svc.Resolve(ctx, "u1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(records) != 2 || records[0].ID != "c" || records[1].ID != "a" {
		t.Fatalf("unexpected resolution: %+v", records)
	}
}

func TestCompareResolveDropsStaleIDsAfterReload(t *testing.T) {
	svc, cat, src := newCompare(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if _, err := svc.Add(ctx, "u1", id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	// Record "b" disappears from the source; the selection keeps its id
	// but resolution silently drops it.
	src.rows = []model.Record{{ID: "a", Name: "KazNU"}}
	if _, err := cat.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	records, err := svc.Resolve(ctx, "u1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(records) != 1 || records[0].ID != "a" {
		t.Fatalf("expected only record a to survive, got %+v", records)
	}
}

func TestCompareClear(t *testing.T) {
	svc, _, _ := newCompare(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "u1", "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	records, err := svc.Resolve(ctx, "u1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty resolution after clear, got %+v", records)
	}
}
