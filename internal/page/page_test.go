package page

import (
	"reflect"
	"testing"
)

func TestSliceBasics(t *testing.T) {
	items := []string{"a", "b", "c"}

	w := Slice(items, 2, 0)
	if !reflect.DeepEqual(w.Items, []string{"a", "b"}) || w.Page != 0 || w.TotalPages != 2 {
		t.Fatalf("unexpected window: %+v", w)
	}

	w = Slice(items, 2, 1)
	if !reflect.DeepEqual(w.Items, []string{"c"}) || w.Page != 1 {
		t.Fatalf("unexpected window: %+v", w)
	}
}

func TestSliceClampsOutOfRangePages(t *testing.T) {
	items := []string{"a", "b", "c"}

	w := Slice(items, 2, 5)
	if w.Page != 1 || !reflect.DeepEqual(w.Items, []string{"c"}) || w.TotalPages != 2 {
		t.Fatalf("expected clamp to last page, got %+v", w)
	}

	w = Slice(items, 2, -3)
	if w.Page != 0 || !reflect.DeepEqual(w.Items, []string{"a", "b"}) {
		t.Fatalf("expected clamp to first page, got %+v", w)
	}
}

func TestSliceEmptyInputIsOneEmptyPage(t *testing.T) {
	w := Slice([]string{}, 5, 3)
	if len(w.Items) != 0 || w.Page != 0 || w.TotalPages != 1 || w.TotalItems != 0 {
		t.Fatalf("unexpected empty window: %+v", w)
	}
}

func TestSliceWindowsAreExhaustiveAndDisjoint(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 17} {
		for _, size := range []int{1, 2, 5, 8} {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}

			first := Slice(items, size, 0)
			wantPages := (n + size - 1) / size
			if wantPages < 1 {
				wantPages = 1
			}
			if first.TotalPages != wantPages {
				t.Fatalf("n=%d size=%d: totalPages=%d, want %d", n, size, first.TotalPages, wantPages)
			}

			var seen []int
			for p := 0; p < first.TotalPages; p++ {
				w := Slice(items, size, p)
				if w.Page != p {
					t.Fatalf("n=%d size=%d: in-range page %d clamped to %d", n, size, p, w.Page)
				}
				seen = append(seen, w.Items...)
			}
			if !reflect.DeepEqual(seen, items) && !(n == 0 && len(seen) == 0) {
				t.Fatalf("n=%d size=%d: windows not exhaustive/ordered: %v", n, size, seen)
			}
		}
	}
}
