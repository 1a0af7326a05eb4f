// Package filter turns the catalog's record list into the ordered result
// set a user's active FilterSpec describes.
package filter

import (
	"sort"
	"strings"

	"unihub/internal/model"
)

// Apply filters records by the spec. With no score filter the result keeps
// the input (load) order. A score filter additionally re-sorts the survivors
// descending by score, stable on ties — only the score filter does this.
func Apply(records []model.Record, spec model.FilterSpec) []model.Record {
	res := records

	if spec.City != "" {
		want := strings.ToLower(strings.TrimSpace(spec.City))
		res = keep(res, func(r *model.Record) bool {
			return strings.ToLower(strings.TrimSpace(r.City)) == want
		})
	}

	if spec.Specialty != "" {
		want := strings.ToLower(spec.Specialty)
		res = keep(res, func(r *model.Record) bool {
			return strings.Contains(strings.ToLower(r.Specialties), want)
		})
	}

	if spec.MinScore != nil {
		threshold := *spec.MinScore
		// Records without a parseable score are excluded here, never
		// treated as zero.
		res = keep(res, func(r *model.Record) bool {
			s, ok := r.Score()
			return ok && s >= threshold
		})
		res = clone(res)
		sort.SliceStable(res, func(i, j int) bool {
			si, _ := res[i].Score()
			sj, _ := res[j].Score()
			return si > sj
		})
	}

	return res
}

func keep(records []model.Record, pred func(*model.Record) bool) []model.Record {
	out := make([]model.Record, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// clone guards against sorting a slice that still aliases the catalog
// snapshot (the case where no earlier filter field copied it).
func clone(records []model.Record) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)
	return out
}
