package filter

import (
	"strings"

	"unihub/internal/model"
)

// Search matches a free-text query against the name (substring), the city
// (exact) and the specialty text (substring), all case-insensitively, and
// returns at most limit records in load order. limit <= 0 means no cap.
func Search(records []model.Record, query string, limit int) []model.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []model.Record
	for i := range records {
		r := &records[i]
		name := strings.ToLower(r.Name)
		city := strings.ToLower(r.City)
		specs := strings.ToLower(r.Specialties)
		if strings.Contains(name, q) || q == city || strings.Contains(specs, q) {
			out = append(out, *r)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}
