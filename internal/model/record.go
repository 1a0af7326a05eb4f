package model

import "strings"

// Record is one catalog entry (a university) as supplied by the row source.
// Records are immutable once loaded; the catalog hands out copies of the
// slice header, never of a mutable store.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Specialties string `json:"specialties"` // comma-joined specialty text
	// MinScore is nil when the source field was absent or not an integer.
	// Records without a score never pass a score filter.
	MinScore      *int   `json:"min_score,omitempty"`
	About         string `json:"about,omitempty"`
	Programs      string `json:"programs,omitempty"`
	Admission     string `json:"admission,omitempty"`
	International string `json:"international,omitempty"`
	Website       string `json:"website,omitempty"`
}

// Score returns the record's minimum admission score and whether one is
// present. This is the single "parseable score" predicate used everywhere.
func (r *Record) Score() (int, bool) {
	if r.MinScore == nil {
		return 0, false
	}
	return *r.MinScore, true
}

// SpecialtyTokens splits the comma-joined specialty text into trimmed,
// non-empty tokens.
func (r *Record) SpecialtyTokens() []string {
	var out []string
	for _, part := range strings.Split(r.Specialties, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
