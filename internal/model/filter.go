package model

// FilterSpec is one user's active filter. All three fields are independently
// optional and conjunctive when present. The zero value matches everything.
type FilterSpec struct {
	City      string `json:"city,omitempty"`      // case-insensitive exact match
	Specialty string `json:"specialty,omitempty"` // case-insensitive substring match
	MinScore  *int   `json:"min_score,omitempty"` // inclusive lower bound
}

// IsZero reports whether no filter field is set.
func (f FilterSpec) IsZero() bool {
	return f.City == "" && f.Specialty == "" && f.MinScore == nil
}
