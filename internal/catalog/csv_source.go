package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"unihub/internal/model"
)

// CSVSource reads records from a flat file with a header row using the same
// column names as the SQL ingestion schema. Unknown columns are ignored;
// missing columns yield empty fields.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Rows(ctx context.Context) ([]model.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv source: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv source %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []model.Record
	for _, row := range rows[1:] {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		out = append(out, model.Record{
			ID:            strings.TrimSpace(field(row, "id")),
			Name:          field(row, "name"),
			City:          field(row, "city"),
			Specialties:   field(row, "specialties"),
			MinScore:      parseScoreText(field(row, "min_score")),
			About:         field(row, "about"),
			Programs:      field(row, "programs"),
			Admission:     field(row, "admission"),
			International: field(row, "international"),
			Website:       field(row, "website"),
		})
	}
	return out, nil
}
