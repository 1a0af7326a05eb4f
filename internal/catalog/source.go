package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"unihub/internal/model"
)

// Source supplies raw catalog rows. The catalog only cares about the row
// shape, not where the rows come from (SQL table, flat file, test fixture).
type Source interface {
	Rows(ctx context.Context) ([]model.Record, error)
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource reads records from a database table with the ingestion schema
// (id, name, city, specialties, min_score, about, programs, admission,
// international, website).
type SQLSource struct {
	db    *sql.DB
	table string
}

func NewSQLSource(db *sql.DB, table string) (*SQLSource, error) {
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("invalid source table name: %q", table)
	}
	return &SQLSource{db: db, table: table}, nil
}

func (s *SQLSource) Rows(ctx context.Context) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, specialties, min_score,
		       about, programs, admission, international, website
		FROM `+s.table)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var (
			id, minScore                       any
			name, city, specs, about, programs sql.NullString
			admission, international, website  sql.NullString
		)
		if err := rows.Scan(&id, &name, &city, &specs, &minScore,
			&about, &programs, &admission, &international, &website); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", s.table, err)
		}
		out = append(out, model.Record{
			ID:            coerceString(id),
			Name:          name.String,
			City:          city.String,
			Specialties:   specs.String,
			MinScore:      coerceScore(minScore),
			About:         about.String,
			Programs:      programs.String,
			Admission:     admission.String,
			International: international.String,
			Website:       website.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", s.table, err)
	}
	return out, nil
}

// coerceString stringifies an id column that may be TEXT or INTEGER.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []byte:
		return strings.TrimSpace(string(t))
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// coerceScore parses a min_score column that may be INTEGER, TEXT, or NULL.
// Anything that is not a whole number comes back nil.
func coerceScore(v any) *int {
	switch t := v.(type) {
	case nil:
		return nil
	case int64:
		n := int(t)
		return &n
	case float64:
		if t != float64(int(t)) {
			return nil
		}
		n := int(t)
		return &n
	case string:
		return parseScoreText(t)
	case []byte:
		return parseScoreText(string(t))
	default:
		return nil
	}
}

func parseScoreText(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
