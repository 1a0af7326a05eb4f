package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"unihub/internal/catalog"
	"unihub/internal/filter"
	"unihub/internal/model"
	"unihub/internal/page"
	"unihub/internal/session"
)

// ErrNotAnInteger is the validation error for score input that does not
// parse as a whole number. The session stays in score-entry mode and the
// filter is left untouched.
var ErrNotAnInteger = errors.New("not an integer")

// View is the current state of one user's catalog browsing: the active
// filter, the records of the current page and the pagination numbers the
// rendering layer needs.
type View struct {
	Filter       model.FilterSpec `json:"filter"`
	Records      []model.Record   `json:"records"`
	Page         int              `json:"page"`
	TotalPages   int              `json:"total_pages"`
	TotalMatches int              `json:"total_matches"`
	// Empty marks a filter that matched nothing. Callers render a distinct
	// "nothing found" view instead of an empty page of content.
	Empty bool       `json:"empty"`
	Mode  model.Mode `json:"mode"`
}

// TextResult is the outcome of interpreting one free-text input.
type TextResult struct {
	// Kind is "view" after a successful score entry, "search" otherwise.
	Kind    string         `json:"kind"`
	View    *View          `json:"view,omitempty"`
	Query   string         `json:"query,omitempty"`
	Matches []model.Record `json:"matches,omitempty"`
}

// BrowseService drives one user's pass through the catalog: filter
// selection, pagination and the score-entry state machine.
type BrowseService struct {
	catalog     *catalog.Catalog
	sessions    session.Store
	recordsPage int
	indexPage   int
}

func NewBrowseService(cat *catalog.Catalog, sessions session.Store, recordsPerPage, indexPerPage int) *BrowseService {
	return &BrowseService{
		catalog:     cat,
		sessions:    sessions,
		recordsPage: recordsPerPage,
		indexPage:   indexPerPage,
	}
}

// View renders the user's current page against the live catalog snapshot.
// The stored page is re-clamped here, so a stale value (rapid double-tap,
// catalog shrunk by a reload) self-corrects on the next render.
func (b *BrowseService) View(ctx context.Context, userID string) (*View, error) {
	sess, err := b.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := filter.Apply(b.catalog.Records(), sess.Filter)
	if len(results) == 0 {
		return &View{Filter: sess.Filter, Empty: true, TotalPages: 1, Mode: sess.Mode}, nil
	}

	w := page.Slice(results, b.recordsPage, sess.Page)
	if w.Page != sess.Page {
		if _, err := b.sessions.Update(ctx, userID, func(s *session.Session) {
			s.Page = w.Page
		}); err != nil {
			return nil, err
		}
	}

	return &View{
		Filter:       sess.Filter,
		Records:      w.Items,
		Page:         w.Page,
		TotalPages:   w.TotalPages,
		TotalMatches: w.TotalItems,
		Mode:         sess.Mode,
	}, nil
}

// SelectCity sets the city filter and rewinds to the first page.
func (b *BrowseService) SelectCity(ctx context.Context, userID, city string) (*View, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city must not be empty")
	}
	return b.mutateAndView(ctx, userID, func(s *session.Session) {
		s.Filter.City = city
		s.Page = 0
	})
}

// SelectSpecialty sets the specialty filter and rewinds to the first page.
func (b *BrowseService) SelectSpecialty(ctx context.Context, userID, specialty string) (*View, error) {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return nil, fmt.Errorf("specialty must not be empty")
	}
	return b.mutateAndView(ctx, userID, func(s *session.Session) {
		s.Filter.Specialty = specialty
		s.Page = 0
	})
}

// RequestScore puts the session into score-entry mode: the next text input
// is parsed as a minimum score instead of being searched.
func (b *BrowseService) RequestScore(ctx context.Context, userID string) error {
	_, err := b.sessions.Update(ctx, userID, func(s *session.Session) {
		s.Mode = model.ModeAwaitingScore
	})
	return err
}

// Reset clears all filter fields and rewinds to the first page.
func (b *BrowseService) Reset(ctx context.Context, userID string) (*View, error) {
	return b.mutateAndView(ctx, userID, func(s *session.Session) {
		s.Filter = model.FilterSpec{}
		s.Page = 0
	})
}

// NextPage advances one page; the overshoot is clamped at render time.
func (b *BrowseService) NextPage(ctx context.Context, userID string) (*View, error) {
	return b.mutateAndView(ctx, userID, func(s *session.Session) {
		s.Page++
	})
}

// PrevPage goes one page back, never below the first.
func (b *BrowseService) PrevPage(ctx context.Context, userID string) (*View, error) {
	return b.mutateAndView(ctx, userID, func(s *session.Session) {
		if s.Page > 0 {
			s.Page--
		}
	})
}

// GotoPage jumps to an explicit page (e.g. "back to list" from a card).
func (b *BrowseService) GotoPage(ctx context.Context, userID string, pageNo int) (*View, error) {
	return b.mutateAndView(ctx, userID, func(s *session.Session) {
		s.Page = pageNo
	})
}

// SubmitText interprets one free-text input according to the session mode.
//
// In score-entry mode the text must parse as an integer: success stores the
// score filter, rewinds to page 0 and returns to browsing; failure returns
// ErrNotAnInteger and changes nothing, so the user may retry. While in that
// mode free-text search never runs.
// In browsing mode the text is a search query over the whole catalog.
func (b *BrowseService) SubmitText(ctx context.Context, userID, text string) (*TextResult, error) {
	sess, err := b.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)

	switch sess.Mode {
	case model.ModeAwaitingScore:
		score, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", text, ErrNotAnInteger)
		}
		v, err := b.mutateAndView(ctx, userID, func(s *session.Session) {
			s.Filter.MinScore = &score
			s.Page = 0
			s.Mode = model.ModeBrowsing
		})
		if err != nil {
			return nil, err
		}
		return &TextResult{Kind: "view", View: v}, nil

	case model.ModeBrowsing:
		matches := filter.Search(b.catalog.Records(), text, b.recordsPage)
		return &TextResult{Kind: "search", Query: text, Matches: matches}, nil

	default:
		return nil, fmt.Errorf("unknown session mode: %q", sess.Mode)
	}
}

// Cities returns one page of the city picker.
func (b *BrowseService) Cities(pageNo int) page.Window[string] {
	return page.Slice(b.catalog.Cities(), b.indexPage, pageNo)
}

// Specialties returns one page of the specialty picker.
func (b *BrowseService) Specialties(pageNo int) page.Window[string] {
	return page.Slice(b.catalog.Specialties(), b.indexPage, pageNo)
}

// Card returns one record by id. A stale id (e.g. after a reload) yields a
// NotFoundError, which callers surface as a non-fatal notice.
func (b *BrowseService) Card(recordID string) (*model.Record, error) {
	rec, ok := b.catalog.ByID(recordID)
	if !ok {
		return nil, &model.NotFoundError{Resource: "record", ID: recordID}
	}
	return rec, nil
}

// Random picks a random record from the catalog.
func (b *BrowseService) Random() (*model.Record, error) {
	rec, ok := b.catalog.Random()
	if !ok {
		return nil, fmt.Errorf("catalog is empty")
	}
	return rec, nil
}

func (b *BrowseService) mutateAndView(ctx context.Context, userID string, mutate func(*session.Session)) (*View, error) {
	if _, err := b.sessions.Update(ctx, userID, mutate); err != nil {
		return nil, err
	}
	return b.View(ctx, userID)
}
