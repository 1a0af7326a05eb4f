// Package session keeps per-user browsing state: the active filter, the
// current page and the input mode. State is keyed by an opaque user id and
// created lazily with defaults on first touch.
package session

import (
	"context"

	"unihub/internal/model"
)

// Session is one user's mutable browsing state. The zero page and Browsing
// mode are the defaults for a fresh user.
type Session struct {
	Filter model.FilterSpec `json:"filter"`
	Page   int              `json:"page"`
	Mode   model.Mode       `json:"mode"`
}

// New returns the default state handed to a user on first interaction.
func New() Session {
	return Session{Mode: model.ModeBrowsing}
}

// Store is a keyed session store. Get creates on miss; Update applies a
// mutation to the (possibly fresh) session and persists the result.
// Actions of distinct users are safe to run concurrently; two rapid actions
// of one user are last-write-wins, which is tolerated because the page is
// re-clamped at render time.
type Store interface {
	Get(ctx context.Context, userID string) (Session, error)
	Update(ctx context.Context, userID string, mutate func(*Session)) (Session, error)
}
