package model

import "fmt"

// NotFoundError is returned as 404: a referenced record id is absent from
// the current catalog snapshot (e.g. a stale id after a reload).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
