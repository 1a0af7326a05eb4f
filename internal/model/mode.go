package model

// Mode decides how the next free-text input from a user is interpreted.
// It replaces an ad hoc "awaiting score" boolean: every entry point that
// handles text switches on the mode instead of checking a flag.
type Mode string

const (
	// ModeBrowsing: free text is treated as a catalog search query.
	ModeBrowsing Mode = "browsing"
	// ModeAwaitingScore: free text is parsed as a minimum-score integer.
	ModeAwaitingScore Mode = "awaiting_score"
)
