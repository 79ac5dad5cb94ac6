package dlm

import "context"

// Item is one candidate line handed to the incremental search UI.
type Item struct {
	ID    string
	Label string
}

// Picker is the external line-oriented fuzzy-filter interface. It
// re-filters the candidate set on every keystroke using its own matching
// and returns the ID of the chosen item, or the empty string when the user
// cancels. The core only prepares candidates and resolves the returned ID.
type Picker interface {
	Pick(ctx context.Context, items []Item, initialQuery string) (string, error)
}
