package dlm

import "context"

// ContextSource captures the text the user is currently reading, for use
// as question context.
type ContextSource interface {
	// CurrentContext returns the text of the page open in the reader.
	// Returns ENOTFOUND when no document is open and EUNAVAILABLE when
	// the platform cannot capture page text.
	CurrentContext(ctx context.Context) (string, error)
}

// Asker answers a reading question about a passage of book text.
type Asker interface {
	// Ask answers question against the supplied page context. The context
	// text may be empty, in which case the model answers from general
	// knowledge and says so.
	Ask(ctx context.Context, contextText, question string) (string, error)
}
