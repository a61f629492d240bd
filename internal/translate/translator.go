// Package translate defines the translation capability used around ask
// exchanges. The client depends only on the Translator interface; which
// backend (if any) is wired in is a configuration-time decision.
package translate

import "context"

// Translator converts text between natural languages. Implementations must
// treat source "auto" as language detection.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Noop returns input text unchanged. It is the default when no translation
// backend is configured.
type Noop struct{}

// Translate returns text as-is
func (Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
