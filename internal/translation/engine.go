package translation

import "context"

// Engine is a translation backend. Translate blocks until the engine answers or ctx ends.
// source is AutoDetect or a language code.
type Engine interface {
	Translate(ctx context.Context, text, target, source string) (*Result, error)
}

// Result is one translation as reported by an Engine.
type Result struct {
	Text   string
	Source string
	Target string
}
