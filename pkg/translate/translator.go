package translate

import "context"

// Auto is the sentinel source code requesting provider-side language
// detection. Implementations omit the source language from the outbound
// request when they see it.
const Auto = "auto"

// Translator converts text between two languages identified by catalog
// codes. Implementations must honor ctx cancellation and deadlines, and
// classify failures with this package's sentinel errors.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Func adapts a plain function to the Translator interface.
type Func func(ctx context.Context, text, source, target string) (string, error)

func (f Func) Translate(ctx context.Context, text, source, target string) (string, error) {
	return f(ctx, text, source, target)
}

// Stub is a scripted Translator for tests and offline use. If Fn is nil it
// echoes the input text unchanged.
type Stub struct {
	Fn func(ctx context.Context, text, source, target string) (string, error)
}

func (s *Stub) Translate(ctx context.Context, text, source, target string) (string, error) {
	if s.Fn == nil {
		return text, nil
	}
	return s.Fn(ctx, text, source, target)
}
