package translate

import "errors"

var (
	// ErrNoCredential means the provider credential is not configured. The
	// failure is local; no network call was attempted.
	ErrNoCredential = errors.New("translate: provider credential not configured")

	// ErrRateLimited means the provider rejected the call with a quota or
	// authorization status. Callers must stop auto-translating the session.
	ErrRateLimited = errors.New("translate: provider rate or quota limit reached")

	// ErrProtocol covers transport errors, unexpected response bodies and
	// timeouts. Transient; the next message tries again independently.
	ErrProtocol = errors.New("translate: provider protocol failure")
)

// IsRateLimited reports whether err carries the rate-limit classification.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
