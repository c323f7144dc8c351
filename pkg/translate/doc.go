// Package translate defines the boundary between the dispatch core and a
// translation provider.
//
// A Translator performs one blocking, context-bounded network call per
// message. Implementations classify failures by wrapping the package's
// sentinel errors so callers can react without knowing the provider:
//
//   - ErrNoCredential: the provider is not configured; the call failed fast
//     locally and no network traffic happened. The user can fix the
//     environment and retry.
//   - ErrRateLimited: the provider signalled quota or authorization
//     exhaustion. Callers must stop auto-translating the affected session.
//   - ErrProtocol: transport failure, malformed response or timeout. The
//     next message simply tries again.
//
// Callers always keep the original text as the displayable fallback; a
// failed translation never loses the user's message.
//
// The Stub implementation backs tests and offline runs with a scripted
// function, the same way the other in-memory implementations in this module
// stand in for their network counterparts.
package translate
