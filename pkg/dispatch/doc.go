// Package dispatch orchestrates the translate-then-deliver workflow for
// outgoing and incoming chat messages.
//
// The embedding host runs a single control goroutine on which every host
// API call must happen. The dispatcher never blocks that goroutine: each
// message is captured by value into a job, translated on its own worker
// goroutine, and the continuation that applies the result is posted to a
// ControlQueue that the control goroutine drains between its normal event
// turns.
//
// Continuations execute in the order they were posted. Translations
// themselves may complete in any order, so two closely spaced messages in
// the same channel can legitimately appear out of send order.
//
// At delivery time the target context is re-located by (network, channel).
// A context that disappeared mid-flight (window closed, network gone)
// costs one main-window diagnostic and the result is dropped. There is no
// cancellation of in-flight work: deactivating a session mid-flight leaves
// a small staleness window in which an already-dispatched result is still
// delivered.
//
// Failures never lose the user's message: the outcome falls back to the
// original text, a single diagnostic line is printed alongside it, and a
// rate-limited failure additionally deactivates the session so a dead quota
// does not burn a network call per message.
package dispatch
