package registry

import "sync"

// ChannelKey identifies one chat context. Equality is exact string match on
// both fields, matching how the host names its windows.
type ChannelKey struct {
	Network string
	Channel string
}

// LanguagePair holds the active translation direction for a context:
// outgoing text is translated Source to Target, incoming text Target to
// Source. Both fields are canonical catalog codes.
type LanguagePair struct {
	Source string
	Target string
}

// Reversed returns the pair with the direction flipped, used for incoming
// messages (translate their text into the user's language).
func (p LanguagePair) Reversed() LanguagePair {
	return LanguagePair{Source: p.Target, Target: p.Source}
}

// Registry is a concurrent map of active translation sessions.
// The zero value is not usable; construct with New.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ChannelKey]LanguagePair
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{sessions: make(map[ChannelKey]LanguagePair)}
}

// Activate enables translation for key with the given pair, overwriting any
// previous pair for the same key. Idempotent under repeated identical calls.
func (r *Registry) Activate(key ChannelKey, pair LanguagePair) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[key] = pair
}

// Deactivate disables translation for key. It reports whether a session was
// actually removed; deactivating an absent key is a no-op.
func (r *Registry) Deactivate(key ChannelKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[key]
	delete(r.sessions, key)
	return ok
}

// DeactivateNetwork removes every session on the given network and returns
// how many were removed. Used when a connection drops and all of its
// windows go away at once.
func (r *Registry) DeactivateNetwork(network string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for key := range r.sessions {
		if key.Network == network {
			delete(r.sessions, key)
			n++
		}
	}
	return n
}

// Lookup returns the active pair for key, if any.
func (r *Registry) Lookup(key ChannelKey) (LanguagePair, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pair, ok := r.sessions[key]
	return pair, ok
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
