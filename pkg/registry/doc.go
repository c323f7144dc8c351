// Package registry tracks which chat contexts have live translation enabled
// and which language pair each one uses.
//
// A context is identified by its ChannelKey (network plus channel, exact
// string match following host semantics). A key is present in the registry
// if and only if translation is currently active for that context: Activate
// inserts or overwrites, Deactivate removes and is a no-op when the key is
// absent, Lookup is a read-only query.
//
// One registry instance is shared by every command and event handler for the
// lifetime of the plugin. All operations are safe for concurrent use; a
// single lock guards the whole map since commands are rare relative to
// network latency and per-key granularity would buy nothing.
//
// Entries are never cleaned up automatically. A context that is closed while
// active simply leaves an orphaned entry behind; the event surface may call
// Deactivate (or DeactivateNetwork on disconnect) as a cleanup policy.
package registry
