// Package host defines the boundary between the translation plugin and the
// chat client embedding it.
//
// The Host interface is the complete surface the plugin consumes: command
// and text-event registration, current-context resolution, context lookup by
// (network, channel), main-window printing and formatting stripping. A chat
// client integration implements Host once; everything else in this module is
// client-agnostic.
//
// Handlers return an Eat value telling the host what to do with the input
// after the plugin has seen it: pass it through untouched, suppress the
// host's own default processing, or consume it entirely.
//
// Events re-emitted by the plugin carry Synthetic=true so that the plugin's
// own event hook can recognize and ignore its echo instead of translating it
// again. Hosts must preserve the flag when routing emitted events back
// through their hook chain.
//
// All Host methods except registration are only invoked from the single
// control goroutine of the host; see the dispatch package for how results
// computed on worker goroutines are marshaled back.
//
// MemoryHost is a complete in-memory implementation used by the package
// tests and by embedders who want to script a host in integration tests.
package host
