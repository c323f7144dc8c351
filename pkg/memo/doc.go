// Package memo is a small thread-safe LRU used as a translation memory.
//
// Chat traffic repeats itself: greetings, acknowledgements, emotes. Caching
// recent (source, target, text) results lets the dispatch core skip the
// provider call entirely for a repeat, which both hides network latency and
// stretches the provider's free-tier quota. Only successful translations
// are stored; failures always retry on the next message.
package memo
