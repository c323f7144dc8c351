// Package deepl implements translate.Translator against the DeepL REST API.
//
// Each call posts a single-string request to the /v2/translate endpoint and
// reads back the first translated segment. Failures are classified per the
// translate package contract: a missing API key fails fast locally with
// translate.ErrNoCredential before any network I/O; HTTP 403 and 429 map to
// translate.ErrRateLimited; everything else (transport errors, timeouts,
// unexpected response bodies) maps to translate.ErrProtocol.
//
// A circuit breaker wraps the HTTP call so that a provider outage degrades
// to fast local failures instead of a 5-second stall per chat message. An
// open breaker reports as a protocol failure and the breaker re-probes
// after its cool-down.
//
// # Usage
//
//	var cfg deepl.Config
//	if err := config.Load(&cfg); err != nil { ... }
//
//	client, err := deepl.New(cfg)
//	if err != nil { ... }
//
//	out, err := client.Translate(ctx, "Hello there", "en", "de")
package deepl
