// Package plugin wires live chat translation into a host chat client.
//
// It registers five user commands and a set of text-event hooks against a
// host.Host:
//
//   - /LISTLANG          list supported languages and their codes
//   - /SETLANG src tgt   turn translation on for the current window
//   - /OFFLANG           turn translation off for the current window
//   - /LSAY text         like /SAY, but translated before sending
//   - /LME  text         like /ME, but translated before sending
//
// While a window has an active session, outgoing text sent through /LSAY
// or /LME is translated from source to target before the underlying SAY/ME
// is issued, and incoming messages are intercepted, translated the other
// way and re-displayed: translated line first, original beneath it in cyan.
// Other participants only ever see the translated text that was actually
// sent.
//
// The command and event handlers run on the host's control goroutine and
// never block it; translation happens through the dispatch package. The
// embedding is responsible for pumping the plugin's control queue (see
// Plugin.Run and Plugin.Drain).
//
// # Usage
//
//	var cfg deepl.Config
//	if err := config.Load(&cfg); err != nil { ... }
//	backend, err := deepl.New(cfg)
//	if err != nil { ... }
//
//	p, err := plugin.New(chatHost, backend)
//	if err != nil { ... }
//	p.Register()
//	go p.Run(ctx) // or call p.Drain() from the host's idle hook
package plugin
