// Package ircfmt handles mIRC-style text formatting: stripping control codes
// from message bodies before they are sent to a translation backend, and the
// small set of color constants the plugin uses for its own output lines.
//
// Translation providers choke on raw control bytes embedded in chat text, so
// every message is reduced to plain text first. The stripper understands the
// codes emitted by common clients: bold, colors (including two-digit
// foreground/background pairs and 6-digit hex colors), reset, monospace,
// reverse, italics, strikethrough and underline.
//
// # Usage
//
//	plain := ircfmt.Strip("\x0304Hello\x03 \x02world\x02")
//	// plain == "Hello world"
//
//	line := ircfmt.Magenta + "Translator Error: something went wrong"
package ircfmt
