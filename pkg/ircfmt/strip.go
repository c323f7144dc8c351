package ircfmt

import "strings"

// Control codes understood by mIRC-compatible clients.
const (
	codeBold          = '\x02'
	codeColor         = '\x03'
	codeHexColor      = '\x04'
	codeReset         = '\x0f'
	codeMonospace     = '\x11'
	codeReverse       = '\x16'
	codeItalics       = '\x1d'
	codeStrikethrough = '\x1e'
	codeUnderline     = '\x1f'
)

// Color prefixes for the plugin's own output lines. The numeric values follow
// the mIRC palette most clients reuse.
const (
	Magenta = "\x0313"
	Cyan    = "\x0311"
	Reset   = "\x0f"
)

// Strip removes all mIRC formatting and color codes from s, returning the
// plain text. Color codes consume their optional foreground and background
// digit arguments; hex color codes consume up to six hex digits. Unknown
// control characters below 0x20 are preserved only for tab and newline.
func Strip(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 }) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case codeBold, codeReset, codeMonospace, codeReverse,
			codeItalics, codeStrikethrough, codeUnderline:
			// Toggle codes carry no arguments.
		case codeColor:
			i += colorArgLen(s[i+1:])
		case codeHexColor:
			i += hexColorArgLen(s[i+1:])
		default:
			if c >= 0x20 || c == '\t' || c == '\n' {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// colorArgLen returns how many bytes of s belong to a color code's arguments:
// up to two foreground digits, optionally followed by a comma and up to two
// background digits. A comma not followed by a digit is regular text.
func colorArgLen(s string) int {
	n := digits(s, 2)
	if n > 0 && n < len(s) && s[n] == ',' {
		if bg := digits(s[n+1:], 2); bg > 0 {
			n += 1 + bg
		}
	}
	return n
}

// hexColorArgLen consumes a 6-digit hex foreground and an optional ",RRGGBB"
// background, mirroring the color-code grammar.
func hexColorArgLen(s string) int {
	n := hexDigits(s, 6)
	if n > 0 && n < len(s) && s[n] == ',' {
		if bg := hexDigits(s[n+1:], 6); bg > 0 {
			n += 1 + bg
		}
	}
	return n
}

func digits(s string, max int) int {
	n := 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func hexDigits(s string, max int) int {
	n := 0
	for n < len(s) && n < max && isHex(s[n]) {
		n++
	}
	return n
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
