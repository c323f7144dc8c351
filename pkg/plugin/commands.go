package plugin

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/lingokit/pkg/dispatch"
	"github.com/dmitrymomot/lingokit/pkg/host"
	"github.com/dmitrymomot/lingokit/pkg/ircfmt"
	"github.com/dmitrymomot/lingokit/pkg/registry"
)

// Help strings shown by the host's /HELP facility and on usage errors.
const (
	helpListLang = "/LISTLANG - Lists languages supported and their abbreviations. This command takes no parameters."
	helpSetLang  = "/SETLANG <src> <tgt> - Sets source and target languages for the channel."
	helpOffLang  = "/OFFLANG - Deactivates translation on the channel. This command takes no parameters."
	helpLSay     = "/LSAY <message> - Sends a translated message to the channel."
	helpLMe      = "/LME <message> - Sends a channel action message translated."
)

const listColumns = 3

// onListLang prints the language table in three columns.
func (p *Plugin) onListLang(args host.Args) host.Eat {
	if len(args.Word) != 1 {
		p.host.Print("USAGE: " + helpListLang)
		return host.EatAll
	}

	p.host.Print("")
	p.host.Print(ircfmt.Cyan + "------------------------ Supported Languages ------------------------")

	entries := p.languages.List()
	for i := 0; i < len(entries); i += listColumns {
		var row strings.Builder
		row.WriteString(ircfmt.Cyan)
		for j := i; j < i+listColumns; j++ {
			if j < len(entries) {
				fmt.Fprintf(&row, "%-15s%-3s", entries[j].Name, entries[j].Code)
			} else {
				fmt.Fprintf(&row, "%-15s%-3s", "", "")
			}
			if j < i+listColumns-1 {
				row.WriteString("        ")
			}
		}
		p.host.Print(strings.TrimRight(row.String(), " "))
	}
	p.host.Print("")
	return host.EatAll
}

// onSetLang validates both language tokens and activates the session for
// the current window.
func (p *Plugin) onSetLang(args host.Args) host.Eat {
	if len(args.Word) != 3 {
		p.host.Print("USAGE: " + helpSetLang)
		return host.EatAll
	}

	src, srcOK := p.languages.Lookup(args.Word[1])
	tgt, tgtOK := p.languages.Lookup(args.Word[2])
	if !srcOK || !tgtOK {
		p.host.Print(ircfmt.Magenta + "BAD LANGUAGE PARAMETERS. Use /LISTLANG to get a list of supported languages.")
		return host.EatAll
	}
	if src.Code == tgt.Code {
		p.host.Print(ircfmt.Magenta + "Source and target languages must not be the same.")
		return host.EatAll
	}

	key, err := p.currentKey()
	if err != nil {
		p.host.Print(ircfmt.Magenta + "Failed to get channel information during activation.")
		return host.EatAll
	}

	p.sessions.Activate(key, registry.LanguagePair{Source: src.Code, Target: tgt.Code})
	p.host.Print(ircfmt.Magenta + fmt.Sprintf(
		"TRANSLATION IS ON FOR THIS CHANNEL! %s (you) to %s (them).", src.Name, tgt.Name))
	return host.EatAll
}

// onOffLang deactivates the session for the current window. Turning off an
// inactive window is a no-op that still prints the notice.
func (p *Plugin) onOffLang(args host.Args) host.Eat {
	if len(args.Word) != 1 {
		p.host.Print("USAGE: " + helpOffLang)
		return host.EatAll
	}

	key, err := p.currentKey()
	if err != nil {
		p.host.Print(ircfmt.Magenta + "Failed to get channel information during deactivation.")
		return host.EatAll
	}

	p.sessions.Deactivate(key)
	p.host.Print(ircfmt.Magenta + "Translation turned OFF for this channel.")
	return host.EatAll
}

// sendConfig is the per-command configuration for the translating send
// commands: which underlying command carries the translated payload.
type sendConfig struct {
	Command string // "SAY" or "ME"
	Help    string
}

// sendHandler builds the /LSAY and /LME handler for one sendConfig. With
// no active session the command is not consumed, so the host treats it as
// unknown input.
func (p *Plugin) sendHandler(cfg sendConfig) host.CommandHandler {
	return func(args host.Args) host.Eat {
		key, err := p.currentKey()
		if err != nil {
			p.host.Print(ircfmt.Magenta + "Translator Error: Basic failure retrieving channel information.")
			return host.EatAll
		}

		pair, active := p.sessions.Lookup(key)
		if !active {
			return host.EatNone
		}

		if len(args.WordEOL) < 2 || strings.TrimSpace(args.WordEOL[1]) == "" {
			p.host.Print("USAGE: " + cfg.Help)
			return host.EatAll
		}
		original := args.WordEOL[1]

		plain, err := p.host.Strip(original)
		if err != nil {
			p.host.Print(ircfmt.Magenta + "Translator Error: Unable to strip original message.")
			return host.EatAll
		}

		p.dispatcher.Outgoing(dispatch.OutgoingJob{
			Key:         key,
			Pair:        pair,
			SendCommand: cfg.Command,
			Text:        plain,
			Original:    original,
		})
		return host.EatAll
	}
}
