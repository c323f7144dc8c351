package plugin

import (
	"github.com/dmitrymomot/lingokit/pkg/dispatch"
	"github.com/dmitrymomot/lingokit/pkg/host"
	"github.com/dmitrymomot/lingokit/pkg/ircfmt"
)

// translatedEvents are the text event kinds whose payload is translated
// when the window has an active session.
var translatedEvents = []string{
	"Channel Message",
	"Channel Msg Hilight",
	"Channel Action",
	"Channel Action Hilight",
	"Private Message",
	"Private Message to Dialog",
	"Private Action",
	"Private Action to Dialog",
}

// partEvents end the session for the window they fire in.
var partEvents = []string{
	"You Part",
	"You Part with Reason",
}

const disconnectEvent = "Disconnected"

// eventConfig is the per-hook configuration snapshot for translated text
// events.
type eventConfig struct {
	Kind string
}

// textHandler builds the hook for one translated event kind. Synthetic
// events are the dispatcher's own re-emissions and must pass through
// untouched, or every translated line would be translated again.
func (p *Plugin) textHandler(cfg eventConfig) host.EventHandler {
	return func(ev host.Event) host.Eat {
		if ev.Synthetic || ev.Text == "" {
			return host.EatNone
		}

		key, err := p.currentKey()
		if err != nil {
			p.host.Print(ircfmt.Magenta + "Translator Error: Basic failure retrieving channel information.")
			return host.EatHost
		}

		pair, active := p.sessions.Lookup(key)
		if !active {
			return host.EatNone
		}

		plain, err := p.host.Strip(ev.Text)
		if err != nil {
			p.host.Print(ircfmt.Magenta + "Translator Error: Unable to strip received message.")
			return host.EatHost
		}

		ev.Kind = cfg.Kind
		p.dispatcher.Incoming(dispatch.IncomingJob{
			Key:   key,
			Pair:  pair,
			Event: ev,
			Text:  plain,
		})
		return host.EatHost
	}
}

// partHandler ends the session when the user leaves the channel.
func (p *Plugin) partHandler(host.Event) host.Eat {
	if key, err := p.currentKey(); err == nil {
		p.sessions.Deactivate(key)
	}
	return host.EatNone
}

// disconnectHandler ends every session on the network that dropped.
func (p *Plugin) disconnectHandler(host.Event) host.Eat {
	if key, err := p.currentKey(); err == nil {
		p.sessions.DeactivateNetwork(key.Network)
	}
	return host.EatNone
}
