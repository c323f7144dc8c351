package host

// Eat tells the host what to do with a command or event after a handler has
// seen it. The values mirror the conventions of IRC client plugin APIs.
type Eat int

const (
	// EatNone leaves the input unhandled; the host processes it as if the
	// plugin did not exist.
	EatNone Eat = iota
	// EatHost suppresses the host's default processing (for example its
	// default rendering of a message event) while still letting other
	// observers see the input.
	EatHost
	// EatAll consumes the input entirely.
	EatAll
)

// ContextInfo identifies a chat window by network and channel. Both strings
// compare exactly, matching the host's own naming.
type ContextInfo struct {
	Network string
	Channel string
}

// Event is one text event as delivered by the host or re-emitted by the
// plugin. Mode carries the optional user-mode character some event kinds
// include (for example "@" for ops); it is empty otherwise.
//
// Synthetic marks events re-emitted by the plugin itself. The plugin's text
// hook passes synthetic events through unmodified, which is what breaks the
// re-entrancy loop of re-emitting into one's own hook.
type Event struct {
	Kind      string
	Sender    string
	Text      string
	Mode      string
	Synthetic bool
}

// Args carries a command invocation the way IRC plugin APIs deliver it:
// Word[i] is the i-th whitespace-separated token (Word[0] is the command
// name) and WordEOL[i] is the original line from token i to the end.
type Args struct {
	Word    []string
	WordEOL []string
}

// CommandHandler processes one command invocation on the control goroutine.
type CommandHandler func(args Args) Eat

// EventHandler processes one text event on the control goroutine.
type EventHandler func(ev Event) Eat

// Context is one chat window the plugin can act on.
type Context interface {
	// Command executes a raw command line ("SAY hello") in this context.
	Command(line string) error
	// Print writes a line visible only in this context's window.
	Print(line string) error
	// Emit re-delivers a text event through the host's hook chain and, if
	// no hook suppresses it, the host's default rendering.
	Emit(ev Event) error
}

// Host is the full surface of the embedding chat client.
type Host interface {
	// RegisterCommand hooks a user command by name. Help is shown by the
	// host's own help facility.
	RegisterCommand(name, help string, h CommandHandler)
	// RegisterTextEvent hooks a named text event kind.
	RegisterTextEvent(kind string, h EventHandler)
	// CurrentContext reports the context the user is interacting with.
	CurrentContext() (ContextInfo, error)
	// FindContext resolves a context by identity; ok is false when the
	// window has been closed or the network is gone.
	FindContext(network, channel string) (Context, bool)
	// Print writes a line to the host's main window.
	Print(line string)
	// Strip removes display formatting from text, returning plain text.
	Strip(text string) (string, error)
}
