package host

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/dmitrymomot/lingokit/pkg/ircfmt"
)

// MemoryHost is an in-memory Host implementation. It records everything the
// plugin does (commands issued, lines printed, events emitted) and lets a
// test or simulation script user input and incoming events. Handlers run
// synchronously on the calling goroutine, which therefore plays the role of
// the host's control goroutine.
type MemoryHost struct {
	mu         sync.Mutex
	commands   map[string]commandReg
	events     map[string][]EventHandler
	contexts   map[ContextInfo]*MemoryContext
	current    ContextInfo
	hasCurrent bool
	mainLines  []string
}

type commandReg struct {
	help    string
	handler CommandHandler
}

// NewMemoryHost creates an empty host with no contexts and no current
// window.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		commands: make(map[string]commandReg),
		events:   make(map[string][]EventHandler),
		contexts: make(map[ContextInfo]*MemoryContext),
	}
}

// AddContext opens a chat window for (network, channel) and makes it the
// current context.
func (h *MemoryHost) AddContext(network, channel string) *MemoryContext {
	h.mu.Lock()
	defer h.mu.Unlock()

	info := ContextInfo{Network: network, Channel: channel}
	ctx, ok := h.contexts[info]
	if !ok {
		ctx = &MemoryContext{host: h, info: info}
		h.contexts[info] = ctx
	}
	h.current = info
	h.hasCurrent = true
	return ctx
}

// SetCurrent switches the current window. It reports false when the context
// does not exist or has been closed.
func (h *MemoryHost) SetCurrent(network, channel string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	info := ContextInfo{Network: network, Channel: channel}
	ctx, ok := h.contexts[info]
	if !ok || ctx.isClosed() {
		return false
	}
	h.current = info
	h.hasCurrent = true
	return true
}

// CloseContext simulates the window going away: FindContext stops resolving
// it and its operations fail with ErrContextClosed.
func (h *MemoryHost) CloseContext(network, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	info := ContextInfo{Network: network, Channel: channel}
	if ctx, ok := h.contexts[info]; ok {
		ctx.close()
	}
	if h.current == info {
		h.hasCurrent = false
	}
}

// RegisterCommand implements Host. Command names are case-insensitive.
func (h *MemoryHost) RegisterCommand(name, help string, handler CommandHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands[strings.ToUpper(name)] = commandReg{help: help, handler: handler}
}

// RegisterTextEvent implements Host.
func (h *MemoryHost) RegisterTextEvent(kind string, handler EventHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events[kind] = append(h.events[kind], handler)
}

// CurrentContext implements Host.
func (h *MemoryHost) CurrentContext() (ContextInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.hasCurrent {
		return ContextInfo{}, ErrNoContext
	}
	return h.current, nil
}

// FindContext implements Host.
func (h *MemoryHost) FindContext(network, channel string) (Context, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, ok := h.contexts[ContextInfo{Network: network, Channel: channel}]
	if !ok || ctx.isClosed() {
		return nil, false
	}
	return ctx, true
}

// Print implements Host; lines go to the main window transcript.
func (h *MemoryHost) Print(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mainLines = append(h.mainLines, line)
}

// Strip implements Host using the ircfmt stripper.
func (h *MemoryHost) Strip(text string) (string, error) {
	return ircfmt.Strip(text), nil
}

// Execute simulates the user typing a command line ("/SETLANG en de"; the
// leading slash is optional). It returns EatNone when no handler is
// registered for the command.
func (h *MemoryHost) Execute(line string) Eat {
	args := splitArgs(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(args.Word) == 0 {
		return EatNone
	}

	h.mu.Lock()
	reg, ok := h.commands[strings.ToUpper(args.Word[0])]
	h.mu.Unlock()
	if !ok {
		return EatNone
	}
	return reg.handler(args)
}

// DeliverText simulates the host receiving a text event in the given
// context: the context becomes current, registered hooks run, and unless
// one of them suppresses it the event is default-rendered into the
// context's transcript. The hooks' combined Eat decision is returned.
func (h *MemoryHost) DeliverText(info ContextInfo, ev Event) Eat {
	h.mu.Lock()
	ctx, ok := h.contexts[info]
	if !ok || ctx.isClosed() {
		h.mu.Unlock()
		return EatNone
	}
	h.current = info
	h.hasCurrent = true
	handlers := append([]EventHandler(nil), h.events[ev.Kind]...)
	h.mu.Unlock()

	eat := EatNone
	for _, handler := range handlers {
		if res := handler(ev); res > eat {
			eat = res
		}
		if eat == EatAll {
			break
		}
	}

	if eat == EatNone {
		ctx.render(ev)
	}
	return eat
}

// Help returns the registered help text for a command name.
func (h *MemoryHost) Help(name string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.commands[strings.ToUpper(name)].help
}

// MainLines returns a copy of the main-window transcript.
func (h *MemoryHost) MainLines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.mainLines...)
}

// splitArgs tokenizes a command line the way IRC plugin APIs do: Word holds
// the whitespace-separated tokens, WordEOL[i] the line from token i onward
// with internal spacing preserved.
func splitArgs(line string) Args {
	var args Args
	rest := strings.TrimSpace(line)
	for rest != "" {
		args.WordEOL = append(args.WordEOL, rest)
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			args.Word = append(args.Word, rest[:i])
			rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
		} else {
			args.Word = append(args.Word, rest)
			rest = ""
		}
	}
	return args
}

// MemoryContext is one simulated chat window.
type MemoryContext struct {
	mu       sync.Mutex
	host     *MemoryHost
	info     ContextInfo
	closed   bool
	commands []string
	printed  []string
	rendered []string
	emitted  []Event
}

// Info returns the context identity.
func (c *MemoryContext) Info() ContextInfo {
	return c.info
}

// Command implements Context by recording the raw command line.
func (c *MemoryContext) Command(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrContextClosed
	}
	c.commands = append(c.commands, line)
	return nil
}

// Print implements Context.
func (c *MemoryContext) Print(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrContextClosed
	}
	c.printed = append(c.printed, line)
	return nil
}

// Emit implements Context: the event is recorded, routed back through the
// host's hooks for its kind, and default-rendered unless a hook suppressed
// it. This mirrors real hosts, where an emitted event is indistinguishable
// from a received one unless Event.Synthetic marks it.
func (c *MemoryContext) Emit(ev Event) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrContextClosed
	}
	c.emitted = append(c.emitted, ev)
	c.mu.Unlock()

	c.host.DeliverText(c.info, ev)
	return nil
}

// Commands returns a copy of the raw command lines issued in this context.
func (c *MemoryContext) Commands() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.commands...)
}

// Printed returns a copy of the window-local printed lines.
func (c *MemoryContext) Printed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.printed...)
}

// Rendered returns a copy of the default-rendered event lines, formatted
// "sender: text".
func (c *MemoryContext) Rendered() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.rendered...)
}

// Emitted returns a copy of every event that went through Emit.
func (c *MemoryContext) Emitted() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.emitted...)
}

func (c *MemoryContext) render(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.rendered = append(c.rendered, fmt.Sprintf("%s: %s", ev.Sender, ev.Text))
}

func (c *MemoryContext) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *MemoryContext) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
