package plugin

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/lingokit/pkg/catalog"
	"github.com/dmitrymomot/lingokit/pkg/config"
	"github.com/dmitrymomot/lingokit/pkg/dispatch"
	"github.com/dmitrymomot/lingokit/pkg/host"
	"github.com/dmitrymomot/lingokit/pkg/logger"
	"github.com/dmitrymomot/lingokit/pkg/registry"
	"github.com/dmitrymomot/lingokit/pkg/translate"
)

const version = "0.3.0"

// Info describes the plugin to the host's plugin manager.
type Info struct {
	Name        string
	Version     string
	Description string
}

// Plugin holds the translation state for one host embedding.
type Plugin struct {
	host       host.Host
	translator translate.Translator
	languages  *catalog.Catalog
	sessions   *registry.Registry
	queue      *dispatch.ControlQueue
	dispatcher *dispatch.Dispatcher
	log        *slog.Logger
	timeout    time.Duration
	memoSize   int
}

// Option configures the plugin.
type Option func(*Plugin)

// WithCatalog replaces the built-in language catalog, for deployments that
// load their own table (see catalog.NewFromYAML). Nil is ignored.
func WithCatalog(c *catalog.Catalog) Option {
	return func(p *Plugin) {
		if c != nil {
			p.languages = c
		}
	}
}

// WithRegistry shares a session registry with the embedding, mostly useful
// in tests. Nil is ignored.
func WithRegistry(r *registry.Registry) Option {
	return func(p *Plugin) {
		if r != nil {
			p.sessions = r
		}
	}
}

// WithQueue shares a control queue with the embedding. Nil is ignored.
func WithQueue(q *dispatch.ControlQueue) Option {
	return func(p *Plugin) {
		if q != nil {
			p.queue = q
		}
	}
}

// WithLogger attaches a structured logger. The default discards records.
func WithLogger(log *slog.Logger) Option {
	return func(p *Plugin) {
		if log != nil {
			p.log = log
		}
	}
}

// WithEnvLogger builds the logger from the LOG_LEVEL and LOG_FORMAT
// environment variables and attaches it, writing to w. A nil w keeps the
// factory default (stderr). Unreadable settings fall back to the factory
// defaults; a bad env var must not keep the plugin from loading.
func WithEnvLogger(w io.Writer) Option {
	return func(p *Plugin) {
		var lopts []logger.Option
		var cfg logger.Config
		if err := config.Load(&cfg); err == nil {
			lopts = append(lopts, logger.WithConfig(cfg))
		}
		if w != nil {
			lopts = append(lopts, logger.WithOutput(w))
		}
		p.log = logger.New(lopts...)
	}
}

// WithTimeout bounds each translation call.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Plugin) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithMemoCapacity sizes the translation memory; zero disables it.
func WithMemoCapacity(capacity int) Option {
	return func(p *Plugin) { p.memoSize = capacity }
}

// New creates a plugin bound to h and translating through tr. Call
// Register afterwards to hook the commands and events.
func New(h host.Host, tr translate.Translator, opts ...Option) (*Plugin, error) {
	if h == nil {
		return nil, ErrNilHost
	}
	if tr == nil {
		return nil, ErrNilTranslator
	}

	p := &Plugin{
		host:       h,
		translator: tr,
		languages:  catalog.Default(),
		sessions:   registry.New(),
		queue:      dispatch.NewControlQueue(),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout:    dispatch.DefaultTimeout,
		memoSize:   -1, // default capacity
	}
	for _, opt := range opts {
		opt(p)
	}

	dopts := []dispatch.Option{
		dispatch.WithLogger(p.log),
		dispatch.WithTimeout(p.timeout),
	}
	if p.memoSize >= 0 {
		dopts = append(dopts, dispatch.WithMemoCapacity(p.memoSize))
	}
	p.dispatcher = dispatch.New(p.translator, p.host, p.sessions, p.queue, dopts...)

	return p, nil
}

// Info returns the plugin identity.
func (p *Plugin) Info() Info {
	return Info{
		Name:        "Language Translator",
		Version:     version,
		Description: "Instantly translated conversation in over 30 languages.",
	}
}

// Register hooks the five commands and the text events into the host and
// announces the plugin in the main window.
func (p *Plugin) Register() {
	p.host.RegisterCommand("LISTLANG", helpListLang, p.onListLang)
	p.host.RegisterCommand("SETLANG", helpSetLang, p.onSetLang)
	p.host.RegisterCommand("OFFLANG", helpOffLang, p.onOffLang)
	p.host.RegisterCommand("LSAY", helpLSay, p.sendHandler(sendConfig{Command: "SAY", Help: helpLSay}))
	p.host.RegisterCommand("LME", helpLMe, p.sendHandler(sendConfig{Command: "ME", Help: helpLMe}))

	for _, kind := range translatedEvents {
		p.host.RegisterTextEvent(kind, p.textHandler(eventConfig{Kind: kind}))
	}
	for _, kind := range partEvents {
		p.host.RegisterTextEvent(kind, p.partHandler)
	}
	p.host.RegisterTextEvent(disconnectEvent, p.disconnectHandler)

	p.host.Print(p.Info().Name + " loaded")
	p.log.Info("plugin registered",
		slog.String("version", version),
		slog.Int("languages", p.languages.Len()),
	)
}

// Sessions exposes the registry, letting embeddings inspect or clean up
// sessions with their own policies.
func (p *Plugin) Sessions() *registry.Registry {
	return p.sessions
}

// Drain executes pending translation deliveries. Must be called from the
// host's control goroutine; returns how many continuations ran.
func (p *Plugin) Drain() int {
	return p.queue.Drain()
}

// Run pumps deliveries until ctx is cancelled, for embeddings that
// dedicate a control goroutine to the plugin.
func (p *Plugin) Run(ctx context.Context) {
	p.queue.Run(ctx)
}

// currentKey resolves the context the user is acting in.
func (p *Plugin) currentKey() (registry.ChannelKey, error) {
	info, err := p.host.CurrentContext()
	if err != nil {
		return registry.ChannelKey{}, err
	}
	return registry.ChannelKey{Network: info.Network, Channel: info.Channel}, nil
}
