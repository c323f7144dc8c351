package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lingokit/pkg/async"
	"github.com/dmitrymomot/lingokit/pkg/host"
	"github.com/dmitrymomot/lingokit/pkg/ircfmt"
	"github.com/dmitrymomot/lingokit/pkg/memo"
	"github.com/dmitrymomot/lingokit/pkg/registry"
	"github.com/dmitrymomot/lingokit/pkg/translate"
)

// DefaultTimeout bounds one translation call.
const DefaultTimeout = 5 * time.Second

// ContextFinder is the slice of the host the dispatcher needs at delivery
// time: re-locating a context and printing to the main window.
type ContextFinder interface {
	FindContext(network, channel string) (host.Context, bool)
	Print(line string)
}

// Outcome is the result of one translation attempt. Text always holds
// something displayable: the translation on success, the original text on
// failure. Diagnostic is empty on success and exactly one line otherwise.
type Outcome struct {
	Text        string
	Diagnostic  string
	RateLimited bool
}

// OutgoingJob captures everything needed to translate and send one user
// message: the context identity, the send command to re-issue ("SAY" or
// "ME"), the stripped text for the provider and the original text for the
// local echo.
type OutgoingJob struct {
	Key         registry.ChannelKey
	Pair        registry.LanguagePair
	SendCommand string
	Text        string
	Original    string
}

// IncomingJob captures one received event: the context identity, the active
// pair (the dispatcher reverses it so their text is translated into the
// user's language), the original event and its stripped text.
type IncomingJob struct {
	Key   registry.ChannelKey
	Pair  registry.LanguagePair
	Event host.Event
	Text  string
}

// Dispatcher runs the async translate-then-deliver workflow.
type Dispatcher struct {
	translator translate.Translator
	finder     ContextFinder
	sessions   *registry.Registry
	queue      *ControlQueue
	cache      *memo.Cache
	log        *slog.Logger
	timeout    time.Duration
}

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithLogger attaches a structured logger. The default discards records.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithTimeout bounds each translation call. Non-positive values keep the
// default.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithMemoCapacity sizes the translation memory. Zero disables it.
func WithMemoCapacity(capacity int) Option {
	return func(d *Dispatcher) {
		if capacity == 0 {
			d.cache = nil
			return
		}
		d.cache = memo.New(capacity)
	}
}

// New creates a dispatcher. The translator, finder, session registry and
// queue are all required; options tune the rest.
func New(translator translate.Translator, finder ContextFinder, sessions *registry.Registry, queue *ControlQueue, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		translator: translator,
		finder:     finder,
		sessions:   sessions,
		queue:      queue,
		cache:      memo.New(memo.DefaultCapacity),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Outgoing translates job's text from Source to Target on a worker goroutine and
// posts the delivery continuation. It returns immediately; the Future
// completes when the worker finishes (delivery happens separately when the
// control goroutine drains the queue).
func (d *Dispatcher) Outgoing(job OutgoingJob) *async.Future[Outcome] {
	id := uuid.NewString()
	d.log.Debug("outgoing translation dispatched",
		slog.String("job_id", id),
		slog.String("network", job.Key.Network),
		slog.String("channel", job.Key.Channel),
		slog.String("source", job.Pair.Source),
		slog.String("target", job.Pair.Target),
	)

	return async.Async(context.Background(), job, func(ctx context.Context, job OutgoingJob) (Outcome, error) {
		out := d.translateOne(ctx, id, job.Text, job.Pair)
		d.queue.Post(func() { d.deliverOutgoing(id, job, out) })
		return out, nil
	})
}

// Incoming translates the event's text with the pair reversed (their
// language into the user's) on a worker goroutine and posts the delivery
// continuation.
func (d *Dispatcher) Incoming(job IncomingJob) *async.Future[Outcome] {
	id := uuid.NewString()
	d.log.Debug("incoming translation dispatched",
		slog.String("job_id", id),
		slog.String("network", job.Key.Network),
		slog.String("channel", job.Key.Channel),
		slog.String("kind", job.Event.Kind),
		slog.String("sender", job.Event.Sender),
	)

	return async.Async(context.Background(), job, func(ctx context.Context, job IncomingJob) (Outcome, error) {
		out := d.translateOne(ctx, id, job.Text, job.Pair.Reversed())
		d.queue.Post(func() { d.deliverIncoming(id, job, out) })
		return out, nil
	})
}

// translateOne performs the bounded provider call, consulting the
// translation memory first. Failures map to an Outcome that keeps the
// original text and carries a one-line diagnostic.
func (d *Dispatcher) translateOne(ctx context.Context, id, text string, pair registry.LanguagePair) Outcome {
	key := memo.Key{Source: pair.Source, Target: pair.Target, Text: text}
	if d.cache != nil {
		if hit, ok := d.cache.Get(key); ok {
			d.log.Debug("translation memory hit", slog.String("job_id", id))
			return Outcome{Text: hit}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	translated, err := d.translator.Translate(ctx, text, pair.Source, pair.Target)
	if err != nil {
		d.log.Warn("translation failed",
			slog.String("job_id", id),
			slog.Any("error", err),
			slog.Bool("rate_limited", translate.IsRateLimited(err)),
		)
		return Outcome{
			Text:        text,
			Diagnostic:  fmt.Sprintf("Translation Error: %v", err),
			RateLimited: translate.IsRateLimited(err),
		}
	}

	if d.cache != nil {
		d.cache.Put(key, translated)
	}
	return Outcome{Text: translated}
}

// deliverOutgoing runs on the control goroutine: re-issue the underlying
// send command with the translated (or fallback) payload, echo the original
// locally, surface any diagnostic.
func (d *Dispatcher) deliverOutgoing(id string, job OutgoingJob, out Outcome) {
	ctx, ok := d.finder.FindContext(job.Key.Network, job.Key.Channel)
	if !ok {
		d.dropResult(id, job.Key)
		return
	}

	if err := ctx.Command(job.SendCommand + " " + out.Text); err != nil {
		d.finder.Print(ircfmt.Magenta + fmt.Sprintf("Translator Error: %v", err))
		return
	}
	d.printResult(ctx, job.Key, job.Original, out)
}

// deliverIncoming runs on the control goroutine: re-emit the event with the
// translated text and the synthetic marker, then echo the original beneath.
func (d *Dispatcher) deliverIncoming(id string, job IncomingJob, out Outcome) {
	ctx, ok := d.finder.FindContext(job.Key.Network, job.Key.Channel)
	if !ok {
		d.dropResult(id, job.Key)
		return
	}

	ev := job.Event
	ev.Text = out.Text
	ev.Synthetic = true
	if err := ctx.Emit(ev); err != nil {
		d.finder.Print(ircfmt.Magenta + fmt.Sprintf("Translator Error: %v", err))
		return
	}
	d.printResult(ctx, job.Key, job.Event.Text, out)
}

// printResult echoes the original text and, on failure, one diagnostic
// line; a rate-limited failure also turns the session off.
func (d *Dispatcher) printResult(ctx host.Context, key registry.ChannelKey, original string, out Outcome) {
	_ = ctx.Print(ircfmt.Cyan + original)

	if out.Diagnostic != "" {
		_ = ctx.Print(ircfmt.Magenta + out.Diagnostic)
	}
	if out.RateLimited {
		d.sessions.Deactivate(key)
		_ = ctx.Print(ircfmt.Magenta + "Translation turned OFF for this channel.")
		d.log.Info("session deactivated after rate limit",
			slog.String("network", key.Network),
			slog.String("channel", key.Channel),
		)
	}
}

// dropResult handles a context that vanished while the translation was in
// flight: one main-window diagnostic, nothing else.
func (d *Dispatcher) dropResult(id string, key registry.ChannelKey) {
	d.finder.Print(ircfmt.Magenta + fmt.Sprintf(
		"Translator: context %s/%s is gone, translation result dropped.",
		key.Network, key.Channel,
	))
	d.log.Warn("context vanished before delivery",
		slog.String("job_id", id),
		slog.String("network", key.Network),
		slog.String("channel", key.Channel),
	)
}
