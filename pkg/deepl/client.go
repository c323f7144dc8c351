package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/dmitrymomot/lingokit/pkg/translate"
)

// request is the DeepL wire format. Text always carries exactly one string;
// message batching is out of scope.
type request struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang,omitempty"`
	TargetLang string   `json:"target_lang"`
}

type response struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Client is a translate.Translator backed by the DeepL API.
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a structured logger. The default discards records.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithBreakerSettings replaces the circuit breaker configuration. Name and
// ReadyToTrip are preserved if unset.
func WithBreakerSettings(st gobreaker.Settings) Option {
	return func(c *Client) {
		if st.Name == "" {
			st.Name = breakerName
		}
		if st.ReadyToTrip == nil {
			st.ReadyToTrip = defaultReadyToTrip
		}
		c.breaker = gobreaker.NewCircuitBreaker(st)
	}
}

const breakerName = "deepl"

// defaultReadyToTrip opens the breaker after five consecutive failures,
// enough to ride out a flaky request without letting a dead provider stall
// every chat message for the full timeout.
func defaultReadyToTrip(counts gobreaker.Counts) bool {
	return counts.ConsecutiveFailures >= 5
}

// New creates a DeepL client. The API key may be empty; see Config.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		Timeout:     30 * time.Second,
		ReadyToTrip: defaultReadyToTrip,
	})

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Translate implements translate.Translator. The call is bounded by the
// configured timeout on top of whatever deadline ctx already carries.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("%w: set DEEPL_API_KEY", translate.ErrNoCredential)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body := request{
		Text:       []string{text},
		TargetLang: apiCode(target),
	}
	if source != translate.Auto {
		body.SourceLang = apiCode(source)
	}

	out, err := c.breaker.Execute(func() (any, error) {
		return c.post(ctx, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.WarnContext(ctx, "deepl call rejected by open circuit")
			return "", fmt.Errorf("%w: provider temporarily unavailable", translate.ErrProtocol)
		}
		return "", err
	}
	return out.(string), nil
}

func (c *Client) post(ctx context.Context, body request) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", translate.ErrProtocol, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", translate.ErrProtocol, err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", translate.ErrProtocol, err)
	}
	defer res.Body.Close()

	c.log.DebugContext(ctx, "deepl response",
		slog.Int("status", res.StatusCode),
		slog.Duration("elapsed", time.Since(started)),
		slog.String("target", body.TargetLang),
	)

	switch {
	case res.StatusCode == http.StatusForbidden || res.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: provider responded with status %d", translate.ErrRateLimited, res.StatusCode)
	case res.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: provider responded with status %d", translate.ErrProtocol, res.StatusCode)
	}

	var decoded response
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", translate.ErrProtocol, err)
	}
	if len(decoded.Translations) == 0 {
		return "", fmt.Errorf("%w: no translation returned", translate.ErrProtocol)
	}
	return decoded.Translations[0].Text, nil
}
