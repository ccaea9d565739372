// Package client is the single HTTP entry point for every backend call.
// It owns the base URL, the request timeout and the transport middleware
// chain that attaches the bearer credential and surfaces failures, so no
// call site manages headers or error logging itself.
package client

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	interrors "github.com/hemoglobin-nil/hemoglobin-go/internal/errors"
)

const defaultTimeout = 10 * time.Second

// TokenSource supplies the current bearer token. The client reads it
// immediately before each dispatch, not at construction time, because the
// token can change between calls. An empty token means the request goes
// out without an Authorization header; the backend decides whether that
// is acceptable.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-value TokenSource, mostly useful in tests.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Config carries the externalized client settings.
type Config struct {
	// BaseURL of the backend API, e.g. "https://hemoglobin-nil.com/api".
	BaseURL string

	// Timeout bounds every call. Zero means the 10s default; it must not
	// be negative.
	Timeout time.Duration
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

type Option func(*options)

type options struct {
	logger     zerolog.Logger
	transport  http.RoundTripper
	middleware []Middleware
}

// WithLogger replaces the logger used by the response-logging middleware.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTransport replaces the base RoundTripper the middleware chain wraps.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithMiddleware appends extra transport middleware inside the standard
// chain (after request-ID and bearer injection, before logging).
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) { o.middleware = append(o.middleware, mw...) }
}

// New builds a gated client around tokens. Every outgoing request carries
// "Authorization: Bearer <token>" when tokens yields a non-empty value.
func New(cfg Config, tokens TokenSource, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, interrors.ErrBaseURLRequired
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, interrors.Wrapf(interrors.ErrInvalidBaseURL, "%q", cfg.BaseURL)
	}
	if cfg.Timeout < 0 {
		return nil, interrors.ErrInvalidTimeout
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	o := &options{
		logger:    log.Logger,
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(o)
	}

	mw := []Middleware{
		RequestIDMiddleware(),
		BearerMiddleware(tokens),
	}
	mw = append(mw, o.middleware...)
	mw = append(mw, LoggingMiddleware(o.logger))

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: ChainTransport(o.transport, mw...),
		},
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
