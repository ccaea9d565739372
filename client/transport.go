package client

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Middleware wraps a RoundTripper the way server handler middleware wraps
// a handler.
type Middleware func(http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// ChainTransport applies middleware in reverse order so the first entry
// is the outermost wrapper.
func ChainTransport(base http.RoundTripper, mw ...Middleware) http.RoundTripper {
	chained := base
	for i := len(mw) - 1; i >= 0; i-- {
		chained = mw[i](chained)
	}
	return chained
}

// BearerMiddleware reads the current token from tokens immediately before
// each dispatch and, when present, attaches it as a bearer credential.
// A missing token is not an error at this layer: the request simply goes
// out unauthenticated and the backend rejects it if it needs auth.
func BearerMiddleware(tokens TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if tokens != nil {
				if token := tokens.Token(); token != "" {
					r.Header.Set("Authorization", "Bearer "+token)
				}
			}
			return next.RoundTrip(r)
		})
	}
}

// RequestIDMiddleware tags each outgoing request with an X-Request-Id so
// client logs can be correlated with backend logs.
func RequestIDMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get("X-Request-Id") == "" {
				r.Header.Set("X-Request-Id", uuid.NewString())
			}
			return next.RoundTrip(r)
		})
	}
}

// LoggingMiddleware logs transport failures and non-2xx responses for
// diagnostics, then lets them propagate untouched. It never swallows a
// failure and never retries; retry is a caller decision.
func LoggingMiddleware(logger zerolog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(r)
			if err != nil {
				logger.Err(err).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("request failed")
				return nil, err
			}
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				logger.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", resp.StatusCode).
					Msg("request rejected")
			}
			return resp, nil
		})
	}
}
