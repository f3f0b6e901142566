package runtime

import (
	"log/slog"

	"github.com/vango-dev/pact/internal/config"
)

type options struct {
	logger     *slog.Logger
	middleware []Middleware
	debug      bool
	isolate    bool
	onError    func(error)
	scratchTag string
}

// Option configures a Root.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:     slog.Default(),
		scratchTag: "div",
	}
}

// WithLogger sets the logger for pass reports and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMiddleware appends pass middleware. The first middleware added is the
// outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, mw...)
	}
}

// WithDebug enables hook order validation.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithEffectIsolation runs effects under recover and reports their failures
// as E030 errors instead of propagating the first panic.
func WithEffectIsolation(enabled bool) Option {
	return func(o *options) {
		o.isolate = enabled
	}
}

// WithErrorHandler sets a callback for pass errors. Rerender is usually
// called from a setter, so this is the only place such errors surface.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithScratchTag sets the tag of the detached scratch container.
func WithScratchTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.scratchTag = tag
		}
	}
}

// WithConfig applies the debug and effect settings of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		o.debug = cfg.Debug
		o.isolate = cfg.Effects.Isolate
	}
}
