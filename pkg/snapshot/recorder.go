package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/runtime"
)

// Recorder writes the container markup to a Store after every pass.
type Recorder struct {
	store   Store
	timeout time.Duration
	logger  *slog.Logger
	failed  int
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithTimeout bounds each store write.
func WithTimeout(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		r.timeout = d
	}
}

// WithLogger sets the logger for write failures.
func WithLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store Store, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store:   store,
		timeout: 10 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the store key for pass n.
func Key(n int) string {
	return fmt.Sprintf("pass-%06d.html", n)
}

// Middleware returns pass middleware that records a snapshot after every
// pass, failed or not. Store failures are logged and never fail the pass.
func (r *Recorder) Middleware() runtime.Middleware {
	return func(next runtime.PassFunc) runtime.PassFunc {
		return func(ctx context.Context, info *runtime.PassInfo) error {
			err := next(ctx, info)
			if info.Root != nil {
				r.Record(ctx, info.Number, info.Root.Container())
			}
			return err
		}
	}
}

// Record writes the inner markup of container as pass n.
func (r *Recorder) Record(ctx context.Context, n int, container dom.Node) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	key := Key(n)
	if err := r.store.Put(ctx, key, []byte(dom.InnerMarkup(container))); err != nil {
		r.failed++
		r.logger.Warn("snapshot write failed", "key", key, "error", err)
	}
}

// Failed returns the number of failed writes.
func (r *Recorder) Failed() int {
	return r.failed
}
