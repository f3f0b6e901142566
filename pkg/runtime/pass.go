package runtime

import (
	"context"
	"time"

	"github.com/vango-dev/pact/pkg/reconcile"
)

// PassInfo describes one render pass.
type PassInfo struct {
	// Number is the zero-based pass sequence number. Pass 0 is the mount.
	Number int

	// Depth is the nesting depth; 0 for a top-level pass.
	Depth int

	// Patches is the changeset applied by the pass. Nil for the mount pass.
	Patches reconcile.Changeset

	// Effects is the number of effects run by the pass.
	Effects int

	// Duration is the wall time of the pass.
	Duration time.Duration

	// Root is the root running the pass.
	Root *Root
}

// Mount reports whether this is the initial mount pass.
func (p *PassInfo) Mount() bool {
	return p.Number == 0
}

// Nested reports whether the pass ran inside another pass.
func (p *PassInfo) Nested() bool {
	return p.Depth > 0
}

// PassFunc performs (or wraps) one render pass.
type PassFunc func(ctx context.Context, info *PassInfo) error

// Middleware wraps a PassFunc.
type Middleware func(next PassFunc) PassFunc

// chain composes middleware so the first one listed is outermost.
func chain(mw []Middleware, final PassFunc) PassFunc {
	p := final
	for i := len(mw) - 1; i >= 0; i-- {
		p = mw[i](p)
	}
	return p
}
