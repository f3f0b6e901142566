package runtime

import (
	"context"
	"time"

	"github.com/vango-dev/pact/internal/errors"
	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/hooks"
	"github.com/vango-dev/pact/pkg/reconcile"
	"github.com/vango-dev/pact/pkg/vdom"
)

// RenderFunc renders the whole tree of a root. Hooks are called on ctx.
type RenderFunc func(ctx *hooks.Context) *vdom.VNode

// State is the scheduler state of a root.
type State uint8

const (
	StateIdle State = iota
	StateRendering
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Root is a render function mounted into a container node.
// A Root is not safe for concurrent use.
type Root struct {
	host      dom.Host
	container dom.Node
	render    RenderFunc
	ctx       *hooks.Context
	opts      options
	pass      PassFunc

	// passCtx is the context of the innermost running pass. Nested passes
	// start from it.
	passCtx context.Context

	state       State
	depth       int
	passes      int
	err         error
	mounted     bool
	unsubscribe func()
}

// RenderRoot mounts render into container and returns the live root.
//
// Effect failures of the mount pass (with effect isolation) are reported to
// the error handler and Err, not returned.
func RenderRoot(host dom.Host, container dom.Node, render RenderFunc, opts ...Option) (*Root, error) {
	if host == nil || container == nil || render == nil {
		return nil, errors.New("E005")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Root{
		host:      host,
		container: container,
		render:    render,
		opts:      o,
	}
	r.ctx = hooks.NewContext(
		hooks.WithDebug(o.debug),
		hooks.WithEffectIsolation(o.isolate),
		hooks.WithLogger(o.logger),
	)
	r.pass = chain(o.middleware, r.runPass)

	if err := r.execute(); err != nil && !errors.HasCode(err, "E030") {
		r.detach()
		return nil, err
	}
	return r, nil
}

// attach marks the root mounted and routes state writes to Rerender. The
// mount pass calls it between the mount and its effects, so setters called
// while the first tree renders are stored without a pass, and setters called
// from mount effects run a nested pass.
func (r *Root) attach() {
	r.mounted = true
	r.unsubscribe = r.ctx.Subscribe(func() {
		r.Rerender()
	})
}

func (r *Root) detach() {
	r.mounted = false
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Rerender runs one update pass. It is a no-op on a nil, unmounted or
// uninitialised root.
func (r *Root) Rerender() error {
	if r == nil || r.ctx == nil || !r.mounted {
		return nil
	}
	return r.execute()
}

func (r *Root) execute() error {
	info := &PassInfo{
		Number: r.passes,
		Depth:  r.depth,
		Root:   r,
	}
	r.passes++

	r.depth++
	r.state = StateRendering
	defer func() {
		r.depth--
		if r.depth == 0 {
			r.state = StateIdle
		}
	}()

	parent := r.passCtx
	if parent == nil {
		parent = context.Background()
	}

	err := r.pass(parent, info)
	r.err = err
	if err != nil {
		r.report(err)
	}
	return err
}

// runPass is the innermost PassFunc.
func (r *Root) runPass(ctx context.Context, info *PassInfo) error {
	start := time.Now()
	prev := r.passCtx
	r.passCtx = ctx
	defer func() {
		r.passCtx = prev
		info.Duration = time.Since(start)
	}()

	var tree *vdom.VNode
	if err := r.ctx.Run(func() { tree = r.render(r.ctx) }); err != nil {
		return err
	}

	if info.Mount() {
		reconcile.Mount(r.host, tree, r.container)
		r.attach()
	} else {
		scratch := r.host.CreateNode(r.opts.scratchTag)
		reconcile.Mount(r.host, tree, scratch)

		r.checkSingleRoot()
		info.Patches = reconcile.Diff(scratch, r.container)
		if err := reconcile.Apply(r.host, info.Patches, r.container); err != nil {
			return err
		}
	}

	n, err := r.ctx.RunEffects()
	info.Effects = n

	r.opts.logger.Debug("pass complete",
		"pass", info.Number,
		"depth", info.Depth,
		"patches", len(info.Patches),
		"effects", n,
	)
	return err
}

// checkSingleRoot warns when something other than the root added top-level
// nodes to the container. The diff removes them, since the scratch container
// never holds more than one.
func (r *Root) checkSingleRoot() {
	if extra := len(r.container.Children()) - 1; extra > 0 {
		r.opts.logger.Warn("container holds extra top-level nodes, removing", "count", extra)
	}
}

func (r *Root) report(err error) {
	if r.opts.onError != nil {
		r.opts.onError(err)
		return
	}
	r.opts.logger.Error("render pass failed", "error", err)
}

// Unmount runs every effect cleanup in reverse slot order, stops listening
// for state writes and empties the container. Later Rerender calls are
// no-ops.
func (r *Root) Unmount() {
	if r == nil || !r.mounted {
		return
	}
	r.detach()
	r.ctx.Dispose()

	for i := len(r.container.Children()) - 1; i >= 0; i-- {
		r.host.RemoveChild(r.container, i)
	}
}

// Passes returns the number of passes started, including the mount.
func (r *Root) Passes() int {
	return r.passes
}

// State returns the scheduler state.
func (r *Root) State() State {
	return r.state
}

// Depth returns the current pass nesting depth.
func (r *Root) Depth() int {
	return r.depth
}

// Context returns the hook context of the root.
func (r *Root) Context() *hooks.Context {
	return r.ctx
}

// Container returns the live container node.
func (r *Root) Container() dom.Node {
	return r.container
}

// Host returns the render target host.
func (r *Root) Host() dom.Host {
	return r.host
}

// Err returns the error of the most recent pass.
func (r *Root) Err() error {
	return r.err
}

// Mounted reports whether the root is mounted.
func (r *Root) Mounted() bool {
	return r != nil && r.mounted
}
