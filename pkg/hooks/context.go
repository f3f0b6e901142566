package hooks

import (
	"log/slog"

	"github.com/vango-dev/pact/internal/errors"
)

// Context owns the state slots, effect slots and subscribers of one root.
type Context struct {
	states  []any
	effects []*effectSlot

	subscribers []subscriber
	nextSubID   uint64

	// frame is the cursor state of the pass currently rendering.
	frame frame

	debug       bool
	shape       []HookType // hook sequence of the first completed pass
	shapeLocked bool

	isolateEffects bool
	disposed       bool

	logger *slog.Logger
}

// frame is saved and restored around nested passes.
type frame struct {
	active bool
	state  int
	effect int
	seen   []HookType
}

type subscriber struct {
	id uint64
	fn func()
}

// Option configures a Context.
type Option func(*Context)

// WithDebug enables hook order validation. The hook sequence of the first
// pass is recorded and every later pass must match it exactly.
func WithDebug(enabled bool) Option {
	return func(c *Context) {
		c.debug = enabled
	}
}

// WithEffectIsolation runs each effect under recover and reports failures
// from RunEffects instead of letting the first panic abort the loop.
func WithEffectIsolation(enabled bool) Option {
	return func(c *Context) {
		c.isolateEffects = enabled
	}
}

// WithLogger sets the logger used for state writes and effect failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// NewContext creates an empty hook context.
func NewContext(opts ...Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Run executes render as one render pass.
//
// Both cursors start at zero. The previous frame is restored afterwards, so a
// pass nested inside another pass (a setter called while rendering) leaves
// the outer pass's cursors untouched. In debug mode a hook order violation
// is returned as an E002 error; other panics propagate.
func (c *Context) Run(render func()) (err error) {
	prev := c.frame
	c.frame = frame{active: true}

	defer func() {
		cur := c.frame
		c.frame = prev
		if r := recover(); r != nil {
			if pe, ok := r.(*errors.PactError); ok && pe.Code == "E002" {
				err = pe
				return
			}
			panic(r)
		}
		err = c.checkShape(cur)
	}()

	render()
	return nil
}

// Rendering reports whether a pass is currently executing.
func (c *Context) Rendering() bool {
	return c.frame.active
}

// mustBeRendering panics with E001 when no pass is active.
func (c *Context) mustBeRendering(hook string) {
	if !c.frame.active {
		panic(errors.New("E001").WithDetailf("%s called outside a render pass", hook))
	}
}

// Subscribe registers fn to run after every state write.
// Subscribers run in registration order. The returned function removes fn.
func (c *Context) Subscribe(fn func()) (unsubscribe func()) {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// SubscriberCount returns the number of registered subscribers.
func (c *Context) SubscriberCount() int {
	return len(c.subscribers)
}

// notify invokes every subscriber, synchronously.
func (c *Context) notify() {
	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	for _, s := range subs {
		s.fn()
	}
}

// StateCount returns the number of allocated state slots.
func (c *Context) StateCount() int {
	return len(c.states)
}

// EffectCount returns the number of allocated effect slots.
func (c *Context) EffectCount() int {
	return len(c.effects)
}

// Peek returns the value stored in state slot i.
func (c *Context) Peek(i int) (any, bool) {
	if i < 0 || i >= len(c.states) {
		return nil, false
	}
	return c.states[i], true
}

// Dispose runs every stored effect cleanup in reverse slot order and drops
// all subscribers. State writes after Dispose are stored but trigger nothing.
func (c *Context) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.subscribers = nil

	for i := len(c.effects) - 1; i >= 0; i-- {
		slot := c.effects[i]
		slot.pending = false
		if cleanup := slot.cleanup; cleanup != nil {
			slot.cleanup = nil
			cleanup()
		}
	}
}

// Disposed reports whether Dispose has run.
func (c *Context) Disposed() bool {
	return c.disposed
}
