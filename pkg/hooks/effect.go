package hooks

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-dev/pact/internal/errors"
)

// Cleanup undoes the work of an effect. It runs before the effect runs
// again, and when the Context is disposed.
type Cleanup func()

// EffectFunc is an effect callback. It may return nil.
type EffectFunc func() Cleanup

type effectSlot struct {
	fn      EffectFunc
	deps    []any
	cleanup Cleanup
	pending bool
}

// UseEffect registers fn at the next effect ordinal.
//
// On first reach the effect is always scheduled. Later passes schedule it
// when deps is nil or differs from the list stored by the previous pass; the
// stored callback is replaced only then, so an unscheduled effect keeps the
// closure from the pass that last scheduled it.
//
// Scheduled effects run in slot order when RunEffects is called after the
// pass has been applied.
func UseEffect(c *Context, fn EffectFunc, deps []any) {
	c.mustBeRendering("UseEffect")
	c.track(HookEffect)

	idx := c.frame.effect
	c.frame.effect++

	if idx >= len(c.effects) {
		c.effects = append(c.effects, &effectSlot{
			fn:      fn,
			deps:    cloneDeps(deps),
			pending: true,
		})
		return
	}

	slot := c.effects[idx]
	if depsChanged(slot.deps, deps) {
		slot.fn = fn
		slot.deps = cloneDeps(deps)
		slot.pending = true
	}
}

// OnMount registers an effect that runs once, after the first pass.
func OnMount(c *Context, fn func()) {
	UseEffect(c, func() Cleanup {
		fn()
		return nil
	}, []any{})
}

// PendingEffects returns the slots scheduled to run, in slot order.
func (c *Context) PendingEffects() []int {
	var out []int
	for i, slot := range c.effects {
		if slot.pending {
			out = append(out, i)
		}
	}
	return out
}

// RunEffects runs every scheduled effect in slot order and returns how many
// ran.
//
// By default a panicking effect aborts the loop and the panic propagates;
// later scheduled effects stay scheduled. With effect isolation every
// scheduled effect runs and failures are returned as one E030 error.
func (c *Context) RunEffects() (int, error) {
	var (
		ran  int
		errs []error
	)

	// Slots may be appended by a pass nested inside an effect.
	for i := 0; i < len(c.effects); i++ {
		slot := c.effects[i]
		if !slot.pending {
			continue
		}
		ran++

		if !c.isolateEffects {
			slot.run()
			continue
		}
		if err := slot.runIsolated(i); err != nil {
			c.logger.Error("effect failed", "slot", i, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return ran, errors.New("E030").
			WithDetailf("%d of %d effects failed", len(errs), ran).
			Wrap(stderrors.Join(errs...))
	}
	return ran, nil
}

// run invokes the previous cleanup, then the callback, and stores the
// callback's cleanup. pending is cleared first so a pass triggered from
// inside the callback does not run the same effect again.
func (s *effectSlot) run() {
	s.pending = false
	if cleanup := s.cleanup; cleanup != nil {
		s.cleanup = nil
		cleanup()
	}
	s.cleanup = s.fn()
}

func (s *effectSlot) runIsolated(idx int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("effect %d: %w", idx, errors.FromPanic(r, "E031"))
		}
	}()
	s.run()
	return nil
}
