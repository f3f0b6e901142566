package hooks

import (
	"fmt"

	"github.com/vango-dev/pact/internal/errors"
)

// State is the value of a state slot as observed by one pass.
// It is a snapshot: writes made through the setter are not visible until the
// next pass reads the slot again.
type State[T any] struct {
	value T
	slot  int
}

// Current returns the value the slot held when the pass read it.
func (s State[T]) Current() T {
	return s.value
}

// Slot returns the ordinal of the underlying state slot.
func (s State[T]) Slot() int {
	return s.slot
}

// String formats the current value.
func (s State[T]) String() string {
	return fmt.Sprint(s.value)
}

// Setter stores a new value into its slot and notifies every subscriber.
// A setter stays bound to its slot ordinal for the lifetime of the Context
// and may be called at any time, including outside a pass.
type Setter[T any] func(T)

// UseState returns the state stored at the next state ordinal, initialising
// the slot with initial on first reach.
//
// The initial value is ignored once the slot holds a value, including a zero
// value such as 0 or "".
func UseState[T any](c *Context, initial T) (State[T], Setter[T]) {
	return useState(c, "UseState", func() T { return initial })
}

// UseStateFunc is like UseState but computes the initial value lazily, on
// first reach only.
func UseStateFunc[T any](c *Context, init func() T) (State[T], Setter[T]) {
	return useState(c, "UseStateFunc", init)
}

func useState[T any](c *Context, name string, init func() T) (State[T], Setter[T]) {
	c.mustBeRendering(name)
	c.track(HookState)

	idx := c.frame.state
	c.frame.state++

	if idx >= len(c.states) {
		c.states = append(c.states, init())
	}

	var value T
	if raw := c.states[idx]; raw != nil {
		v, ok := raw.(T)
		if !ok {
			panic(errors.New("E003").WithDetailf("slot %d holds %T, %s wants %T", idx, raw, name, value))
		}
		value = v
	}

	return State[T]{value: value, slot: idx}, setterFor[T](c, idx)
}

func setterFor[T any](c *Context, idx int) Setter[T] {
	return func(v T) {
		c.states[idx] = v
		c.logger.Debug("state write", "slot", idx, "subscribers", len(c.subscribers))
		c.notify()
	}
}
