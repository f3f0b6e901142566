package hooks

import "github.com/vango-dev/pact/internal/errors"

// HookType identifies the type of hook call for order validation.
type HookType uint8

const (
	HookState HookType = iota + 1
	HookEffect
)

// String returns a human-readable name for the hook type.
func (h HookType) String() string {
	switch h {
	case HookState:
		return "State"
	case HookEffect:
		return "Effect"
	default:
		return "Unknown"
	}
}

// track records a hook call. In debug mode, once the first pass has locked
// the hook shape, a call that does not match it panics with E002.
func (c *Context) track(ht HookType) {
	if !c.debug {
		return
	}

	idx := len(c.frame.seen)
	c.frame.seen = append(c.frame.seen, ht)
	if !c.shapeLocked {
		return
	}

	if idx >= len(c.shape) {
		panic(errors.New("E002").WithDetailf("extra %s hook at index %d", ht, idx))
	}
	if expected := c.shape[idx]; expected != ht {
		panic(errors.New("E002").WithDetailf("expected %s at index %d, got %s", expected, idx, ht))
	}
}

// checkShape locks the shape after the first pass and validates later ones.
func (c *Context) checkShape(f frame) error {
	if !c.debug {
		return nil
	}
	if !c.shapeLocked {
		c.shape = f.seen
		c.shapeLocked = true
		return nil
	}
	if len(f.seen) < len(c.shape) {
		return errors.New("E002").WithDetailf("expected %d hooks, got %d", len(c.shape), len(f.seen))
	}
	return nil
}
