package el

import "github.com/vango-dev/pact/pkg/hooks"

// UseState returns the state at the next state slot. See hooks.UseState.
func UseState[T any](ctx *Context, initial T) (hooks.State[T], hooks.Setter[T]) {
	return hooks.UseState(ctx, initial)
}

// UseStateFunc is UseState with a lazily computed initial value.
func UseStateFunc[T any](ctx *Context, init func() T) (hooks.State[T], hooks.Setter[T]) {
	return hooks.UseStateFunc(ctx, init)
}

// UseEffect registers an effect at the next effect slot. See hooks.UseEffect.
func UseEffect(ctx *Context, fn EffectFunc, deps []any) {
	hooks.UseEffect(ctx, fn, deps)
}

// OnMount registers an effect that runs once, after the first pass.
func OnMount(ctx *Context, fn func()) {
	hooks.OnMount(ctx, fn)
}
