// Package pact provides the public API for the pact UI runtime.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/pact"
//
// Usage:
//
//	func Counter(ctx *pact.Context) *pact.VNode {
//	    n, set := pact.UseState(ctx, 0)
//	    return pact.H("button", pact.Props{"onclick": func() { set(n.Current() + 1) }},
//	        n.Current())
//	}
//
//	doc := dom.NewDocument()
//	root, err := pact.Render(doc, doc.CreateNode("div"), Counter)
package pact

import (
	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/hooks"
	"github.com/vango-dev/pact/pkg/runtime"
	"github.com/vango-dev/pact/pkg/vdom"
)

// =============================================================================
// Element model
// =============================================================================

type VNode = vdom.VNode
type Props = vdom.Props
type Component = vdom.Component

// H creates an element from a tag name, or invokes a Component with props
// and children.
func H(tag any, props Props, children ...any) *VNode {
	return vdom.H(tag, props, children...)
}

// Text creates a text leaf.
func Text(content string) *VNode {
	return vdom.Text(content)
}

// =============================================================================
// Hooks
// =============================================================================

type Context = hooks.Context
type Cleanup = hooks.Cleanup
type EffectFunc = hooks.EffectFunc

// UseState returns the state at the next state slot and its setter.
// The initial value is only used on the first pass.
func UseState[T any](ctx *Context, initial T) (hooks.State[T], hooks.Setter[T]) {
	return hooks.UseState(ctx, initial)
}

// UseEffect registers fn at the next effect slot. A nil deps slice runs the
// effect after every pass; an empty one runs it once.
func UseEffect(ctx *Context, fn EffectFunc, deps []any) {
	hooks.UseEffect(ctx, fn, deps)
}

// OnMount runs fn once, after the first pass.
func OnMount(ctx *Context, fn func()) {
	hooks.OnMount(ctx, fn)
}

// =============================================================================
// Rendering
// =============================================================================

type Root = runtime.Root
type RenderFunc = runtime.RenderFunc
type Option = runtime.Option

// Render mounts render into container and re-renders it whenever a state
// setter is called.
func Render(host dom.Host, container dom.Node, render RenderFunc, opts ...Option) (*Root, error) {
	return runtime.RenderRoot(host, container, render, opts...)
}
