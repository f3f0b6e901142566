// Package el provides the UI DSL for pact.
//
// It re-exports element constructors, attribute helpers, event helpers and
// the hook API, so a component file needs a single dot-import:
//
//	import . "github.com/vango-dev/pact/el"
//
//	func Counter(ctx *Context) *VNode {
//	    n, set := UseState(ctx, 0)
//	    return Button(OnClick(func() { set(n.Current() + 1) }), Textf("%d", n.Current()))
//	}
package el
