// Package hooks provides the hook runtime for pact.
//
// A Context owns every hook slot of one mounted root. Hooks are addressed
// by call order: the n-th UseState call of a pass always reads the n-th
// state slot, and effects use a second, independent cursor. Both cursors are
// reset when a pass begins.
//
//	func App(ctx *hooks.Context) *vdom.VNode {
//	    count, setCount := hooks.UseState(ctx, 0)
//
//	    hooks.UseEffect(ctx, func() hooks.Cleanup {
//	        log.Printf("count is %d", count.Current())
//	        return nil
//	    }, []any{count.Current()})
//
//	    return vdom.Button(vdom.OnClick(func() { setCount(count.Current() + 1) }),
//	        vdom.Textf("%d", count.Current()))
//	}
//
// Hooks must run unconditionally and in the same order on every pass. A hook
// inside a branch or a loop whose trip count varies shifts every later slot;
// this is not detected unless debug mode is enabled.
//
// # Dependency lists
//
// UseEffect takes a dependency list:
//
//   - nil: the effect runs after every pass
//   - []any{}: the effect runs once, after the first pass
//   - []any{a, b}: the effect runs when a or b differ from the previous pass
//
// Entries are compared by value for comparable types and by reference for
// maps, slices, functions and channels.
//
// # Concurrency
//
// A Context is not safe for concurrent use. Setters notify subscribers
// synchronously, and a subscriber normally runs a complete render pass before
// the setter returns.
package hooks
