// Package runtime drives render passes for a mounted root.
//
// RenderRoot performs the initial pass: it renders, mounts the result
// directly into the container, subscribes the root to its hook context and
// runs every effect. From then on every state write, including one made by a
// mount effect, triggers a synchronous Rerender:
//
//  1. reset the hook cursors and call the render function
//  2. mount the new tree into a detached scratch container
//  3. diff scratch against the live container and apply the changeset
//  4. run the effects scheduled by the pass
//
// A state write made while a pass is rendering starts a nested pass, which
// finishes completely before the outer pass resumes. The outer pass keeps
// the tree it already rendered and applies it last.
//
// # Middleware
//
// Every pass runs through a middleware chain. Middleware receives a
// PassInfo whose result fields are filled once next returns:
//
//	func logPasses(next runtime.PassFunc) runtime.PassFunc {
//	    return func(ctx context.Context, info *runtime.PassInfo) error {
//	        err := next(ctx, info)
//	        log.Printf("pass %d: %d patches", info.Number, len(info.Patches))
//	        return err
//	    }
//	}
package runtime
