// Package reconcile mounts element trees into a render target and patches
// the live target to match a freshly mounted scratch tree.
//
// A render pass mounts the new element tree into a detached scratch
// container, diffs the scratch container's children against the live
// container's children, and applies the resulting Changeset to the live
// container:
//
//	scratch := host.CreateNode("div")
//	reconcile.Mount(host, tree, scratch)
//	cs := reconcile.Diff(scratch, live)
//	err := reconcile.Apply(host, cs, live)
//
// Children are compared by position only. Reordering a list is seen as a
// series of per-position updates or replacements; there is no keyed
// matching.
package reconcile
