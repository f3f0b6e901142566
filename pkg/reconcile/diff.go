package reconcile

import (
	"reflect"

	"github.com/vango-dev/pact/pkg/dom"
)

// Diff compares the children of the scratch container against the children
// of the live container and returns the patches that make live match
// scratch. The containers themselves are never patched.
//
// Patches that carry nodes (Replace, Append) reference scratch nodes; Apply
// moves them into the live tree, so a scratch container must not be diffed
// twice.
func Diff(scratch, live dom.Node) Changeset {
	var cs Changeset
	diffChildren(scratch, live, nil, &cs)
	return cs
}

// diff compares one scratch node with the live node at path.
func diff(next, prev dom.Node, path []int, cs *Changeset) {
	// Different kinds or tags - replace the whole subtree
	if next.Kind() != prev.Kind() || next.Tag() != prev.Tag() {
		*cs = append(*cs, Patch{
			Op:   OpReplace,
			Path: path,
			Node: next,
		})
		return
	}

	if next.Kind() == dom.TextNode {
		if next.Text() != prev.Text() {
			*cs = append(*cs, Patch{
				Op:    OpSetText,
				Path:  path,
				Value: next.Text(),
			})
		}
		return
	}

	diffProps(next, prev, path, cs)
	diffChildren(next, prev, path, cs)
}

// diffProps emits removals for live-only keys, then sets for keys that are
// new or changed on the scratch node. Both passes run in key order.
func diffProps(next, prev dom.Node, path []int, cs *Changeset) {
	for _, key := range prev.PropertyKeys() {
		if _, exists := next.Property(key); !exists {
			*cs = append(*cs, Patch{
				Op:   OpRemoveProp,
				Path: path,
				Key:  key,
			})
		}
	}

	for _, key := range next.PropertyKeys() {
		nextVal, _ := next.Property(key)
		prevVal, exists := prev.Property(key)
		if !exists || !propsEqual(prevVal, nextVal) {
			*cs = append(*cs, Patch{
				Op:    OpSetProp,
				Path:  path,
				Key:   key,
				Value: nextVal,
			})
		}
	}
}

// diffChildren compares child lists by position.
//
// Shared positions are diffed in ascending order. Extra scratch children are
// appended in ascending order. Extra live children are removed from the
// highest index down so that every Remove addresses a valid index when the
// changeset is applied in order.
func diffChildren(next, prev dom.Node, path []int, cs *Changeset) {
	nextChildren := next.Children()
	prevChildren := prev.Children()

	shared := len(prevChildren)
	if len(nextChildren) < shared {
		shared = len(nextChildren)
	}

	for i := 0; i < shared; i++ {
		diff(nextChildren[i], prevChildren[i], childPath(path, i), cs)
	}

	for i := shared; i < len(nextChildren); i++ {
		*cs = append(*cs, Patch{
			Op:    OpAppend,
			Path:  path,
			Node:  nextChildren[i],
			Index: i,
		})
	}

	for i := len(prevChildren) - 1; i >= shared; i-- {
		*cs = append(*cs, Patch{
			Op:    OpRemove,
			Path:  path,
			Index: i,
		})
	}
}

// childPath returns a new slice; sibling paths never share backing arrays.
func childPath(path []int, i int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = i
	return out
}

// propsEqual compares two prop values for equality.
// Functions never compare equal, so handlers are reassigned every pass.
func propsEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	if isFunc(a) || isFunc(b) {
		return false
	}
	// Fallback to reflect for complex types
	return reflect.DeepEqual(a, b)
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
