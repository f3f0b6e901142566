package vdom

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/pact/internal/errors"
)

// H constructs an element tree node.
//
// If tag is a Component (or a func with the same signature) it is invoked
// with props and the normalized children, and its result is returned without
// wrapping. If tag is a string, an element node is returned. Props may be nil.
// Any other tag type panics with E020.
func H(tag any, props Props, children ...any) *VNode {
	switch t := tag.(type) {
	case string:
		return &VNode{
			Kind:     KindElement,
			Tag:      t,
			Props:    props,
			Children: normalizeChildren(children),
		}
	case Component:
		return t(props, normalizeChildren(children)...)
	case func(Props, ...*VNode) *VNode:
		return t(props, normalizeChildren(children)...)
	default:
		panic(errors.New("E020").WithDetailf("tag of type %T", tag))
	}
}

// normalizeChildren flattens child arguments into nodes.
func normalizeChildren(children []any) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, child := range children {
		out = appendChild(out, child)
	}
	return out
}

// appendChild converts a single child argument and appends it to out.
// Strings and numbers become text leaves; nil and bool values are dropped.
func appendChild(out []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case nil, bool:
		return out
	case *VNode:
		if v != nil {
			out = append(out, v)
		}
	case []*VNode:
		for _, c := range v {
			if c != nil {
				out = append(out, c)
			}
		}
	case []any:
		for _, c := range v {
			out = appendChild(out, c)
		}
	case string:
		out = append(out, Text(v))
	case int:
		out = append(out, Text(strconv.Itoa(v)))
	case int8, int16, int32, int64:
		out = append(out, Text(fmt.Sprintf("%d", v)))
	case uint, uint8, uint16, uint32, uint64:
		out = append(out, Text(fmt.Sprintf("%d", v)))
	case float32:
		out = append(out, Text(strconv.FormatFloat(float64(v), 'f', -1, 32)))
	case float64:
		out = append(out, Text(strconv.FormatFloat(v, 'f', -1, 64)))
	case fmt.Stringer:
		out = append(out, Text(v.String()))
	}
	return out
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, EventHandler, Props, or any child
// accepted by H.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props[a.Key] = a.Value
				}
			}

		case EventHandler:
			node.Props[v.Event] = v.Handler

		case Props:
			for key, value := range v {
				node.Props[key] = value
			}

		default:
			node.Children = appendChild(node.Children, arg)
		}
	}

	return node
}
