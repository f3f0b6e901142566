// Package vdom provides the element model for pact.
//
// An element tree is plain data: every render pass builds a fresh tree of
// VNode values that the reconciler compares against the live render target.
// Nodes are either elements (a tag, a property map and ordered children) or
// text leaves.
//
// # Constructing Trees
//
// H is the general constructor. A string tag produces an element node; a
// Component tag is called immediately with the props and children and its
// result is used verbatim:
//
//	H("div", Props{"draggable": true},
//	    H("h2", nil, "Hello ", name.Current(), "!"),
//	    H(Counter, Props{"start": 3}),
//	)
//
// Components have no identity of their own. A component is just a function
// returning a node; any hooks it calls belong to the caller's hook sequence.
//
// # Element API
//
// The variadic factories read more naturally for static markup:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    Button(OnClick(increment), Text("+1")),
//	)
//
// Event handlers are ordinary function-valued props. They are assigned to
// the target node like any other property.
package vdom
