package dom

import "sort"

// NodeKind distinguishes element nodes from text nodes.
type NodeKind uint8

const (
	ElementNode NodeKind = iota
	TextNode
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// Node is the read side of a render target node.
type Node interface {
	Kind() NodeKind
	Tag() string
	Text() string
	Property(key string) (any, bool)
	// PropertyKeys returns the property names in ascending order.
	PropertyKeys() []string
	Children() []Node
	Parent() Node
}

// Host is the set of mutation primitives supplied by the environment.
// Index arguments must be in range; callers validate before mutating.
type Host interface {
	CreateNode(tag string) Node
	CreateText(content string) Node
	SetProperty(n Node, key string, value any)
	RemoveProperty(n Node, key string)
	SetText(n Node, content string)
	// AppendChild detaches child from its current parent first.
	AppendChild(parent, child Node)
	RemoveChild(parent Node, index int)
	// ReplaceChild detaches child from its current parent first.
	ReplaceChild(parent Node, index int, child Node)
}

// Element is the Node implementation used by Document.
type Element struct {
	kind     NodeKind
	tag      string
	text     string
	props    map[string]any
	children []*Element
	parent   *Element
}

// Kind implements Node.
func (e *Element) Kind() NodeKind { return e.kind }

// Tag implements Node. Text nodes report "#text".
func (e *Element) Tag() string {
	if e.kind == TextNode {
		return "#text"
	}
	return e.tag
}

// Text implements Node.
func (e *Element) Text() string { return e.text }

// Property implements Node.
func (e *Element) Property(key string) (any, bool) {
	v, ok := e.props[key]
	return v, ok
}

// PropertyKeys implements Node.
func (e *Element) PropertyKeys() []string {
	keys := make([]string, 0, len(e.props))
	for k := range e.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Children implements Node.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// ChildCount returns the number of children without allocating.
func (e *Element) ChildCount() int { return len(e.children) }

// Parent implements Node. A detached node returns nil.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	if e.kind == TextNode {
		return e.text
	}
	var out string
	for _, c := range e.children {
		out += c.TextContent()
	}
	return out
}

// indexOf returns the position of child in e.children, or -1.
func (e *Element) indexOf(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// detach removes e from its parent, if any.
func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	if i := p.indexOf(e); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	e.parent = nil
}
