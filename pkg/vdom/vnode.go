package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is one node of an element tree.
// A VNode is treated as immutable once the render function returns it.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Properties and event handlers, may be nil
	Children []*VNode // Child nodes, never nil for elements
	Text     string   // For KindText
}

// Props holds properties and event handlers.
type Props map[string]any

// Get returns the prop value for key, or nil.
func (p Props) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// Attr represents a single property.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler prop.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// Component renders props and children into a node.
type Component func(props Props, children ...*VNode) *VNode

// IsText reports whether v is a text leaf.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// TextContent returns the concatenated text of v and its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var out string
	for _, child := range v.Children {
		out += child.TextContent()
	}
	return out
}
