package el

import "github.com/vango-dev/pact/pkg/vdom"

// H creates an element from a tag name, or invokes a Component.
func H(tag any, props Props, children ...any) *VNode {
	return vdom.H(tag, props, children...)
}

func Text(content string) *VNode {
	return vdom.Text(content)
}

func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}

func If(condition bool, node *VNode) *VNode {
	return vdom.If(condition, node)
}

func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	return vdom.IfElse(condition, ifTrue, ifFalse)
}

func When(condition bool, fn func() *VNode) *VNode {
	return vdom.When(condition, fn)
}

func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}
