// This file re-exports vdom element constructors for the el package.
package el

import "github.com/vango-dev/pact/pkg/vdom"

func IsVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}
func Header(args ...any) *VNode {
	return vdom.Header(args...)
}
func Footer(args ...any) *VNode {
	return vdom.Footer(args...)
}
func Main(args ...any) *VNode {
	return vdom.Main(args...)
}
func Nav(args ...any) *VNode {
	return vdom.Nav(args...)
}
func Section(args ...any) *VNode {
	return vdom.Section(args...)
}
func Article(args ...any) *VNode {
	return vdom.Article(args...)
}
func H1(args ...any) *VNode {
	return vdom.H1(args...)
}
func H2(args ...any) *VNode {
	return vdom.H2(args...)
}
func H3(args ...any) *VNode {
	return vdom.H3(args...)
}
func Div(args ...any) *VNode {
	return vdom.Div(args...)
}
func P(args ...any) *VNode {
	return vdom.P(args...)
}
func Span(args ...any) *VNode {
	return vdom.Span(args...)
}
func Pre(args ...any) *VNode {
	return vdom.Pre(args...)
}
func Ul(args ...any) *VNode {
	return vdom.Ul(args...)
}
func Ol(args ...any) *VNode {
	return vdom.Ol(args...)
}
func Li(args ...any) *VNode {
	return vdom.Li(args...)
}
func Hr(args ...any) *VNode {
	return vdom.Hr(args...)
}
func A(args ...any) *VNode {
	return vdom.A(args...)
}
func Strong(args ...any) *VNode {
	return vdom.Strong(args...)
}
func Em(args ...any) *VNode {
	return vdom.Em(args...)
}
func Code(args ...any) *VNode {
	return vdom.Code(args...)
}
func Br(args ...any) *VNode {
	return vdom.Br(args...)
}
func Form(args ...any) *VNode {
	return vdom.Form(args...)
}
func Input(args ...any) *VNode {
	return vdom.Input(args...)
}
func Textarea(args ...any) *VNode {
	return vdom.Textarea(args...)
}
func Select(args ...any) *VNode {
	return vdom.Select(args...)
}
func Option(args ...any) *VNode {
	return vdom.Option(args...)
}
func Button(args ...any) *VNode {
	return vdom.Button(args...)
}
func Label(args ...any) *VNode {
	return vdom.Label(args...)
}
func Table(args ...any) *VNode {
	return vdom.Table(args...)
}
func Tr(args ...any) *VNode {
	return vdom.Tr(args...)
}
func Td(args ...any) *VNode {
	return vdom.Td(args...)
}
func CustomElement(tag string, args ...any) *VNode {
	return vdom.CustomElement(tag, args...)
}
