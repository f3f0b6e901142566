// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/vango-dev/pact/pkg/vdom"

func Prop(key string, value any) Attr {
	return vdom.Prop(key, value)
}
func ID(id string) Attr {
	return vdom.ID(id)
}
func Class(classes ...string) Attr {
	return vdom.Class(classes...)
}
func StyleAttr(style string) Attr {
	return vdom.StyleAttr(style)
}
func Data(key, value string) Attr {
	return vdom.Data(key, value)
}
func Type(t string) Attr {
	return vdom.Type(t)
}
func Name(n string) Attr {
	return vdom.Name(n)
}
func Value(v any) Attr {
	return vdom.Value(v)
}
func Placeholder(p string) Attr {
	return vdom.Placeholder(p)
}
func Disabled(disabled bool) Attr {
	return vdom.Disabled(disabled)
}
func Checked(checked bool) Attr {
	return vdom.Checked(checked)
}
func Draggable(draggable bool) Attr {
	return vdom.Draggable(draggable)
}
func Href(href string) Attr {
	return vdom.Href(href)
}
func TitleAttr(title string) Attr {
	return vdom.TitleAttr(title)
}
