package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop sets an arbitrary property.
func Prop(key string, value any) Attr { return attr(key, value) }

// ID sets the id property.
func ID(id string) Attr { return attr("id", id) }

// Class sets the className property, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// StyleAttr sets the style property.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* property.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Form properties

func Type(t string) Attr            { return attr("type", t) }
func Name(n string) Attr            { return attr("name", n) }
func Value(v any) Attr              { return attr("value", v) }
func Placeholder(p string) Attr     { return attr("placeholder", p) }
func Disabled(disabled bool) Attr   { return attr("disabled", disabled) }
func Checked(checked bool) Attr     { return attr("checked", checked) }
func Draggable(draggable bool) Attr { return attr("draggable", draggable) }
func Href(href string) Attr         { return attr("href", href) }
func TitleAttr(title string) Attr   { return attr("title", title) }
