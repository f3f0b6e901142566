package dom

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/vango-dev/pact/pkg/vdom"
)

// propertyAttrs maps property names to their markup attribute names.
var propertyAttrs = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// Markup serializes n and its descendants as HTML.
// Function-valued properties (handlers) are omitted.
func Markup(n Node) string {
	var b strings.Builder
	_ = WriteMarkup(&b, n)
	return b.String()
}

// InnerMarkup serializes the children of n.
func InnerMarkup(n Node) string {
	var b strings.Builder
	for _, c := range n.Children() {
		_ = WriteMarkup(&b, c)
	}
	return b.String()
}

// WriteMarkup streams the markup of n to w.
func WriteMarkup(w io.Writer, n Node) error {
	if n == nil {
		return nil
	}
	if n.Kind() == TextNode {
		_, err := io.WriteString(w, escapeHTML(n.Text()))
		return err
	}

	tag := n.Tag()
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, key := range n.PropertyKeys() {
		value, _ := n.Property(key)
		if err := writeAttr(w, key, value); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if vdom.IsVoidElement(tag) {
		return nil
	}
	for _, c := range n.Children() {
		if err := WriteMarkup(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// writeAttr renders one property as an attribute.
func writeAttr(w io.Writer, key string, value any) error {
	if name, ok := propertyAttrs[key]; ok {
		key = name
	}
	if value == nil || isFunc(value) {
		return nil
	}
	switch v := value.(type) {
	case bool:
		if !v {
			return nil
		}
		_, err := io.WriteString(w, " "+key)
		return err
	default:
		_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrString(value)))
		return err
	}
}

func attrString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in attribute values.
// Whitespace that could break attribute parsing is escaped as well.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteString(escapeHTML(string(r)))
		}
	}

	return buf.String()
}
