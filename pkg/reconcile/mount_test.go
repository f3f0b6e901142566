package reconcile

import (
	"testing"

	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/vdom"
)

// container mounts node into a fresh container of doc.
func container(doc *dom.Document, node *vdom.VNode) dom.Node {
	c := doc.CreateNode("div")
	Mount(doc, node, c)
	return c
}

func TestMountHello(t *testing.T) {
	doc := dom.NewDocument()
	c := container(doc, vdom.H("div", nil, "Hello"))

	children := c.Children()
	if len(children) != 1 {
		t.Fatalf("container has %d children, want 1", len(children))
	}
	div := children[0]
	if div.Tag() != "div" {
		t.Errorf("Tag = %q, want div", div.Tag())
	}
	if got := dom.TextContent(div); got != "Hello" {
		t.Errorf("text = %q, want Hello", got)
	}
}

func TestMountAssignsProperties(t *testing.T) {
	doc := dom.NewDocument()
	clicked := false
	tree := vdom.Div(
		vdom.Draggable(true),
		vdom.Button(vdom.OnClick(func() { clicked = true }), "+1"),
		vdom.H("p", nil, 42),
	)
	c := container(doc, tree)

	if got := dom.InnerMarkup(c); got != `<div draggable><button>+1</button><p>42</p></div>` {
		t.Errorf("markup = %s", got)
	}

	btn := dom.Find(c, "button")
	if err := doc.Dispatch(btn, "click", ""); err != nil {
		t.Fatal(err)
	}
	if !clicked {
		t.Error("handler property was not installed")
	}
}

func TestMountReturnsNode(t *testing.T) {
	doc := dom.NewDocument()
	c := doc.CreateNode("div")

	if Mount(doc, nil, c) != nil {
		t.Error("Mount(nil) should return nil")
	}
	text := Mount(doc, vdom.Text("x"), c)
	if text == nil || text.Kind() != dom.TextNode || text.Parent() != c {
		t.Errorf("Mount(text) = %v", text)
	}
	if len(c.Children()) != 1 {
		t.Errorf("container has %d children", len(c.Children()))
	}
}

func TestMountIgnoresExistingTarget(t *testing.T) {
	doc := dom.NewDocument()
	c := container(doc, vdom.P("first"))
	Mount(doc, vdom.P("second"), c)

	if got := dom.InnerMarkup(c); got != "<p>first</p><p>second</p>" {
		t.Errorf("markup = %s", got)
	}
}
