package pact

import (
	"testing"

	"github.com/vango-dev/pact/pkg/dom"
)

func TestRenderCounter(t *testing.T) {
	var mounts, cleanups int
	counter := func(ctx *Context) *VNode {
		n, set := UseState(ctx, 0)
		OnMount(ctx, func() { mounts++ })
		UseEffect(ctx, func() Cleanup {
			return func() { cleanups++ }
		}, []any{n.Current()})
		return H("button", Props{"onclick": func() { set(n.Current() + 1) }}, n.Current())
	}

	doc := dom.NewDocument()
	root, err := Render(doc, doc.CreateNode("div"), counter)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	button := dom.Find(root.Container(), "button")
	for i := 0; i < 3; i++ {
		if err := doc.Dispatch(button, "click", ""); err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
	}

	if got := dom.InnerMarkup(root.Container()); got != "<button>3</button>" {
		t.Errorf("markup = %q", got)
	}
	if dom.Find(root.Container(), "button") != button {
		t.Error("button was replaced")
	}
	if mounts != 1 || cleanups != 3 {
		t.Errorf("mounts = %d, cleanups = %d; want 1, 3", mounts, cleanups)
	}

	root.Unmount()
	if cleanups != 4 {
		t.Errorf("cleanups after unmount = %d, want 4", cleanups)
	}
}

func TestComponentThroughH(t *testing.T) {
	card := Component(func(props Props, children ...*VNode) *VNode {
		return H("section", Props{"className": props.Get("kind")}, children)
	})

	doc := dom.NewDocument()
	root, err := Render(doc, doc.CreateNode("div"), func(*Context) *VNode {
		return H(card, Props{"kind": "note"}, Text("hi"))
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := dom.InnerMarkup(root.Container()); got != `<section class="note">hi</section>` {
		t.Errorf("markup = %q", got)
	}
}
