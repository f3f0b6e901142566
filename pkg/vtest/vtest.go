package vtest

import (
	"context"
	"strings"
	"testing"

	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/reconcile"
	"github.com/vango-dev/pact/pkg/runtime"
	"github.com/vango-dev/pact/pkg/vdom"
)

// Pass is the record of one pass driven by a Harness.
type Pass struct {
	Number  int
	Depth   int
	Patches reconcile.Changeset
	Effects int
	Err     error
}

// Harness mounts a component into an in-memory document.
type Harness struct {
	t      testing.TB
	doc    *dom.Document
	root   *runtime.Root
	passes []Pass
	errs   []error
}

// Mount renders the component into a fresh document and fails the test if
// the mount pass fails.
//
// Example:
//
//	h := vtest.Mount(t, App, runtime.WithDebug(true))
func Mount(t testing.TB, render runtime.RenderFunc, opts ...runtime.Option) *Harness {
	t.Helper()

	h := &Harness{t: t, doc: dom.NewDocument()}
	opts = append(opts,
		runtime.WithMiddleware(h.record),
		runtime.WithErrorHandler(func(err error) { h.errs = append(h.errs, err) }),
	)

	root, err := runtime.RenderRoot(h.doc, h.doc.CreateNode("div"), render, opts...)
	if err != nil {
		t.Fatalf("vtest: mount failed: %v", err)
	}
	h.root = root
	t.Cleanup(root.Unmount)
	return h
}

// record is a pass middleware that keeps a Pass per execution.
func (h *Harness) record(next runtime.PassFunc) runtime.PassFunc {
	return func(ctx context.Context, info *runtime.PassInfo) error {
		err := next(ctx, info)
		h.passes = append(h.passes, Pass{
			Number:  info.Number,
			Depth:   info.Depth,
			Patches: info.Patches,
			Effects: info.Effects,
			Err:     err,
		})
		return err
	}
}

// Root returns the mounted root.
func (h *Harness) Root() *runtime.Root { return h.root }

// Document returns the host document.
func (h *Harness) Document() *dom.Document { return h.doc }

// HTML returns the markup inside the container.
func (h *Harness) HTML() string { return dom.InnerMarkup(h.root.Container()) }

// Text returns the text content of the container.
func (h *Harness) Text() string { return dom.TextContent(h.root.Container()) }

// Passes returns how many passes have run, including the mount.
func (h *Harness) Passes() int { return h.root.Passes() }

// History returns every recorded pass in completion order.
// A nested pass completes before the pass that triggered it.
func (h *Harness) History() []Pass { return h.passes }

// LastPass returns the most recently completed pass.
func (h *Harness) LastPass() Pass {
	if len(h.passes) == 0 {
		return Pass{}
	}
	return h.passes[len(h.passes)-1]
}

// Errors returns the errors reported by passes after the mount.
func (h *Harness) Errors() []error { return h.errs }

// Find returns the first element with tag, failing the test if none exists.
func (h *Harness) Find(tag string) dom.Node {
	h.t.Helper()
	n := dom.Find(h.root.Container(), tag)
	if n == nil {
		h.t.Fatalf("vtest: no <%s> in:\n%s", tag, truncate(h.HTML(), 500))
	}
	return n
}

// FindAll returns every element with tag.
func (h *Harness) FindAll(tag string) []dom.Node {
	return dom.FindAll(h.root.Container(), tag)
}

// At returns the node at a child-index path such as "0.2".
func (h *Harness) At(path string) dom.Node {
	h.t.Helper()
	p, err := dom.ParsePath(path)
	if err != nil {
		h.t.Fatalf("vtest: %v", err)
	}
	n, ok := dom.NodeAt(h.root.Container(), p)
	if !ok {
		h.t.Fatalf("vtest: no node at %q", path)
	}
	return n
}

// Dispatch fires event on n, failing the test if no handler accepts it.
func (h *Harness) Dispatch(n dom.Node, event, value string) {
	h.t.Helper()
	if err := h.doc.Dispatch(n, event, value); err != nil {
		h.t.Fatalf("vtest: dispatch %s: %v", event, err)
	}
}

// Click clicks the first element with tag.
func (h *Harness) Click(tag string) {
	h.t.Helper()
	h.Dispatch(h.Find(tag), "click", "")
}

// Input types value into the first element with tag.
func (h *Harness) Input(tag, value string) {
	h.t.Helper()
	h.Dispatch(h.Find(tag), "input", value)
}

// RenderToString mounts a bare element tree and returns its markup.
//
// Example:
//
//	html := vtest.RenderToString(Card(props))
func RenderToString(node *vdom.VNode) string {
	if node == nil {
		return ""
	}
	doc := dom.NewDocument()
	holder := doc.CreateNode("div")
	reconcile.Mount(doc, node, holder)
	return dom.InnerMarkup(holder)
}

// ExpectContains asserts that the live markup contains expected.
//
// Example:
//
//	vtest.ExpectContains(t, h, "Hello, Ada")
func ExpectContains(t testing.TB, h *Harness, expected string) {
	t.Helper()
	html := h.HTML()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the live markup does not contain unexpected.
func ExpectNotContains(t testing.TB, h *Harness, unexpected string) {
	t.Helper()
	html := h.HTML()
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the live tree contains a tag.
func ExpectElement(t testing.TB, h *Harness, tag string) {
	t.Helper()
	if dom.Find(h.root.Container(), tag) == nil {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(h.HTML(), 500))
	}
}

// ExpectAttribute asserts that the live markup contains attr="value".
//
// Example:
//
//	vtest.ExpectAttribute(t, h, "class", "btn-primary")
func ExpectAttribute(t testing.TB, h *Harness, attr, value string) {
	t.Helper()
	html := h.HTML()
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectText asserts the exact text content of the container.
func ExpectText(t testing.TB, h *Harness, expected string) {
	t.Helper()
	if got := h.Text(); got != expected {
		t.Errorf("expected text %q, got %q", expected, got)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
