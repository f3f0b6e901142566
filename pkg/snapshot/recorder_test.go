package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/hooks"
	"github.com/vango-dev/pact/pkg/runtime"
	"github.com/vango-dev/pact/pkg/vdom"
)

type failingStore struct{}

func (failingStore) Put(context.Context, string, []byte) error {
	return fmt.Errorf("disk full")
}

func toggle(ctx *hooks.Context) *vdom.VNode {
	on, set := hooks.UseState(ctx, false)
	return vdom.Button(vdom.OnClick(func() { set(!on.Current()) }), vdom.If(on.Current(), vdom.Strong("on")))
}

func TestRecorderWritesEveryPass(t *testing.T) {
	store := NewMemoryStore()
	rec := NewRecorder(store)

	doc := dom.NewDocument()
	root, err := runtime.RenderRoot(doc, doc.CreateNode("div"), toggle, runtime.WithMiddleware(rec.Middleware()))
	if err != nil {
		t.Fatalf("RenderRoot() error = %v", err)
	}
	doc.Dispatch(dom.Find(root.Container(), "button"), "click", "")

	keys := store.Keys()
	if len(keys) != 2 || keys[0] != "pass-000000.html" || keys[1] != "pass-000001.html" {
		t.Fatalf("Keys() = %v", keys)
	}
	first, _ := store.Get(keys[0])
	second, _ := store.Get(keys[1])
	if string(first) != "<button></button>" || string(second) != "<button><strong>on</strong></button>" {
		t.Errorf("snapshots = %q, %q", first, second)
	}
	if rec.Failed() != 0 {
		t.Errorf("Failed() = %d", rec.Failed())
	}
}

func TestRecorderFailureDoesNotFailPass(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(failingStore{}, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	doc := dom.NewDocument()
	_, err := runtime.RenderRoot(doc, doc.CreateNode("div"), toggle, runtime.WithMiddleware(rec.Middleware()))
	if err != nil {
		t.Fatalf("RenderRoot() error = %v", err)
	}
	if rec.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", rec.Failed())
	}
	if !strings.Contains(buf.String(), "snapshot write failed") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestKey(t *testing.T) {
	if got := Key(42); got != "pass-000042.html" {
		t.Errorf("Key(42) = %q", got)
	}
}
