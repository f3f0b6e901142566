package runtime

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/pact/internal/config"
	"github.com/vango-dev/pact/internal/errors"
	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/hooks"
	"github.com/vango-dev/pact/pkg/vdom"
)

func counter(ctx *hooks.Context) *vdom.VNode {
	n, set := hooks.UseState(ctx, 0)
	return vdom.Div(
		vdom.H1(vdom.Textf("%d", n.Current())),
		vdom.Button(vdom.OnClick(func() { set(n.Current() + 1) }), "+1"),
	)
}

func mount(t *testing.T, render RenderFunc, opts ...Option) (*dom.Document, *Root) {
	t.Helper()
	doc := dom.NewDocument()
	root, err := RenderRoot(doc, doc.CreateNode("div"), render, opts...)
	if err != nil {
		t.Fatalf("RenderRoot() error = %v", err)
	}
	return doc, root
}

func click(t *testing.T, doc *dom.Document, root *Root, tag string) {
	t.Helper()
	n := dom.Find(root.Container(), tag)
	if n == nil {
		t.Fatalf("no <%s> in %s", tag, dom.InnerMarkup(root.Container()))
	}
	if err := doc.Dispatch(n, "click", ""); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
}

func TestRenderRootMounts(t *testing.T) {
	_, root := mount(t, counter)

	if got, want := dom.InnerMarkup(root.Container()), "<div><h1>0</h1><button>+1</button></div>"; got != want {
		t.Errorf("markup = %q, want %q", got, want)
	}
	if root.Passes() != 1 {
		t.Errorf("Passes() = %d, want 1", root.Passes())
	}
	if root.State() != StateIdle {
		t.Errorf("State() = %v, want idle", root.State())
	}
	if !root.Mounted() || root.Context().SubscriberCount() != 1 {
		t.Error("root not subscribed after mount")
	}
}

func TestClickPatchesInPlace(t *testing.T) {
	doc, root := mount(t, counter)
	h1 := dom.Find(root.Container(), "h1")

	click(t, doc, root, "button")
	click(t, doc, root, "button")

	if got := dom.TextContent(h1); got != "2" {
		t.Errorf("h1 text = %q, want 2", got)
	}
	if dom.Find(root.Container(), "h1") != h1 {
		t.Error("h1 node was replaced instead of patched")
	}
	if root.Passes() != 3 {
		t.Errorf("Passes() = %d, want 3", root.Passes())
	}
	if root.Err() != nil {
		t.Errorf("Err() = %v", root.Err())
	}
}

func TestNestedPassDuringRender(t *testing.T) {
	var seen []int
	var depths []int

	render := func(ctx *hooks.Context) *vdom.VNode {
		n, set := hooks.UseState(ctx, 0)
		seen = append(seen, n.Current())
		if n.Current() == 1 {
			set(5)
		}
		return vdom.Div(vdom.Button(vdom.OnClick(func() { set(1) }), vdom.Textf("%d", n.Current())))
	}
	record := func(next PassFunc) PassFunc {
		return func(ctx context.Context, info *PassInfo) error {
			depths = append(depths, info.Depth)
			return next(ctx, info)
		}
	}

	doc, root := mount(t, render, WithMiddleware(record))
	click(t, doc, root, "button")

	if len(seen) != 3 || seen[0] != 0 || seen[1] != 1 || seen[2] != 5 {
		t.Fatalf("seen = %v, want [0 1 5]", seen)
	}
	if len(depths) != 3 || depths[1] != 0 || depths[2] != 1 {
		t.Errorf("depths = %v, want [0 0 1]", depths)
	}
	if v, _ := root.Context().Peek(0); v != 5 {
		t.Errorf("state = %v, want 5", v)
	}
	// The outer pass applies its own snapshot after the nested pass.
	if got := dom.TextContent(root.Container()); got != "1" {
		t.Errorf("text = %q, want 1", got)
	}
	if root.Depth() != 0 || root.State() != StateIdle {
		t.Errorf("Depth() = %d, State() = %v after passes", root.Depth(), root.State())
	}
}

func TestEffectLifecycle(t *testing.T) {
	var log []string
	render := func(ctx *hooks.Context) *vdom.VNode {
		n, set := hooks.UseState(ctx, 0)
		count := n.Current()

		hooks.UseEffect(ctx, func() hooks.Cleanup {
			log = append(log, "always")
			return nil
		}, nil)
		hooks.UseEffect(ctx, func() hooks.Cleanup {
			log = append(log, "mount")
			return func() { log = append(log, "unmount") }
		}, []any{})
		hooks.UseEffect(ctx, func() hooks.Cleanup {
			log = append(log, "keyed")
			return nil
		}, []any{count / 2})

		return vdom.Button(vdom.OnClick(func() { set(count + 1) }), vdom.Textf("%d", count))
	}

	doc, root := mount(t, render)
	click(t, doc, root, "button") // count 1, key 0
	click(t, doc, root, "button") // count 2, key 1
	root.Unmount()

	want := "always mount keyed always always keyed unmount"
	if got := strings.Join(log, " "); got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
	if len(root.Container().Children()) != 0 {
		t.Error("container not emptied by Unmount")
	}
}

func TestMountEffectSetterRerenders(t *testing.T) {
	var effects int
	render := func(ctx *hooks.Context) *vdom.VNode {
		loaded, setLoaded := hooks.UseState(ctx, false)
		hooks.UseEffect(ctx, func() hooks.Cleanup {
			effects++
			setLoaded(true)
			return nil
		}, []any{})
		return vdom.Div(vdom.Textf("%v", loaded.Current()))
	}

	_, root := mount(t, render)

	if got := dom.InnerMarkup(root.Container()); got != "<div>true</div>" {
		t.Errorf("markup = %q, want <div>true</div>", got)
	}
	if root.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", root.Passes())
	}
	if effects != 1 {
		t.Errorf("mount effect ran %d times, want 1", effects)
	}
	if !root.Mounted() || root.State() != StateIdle {
		t.Errorf("Mounted() = %v, State() = %v", root.Mounted(), root.State())
	}
}

func TestMountRenderSetterDoesNotRerender(t *testing.T) {
	render := func(ctx *hooks.Context) *vdom.VNode {
		n, set := hooks.UseState(ctx, 0)
		if n.Current() == 0 {
			set(1)
		}
		return vdom.P(n.Current())
	}

	_, root := mount(t, render)

	if root.Passes() != 1 {
		t.Errorf("Passes() = %d, want 1", root.Passes())
	}
	if got := dom.InnerMarkup(root.Container()); got != "<p>0</p>" {
		t.Errorf("markup = %q, want <p>0</p>", got)
	}
	if v, _ := root.Context().Peek(0); v != 1 {
		t.Errorf("slot 0 = %v, want 1", v)
	}
}

func TestUnmountStopsRendering(t *testing.T) {
	var set hooks.Setter[int]
	_, root := mount(t, func(ctx *hooks.Context) *vdom.VNode {
		var n hooks.State[int]
		n, set = hooks.UseState(ctx, 0)
		return vdom.P(n.Current())
	})

	root.Unmount()
	root.Unmount()
	set(3)

	if root.Passes() != 1 {
		t.Errorf("Passes() = %d, want 1", root.Passes())
	}
	if err := root.Rerender(); err != nil {
		t.Errorf("Rerender() after Unmount = %v", err)
	}
	if root.Passes() != 1 {
		t.Error("Rerender ran on an unmounted root")
	}
}

func TestNilRootRerender(t *testing.T) {
	var r *Root
	if err := r.Rerender(); err != nil {
		t.Errorf("Rerender() = %v", err)
	}
	r.Unmount()
	if (&Root{}).Rerender() != nil {
		t.Error("uninitialised root should be a no-op")
	}
}

func TestRenderRootInvalid(t *testing.T) {
	doc := dom.NewDocument()
	if _, err := RenderRoot(nil, doc.CreateNode("div"), counter); !errors.HasCode(err, "E005") {
		t.Errorf("nil host: err = %v, want E005", err)
	}
	if _, err := RenderRoot(doc, nil, counter); !errors.HasCode(err, "E005") {
		t.Errorf("nil container: err = %v, want E005", err)
	}
	if _, err := RenderRoot(doc, doc.CreateNode("div"), nil); !errors.HasCode(err, "E005") {
		t.Errorf("nil render: err = %v, want E005", err)
	}
}

func TestMiddlewareOrderAndInfo(t *testing.T) {
	var order []string
	var infos []PassInfo

	named := func(name string) Middleware {
		return func(next PassFunc) PassFunc {
			return func(ctx context.Context, info *PassInfo) error {
				order = append(order, name+">")
				err := next(ctx, info)
				order = append(order, "<"+name)
				return err
			}
		}
	}
	capture := func(next PassFunc) PassFunc {
		return func(ctx context.Context, info *PassInfo) error {
			err := next(ctx, info)
			infos = append(infos, *info)
			return err
		}
	}

	doc, root := mount(t, counter, WithMiddleware(named("a"), named("b")), WithMiddleware(capture))
	click(t, doc, root, "button")

	if got := strings.Join(order[:4], " "); got != "a> b> <b <a" {
		t.Errorf("order = %q", got)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d pass infos, want 2", len(infos))
	}
	if !infos[0].Mount() || infos[0].Patches != nil {
		t.Errorf("mount info = %+v", infos[0])
	}
	update := infos[1]
	if update.Mount() || update.Nested() || update.Number != 1 {
		t.Errorf("update info = %+v", update)
	}
	if len(update.Patches) != 2 {
		t.Errorf("update patches = %v, want SetText and SetProp", update.Patches.Strings())
	}
	if update.Root != root {
		t.Error("update info Root not set")
	}
}

func TestEffectIsolation(t *testing.T) {
	var reported []error
	render := func(ctx *hooks.Context) *vdom.VNode {
		hooks.UseEffect(ctx, func() hooks.Cleanup { panic("broken effect") }, []any{})
		return vdom.P("ok")
	}

	_, root := mount(t, render,
		WithEffectIsolation(true),
		WithErrorHandler(func(err error) { reported = append(reported, err) }),
	)

	if !errors.HasCode(root.Err(), "E030") {
		t.Errorf("Err() = %v, want E030", root.Err())
	}
	if len(reported) != 1 {
		t.Errorf("reported %d errors, want 1", len(reported))
	}
	if got := dom.InnerMarkup(root.Container()); got != "<p>ok</p>" {
		t.Errorf("markup = %q", got)
	}
}

func TestEffectFailFast(t *testing.T) {
	defer func() {
		if r := recover(); r != "broken effect" {
			t.Errorf("recover() = %v, want broken effect", r)
		}
	}()

	doc := dom.NewDocument()
	RenderRoot(doc, doc.CreateNode("div"), func(ctx *hooks.Context) *vdom.VNode {
		hooks.UseEffect(ctx, func() hooks.Cleanup { panic("broken effect") }, nil)
		return vdom.P("ok")
	})
	t.Error("RenderRoot returned after a panicking effect")
}

func TestDebugHookOrder(t *testing.T) {
	var reported error
	render := func(ctx *hooks.Context) *vdom.VNode {
		n, set := hooks.UseState(ctx, 0)
		if n.Current() > 0 {
			hooks.UseState(ctx, "conditional")
		}
		return vdom.Button(vdom.OnClick(func() { set(1) }), vdom.Textf("%d", n.Current()))
	}

	doc, root := mount(t, render,
		WithDebug(true),
		WithErrorHandler(func(err error) { reported = err }),
	)
	click(t, doc, root, "button")

	if !errors.HasCode(reported, "E002") {
		t.Fatalf("reported = %v, want E002", reported)
	}
	if got := dom.TextContent(root.Container()); got != "0" {
		t.Errorf("text = %q, failed pass should not patch", got)
	}
}

func TestSingleRootEnforced(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	doc, root := mount(t, counter, WithLogger(logger))
	doc.AppendChild(root.Container(), doc.CreateNode("aside"))

	if err := root.Rerender(); err != nil {
		t.Fatalf("Rerender() error = %v", err)
	}
	if n := len(root.Container().Children()); n != 1 {
		t.Errorf("container has %d children, want 1", n)
	}
	if !strings.Contains(buf.String(), "extra top-level nodes") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func TestRenderNil(t *testing.T) {
	show := true
	var set hooks.Setter[bool]
	_, root := mount(t, func(ctx *hooks.Context) *vdom.VNode {
		var s hooks.State[bool]
		s, set = hooks.UseState(ctx, show)
		return vdom.If(s.Current(), vdom.P("visible"))
	})

	set(false)
	if n := len(root.Container().Children()); n != 0 {
		t.Errorf("container has %d children, want 0", n)
	}
	set(true)
	if got := dom.InnerMarkup(root.Container()); got != "<p>visible</p>" {
		t.Errorf("markup = %q", got)
	}
}

func TestWithConfig(t *testing.T) {
	cfg := config.New()
	cfg.Debug = true
	cfg.Effects.Isolate = true

	o := defaultOptions()
	WithConfig(cfg)(&o)
	WithConfig(nil)(&o)
	if !o.debug || !o.isolate {
		t.Errorf("options = %+v", o)
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateRendering.String() != "rendering" || State(9).String() != "unknown" {
		t.Error("unexpected State names")
	}
}
