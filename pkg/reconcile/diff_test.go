package reconcile

import (
	"reflect"
	"testing"

	"github.com/vango-dev/pact/internal/errors"
	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/vdom"
)

// diffTrees mounts prev and next into separate containers and diffs them.
func diffTrees(prev, next *vdom.VNode) (Changeset, *dom.Document, dom.Node) {
	doc := dom.NewDocument()
	live := container(doc, prev)
	scratch := container(doc, next)
	return Diff(scratch, live), doc, live
}

func TestDiffIdenticalTrees(t *testing.T) {
	tree := func() *vdom.VNode {
		return vdom.Div(vdom.Class("card"), vdom.H2("Title"), vdom.P("Body"))
	}
	cs, _, _ := diffTrees(tree(), tree())

	if len(cs) != 0 {
		t.Errorf("expected 0 patches, got %v", cs.Strings())
	}
}

func TestDiffSameTagNeverReplaces(t *testing.T) {
	tree := func() *vdom.VNode {
		return vdom.Div(
			vdom.Button(vdom.OnClick(func() {}), "+1"),
			vdom.Ul(vdom.Li("a"), vdom.Li("b")),
		)
	}
	cs, _, _ := diffTrees(tree(), tree())

	counts := cs.Counts()
	if counts[OpReplace] != 0 {
		t.Errorf("unexpected Replace patches: %v", cs.Strings())
	}
	// Handlers are functions and are reassigned every pass.
	if counts[OpSetProp] != 1 || len(cs) != 1 {
		t.Errorf("patches = %v, want one SetProp for onclick", cs.Strings())
	}
	if cs[0].Key != "onclick" || !reflect.DeepEqual(cs[0].Path, []int{0, 0}) {
		t.Errorf("patch = %s", cs[0])
	}
}

func TestDiffTagChange(t *testing.T) {
	prev := vdom.Div(vdom.P("a"), vdom.P("b"))
	next := vdom.Span(vdom.P("a"), vdom.P("c"), vdom.P("d"))
	cs, _, _ := diffTrees(prev, next)

	if len(cs) != 1 {
		t.Fatalf("expected 1 patch, got %v", cs.Strings())
	}
	if cs[0].Op != OpReplace {
		t.Errorf("Op = %v, want Replace", cs[0].Op)
	}
	if !reflect.DeepEqual(cs[0].Path, []int{0}) {
		t.Errorf("Path = %v, want [0]", cs[0].Path)
	}
	if cs[0].Node.Tag() != "span" {
		t.Errorf("Node = <%s>, want span", cs[0].Node.Tag())
	}
}

func TestDiffKindChange(t *testing.T) {
	cs, _, _ := diffTrees(vdom.Div("Hello"), vdom.Div(vdom.Span("Hello")))

	if len(cs) != 1 || cs[0].Op != OpReplace {
		t.Fatalf("patches = %v, want one Replace", cs.Strings())
	}
	if !reflect.DeepEqual(cs[0].Path, []int{0, 0}) {
		t.Errorf("Path = %v", cs[0].Path)
	}
}

func TestDiffTextChange(t *testing.T) {
	cs, _, _ := diffTrees(vdom.H2("Counter value: ", 0), vdom.H2("Counter value: ", 1))

	if len(cs) != 1 {
		t.Fatalf("patches = %v", cs.Strings())
	}
	p := cs[0]
	if p.Op != OpSetText || p.Value != "1" || !reflect.DeepEqual(p.Path, []int{0, 1}) {
		t.Errorf("patch = %s", p)
	}
}

func TestDiffProps(t *testing.T) {
	prev := vdom.Div(vdom.Class("old"), vdom.ID("test"), vdom.Prop("tabIndex", 1))
	next := vdom.Div(vdom.Class("new"), vdom.TitleAttr("hello"), vdom.Prop("tabIndex", 1))
	cs, _, _ := diffTrees(prev, next)

	want := []string{
		"RemoveProp [0] id",
		"SetProp [0] className=new",
		"SetProp [0] title=hello",
	}
	if got := cs.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("patches = %v, want %v", got, want)
	}
}

func TestDiffComplexPropValues(t *testing.T) {
	prev := vdom.Div(vdom.Prop("data", []int{1, 2}), vdom.Prop("n", 1))
	next := vdom.Div(vdom.Prop("data", []int{1, 2}), vdom.Prop("n", int64(1)))
	cs, _, _ := diffTrees(prev, next)

	if len(cs) != 1 || cs[0].Key != "n" {
		t.Errorf("patches = %v, want only n (type changed)", cs.Strings())
	}
}

func TestDiffChildrenAppend(t *testing.T) {
	cs, _, _ := diffTrees(vdom.Ul(vdom.Li("a")), vdom.Ul(vdom.Li("a"), vdom.Li("b"), vdom.Li("c")))

	want := []string{"Append [0] <li>", "Append [0] <li>"}
	if got := cs.Strings(); !reflect.DeepEqual(got, want) {
		t.Fatalf("patches = %v, want %v", got, want)
	}
	if cs[0].Index != 1 || cs[1].Index != 2 {
		t.Errorf("append indices = %d,%d", cs[0].Index, cs[1].Index)
	}
}

func TestDiffChildrenRemoveDescending(t *testing.T) {
	cs, _, _ := diffTrees(
		vdom.Ul(vdom.Li("a"), vdom.Li("b"), vdom.Li("c"), vdom.Li("d")),
		vdom.Ul(vdom.Li("a")),
	)

	want := []string{"Remove [0] #3", "Remove [0] #2", "Remove [0] #1"}
	if got := cs.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("patches = %v, want %v", got, want)
	}
}

func TestDiffReorderIsPositional(t *testing.T) {
	cs, _, _ := diffTrees(
		vdom.Ul(vdom.Li("a"), vdom.Li("b"), vdom.Li("c")),
		vdom.Ul(vdom.Li("c"), vdom.Li("a"), vdom.Li("b")),
	)

	want := []string{
		`SetText [0.0.0] "c"`,
		`SetText [0.1.0] "a"`,
		`SetText [0.2.0] "b"`,
	}
	if got := cs.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("patches = %v, want %v", got, want)
	}
}

func TestApplyMakesLiveMatchScratch(t *testing.T) {
	tests := []struct {
		name       string
		prev, next func() *vdom.VNode
	}{
		{
			name: "counter text",
			prev: func() *vdom.VNode { return vdom.Div(vdom.H2("Counter value: ", 0), vdom.Button("+1")) },
			next: func() *vdom.VNode { return vdom.Div(vdom.H2("Counter value: ", 1), vdom.Button("+1")) },
		},
		{
			name: "grow and shrink nested",
			prev: func() *vdom.VNode {
				return vdom.Div(vdom.Ul(vdom.Li("a"), vdom.Li("b"), vdom.Li("c")), vdom.P("x"))
			},
			next: func() *vdom.VNode {
				return vdom.Div(vdom.Ul(vdom.Li("a")), vdom.P("x"), vdom.P("y"), vdom.Span("z"))
			},
		},
		{
			name: "tag swap in the middle",
			prev: func() *vdom.VNode { return vdom.Div(vdom.P("1"), vdom.P("2"), vdom.P("3")) },
			next: func() *vdom.VNode { return vdom.Div(vdom.P("1"), vdom.Span("2"), vdom.P("3", vdom.Em("!"))) },
		},
		{
			name: "props churn",
			prev: func() *vdom.VNode { return vdom.Input(vdom.Type("text"), vdom.Value("Ada"), vdom.Disabled(true)) },
			next: func() *vdom.VNode { return vdom.Input(vdom.Type("text"), vdom.Value("Grace"), vdom.Placeholder("name")) },
		},
		{
			name: "root replaced",
			prev: func() *vdom.VNode { return vdom.Div("old") },
			next: func() *vdom.VNode { return vdom.Section("new") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, doc, live := diffTrees(tt.prev(), tt.next())
			if err := Apply(doc, cs, live); err != nil {
				t.Fatalf("Apply: %v", err)
			}

			want := dom.InnerMarkup(container(dom.NewDocument(), tt.next()))
			if got := dom.InnerMarkup(live); got != want {
				t.Errorf("live = %s\nwant   %s", got, want)
			}
		})
	}
}

func TestApplyPatchesInPlace(t *testing.T) {
	doc := dom.NewDocument()
	live := container(doc, vdom.Div(vdom.H2("Counter value: ", 0)))
	h2 := dom.Find(live, "h2")

	scratch := container(doc, vdom.Div(vdom.H2("Counter value: ", 1)))
	doc.ResetStats()
	if err := Apply(doc, Diff(scratch, live), live); err != nil {
		t.Fatal(err)
	}

	if dom.Find(live, "h2") != h2 {
		t.Error("matching element was rebuilt instead of patched")
	}
	stats := doc.Stats()
	if stats.TextsSet != 1 || stats.Replaces != 0 || stats.Appends != 0 {
		t.Errorf("stats = %+v, want a single SetText", stats)
	}
}

func TestApplyErrors(t *testing.T) {
	doc := dom.NewDocument()
	live := container(doc, vdom.Div())

	tests := []struct {
		name  string
		patch Patch
		code  string
	}{
		{"missing node", Patch{Op: OpSetProp, Path: []int{0, 4}, Key: "id"}, "E021"},
		{"empty replace path", Patch{Op: OpReplace, Node: doc.CreateNode("p")}, "E021"},
		{"remove out of range", Patch{Op: OpRemove, Path: []int{0}, Index: 0}, "E021"},
		{"set text on element", Patch{Op: OpSetText, Path: []int{0}, Value: "x"}, "E021"},
		{"unknown op", Patch{Op: Op(99)}, "E022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Apply(doc, Changeset{tt.patch}, live)
			if !errors.HasCode(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOpString(t *testing.T) {
	if OpAppend.String() != "Append" || Op(0).String() != "Unknown" {
		t.Error("Op.String mismatch")
	}
}
