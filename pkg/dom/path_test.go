package dom

import (
	"reflect"
	"testing"
)

func TestPaths(t *testing.T) {
	d := NewDocument()
	root := d.CreateNode("body")
	ul := d.CreateNode("ul")
	d.AppendChild(root, ul)
	for _, s := range []string{"a", "b", "c"} {
		li := d.CreateNode("li")
		d.AppendChild(li, d.CreateText(s))
		d.AppendChild(ul, li)
	}

	n, ok := NodeAt(root, []int{0, 2, 0})
	if !ok || n.Text() != "c" {
		t.Fatalf("NodeAt = %v, %v", n, ok)
	}
	if _, ok := NodeAt(root, []int{0, 3}); ok {
		t.Error("NodeAt out of range should fail")
	}
	if n, ok := NodeAt(root, nil); !ok || n != root {
		t.Error("empty path should return root")
	}

	path, ok := PathOf(root, n)
	if !ok || !reflect.DeepEqual(path, []int{0, 2, 0}) {
		t.Errorf("PathOf = %v, %v", path, ok)
	}
	if _, ok := PathOf(root, d.CreateNode("detached")); ok {
		t.Error("PathOf detached node should fail")
	}

	if s := FormatPath([]int{0, 2, 0}); s != "0.2.0" {
		t.Errorf("FormatPath = %q", s)
	}
	parsed, err := ParsePath("0.2.0")
	if err != nil || !reflect.DeepEqual(parsed, []int{0, 2, 0}) {
		t.Errorf("ParsePath = %v, %v", parsed, err)
	}
	if p, err := ParsePath(""); err != nil || len(p) != 0 {
		t.Errorf("ParsePath(\"\") = %v, %v", p, err)
	}
	if _, err := ParsePath("0.x"); err == nil {
		t.Error("ParsePath should reject non-numeric segments")
	}

	if Find(root, "li") == nil || Find(root, "table") != nil {
		t.Error("Find mismatch")
	}
	if got := len(FindAll(root, "li")); got != 3 {
		t.Errorf("FindAll = %d, want 3", got)
	}
	if got := TextContent(root); got != "abc" {
		t.Errorf("TextContent = %q", got)
	}
}
