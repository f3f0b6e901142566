package dom

import (
	"strconv"
	"strings"
)

// NodeAt follows path (child indices) from root.
// An empty path returns root.
func NodeAt(root Node, path []int) (Node, bool) {
	n := root
	for _, idx := range path {
		if n == nil {
			return nil, false
		}
		children := n.Children()
		if idx < 0 || idx >= len(children) {
			return nil, false
		}
		n = children[idx]
	}
	return n, n != nil
}

// PathOf returns the child-index path from root to n.
func PathOf(root, n Node) ([]int, bool) {
	var rev []int
	for cur := n; cur != root; {
		if cur == nil {
			return nil, false
		}
		parent := cur.Parent()
		if parent == nil {
			return nil, false
		}
		idx := -1
		for i, c := range parent.Children() {
			if c == cur {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, false
		}
		rev = append(rev, idx)
		cur = parent
	}
	path := make([]int, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = idx
	}
	return path, true
}

// FormatPath renders a path as dot-separated indices ("0.2.1").
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// ParsePath parses the output of FormatPath. The empty string is the root.
func ParsePath(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ".")
	path := make([]int, len(parts))
	for i, p := range parts {
		idx, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		path[i] = idx
	}
	return path, nil
}

// Find returns the first element with tag in pre-order, starting at root.
func Find(root Node, tag string) Node {
	if root == nil {
		return nil
	}
	if root.Kind() == ElementNode && root.Tag() == tag {
		return root
	}
	for _, c := range root.Children() {
		if found := Find(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element with tag in pre-order.
func FindAll(root Node, tag string) []Node {
	var out []Node
	walk(root, func(n Node) {
		if n.Kind() == ElementNode && n.Tag() == tag {
			out = append(out, n)
		}
	})
	return out
}

// TextContent returns the concatenated text of n and its descendants.
func TextContent(n Node) string {
	var b strings.Builder
	walk(n, func(c Node) {
		if c.Kind() == TextNode {
			b.WriteString(c.Text())
		}
	})
	return b.String()
}

func walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children() {
		walk(c, fn)
	}
}
