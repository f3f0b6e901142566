package dom

// Snapshot is a JSON-friendly view of a node tree.
type Snapshot struct {
	Kind     string         `json:"kind"`
	Tag      string         `json:"tag,omitempty"`
	Text     string         `json:"text,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []Snapshot     `json:"children,omitempty"`
}

// Snap builds a Snapshot of n. Handler properties are reported as "ƒ".
func Snap(n Node) Snapshot {
	s := Snapshot{Kind: n.Kind().String()}
	if n.Kind() == TextNode {
		s.Text = n.Text()
		return s
	}
	s.Tag = n.Tag()
	if keys := n.PropertyKeys(); len(keys) > 0 {
		s.Props = make(map[string]any, len(keys))
		for _, k := range keys {
			v, _ := n.Property(k)
			if isFunc(v) {
				v = "ƒ"
			}
			s.Props[k] = v
		}
	}
	for _, c := range n.Children() {
		s.Children = append(s.Children, Snap(c))
	}
	return s
}
