package dom

import "fmt"

// Stats counts the primitive mutations a Document has performed.
type Stats struct {
	Created      int
	TextsCreated int
	PropsSet     int
	PropsRemoved int
	TextsSet     int
	Appends      int
	Removes      int
	Replaces     int
}

// Document is an in-memory Host.
type Document struct {
	stats Stats
}

// NewDocument creates an empty in-memory document.
func NewDocument() *Document {
	return &Document{}
}

// Stats returns the mutation counters accumulated so far.
func (d *Document) Stats() Stats {
	return d.stats
}

// ResetStats zeroes the mutation counters.
func (d *Document) ResetStats() {
	d.stats = Stats{}
}

// CreateNode implements Host.
func (d *Document) CreateNode(tag string) Node {
	d.stats.Created++
	return &Element{kind: ElementNode, tag: tag, props: make(map[string]any)}
}

// CreateText implements Host.
func (d *Document) CreateText(content string) Node {
	d.stats.TextsCreated++
	return &Element{kind: TextNode, text: content}
}

// SetProperty implements Host.
func (d *Document) SetProperty(n Node, key string, value any) {
	e := mustElement(n)
	d.stats.PropsSet++
	e.props[key] = value
}

// RemoveProperty implements Host.
func (d *Document) RemoveProperty(n Node, key string) {
	e := mustElement(n)
	d.stats.PropsRemoved++
	delete(e.props, key)
}

// SetText implements Host.
func (d *Document) SetText(n Node, content string) {
	e := mustElement(n)
	d.stats.TextsSet++
	e.text = content
}

// AppendChild implements Host.
func (d *Document) AppendChild(parent, child Node) {
	p, c := mustElement(parent), mustElement(child)
	d.stats.Appends++
	c.detach()
	c.parent = p
	p.children = append(p.children, c)
}

// RemoveChild implements Host.
func (d *Document) RemoveChild(parent Node, index int) {
	p := mustElement(parent)
	checkIndex(p, index)
	d.stats.Removes++
	p.children[index].detach()
}

// ReplaceChild implements Host.
func (d *Document) ReplaceChild(parent Node, index int, child Node) {
	p, c := mustElement(parent), mustElement(child)
	c.detach()
	checkIndex(p, index)
	d.stats.Replaces++
	old := p.children[index]
	old.parent = nil
	c.parent = p
	p.children[index] = c
}

// mustElement converts n to *Element. Documents only manage their own nodes.
func mustElement(n Node) *Element {
	e, ok := n.(*Element)
	if !ok || e == nil {
		panic(fmt.Sprintf("dom: node of type %T does not belong to a Document", n))
	}
	return e
}

func checkIndex(p *Element, index int) {
	if index < 0 || index >= len(p.children) {
		panic(fmt.Sprintf("dom: child index %d out of range [0,%d)", index, len(p.children)))
	}
}
