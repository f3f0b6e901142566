package reconcile

import (
	"github.com/vango-dev/pact/internal/errors"
	"github.com/vango-dev/pact/pkg/dom"
)

// Apply performs every patch in cs against the live container, in order.
// Patches are neither merged nor reordered. Apply stops at the first patch
// whose path does not resolve and returns E021; patches before it remain
// applied.
func Apply(host dom.Host, cs Changeset, live dom.Node) error {
	for i, p := range cs {
		if err := applyPatch(host, p, live); err != nil {
			return err.WithDetailf("patch %d (%s): %s", i, p, err.Detail)
		}
	}
	return nil
}

func applyPatch(host dom.Host, p Patch, live dom.Node) *errors.PactError {
	switch p.Op {
	case OpReplace:
		if len(p.Path) == 0 {
			return errors.New("E021").WithDetail("replace needs a non-empty path")
		}
		parent, ok := dom.NodeAt(live, p.Path[:len(p.Path)-1])
		if !ok {
			return errors.New("E021").WithDetail("parent not found")
		}
		idx := p.Path[len(p.Path)-1]
		if idx < 0 || idx >= len(parent.Children()) {
			return errors.New("E021").WithDetail("index out of range")
		}
		host.ReplaceChild(parent, idx, p.Node)

	case OpSetProp, OpRemoveProp, OpSetText:
		target, ok := dom.NodeAt(live, p.Path)
		if !ok {
			return errors.New("E021").WithDetail("node not found")
		}
		switch p.Op {
		case OpSetProp:
			host.SetProperty(target, p.Key, p.Value)
		case OpRemoveProp:
			host.RemoveProperty(target, p.Key)
		default:
			if target.Kind() != dom.TextNode {
				return errors.New("E021").WithDetail("set text on an element")
			}
			text, _ := p.Value.(string)
			host.SetText(target, text)
		}

	case OpAppend:
		parent, ok := dom.NodeAt(live, p.Path)
		if !ok {
			return errors.New("E021").WithDetail("parent not found")
		}
		host.AppendChild(parent, p.Node)

	case OpRemove:
		parent, ok := dom.NodeAt(live, p.Path)
		if !ok {
			return errors.New("E021").WithDetail("parent not found")
		}
		if p.Index < 0 || p.Index >= len(parent.Children()) {
			return errors.New("E021").WithDetail("index out of range")
		}
		host.RemoveChild(parent, p.Index)

	default:
		return errors.New("E022").WithDetailf("op %d", p.Op)
	}
	return nil
}
