package reconcile

import (
	"sort"

	"github.com/vango-dev/pact/pkg/dom"
	"github.com/vango-dev/pact/pkg/vdom"
)

// Mount materializes node into target and returns the created target node.
//
// Text leaves become text nodes. Elements become nodes tagged with node.Tag;
// every prop is assigned with SetProperty (in ascending key order), children
// are mounted recursively, and the finished node is appended to target.
// Mount never consults existing target state. A nil node mounts nothing.
func Mount(host dom.Host, node *vdom.VNode, target dom.Node) dom.Node {
	if node == nil {
		return nil
	}

	if node.Kind == vdom.KindText {
		text := host.CreateText(node.Text)
		host.AppendChild(target, text)
		return text
	}

	el := host.CreateNode(node.Tag)
	for _, key := range sortedKeys(node.Props) {
		host.SetProperty(el, key, node.Props[key])
	}
	for _, child := range node.Children {
		Mount(host, child, el)
	}
	host.AppendChild(target, el)
	return el
}

func sortedKeys(props vdom.Props) []string {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
