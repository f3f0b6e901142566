package reconcile

import (
	"fmt"

	"github.com/vango-dev/pact/pkg/dom"
)

// Op is the type of patch operation.
type Op uint8

const (
	OpReplace    Op = 0x01 // Replace the node at Path with Node
	OpSetProp    Op = 0x02 // Set property Key to Value on the node at Path
	OpRemoveProp Op = 0x03 // Remove property Key from the node at Path
	OpSetText    Op = 0x04 // Set the content of the text node at Path
	OpAppend     Op = 0x05 // Append Node to the node at Path
	OpRemove     Op = 0x06 // Remove child Index of the node at Path
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpReplace:
		return "Replace"
	case OpSetProp:
		return "SetProp"
	case OpRemoveProp:
		return "RemoveProp"
	case OpSetText:
		return "SetText"
	case OpAppend:
		return "Append"
	case OpRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// Patch is a single mutation of the live tree.
type Patch struct {
	Op    Op       // Operation type
	Path  []int    // Child indices from the live container to the target
	Key   string   // Property name (SetProp/RemoveProp)
	Value any      // Property value (SetProp) or text (SetText)
	Node  dom.Node // Scratch node to adopt (Replace/Append)
	Index int      // Child index (Remove); resulting index (Append)
}

// String renders the patch for logs and devtools.
func (p Patch) String() string {
	path := dom.FormatPath(p.Path)
	switch p.Op {
	case OpSetProp:
		return fmt.Sprintf("%s [%s] %s=%v", p.Op, path, p.Key, describe(p.Value))
	case OpRemoveProp:
		return fmt.Sprintf("%s [%s] %s", p.Op, path, p.Key)
	case OpSetText:
		return fmt.Sprintf("%s [%s] %q", p.Op, path, p.Value)
	case OpAppend, OpReplace:
		tag := "?"
		if p.Node != nil {
			tag = p.Node.Tag()
		}
		return fmt.Sprintf("%s [%s] <%s>", p.Op, path, tag)
	case OpRemove:
		return fmt.Sprintf("%s [%s] #%d", p.Op, path, p.Index)
	default:
		return fmt.Sprintf("%s [%s]", p.Op, path)
	}
}

func describe(v any) string {
	if isFunc(v) {
		return "ƒ"
	}
	return fmt.Sprintf("%v", v)
}

// Changeset is the ordered list of patches produced by Diff.
type Changeset []Patch

// Counts returns the number of patches per operation.
func (cs Changeset) Counts() map[Op]int {
	counts := make(map[Op]int)
	for _, p := range cs {
		counts[p.Op]++
	}
	return counts
}

// Strings renders every patch, in order.
func (cs Changeset) Strings() []string {
	out := make([]string, len(cs))
	for i, p := range cs {
		out[i] = p.String()
	}
	return out
}
