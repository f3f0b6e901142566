package dom

import (
	"strings"

	"github.com/vango-dev/pact/internal/errors"
)

// Event is passed to handlers declared as func(Event).
type Event struct {
	Type   string // "click", "input", ...
	Target Node
	Value  string
}

// Dispatch invokes the handler property for event on n.
//
// The event name may be given with or without the "on" prefix. A bare name
// is tried first, so "online" finds an ononline handler before an online
// one. For "input" and "change" events the node's value property is updated
// before the handler runs. Supported handler shapes are func(), func(string) and
// func(Event). Handlers run synchronously; any render pass they trigger has
// completed when Dispatch returns.
func (d *Document) Dispatch(n Node, event, value string) error {
	name := strings.ToLower(event)
	e := mustElement(n)

	handler, ok := e.props["on"+name]
	if !ok && strings.HasPrefix(name, "on") {
		if h, found := e.props[name]; found {
			handler, ok = h, true
			name = name[len("on"):]
		}
	}
	if !ok || handler == nil {
		return errors.New("E004").WithDetailf("no on%s handler on <%s>", name, e.Tag())
	}

	if name == "input" || name == "change" {
		e.props["value"] = value
	}

	switch fn := handler.(type) {
	case func():
		fn()
	case func(string):
		fn(value)
	case func(Event):
		fn(Event{Type: name, Target: n, Value: value})
	default:
		return errors.New("E004").WithDetailf("on%s handler has unsupported type %T", name, handler)
	}
	return nil
}
