package el

import "github.com/vango-dev/pact/pkg/vdom"

// OnClick handles click events. Accepts func() or func(string).
func OnClick(handler any) EventHandler { return vdom.OnClick(handler) }

// OnInput handles input events; the handler receives the new value.
func OnInput(handler func(value string)) EventHandler { return vdom.OnInput(handler) }

// OnChange handles change events; the handler receives the new value.
func OnChange(handler func(value string)) EventHandler { return vdom.OnChange(handler) }

// OnSubmit handles form submission.
func OnSubmit(handler func()) EventHandler { return vdom.OnSubmit(handler) }

// On creates a handler prop for an arbitrary event name.
func On(name string, handler any) EventHandler { return vdom.On(name, handler) }
