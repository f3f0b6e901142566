package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events. Accepts func() or func(string).
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnInput handles input events; the handler receives the new value.
func OnInput(handler func(value string)) EventHandler { return event("input", handler) }

// OnChange handles change events; the handler receives the new value.
func OnChange(handler func(value string)) EventHandler { return event("change", handler) }

// OnSubmit handles form submission.
func OnSubmit(handler func()) EventHandler { return event("submit", handler) }

// On creates a handler prop for an arbitrary event name.
func On(name string, handler any) EventHandler { return event(name, handler) }
