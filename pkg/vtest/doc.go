// Package vtest provides testing helpers for pact components.
//
// The vtest package reduces boilerplate when testing components by mounting
// them into an in-memory document and exposing event dispatch and render
// assertions.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, Counter)
//	    h.Click("button")
//	    vtest.ExpectText(t, h, "1")
//	}
//
// # Driving Events
//
// Events run synchronously. Any pass a handler triggers has completed when
// the helper returns:
//
//	h.Input("input", "Ada")
//	h.Click("button")
//	if h.Passes() != 3 {
//	    t.Errorf("passes = %d", h.Passes())
//	}
//
// # Inspecting Passes
//
// The harness records every pass it drives:
//
//	last := h.LastPass()
//	for _, p := range last.Patches {
//	    t.Log(p)
//	}
//
// # Render Assertions
//
// Assert on the live markup:
//
//	vtest.ExpectContains(t, h, "Hello, Ada")
//	vtest.ExpectNotContains(t, h, "error")
//	vtest.ExpectElement(t, h, "button")
//	vtest.ExpectAttribute(t, h, "value", "Ada")
//
// RenderToString renders a bare element tree without hooks, which is useful
// for stateless components.
package vtest
