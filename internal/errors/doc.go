// Package errors provides structured error values for pact.
//
// Every error raised by the runtime carries a stable code (e.g. "E002") that
// maps to a registered template with a category, a short message and a
// longer explanation. Callers can attach a detail, a suggestion or a wrapped
// cause:
//
//	err := errors.New("E002").
//	    WithDetail("expected Effect at index 3, got State").
//	    WithSuggestion("Call hooks unconditionally at the top of the render function")
//
//	fmt.Println(err.Format())
//	// ERROR E002: Hook order changed
//	//
//	//   expected Effect at index 3, got State
//	//
//	//   Hint: Call hooks unconditionally at the top of the render function
//
// # Categories
//
//   - runtime: hook misuse and effect failures
//   - reconcile: element construction and patch application
//   - config: configuration loading and validation
//   - storage: snapshot persistence
//   - cli: command line usage
package errors
