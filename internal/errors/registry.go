package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Hook called outside a render pass",
		Detail:   "UseState and UseEffect may only run while the root render function (or a component it calls) is executing.",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Hook order changed",
		Detail:   "Hooks are addressed by call order. A hook inside a conditional or a loop with a varying trip count shifts every later slot.",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "State slot type mismatch",
		Detail:   "The state slot at this ordinal holds a value of a different type, which usually means the hook order changed between passes.",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "Event handler not found",
		Detail:   "The target node has no handler property for the dispatched event, or the handler has an unsupported signature.",
	},
	"E005": {
		Category: CategoryRuntime,
		Message:  "Invalid render root",
		Detail:   "RenderRoot needs a host, a container node and a render function.",
	},
	"E006": {
		Category: CategoryRuntime,
		Message:  "Node not found",
		Detail:   "No live node exists at the given child-index path.",
	},

	// ============================================
	// Reconcile Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryReconcile,
		Message:  "Invalid element tag",
		Detail:   "An element tag must be a string or a component function.",
	},
	"E021": {
		Category: CategoryReconcile,
		Message:  "Patch target not found",
		Detail:   "A patch path did not resolve against the live tree.",
	},
	"E022": {
		Category: CategoryReconcile,
		Message:  "Unknown patch operation",
	},

	// ============================================
	// Effect Errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryRuntime,
		Message:  "Effects failed",
		Detail:   "One or more effects panicked during the effect-run phase.",
	},
	"E031": {
		Category: CategoryRuntime,
		Message:  "Effect panicked",
	},

	// ============================================
	// Config Errors (E100-E109)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Cannot read config file",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Cannot parse config file",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// ============================================
	// Storage Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryStorage,
		Message:  "Snapshot store failure",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid command argument",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
