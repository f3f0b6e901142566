// Package demo is the name and counter application used by the CLI.
package demo

import (
	"log/slog"

	. "github.com/vango-dev/pact/el"
)

// DefaultName is the initial greeting name.
const DefaultName = "Arindam"

// App returns the demo component. Effect activity is logged to logger at
// Info level.
func App(logger *slog.Logger) func(ctx *Context) *VNode {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx *Context) *VNode {
		name, setName := UseState(ctx, DefaultName)
		count, setCount := UseState(ctx, 0)

		UseEffect(ctx, func() Cleanup {
			logger.Info("application always run")
			return nil
		}, nil)

		UseEffect(ctx, func() Cleanup {
			logger.Info("component mounted")
			return func() { logger.Info("component will unmount") }
		}, []any{})

		UseEffect(ctx, func() Cleanup {
			logger.Info("count changed", "count", count.Current())
			return nil
		}, []any{count.Current()})

		return Div(Draggable(true),
			H2("Hello ", name.Current(), "!"),
			P("I am a paragraph"),
			Input(Type("text"), Value(name.Current()), OnChange(func(v string) { setName(v) })),
			H2("Counter value: ", count.Current()),
			Button(OnClick(func() { setCount(count.Current() + 1) }), "+1"),
			Button(OnClick(func() { setCount(count.Current() - 1) }), "-1"),
		)
	}
}
