package el

import (
	"github.com/vango-dev/pact/pkg/hooks"
	"github.com/vango-dev/pact/pkg/vdom"
)

// Type aliases for the VDOM primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
type Attr = vdom.Attr
type EventHandler = vdom.EventHandler
type Component = vdom.Component

// Type aliases for the hook API.
type Context = hooks.Context
type Cleanup = hooks.Cleanup
type EffectFunc = hooks.EffectFunc
