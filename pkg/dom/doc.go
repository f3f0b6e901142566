// Package dom defines the render target pact mounts into and patches.
//
// The target is owned by the host environment. The core only reads it
// through Node and mutates it through the Host primitives:
//
//	CreateNode(tag)              CreateText(content)
//	SetProperty(n, key, value)   RemoveProperty(n, key)
//	SetText(n, content)          AppendChild(parent, n)
//	RemoveChild(parent, index)   ReplaceChild(parent, index, n)
//
// Document is an in-memory host. It backs the CLI, the devtools server and
// the test harness, and can dispatch events into handler properties and
// serialize any subtree as markup.
//
// Nothing in this package is safe for concurrent use. Hosts that accept
// input from several goroutines must serialize every entry point.
package dom
