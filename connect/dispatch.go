// Package connect implements per-subtree wiring for a tree-structured UI on
// top of a root store: each subtree attaches itself with an optional action
// modifier and a mapping from its ancestor's state to its own, and receives
// back a dispatch connection (its proxy toward the store) and a state
// connection (its derived projection plus the signal that recomputes it).
//
// Everything here runs synchronously on the single logical thread that owns
// the UI tree. Dispatching an action from inside an action modifier, a
// mapping function, or an update filter before the enclosing dispatch returns
// is undefined behavior.
package connect

import (
	"github.com/tailored-agentic-units/dux/signal"
	"github.com/tailored-agentic-units/dux/store"
)

// DispatchConnection is one level of a dispatch chain. It forwards actions to
// its parent dispatcher, letting an optional modifier rewrite or drop them
// first, and pulses its own change signal after every forwarded dispatch.
//
// A connection is created fresh each time a subtree attaches and discarded on
// teardown; it has no identity across recreations. The parent dispatcher is
// shared, not owned, and must outlive the connection.
type DispatchConnection struct {
	parent  store.Dispatcher
	modify  store.Modifier
	changed signal.Signal
}

// NewDispatchConnection creates a connection forwarding to parent. modify may
// be nil, in which case the connection is a pure pass-through. Panics if
// parent is nil.
func NewDispatchConnection(parent store.Dispatcher, modify store.Modifier) *DispatchConnection {
	if parent == nil {
		panic("connect: nil parent dispatcher")
	}
	return &DispatchConnection{parent: parent, modify: modify}
}

// Send applies the modifier, if any, and forwards the result to the parent
// dispatcher. A nil result drops the action: it never reaches the parent and
// the change signal does not fire. Otherwise the change signal pulses exactly
// once after the parent call returns, regardless of what the parent (or any
// ancestor modifier) did with the action.
func (c *DispatchConnection) Send(action store.Action) {
	if c.modify != nil {
		action = c.modify(action)
		if action == nil {
			return
		}
	}
	c.parent.Send(action)
	c.changed.Notify()
}

// Changed is the connection's own change signal. It pulses once per
// forwarded dispatch, which is what lets a subtree re-derive its state from
// the act of dispatching alone, independent of store updates.
func (c *DispatchConnection) Changed() *signal.Signal {
	return &c.changed
}
