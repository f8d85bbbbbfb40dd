// Package store implements the root state container: a canonical state value
// owned by a Store, pure reducers that evolve it, and the dispatcher contract
// that actions flow through on their way to it.
//
// Actions are opaque intents. Producers define their own concrete types and
// consumers type-switch on them; nothing in this package inspects an action
// beyond passing it along.
package store

// Action is an intent to change state. Any value can be an action.
type Action interface{}

// Dispatcher accepts an action and attempts to apply it. A Store is the
// terminal Dispatcher; dispatch connections proxy toward one.
type Dispatcher interface {
	Send(action Action)
}

// SendFunc adapts a plain function to the Dispatcher interface.
type SendFunc func(action Action)

// Send calls f(action).
func (f SendFunc) Send(action Action) { f(action) }

// Modifier transforms an action as it passes through one level of a dispatch
// chain. Returning the action unchanged passes it through, returning a
// different action replaces it, and returning nil consumes it: the action is
// dropped and never reaches the parent dispatcher.
type Modifier func(action Action) Action
