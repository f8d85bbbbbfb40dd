package connect

import (
	"github.com/tailored-agentic-units/dux/signal"
	"github.com/tailored-agentic-units/dux/store"
)

// Context carries the ambient handles a subtree needs from its parent: the
// current dispatcher, the current state connection, and the store's update
// feed. A parent passes its Context to children explicitly; Attach returns
// the derived Context a child pushes further down. There is no global lookup.
type Context[S any] struct {
	Dispatcher store.Dispatcher
	State      *StateConnection[S]
	Updates    *signal.Feed[store.Action]
}

// FromStore builds the root Context. Its state connection projects the
// store's canonical state (always present) and refreshes on every store
// update. Close the connection when the tree is torn down.
func FromStore[S any](st *store.Store[S]) Context[S] {
	conn := NewStateConnection(func() (S, bool) {
		return st.State(), true
	})
	conn.track(st.Updates().Subscribe(func(store.Action) {
		conn.Refresh()
	}))
	return Context[S]{
		Dispatcher: st,
		State:      conn,
		Updates:    st.Updates(),
	}
}

// Mapping derives a subtree's state from its ancestor's. The binder is bound
// to the subtree's own dispatch connection, letting the mapping hand out
// dispatch capabilities without holding the connection itself. Returning
// false means the subtree intentionally has no state right now.
//
// A mapping must be a pure function of the ancestor state; the binder's
// identity must not influence the result.
type Mapping[Parent, Child any] func(parent Parent, binder Binder) (Child, bool)

// Binder is the dispatch capability handed to a Mapping. It forwards to the
// dispatch connection created for the same attachment.
type Binder struct {
	dispatcher store.Dispatcher
}

// Send dispatches through the attachment's own connection.
func (b Binder) Send(action store.Action) {
	if b.dispatcher != nil {
		b.dispatcher.Send(action)
	}
}

// Bind returns a setter that dispatches actionFor(value) through the binder.
func Bind[T any](b Binder, actionFor func(T) store.Action) func(T) {
	return func(v T) {
		b.Send(actionFor(v))
	}
}

// Attachment holds the optional knobs of an Attach call.
type Attachment struct {
	modifier store.Modifier
	filter   Filter
}

// AttachOption configures an attachment.
type AttachOption func(*Attachment)

// WithModifier installs an action modifier on the subtree's dispatch
// connection, letting this level rewrite or drop every action dispatched by
// its descendants.
func WithModifier(m store.Modifier) AttachOption {
	return func(a *Attachment) { a.modifier = m }
}

// WithFilter installs an update filter. A real filter subscribes the subtree
// to the store's update feed for matching actions; an inert one (see
// InertFilter) leaves the subtree listening to its own dispatches only.
func WithFilter(f Filter) AttachOption {
	return func(a *Attachment) { a.filter = f }
}

// Attach connects a subtree to the tree. It creates the subtree's dispatch
// connection around the ambient dispatcher, a state connection projecting the
// ancestor's state through mapping, and the composed change signal that
// drives re-derivation: always the subtree's own dispatch pulse, plus the
// filtered update feed when a real filter is supplied.
//
// The returned Context is what the subtree passes to its own children. Close
// the returned Context's State on teardown. Panics if mapping is nil.
func Attach[Parent, Child any](ctx Context[Parent], mapping Mapping[Parent, Child], opts ...AttachOption) Context[Child] {
	if mapping == nil {
		panic("connect: nil mapping")
	}

	var att Attachment
	for _, opt := range opts {
		opt(&att)
	}

	dc := NewDispatchConnection(ctx.Dispatcher, att.modifier)
	binder := Binder{dispatcher: dc}
	ancestor := ctx.State

	conn := NewStateConnection(func() (Child, bool) {
		parent, ok := ancestor.Get()
		if !ok {
			var zero Child
			return zero, false
		}
		return mapping(parent, binder)
	})

	conn.track(dc.Changed().Subscribe(conn.Refresh))

	if HasUpdateFilter(att.filter) {
		filter := att.filter
		conn.track(ctx.Updates.Subscribe(func(action store.Action) {
			if filter(action) {
				conn.Refresh()
			}
		}))
	}

	return Context[Child]{
		Dispatcher: dc,
		State:      conn,
		Updates:    ctx.Updates,
	}
}
