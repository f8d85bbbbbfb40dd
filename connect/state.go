package connect

import (
	"github.com/tailored-agentic-units/dux/signal"
)

// StateConnection holds a subtree's derived state projection: a getter that
// re-evaluates the projection on demand and the latest value it produced.
// The projection is absent when the getter reports no state, which a Guard
// uses to suppress rendering.
//
// A StateConnection is owned exclusively by the subtree that created it and
// shared read-only with descendants through the ambient Context. Latest only
// moves when Refresh runs, so attached subscriptions (the composed change
// signal) decide exactly when a subtree re-derives.
type StateConnection[S any] struct {
	get     func() (S, bool)
	latest  S
	has     bool
	updated signal.Signal
	subs    []signal.Subscription
}

// NewStateConnection creates a connection around get and evaluates it once so
// Latest starts out populated. Panics if get is nil.
func NewStateConnection[S any](get func() (S, bool)) *StateConnection[S] {
	if get == nil {
		panic("connect: nil state getter")
	}
	c := &StateConnection[S]{get: get}
	c.latest, c.has = get()
	return c
}

// Get re-evaluates the projection and returns the result without touching
// Latest. Chained projections call their ancestor's Get so a fresh value is
// derived all the way from the root, even when intermediate connections have
// not refreshed.
func (c *StateConnection[S]) Get() (S, bool) {
	return c.get()
}

// Latest returns the projection as of the most recent Refresh.
func (c *StateConnection[S]) Latest() (S, bool) {
	return c.latest, c.has
}

// Refresh re-evaluates the projection, stores it as Latest, and pulses
// Updated. An absent result clears Latest.
func (c *StateConnection[S]) Refresh() {
	c.latest, c.has = c.get()
	if !c.has {
		var zero S
		c.latest = zero
	}
	c.updated.Notify()
}

// Updated pulses after every Refresh, present or absent. Render layers
// subscribe here to learn when Latest moved.
func (c *StateConnection[S]) Updated() *signal.Signal {
	return &c.updated
}

// track registers a subscription to be released on Close.
func (c *StateConnection[S]) track(sub signal.Subscription) {
	c.subs = append(c.subs, sub)
}

// Close cancels the connection's composed-signal subscriptions. A subtree
// must close its connection on teardown so no dangling trigger keeps
// recomputing a projection for a subtree that is gone.
func (c *StateConnection[S]) Close() {
	for _, sub := range c.subs {
		sub.Cancel()
	}
	c.subs = nil
}
