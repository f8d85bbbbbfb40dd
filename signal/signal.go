// Package signal provides the multicast change-notification primitives the
// rest of the module is built on: Signal, a payload-less pulse, and Feed, a
// typed value stream. Delivery is synchronous and in subscription order.
//
// The execution model is a single logical UI thread; the mutexes here guard
// the subscriber lists against registration races, not against concurrent
// delivery.
package signal

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription is a handle to an active registration on a Signal or Feed.
// Cancel detaches the handler; cancelling more than once is a no-op.
type Subscription struct {
	id     string
	cancel func(id string)
}

// ID returns the unique identity of this subscription.
func (s Subscription) ID() string { return s.id }

// Cancel removes the subscription from its source.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel(s.id)
	}
}

type pulseEntry struct {
	id string
	fn func()
}

// Signal is a payload-less multicast pulse. Subscribers are notified
// synchronously, in subscription order, every time Notify is called.
//
// The zero value is ready to use.
type Signal struct {
	mu   sync.Mutex
	subs []pulseEntry
}

// Subscribe registers fn to run on every Notify and returns the handle used
// to detach it.
func (s *Signal) Subscribe(fn func()) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.subs = append(s.subs, pulseEntry{id: id, fn: fn})
	return Subscription{id: id, cancel: s.unsubscribe}
}

func (s *Signal) unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.subs {
		if e.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Notify pulses every current subscriber. The subscriber list is snapshotted
// first, so handlers may cancel subscriptions without disturbing delivery of
// the pulse already in flight.
func (s *Signal) Notify() {
	s.mu.Lock()
	subs := make([]pulseEntry, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, e := range subs {
		e.fn()
	}
}
