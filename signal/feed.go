package signal

import (
	"sync"

	"github.com/google/uuid"
)

type feedEntry[T any] struct {
	id string
	fn func(T)
}

// Feed is a typed multicast stream. It follows the same delivery contract as
// Signal: synchronous, subscription order, snapshot before delivery.
//
// The zero value is ready to use.
type Feed[T any] struct {
	mu   sync.Mutex
	subs []feedEntry[T]
}

// Subscribe registers fn to receive every published value.
func (f *Feed[T]) Subscribe(fn func(T)) Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := uuid.NewString()
	f.subs = append(f.subs, feedEntry[T]{id: id, fn: fn})
	return Subscription{id: id, cancel: f.unsubscribe}
}

func (f *Feed[T]) unsubscribe(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, e := range f.subs {
		if e.id == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers v to every current subscriber.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	subs := make([]feedEntry[T], len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	for _, e := range subs {
		e.fn(v)
	}
}
