package signal_test

import (
	"testing"

	"github.com/tailored-agentic-units/dux/signal"
)

func TestSignal_NotifiesInSubscriptionOrder(t *testing.T) {
	var s signal.Signal
	var order []int

	s.Subscribe(func() { order = append(order, 1) })
	s.Subscribe(func() { order = append(order, 2) })
	s.Subscribe(func() { order = append(order, 3) })

	s.Notify()

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("notified %d subscribers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestSignal_Cancel(t *testing.T) {
	var s signal.Signal
	calls := 0

	sub := s.Subscribe(func() { calls++ })
	s.Notify()
	sub.Cancel()
	s.Notify()

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no delivery after Cancel)", calls)
	}
}

func TestSignal_CancelTwiceIsNoOp(t *testing.T) {
	var s signal.Signal
	s.Subscribe(func() {})
	sub := s.Subscribe(func() {})

	sub.Cancel()
	sub.Cancel()

	calls := 0
	s.Subscribe(func() { calls++ })
	s.Notify()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSignal_CancelDuringNotifyCompletesDelivery(t *testing.T) {
	var s signal.Signal
	var second signal.Subscription
	calls := 0

	s.Subscribe(func() { second.Cancel() })
	second = s.Subscribe(func() { calls++ })

	// The pulse in flight was snapshotted before the first handler ran.
	s.Notify()
	if calls != 1 {
		t.Errorf("in-flight delivery calls = %d, want 1", calls)
	}

	s.Notify()
	if calls != 1 {
		t.Errorf("calls after cancelled pulse = %d, want 1", calls)
	}
}

func TestSubscription_DistinctIDs(t *testing.T) {
	var s signal.Signal
	a := s.Subscribe(func() {})
	b := s.Subscribe(func() {})

	if a.ID() == "" || b.ID() == "" {
		t.Fatal("subscription IDs must be non-empty")
	}
	if a.ID() == b.ID() {
		t.Errorf("subscription IDs collide: %s", a.ID())
	}
}

func TestFeed_PublishDeliversValuesInOrder(t *testing.T) {
	var f signal.Feed[string]
	var got []string

	f.Subscribe(func(v string) { got = append(got, "a:"+v) })
	f.Subscribe(func(v string) { got = append(got, "b:"+v) })

	f.Publish("x")
	f.Publish("y")

	want := []string{"a:x", "b:x", "a:y", "b:y"}
	if len(got) != len(want) {
		t.Fatalf("deliveries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFeed_Cancel(t *testing.T) {
	var f signal.Feed[int]
	sum := 0

	sub := f.Subscribe(func(v int) { sum += v })
	f.Publish(1)
	sub.Cancel()
	f.Publish(2)

	if sum != 1 {
		t.Errorf("sum = %d, want 1", sum)
	}
}
