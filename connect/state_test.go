package connect_test

import (
	"testing"

	"github.com/tailored-agentic-units/dux/connect"
)

func TestNewStateConnection_NilGetterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewStateConnection(nil) did not panic")
		}
	}()
	connect.NewStateConnection[int](nil)
}

func TestStateConnection_InitialEvaluation(t *testing.T) {
	conn := connect.NewStateConnection(func() (int, bool) { return 42, true })

	got, ok := conn.Latest()
	if !ok || got != 42 {
		t.Errorf("Latest = (%d, %v), want (42, true)", got, ok)
	}
}

func TestStateConnection_GetDoesNotMoveLatest(t *testing.T) {
	value := 1
	conn := connect.NewStateConnection(func() (int, bool) { return value, true })

	value = 2
	if got, _ := conn.Get(); got != 2 {
		t.Errorf("Get = %d, want 2 (re-evaluates)", got)
	}
	if got, _ := conn.Latest(); got != 1 {
		t.Errorf("Latest = %d, want 1 (unchanged by Get)", got)
	}
}

func TestStateConnection_GetIsRepeatable(t *testing.T) {
	conn := connect.NewStateConnection(func() (string, bool) { return "fixed", true })

	for i := 0; i < 3; i++ {
		got, ok := conn.Get()
		if !ok || got != "fixed" {
			t.Fatalf("Get #%d = (%q, %v), want (fixed, true)", i, got, ok)
		}
	}
}

func TestStateConnection_RefreshUpdatesLatestAndPulses(t *testing.T) {
	value := 1
	conn := connect.NewStateConnection(func() (int, bool) { return value, true })

	pulses := 0
	conn.Updated().Subscribe(func() { pulses++ })

	value = 5
	conn.Refresh()

	if got, _ := conn.Latest(); got != 5 {
		t.Errorf("Latest = %d, want 5", got)
	}
	if pulses != 1 {
		t.Errorf("Updated pulses = %d, want 1", pulses)
	}
}

func TestStateConnection_AbsentClearsLatest(t *testing.T) {
	present := true
	conn := connect.NewStateConnection(func() (int, bool) { return 9, present })

	present = false
	conn.Refresh()

	got, ok := conn.Latest()
	if ok {
		t.Error("Latest reports present after absent refresh")
	}
	if got != 0 {
		t.Errorf("Latest value = %d, want zero after absent refresh", got)
	}
}

func TestStateConnection_CloseIsIdempotent(t *testing.T) {
	conn := connect.NewStateConnection(func() (int, bool) { return 0, true })
	conn.Close()
	conn.Close()
}
