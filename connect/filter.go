package connect

import (
	"github.com/tailored-agentic-units/dux/store"
)

// Filter is a predicate over actions supplied at attachment time. No filter
// means the subtree re-derives only on its own dispatches; a real filter
// additionally re-derives on every store update whose action it matches.
type Filter func(action store.Action) bool

// ProbeAction is the distinguished action used to classify a filter at
// attachment time. It is invoked through the filter exactly once, never
// dispatched through a real chain, and its only observable effect is the
// flag behind MarkInert.
//
// A filter that recognizes ProbeAction and calls MarkInert declares itself an
// inert default: structurally present, semantically absent. A genuine filter
// has no reason to know about ProbeAction and therefore never flips the flag.
type ProbeAction struct {
	inert *bool
}

// MarkInert declares the filter currently examining this probe to be an
// inert default.
func (p ProbeAction) MarkInert() {
	if p.inert != nil {
		*p.inert = true
	}
}

// HasUpdateFilter reports whether f is a real discriminator that should
// subscribe its subtree to the store's update feed. A nil filter and a filter
// that marks the probe inert both report false. The filter's boolean result
// on the probe is discarded.
func HasUpdateFilter(f Filter) bool {
	if f == nil {
		return false
	}
	inert := false
	f(ProbeAction{inert: &inert})
	return !inert
}

// InertFilter fills a non-optional filter slot while behaving exactly as if
// no filter were supplied. Layers that must always pass a filter downward use
// this as their default; a caller-supplied filter replaces it and is honored.
func InertFilter(action store.Action) bool {
	if p, ok := action.(ProbeAction); ok {
		p.MarkInert()
	}
	return true
}
