package store

import (
	"fmt"
	"log/slog"

	"github.com/tailored-agentic-units/dux/signal"
)

// Plan is a dispatchable unit of work. Sending a Plan to a Store executes it
// instead of reducing it: the plan may read the current state and send
// further plain actions. Plans never reach the reducer and are not published
// on the updates feed.
type Plan[S any] func(s *Store[S])

// Middleware wraps one step of a Store's dispatch pipeline. It receives the
// store (for state reads and follow-up sends) and the next step; it may call
// next with the action as-is, with a rewritten action, or not at all.
type Middleware[S any] func(s *Store[S], next SendFunc) SendFunc

// Option configures a Store at construction time.
type Option[S any] func(*Store[S])

// WithLogger sets the logger used to record accepted actions at Debug level.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(s *Store[S]) { s.logger = logger }
}

// WithMiddleware appends middleware to the dispatch pipeline. Middleware runs
// in the order given, before the reducer step.
func WithMiddleware[S any](mw ...Middleware[S]) Option[S] {
	return func(s *Store[S]) { s.middleware = append(s.middleware, mw...) }
}

// Store owns the canonical application state and is the terminal Dispatcher
// of every dispatch chain. Each accepted action is reduced into the state and
// then published on the updates feed.
//
// All dispatches and update deliveries run synchronously on the caller's
// goroutine. Sending an action from inside a reducer or middleware before the
// enclosing Send returns is undefined behavior.
type Store[S any] struct {
	state      S
	reducer    Reducer[S]
	middleware []Middleware[S]
	updates    signal.Feed[Action]
	logger     *slog.Logger
	pipeline   SendFunc
}

// New creates a Store holding initial and evolving it with reducer. It panics
// if reducer is nil.
func New[S any](initial S, reducer Reducer[S], opts ...Option[S]) *Store[S] {
	if reducer == nil {
		panic("store: nil reducer")
	}

	s := &Store[S]{
		state:   initial,
		reducer: reducer,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.pipeline = s.apply
	for i := len(s.middleware) - 1; i >= 0; i-- {
		s.pipeline = s.middleware[i](s, s.pipeline)
	}

	return s
}

// State returns the current state value.
func (s *Store[S]) State() S { return s.state }

// Updates is the store's update signal: it publishes every accepted action
// after the reducer has run. Subscribers observe the action in the form that
// reached the reducer, after any middleware rewrites.
func (s *Store[S]) Updates() *signal.Feed[Action] { return &s.updates }

// Send dispatches an action through the middleware pipeline and into the
// reducer. A Plan is executed instead of reduced.
func (s *Store[S]) Send(action Action) {
	if plan, ok := action.(Plan[S]); ok {
		plan(s)
		return
	}
	s.pipeline(action)
}

func (s *Store[S]) apply(action Action) {
	if action == nil {
		return
	}
	s.state = s.reducer(s.state, action)
	s.logger.Debug("action applied", slog.String("action", fmt.Sprintf("%T", action)))
	s.updates.Publish(action)
}
