package store

// Reducer computes the next state from the current state and an action. It
// must be pure: no side effects, and actions it does not recognize return the
// input state unchanged.
type Reducer[S any] func(state S, action Action) S

// Combine composes reducers left to right: each reducer receives the state
// produced by the one before it.
func Combine[S any](reducers ...Reducer[S]) Reducer[S] {
	return func(state S, action Action) S {
		for _, r := range reducers {
			state = r(state, action)
		}
		return state
	}
}
