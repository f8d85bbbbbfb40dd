package connect

// Guard gates a subtree's rendering on its projection being present. It never
// touches state or dispatch; it only decides whether render runs.
type Guard[S, V any] struct {
	conn   *StateConnection[S]
	render func(S) V
}

// NewGuard wraps render behind conn's projection.
func NewGuard[S, V any](conn *StateConnection[S], render func(S) V) Guard[S, V] {
	return Guard[S, V]{conn: conn, render: render}
}

// Render evaluates the wrapped render func against the latest projection.
// While the projection is absent it returns the zero value and false, and
// render is not called.
func (g Guard[S, V]) Render() (V, bool) {
	state, ok := g.conn.Latest()
	if !ok {
		var zero V
		return zero, false
	}
	return g.render(state), true
}

// RenderOr is Render with a fallback for the absent case.
func (g Guard[S, V]) RenderOr(fallback V) V {
	v, ok := g.Render()
	if !ok {
		return fallback
	}
	return v
}
