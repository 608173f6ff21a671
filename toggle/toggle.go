package toggle

import "fmt"

// Group is a fixed set of mutually exclusive options with exactly one active.
type Group[T comparable] struct {
	options []T
	active  T
}

// New creates a group over options with def active. def must be one of options.
func New[T comparable](def T, options ...T) *Group[T] {
	g := &Group[T]{options: options}
	if !g.Has(def) {
		panic(fmt.Sprintf("toggle: default %v is not an option", def))
	}
	g.active = def
	return g
}

// Select makes option the active one and reports whether the selection changed.
func (g *Group[T]) Select(option T) bool {
	if !g.Has(option) {
		panic(fmt.Sprintf("toggle: %v is not an option", option))
	}
	if g.active == option {
		return false
	}
	g.active = option
	return true
}

func (g *Group[T]) Active() T {
	return g.active
}

func (g *Group[T]) IsActive(option T) bool {
	return g.active == option
}

// Has reports whether option belongs to the group.
func (g *Group[T]) Has(option T) bool {
	for _, o := range g.options {
		if o == option {
			return true
		}
	}
	return false
}

// Options returns the options in display order.
func (g *Group[T]) Options() []T {
	out := make([]T, len(g.options))
	copy(out, g.options)
	return out
}
