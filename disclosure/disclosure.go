package disclosure

import (
	"fmt"
	"strings"
)

// List tracks the expanded state of an ordered set of items keyed by ID.
// Each item is independent; any number may be expanded at once.
type List struct {
	ids      []string
	expanded map[string]bool
}

// New creates a list with every item collapsed.
func New(ids ...string) *List {
	l := &List{
		ids:      make([]string, 0, len(ids)),
		expanded: make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		if _, dup := l.expanded[id]; dup {
			panic(fmt.Sprintf("disclosure: duplicate id %q", id))
		}
		l.ids = append(l.ids, id)
		l.expanded[id] = false
	}
	return l
}

// Toggle flips the expanded flag of id.
func (l *List) Toggle(id string) {
	l.mustHave(id)
	l.expanded[id] = !l.expanded[id]
}

// Set forces the expanded flag of id.
func (l *List) Set(id string, expanded bool) {
	l.mustHave(id)
	l.expanded[id] = expanded
}

func (l *List) IsExpanded(id string) bool {
	return l.expanded[id]
}

func (l *List) Has(id string) bool {
	_, ok := l.expanded[id]
	return ok
}

// IDs returns all item IDs in list order.
func (l *List) IDs() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

// Expanded returns the expanded item IDs in list order.
func (l *List) Expanded() []string {
	var out []string
	for _, id := range l.ids {
		if l.expanded[id] {
			out = append(out, id)
		}
	}
	return out
}

// Encode serializes the expanded set for use in a query value.
func (l *List) Encode() string {
	return strings.Join(l.Expanded(), ",")
}

// Decode expands every item named in s. Unknown IDs are skipped so stale links
// still render.
func (l *List) Decode(s string) {
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if l.Has(id) {
			l.expanded[id] = true
		}
	}
}

func (l *List) mustHave(id string) {
	if !l.Has(id) {
		panic(fmt.Sprintf("disclosure: unknown id %q", id))
	}
}
