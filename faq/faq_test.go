package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries(t *testing.T) {
	list := Entries()
	require.Len(t, list, 8)

	seen := map[string]bool{}
	for _, e := range list {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Question)
		assert.NotEmpty(t, e.Answer)
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestNewDisclosureScenario(t *testing.T) {
	list := Entries()
	d := NewDisclosure(list)
	assert.Equal(t, len(list), len(d.IDs()))
	assert.Empty(t, d.Expanded())

	third := list[2].ID
	d.Toggle(third)
	for i, e := range list {
		assert.Equal(t, i == 2, d.IsExpanded(e.ID), e.ID)
	}

	d.Toggle(third)
	assert.Empty(t, d.Expanded())
}

func TestLookup(t *testing.T) {
	for _, e := range Entries() {
		got, ok := Lookup(e.ID)
		require.True(t, ok, e.ID)
		assert.Equal(t, e, got)
	}

	_, ok := Lookup("no-such-question")
	assert.False(t, ok)
}
