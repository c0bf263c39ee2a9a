package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	sel := make(Selection)

	assert.True(t, sel.Toggle(7), "first toggle selects")
	assert.True(t, sel.Has(7))
	assert.Equal(t, 1, sel.Count())

	assert.False(t, sel.Toggle(7), "second toggle deselects")
	assert.False(t, sel.Has(7))
	assert.Equal(t, 0, sel.Count())
}

func TestSelectionToggleRoundTrip(t *testing.T) {
	sel := SelectionFromIDs([]int64{1, 2, 3})
	sel.Toggle(2)
	sel.Toggle(2)
	assert.Equal(t, []int64{1, 2, 3}, sel.IDs())
}

func TestSelectionIDsSorted(t *testing.T) {
	sel := SelectionFromIDs([]int64{9, 1, 5})
	assert.Equal(t, []int64{1, 5, 9}, sel.IDs())
}

func TestSelectionIDsEmpty(t *testing.T) {
	assert.Nil(t, make(Selection).IDs())
}

func TestSelectionClear(t *testing.T) {
	sel := SelectionFromIDs([]int64{1, 2})
	sel.Clear()
	assert.Equal(t, 0, sel.Count())
	assert.Nil(t, sel.IDs())
}
