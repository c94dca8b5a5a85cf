package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func components(n int) []Component {
	comps := make([]Component, n)
	for i := range comps {
		comps[i] = Component{Kind: KindGeneric, Label: "X"}
	}
	return comps
}

func TestLayoutSpacing(t *testing.T) {
	comps := components(3)
	Layout(comps)
	for i, want := range []int{200, 400, 600} {
		assert.Equal(t, want, comps[i].X)
		assert.Equal(t, 300, comps[i].Y)
	}
}

func TestLayoutTruncatesSpacing(t *testing.T) {
	// Spacing is integer division: 800/6 = 133.
	comps := components(5)
	Layout(comps)
	for i, want := range []int{133, 266, 399, 532, 665} {
		assert.Equal(t, want, comps[i].X, "component %d", i)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	a := components(4)
	b := components(4)
	Layout(a)
	Layout(b)
	assert.Equal(t, a, b)

	// Re-running over already placed components changes nothing.
	Layout(a)
	assert.Equal(t, a, b)
}

func TestLayoutEmpty(t *testing.T) {
	assert.NotPanics(t, func() { Layout(nil) })
	assert.NotPanics(t, func() { Layout([]Component{}) })
}
