package textmetrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthBasics(t *testing.T) {
	m := New()
	assert.Equal(t, 0.0, m.Width("", Regular))

	narrow := m.Width("iiii", Regular)
	wide := m.Width("MMMM", Regular)
	require.Greater(t, narrow, 0.0)
	assert.Greater(t, wide, narrow)

	// Width is additive over runes.
	assert.InDelta(t, m.Width("ab", Regular), m.Width("a", Regular)+m.Width("b", Regular), 1e-9)
}

func TestWidthMono(t *testing.T) {
	m := New()
	i := m.Width("i", Mono)
	assert.InDelta(t, i, m.Width("M", Mono), 1e-9)
	assert.InDelta(t, 4*i, m.Width("iMiM", Mono), 1e-9)
}

func TestWidthMissingGlyphs(t *testing.T) {
	m := New()
	assert.InDelta(t, 2.0, m.Width("世界", Regular), 1e-9)
	assert.Equal(t, 1.0, missingWidth('界'))
	assert.Equal(t, 0.6, missingWidth('க'))
}

func TestStyleOf(t *testing.T) {
	assert.Equal(t, Regular, StyleOf(false, false, false))
	assert.Equal(t, Bold, StyleOf(true, false, false))
	assert.Equal(t, Italic, StyleOf(false, true, false))
	assert.Equal(t, BoldItalic, StyleOf(true, true, false))
	assert.Equal(t, Mono, StyleOf(true, true, true))
}

func TestConcurrentMeasurers(t *testing.T) {
	want := New().Width("concurrent text", Italic)
	var wg sync.WaitGroup
	got := make([]float64, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = New().Width("concurrent text", Italic)
		}(i)
	}
	wg.Wait()
	for _, w := range got {
		assert.Equal(t, want, w)
	}
}
