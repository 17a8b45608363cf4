package columnresize

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResizer() *Resizer {
	return New([]Column{
		{ID: "name", Width: 200},
		{ID: "spend", Width: 120, MinWidth: 80},
		{ID: "acos", Width: 100},
	})
}

func TestResizer_StartHandleEnd(t *testing.T) {
	r := newTestResizer()
	assert.Equal(t, 420.0, r.TotalWidth())

	require.True(t, r.StartResize("name", 500))

	id, ok := r.Resizing()
	assert.True(t, ok)
	assert.Equal(t, "name", id)

	r.HandleResize(560)
	width, _ := r.Width("name")
	assert.Equal(t, 260.0, width)
	assert.Equal(t, 480.0, r.TotalWidth())

	// O delta é sempre relativo ao início da sessão
	r.HandleResize(450)
	width, _ = r.Width("name")
	assert.Equal(t, 150.0, width)
	assert.Equal(t, 370.0, r.TotalWidth())

	r.EndResize()
	_, ok = r.Resizing()
	assert.False(t, ok)
}

func TestResizer_MinWidth(t *testing.T) {
	r := newTestResizer()

	require.True(t, r.StartResize("acos", 0))
	r.HandleResize(-10000)
	width, _ := r.Width("acos")
	assert.Equal(t, DefaultMinWidth, width)
	r.EndResize()

	require.True(t, r.StartResize("spend", 0))
	r.HandleResize(-10000)
	width, _ = r.Width("spend")
	assert.Equal(t, 80.0, width)
	r.EndResize()

	assert.Equal(t, 200.0+80.0+50.0, r.TotalWidth())
}

func TestResizer_RandomSequencesNeverGoBelowMinWidth(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		r := newTestResizer()
		cols := r.Columns()
		target := cols[rnd.Intn(len(cols))]

		startX := rnd.Float64() * 1000
		require.True(t, r.StartResize(target.ID, startX))
		for n := 0; n < 20; n++ {
			r.HandleResize(startX + (rnd.Float64()*2-1)*2000)
		}
		r.EndResize()

		width, _ := r.Width(target.ID)
		assert.GreaterOrEqual(t, width, target.MinWidth)

		var sum float64
		for _, c := range r.Columns() {
			sum += c.Width
		}
		assert.InDelta(t, sum, r.TotalWidth(), 1e-9)
	}
}

func TestResizer_IdleCallsAreNoOps(t *testing.T) {
	r := newTestResizer()

	assert.NotPanics(t, func() {
		r.HandleResize(999)
		r.EndResize()
		r.EndResize()
	})

	width, _ := r.Width("name")
	assert.Equal(t, 200.0, width)
	_, ok := r.Resizing()
	assert.False(t, ok)
}

func TestResizer_RejectsSecondSession(t *testing.T) {
	r := newTestResizer()

	require.True(t, r.StartResize("name", 0))
	assert.False(t, r.StartResize("acos", 0))

	id, _ := r.Resizing()
	assert.Equal(t, "name", id)

	r.EndResize()
	r.EndResize()
	assert.True(t, r.StartResize("acos", 0))
}

func TestResizer_UnknownColumn(t *testing.T) {
	r := newTestResizer()

	assert.False(t, r.StartResize("missing", 10))
	_, ok := r.Width("missing")
	assert.False(t, ok)
}
