package mousefilter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/boxpick/pkg/math"
)

// shiftingFilter is the straightforward array-shifting version the ring must match.
type shiftingFilter struct {
	history []math.Vec2
	weight  float32
}

func (s *shiftingFilter) filter(v math.Vec2) math.Vec2 {
	copy(s.history[1:], s.history[:len(s.history)-1])
	s.history[0] = v

	var avgX, avgY, total float32
	w := float32(1)
	for _, h := range s.history {
		avgX += h.X * w
		avgY += h.Y * w
		total += w
		w *= s.weight
	}
	return math.Vec2{X: avgX / total, Y: avgY / total}
}

func newFilter(t *testing.T) *Filter {
	t.Helper()
	f, err := New(DefaultDepth, DefaultWeight)
	require.NoError(t, err)
	return f
}

func TestFilterConstantHistory(t *testing.T) {
	f := newFilter(t)

	// Power-of-two samples scale the weights exactly
	f.Reset(math.Vec2{X: 0.5, Y: -2})
	assert.Equal(t, math.Vec2{X: 0.5, Y: -2}, f.Filter(math.Vec2{X: 0.5, Y: -2}))

	f.Reset(math.Vec2{X: 225, Y: 35.26})
	got := f.Filter(math.Vec2{X: 225, Y: 35.26})
	assert.InDelta(t, 225, got.X, 1e-4)
	assert.InDelta(t, 35.26, got.Y, 1e-4)
}

func TestFilterDisabledPassesThrough(t *testing.T) {
	f := newFilter(t)
	f.Reset(math.Vec2{X: 100, Y: 100})
	f.SetEnabled(false)
	assert.False(t, f.Enabled())

	in := math.Vec2{X: 3.7, Y: -12.25}
	assert.Equal(t, in, f.Filter(in))
	// The sample is still recorded
	assert.Equal(t, in, f.Sample(0))
	assert.Equal(t, math.Vec2{X: 100, Y: 100}, f.Sample(1))
}

func TestFilterStepResponse(t *testing.T) {
	f := newFilter(t)
	f.Reset(math.Vec2{})

	got := f.Filter(math.Vec2{X: 1, Y: -1})

	// Only the newest slot holds the step: 1 / sum(0.75^i, i<10)
	var total float32
	w := float32(1)
	for i := 0; i < DefaultDepth; i++ {
		total += w
		w *= DefaultWeight
	}
	assert.InDelta(t, 1/total, got.X, 1e-6)
	assert.InDelta(t, -1/total, got.Y, 1e-6)
	assert.Greater(t, got.X, float32(0))
	assert.Less(t, got.X, float32(1))
}

func TestFilterConverges(t *testing.T) {
	f := newFilter(t)
	f.Reset(math.Vec2{})

	var got math.Vec2
	for i := 0; i < DefaultDepth; i++ {
		got = f.Filter(math.Vec2{X: 4, Y: 8})
	}
	// After depth samples the old value has fully left the window
	assert.Equal(t, math.Vec2{X: 4, Y: 8}, got)
}

func TestFilterMatchesShiftingArray(t *testing.T) {
	f := newFilter(t)
	start := math.Vec2{X: 225, Y: 35}
	f.Reset(start)

	ref := &shiftingFilter{history: make([]math.Vec2, DefaultDepth), weight: DefaultWeight}
	for i := range ref.history {
		ref.history[i] = start
	}

	rng := rand.New(rand.NewSource(1))
	acc := start
	for i := 0; i < 100; i++ {
		acc = acc.Add(math.Vec2{X: rng.Float32()*10 - 5, Y: rng.Float32()*10 - 5})
		assert.Equal(t, ref.filter(acc), f.Filter(acc), "sample %d", i)
	}
}

func TestFilterSampleAges(t *testing.T) {
	f, err := New(3, 0.5)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		f.Filter(math.Vec2{X: float32(i)})
	}

	assert.Equal(t, float32(4), f.Sample(0).X)
	assert.Equal(t, float32(3), f.Sample(1).X)
	assert.Equal(t, float32(2), f.Sample(2).X)
	assert.Equal(t, 3, f.Depth())
}

func TestFilterDepthOne(t *testing.T) {
	f, err := New(1, 0.5)
	require.NoError(t, err)

	in := math.Vec2{X: 7, Y: -3}
	assert.Equal(t, in, f.Filter(in))
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		weight float32
	}{
		{"zero depth", 0, 0.5},
		{"negative depth", -1, 0.5},
		{"zero weight", 10, 0},
		{"unit weight", 10, 1},
		{"large weight", 10, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.depth, tt.weight)
			assert.Error(t, err)
			assert.Nil(t, f)
		})
	}
}
