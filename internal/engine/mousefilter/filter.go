// Package mousefilter smooths mouse input with a bounded exponential moving
// average over the most recent samples.
package mousefilter

import (
	"fmt"

	"github.com/Faultbox/boxpick/pkg/math"
)

// Default filter settings.
const (
	DefaultDepth  = 10
	DefaultWeight = 0.75
)

// Filter keeps the last N samples in a ring and returns their weighted
// average, weighting the sample of age i by Weight^i.
// A Filter is not safe for concurrent use.
type Filter struct {
	history []math.Vec2
	weights []float32
	total   float32
	head    int // Slot holding the newest sample
	enabled bool
}

// New creates a filter over depth samples with the given decay weight.
// depth must be positive and weight must lie in (0, 1).
func New(depth int, weight float32) (*Filter, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("mousefilter: depth must be positive, got %d", depth)
	}
	if weight <= 0 || weight >= 1 {
		return nil, fmt.Errorf("mousefilter: weight must be in (0,1), got %v", weight)
	}

	f := &Filter{
		history: make([]math.Vec2, depth),
		weights: make([]float32, depth),
		enabled: true,
	}

	w := float32(1)
	for i := range f.weights {
		f.weights[i] = w
		f.total += w
		w *= weight
	}
	return f, nil
}

// Depth returns the number of samples kept.
func (f *Filter) Depth() int {
	return len(f.history)
}

// Enabled reports whether smoothing is applied.
func (f *Filter) Enabled() bool {
	return f.enabled
}

// SetEnabled turns smoothing on or off. When off, Filter returns its input.
func (f *Filter) SetEnabled(enabled bool) {
	f.enabled = enabled
}

// Reset fills every slot with v, so the next output continues smoothly from v.
func (f *Filter) Reset(v math.Vec2) {
	for i := range f.history {
		f.history[i] = v
	}
	f.head = 0
}

// Sample returns the sample of the given age (0 = newest).
func (f *Filter) Sample(age int) math.Vec2 {
	return f.history[(f.head+age)%len(f.history)]
}

// Filter records v as the newest sample, dropping the oldest, and returns the
// smoothed value. With smoothing disabled v is recorded and returned as is.
func (f *Filter) Filter(v math.Vec2) math.Vec2 {
	n := len(f.history)
	f.head = (f.head + n - 1) % n
	f.history[f.head] = v

	if !f.enabled {
		return v
	}

	var sum math.Vec2
	for age, w := range f.weights {
		s := f.history[(f.head+age)%n]
		sum.X += s.X * w
		sum.Y += s.Y * w
	}
	return sum.Div(f.total)
}
