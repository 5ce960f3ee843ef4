/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package reduce

import (
	"math"

	"github.com/rulego/streamagg/numeric"
)

// Extremes tracks the running minimum and maximum of one kind.
//
// The bounds start at the first value added. Each later value v replaces a
// bound when the bound does not hold for v and v is not NaN:
//
//	if !(min <= v) && v == v { min = v }
//	if !(max >= v) && v == v { max = v }
//
// A comparison with NaN is false on either side, so a NaN v never replaces a
// bound while a NaN first value is replaced by the next non-NaN value. The
// result is NaN only if every value was NaN.
type Extremes[T any] struct {
	kind     numeric.Ordered[T]
	min, max T
	count    int64
}

// NewExtremes creates an empty accumulator for kind.
func NewExtremes[T any](kind numeric.Ordered[T]) Extremes[T] {
	if kind == nil {
		panic("reduce: nil numeric kind")
	}
	zero := kind.Zero()
	return Extremes[T]{kind: kind, min: zero, max: zero}
}

// Add folds v into the bounds.
func (e *Extremes[T]) Add(v T) {
	if e.count == 0 {
		e.min, e.max = v, v
		e.count = 1
		return
	}
	if e.kind.IsNaN(v) {
		e.count++
		return
	}
	if !e.kind.LessEq(e.min, v) {
		e.min = v
	}
	if !e.kind.LessEq(v, e.max) {
		e.max = v
	}
	e.count++
}

// Min returns the minimum, or the kind's zero when nothing was added.
func (e *Extremes[T]) Min() T { return e.min }

// Max returns the maximum, or the kind's zero when nothing was added.
func (e *Extremes[T]) Max() T { return e.max }

// Count returns the number of values added.
func (e *Extremes[T]) Count() int64 { return e.count }

// Reset empties the accumulator.
func (e *Extremes[T]) Reset() {
	*e = NewExtremes(e.kind)
}

// Neumaier is a compensated (Kahan-Babuška) float64 sum. The rounding error of
// the result does not grow with the number of values added.
type Neumaier struct {
	sum        float64
	correction float64
	count      int64
}

// Add folds v into the sum.
func (n *Neumaier) Add(v float64) {
	pre := n.sum
	n.sum = pre + v
	if math.Abs(pre) >= math.Abs(v) {
		n.correction += pre - n.sum + v
	} else {
		n.correction += v - n.sum + pre
	}
	n.count++
}

// Sum returns the compensated sum.
func (n *Neumaier) Sum() float64 {
	// an infinite running sum makes the correction NaN
	if math.IsInf(n.sum, 0) {
		return n.sum
	}
	return n.sum + n.correction
}

// Count returns the number of values added.
func (n *Neumaier) Count() int64 { return n.count }

// Reset empties the sum.
func (n *Neumaier) Reset() { *n = Neumaier{} }

// Moments accumulates count, mean and unbiased variance in one pass.
//
// Values are shifted by the first value before their first and second moments
// are summed with Neumaier compensation, which keeps the sum-of-squares form
// free of catastrophic cancellation when the mean is large compared to the
// spread.
type Moments struct {
	shift  float64
	first  Neumaier
	second Neumaier
}

// Add folds v into the moments.
func (m *Moments) Add(v float64) {
	if m.first.count == 0 {
		m.shift = v
	}
	d := v - m.shift
	m.first.Add(d)
	m.second.Add(d * d)
}

// Count returns the number of values added.
func (m *Moments) Count() int64 { return m.first.count }

// Mean returns the arithmetic mean, NaN when empty.
func (m *Moments) Mean() float64 {
	if m.first.count == 0 {
		return math.NaN()
	}
	return m.shift + m.first.Sum()/float64(m.first.count)
}

// Variance returns the unbiased (N-1) sample variance, NaN below two values.
func (m *Moments) Variance() float64 {
	n := float64(m.first.count)
	if n < 2 {
		return math.NaN()
	}
	s := m.first.Sum()
	v := (m.second.Sum() - s*s/n) / (n - 1)
	if v < 0 {
		// rounding only
		v = 0
	}
	return v
}

// Summary returns the accumulated statistics.
func (m *Moments) Summary() Summary {
	return Summary{Count: m.Count(), Mean: m.Mean(), Variance: m.Variance()}
}

// Reset empties the accumulator.
func (m *Moments) Reset() { *m = Moments{} }
