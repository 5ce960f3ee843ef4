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

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/sequence"
)

// Average is the result of Mean.
type Average struct {
	Mean  float64
	Count int64
}

// Mean returns the compensated sum of in divided by max(count, 1).
// An absent input has a NaN mean; an empty one has mean 0.
func Mean[T any](kind numeric.Real[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Average, error) {
	if kind == nil {
		panic("reduce: nil numeric kind")
	}
	execctx.Must(p)
	if in.Absent() {
		return Average{Mean: math.NaN()}, nil
	}
	total, err := SumCompensated(kind, in, p, id)
	if err != nil {
		return Average{}, err
	}
	return Average{Mean: total.Sum / float64(max(total.Count, 1)), Count: total.Count}, nil
}

// Summary describes one sample.
type Summary struct {
	Count    int64
	Mean     float64
	Variance float64
}

// EmptySummary is the summary of an absent or empty sample.
func EmptySummary() Summary {
	return Summary{Mean: math.NaN(), Variance: math.NaN()}
}

// Describe returns count, mean and unbiased variance of in in a single pass.
// Mean is NaN for no values, Variance is NaN for fewer than two.
func Describe[T any](kind numeric.Real[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Summary, error) {
	if kind == nil {
		panic("reduce: nil numeric kind")
	}
	var m Moments
	if err := fold(in, p, id, func(v T) { m.Add(kind.Float64(v)) }); err != nil {
		return Summary{}, err
	}
	return m.Summary(), nil
}
