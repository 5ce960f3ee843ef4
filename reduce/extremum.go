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
	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/sequence"
)

// Extremum is the result of MinMaxCount. Min and Max are the kind's zero when
// Count is 0.
type Extremum[T any] struct {
	Min   T
	Max   T
	Count int64
}

// MinMaxCount returns the minimum, the maximum and the number of values of in.
func MinMaxCount[T any](kind numeric.Ordered[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Extremum[T], error) {
	acc := NewExtremes(kind)
	if err := fold(in, p, id, acc.Add); err != nil {
		return Extremum[T]{}, err
	}
	return Extremum[T]{Min: acc.Min(), Max: acc.Max(), Count: acc.Count()}, nil
}

// MinMax returns the minimum and the maximum of in.
func MinMax[T any](kind numeric.Ordered[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (min, max T, err error) {
	r, err := MinMaxCount(kind, in, p, id)
	return r.Min, r.Max, err
}

// MinCount returns the minimum of in and the number of values considered.
func MinCount[T any](kind numeric.Ordered[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (T, int64, error) {
	r, err := MinMaxCount(kind, in, p, id)
	return r.Min, r.Count, err
}

// Min returns the minimum of in, or the kind's zero for empty input.
func Min[T any](kind numeric.Ordered[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (T, error) {
	r, err := MinMaxCount(kind, in, p, id)
	return r.Min, err
}

// MaxCount returns the maximum of in and the number of values considered.
func MaxCount[T any](kind numeric.Ordered[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (T, int64, error) {
	r, err := MinMaxCount(kind, in, p, id)
	return r.Max, r.Count, err
}

// Max returns the maximum of in, or the kind's zero for empty input.
func Max[T any](kind numeric.Ordered[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (T, error) {
	r, err := MinMaxCount(kind, in, p, id)
	return r.Max, err
}
