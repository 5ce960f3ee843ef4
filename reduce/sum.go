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
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/sequence"
)

// Total is a sum together with the number of values summed.
type Total[T any] struct {
	Sum   T
	Count int64
}

// Sum adds the values of in in their own type. Integer sums are exact and wrap
// on overflow; use SumInt64 or SumBig when the result may not fit.
func Sum[T any](kind numeric.Numeric[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Total[T], error) {
	if kind == nil {
		panic("reduce: nil numeric kind")
	}
	acc := Total[T]{Sum: kind.Zero()}
	err := fold(in, p, id, func(v T) {
		acc.Sum = kind.Add(acc.Sum, v)
		acc.Count++
	})
	if err != nil {
		return Total[T]{}, err
	}
	return acc, nil
}

// SumWidened adds widen(v) for every value of in into the wider kind into.
func SumWidened[T, W any](in sequence.Input[T], into numeric.Numeric[W], widen func(T) W, p execctx.Pinger, id execctx.OpID) (Total[W], error) {
	if into == nil || widen == nil {
		panic("reduce: nil widening kind or function")
	}
	acc := Total[W]{Sum: into.Zero()}
	err := fold(in, p, id, func(v T) {
		acc.Sum = into.Add(acc.Sum, widen(v))
		acc.Count++
	})
	if err != nil {
		return Total[W]{}, err
	}
	return acc, nil
}

// SumInt64 adds 8, 16 and 32-bit integers into an int64 accumulator.
func SumInt64[T numeric.Small](in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Total[int64], error) {
	return SumWidened(in, numeric.Int64, numeric.Int64Of[T], p, id)
}

// SumBool counts the true values of in.
func SumBool(in sequence.Input[bool], p execctx.Pinger, id execctx.OpID) (Total[int64], error) {
	return SumWidened(in, numeric.Int64, numeric.BoolInt64, p, id)
}

// SumBig adds integers of any width into an arbitrary precision accumulator
// without allocating per value.
func SumBig[T constraints.Integer](in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Total[*big.Int], error) {
	acc := Total[*big.Int]{Sum: new(big.Int)}
	var scratch big.Int
	err := fold(in, p, id, func(v T) {
		acc.Sum.Add(acc.Sum, numeric.SetBig(&scratch, v))
		acc.Count++
	})
	if err != nil {
		return Total[*big.Int]{}, err
	}
	return acc, nil
}

// SumCompensated adds the float64 projections of the values of in with
// Neumaier compensation.
func SumCompensated[T any](kind numeric.Real[T], in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Total[float64], error) {
	if kind == nil {
		panic("reduce: nil numeric kind")
	}
	var acc Neumaier
	if err := fold(in, p, id, func(v T) { acc.Add(kind.Float64(v)) }); err != nil {
		return Total[float64]{}, err
	}
	return Total[float64]{Sum: acc.Sum(), Count: acc.Count()}, nil
}

// SumFloat is the sum of the floating kinds: compensated in float64 and
// rounded back to T.
func SumFloat[T constraints.Float](in sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Total[T], error) {
	var acc Neumaier
	if err := fold(in, p, id, func(v T) { acc.Add(float64(v)) }); err != nil {
		return Total[T]{}, err
	}
	return Total[T]{Sum: T(acc.Sum()), Count: acc.Count()}, nil
}
