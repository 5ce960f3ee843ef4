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

// Package numeric describes the element kinds the reducers can fold.
//
// A kind is a small stateless value that knows the zero value, the ordering,
// the addition and the float64 projection of one Go type. Reducers receive the
// kind together with the data so one generic algorithm serves every element
// type:
//
//	Native[T]  int8 … uint64, float32, float64 (operators of the language)
//	BoolKind   bool, false < true, projected to 0/1
//	BigIntKind *big.Int, arbitrary precision
//
// Floating kinds detect NaN with self-inequality (v != v); every other kind
// reports no NaN.
package numeric

import (
	"golang.org/x/exp/constraints"
)

// Ordered is the part of a kind the extremum reducer needs.
type Ordered[T any] interface {
	// Zero returns the default value of the kind, reported for empty input.
	Zero() T
	// LessEq reports a <= b. It is false whenever either side is NaN.
	LessEq(a, b T) bool
	// IsNaN reports whether v is unequal to itself.
	IsNaN(v T) bool
}

// Real projects a kind onto float64 for statistics.
type Real[T any] interface {
	Float64(v T) float64
}

// Numeric is a kind that can also be summed in its own type.
type Numeric[T any] interface {
	Ordered[T]
	Real[T]
	// Add returns acc + v. Implementations may reuse the storage of acc,
	// so acc must be owned by the caller.
	Add(acc, v T) T
}

// Number is the set of Go types backed by Native.
type Number interface {
	constraints.Integer | constraints.Float
}

// Native implements Numeric with the built-in operators of T.
type Native[T Number] struct{}

func (Native[T]) Zero() T {
	var zero T
	return zero
}

func (Native[T]) LessEq(a, b T) bool { return a <= b }

// IsNaN is constant false for integers.
func (Native[T]) IsNaN(v T) bool { return v != v }

func (Native[T]) Add(acc, v T) T { return acc + v }

func (Native[T]) Float64(v T) float64 { return float64(v) }

// Kinds of the engine's numeric type matrix.
var (
	Int8    Native[int8]
	Uint8   Native[uint8]
	Int16   Native[int16]
	Uint16  Native[uint16]
	Int32   Native[int32]
	Uint32  Native[uint32]
	Int64   Native[int64]
	Uint64  Native[uint64]
	Float32 Native[float32]
	Float64 Native[float64]
	Bool    BoolKind
	BigInt  BigIntKind
)
