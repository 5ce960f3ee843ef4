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

package numeric

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Small integers cannot overflow an int64 accumulator before 2^32 elements
// have been added.
type Small interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Int64Of widens a small integer to int64.
func Int64Of[T Small](v T) int64 { return int64(v) }

// BoolInt64 maps true to 1 and false to 0.
func BoolInt64(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

// SetBig stores v into dst and returns dst.
func SetBig[T constraints.Integer](dst *big.Int, v T) *big.Int {
	if IsSigned[T]() {
		return dst.SetInt64(int64(v))
	}
	return dst.SetUint64(uint64(v))
}

// BigOf returns v as a newly allocated *big.Int.
func BigOf[T constraints.Integer](v T) *big.Int {
	return SetBig(new(big.Int), v)
}
