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
)

// BigIntKind handles *big.Int elements. Elements must not be nil.
type BigIntKind struct{}

// Zero returns a fresh zero that the caller owns.
func (BigIntKind) Zero() *big.Int { return new(big.Int) }

func (BigIntKind) LessEq(a, b *big.Int) bool { return a.Cmp(b) <= 0 }

func (BigIntKind) IsNaN(*big.Int) bool { return false }

// Add accumulates v into acc in place and returns acc.
func (BigIntKind) Add(acc, v *big.Int) *big.Int { return acc.Add(acc, v) }

// Float64 rounds v to the nearest float64; values beyond the float64 range
// become ±Inf.
func (BigIntKind) Float64(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
