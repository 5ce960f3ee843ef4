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

// BoolKind orders false before true and projects booleans to 0/1.
// It has no Add: sum booleans with a widening reducer into Int64.
type BoolKind struct{}

func (BoolKind) Zero() bool { return false }

func (BoolKind) LessEq(a, b bool) bool { return !a || b }

func (BoolKind) IsNaN(bool) bool { return false }

func (BoolKind) Float64(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
