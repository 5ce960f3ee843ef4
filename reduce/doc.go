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

/*
Package reduce folds a sequence of scalars into summary statistics in a
single pass and constant memory.

# Reducers

	Min, Max, MinMax                  extremum of any ordered kind
	MinCount, MaxCount, MinMaxCount   same, with the number of values seen
	Sum                               plain sum in the element type
	SumInt64, SumBool, SumBig         widened sums that cannot overflow
	SumWidened                        sum of widen(v) into any wider kind
	SumCompensated, SumFloat          Neumaier compensated float64 sums
	Mean                              compensated sum / max(count, 1)
	Describe                          count, mean and unbiased variance

Every reducer takes the numeric kind first and the liveness token and
operation id last:

	total, err := reduce.SumBig(sequence.OfNullable(values), ec, opID)
	if err != nil {
		return err // canceled, nothing partial is returned
	}

Absent input is not an error: extremum reducers report the kind's zero with
count 0, sums report zero, Mean reports NaN. Callers check Count before trusting
a bound.

# Accumulators

The reducers are built on push-style accumulators that can also be fed one
value at a time: Extremes, Neumaier and Moments. They are plain values and
are never shared between reductions.
*/
package reduce
