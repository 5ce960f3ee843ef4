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
Package ttest computes Student's t-tests over sequences in a single pass per
sample.

	r, err := ttest.Welch(numeric.Float64, sequence.Of(before), sequence.Of(after), ec, opID)
	if err != nil {
		return err
	}
	if r.X.Count > 1 && r.PTwoSided < 0.05 {
		// significant
	}

Absent or too short samples never fail: the statistics come back NaN and the
counts tell why. Cancellation from the liveness token is returned as an error
and no partial result is reported.
*/
package ttest
