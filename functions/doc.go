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
Package functions exposes the reducers and t-tests as dynamically typed
functions behind a registry, and makes them callable from expr-lang
expressions.

# Built-in Functions

	MIN(x...)               - Minimum, NaN values ignored
	MAX(x...)               - Maximum, NaN values ignored
	SUM(x...)               - Compensated sum
	AVG(x...)               - Mean of the compensated sum
	COUNT(x...)             - Number of non-NULL values
	VARIANCE(x...)          - Sample variance (N-1)
	STDDEV(x...)            - Sample standard deviation (N-1)
	TTEST_ONE(x, mu)        - One-sample t-test
	TTEST_TWO(x, y)         - Two-sample t-test, pooled variance
	TTEST_WELCH(x, y)       - Two-sample t-test, Welch's approximation
	TTEST_PAIRED(x, y)      - Paired t-test on x - y

Array arguments are flattened. NULL and non-numeric elements are skipped;
numeric strings and booleans are converted with spf13/cast. The aggregates
return NULL (nil) when no value survives. The t-tests return a map with the
fields t, dof, stderr, p_left, p_right, p_two_sided and count_x, mean_x,
variance_x (plus the _y fields for two-sample tests).

# Incremental Aggregation

The aggregates also implement AggregatorFunction and can be fed one value at
a time:

	agg, _ := functions.CreateAggregator("stddev")
	for _, v := range readings {
		agg.Add(v)
	}
	result := agg.Result()

# Liveness

FunctionContext carries the liveness token and operation id passed to every
reducer. A nil context or token never cancels.
*/
package functions
