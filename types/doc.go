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
Package types provides the shared value types and configuration of StreamAgg.

# Nullable values

	type Optional[T any] struct {
		Value T
		Valid bool
	}

Sequences of Optional values are read through a null filter: absent elements
are pulled (and pinged) but never reach a reducer.

	values := []types.Optional[int32]{types.Some[int32](3), types.None[int32](), types.Some[int32](7)}

# Paired values

Pair[T] carries the two sides of one position for the paired t-test.

# Configuration

	type Config struct {
		LogLevel string         // DEBUG, INFO, WARN, ERROR, OFF
		Progress ProgressConfig // progress callback interval
		Metrics  MetricsConfig  // prometheus counters
	}

Configuration can be loaded from YAML:

	config, err := types.ParseConfig([]byte(`
	logLevel: DEBUG
	progress:
	  interval: 1000
	metrics:
	  enabled: true
	  namespace: engine
	`))
*/
package types
