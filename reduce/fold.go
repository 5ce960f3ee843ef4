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
	"github.com/rulego/streamagg/sequence"
)

// fold feeds every value of in to add. An absent input feeds nothing and opens
// nothing. The iterator is closed on every path; a close error is reported
// only when the iteration itself succeeded.
func fold[T any](in sequence.Input[T], p execctx.Pinger, id execctx.OpID, add func(T)) (err error) {
	it, ok := in.Open(p, id)
	if !ok {
		return nil
	}
	defer func() {
		if cerr := it.Close(); err == nil {
			err = cerr
		}
	}()
	for it.Next() {
		add(it.Value())
	}
	return it.Err()
}
