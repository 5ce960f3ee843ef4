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

package sequence

import (
	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/types"
)

// Input is a source bound to an input shape. The zero Input is absent.
type Input[T any] struct {
	open func(p execctx.Pinger, id execctx.OpID) Iterator[T]
}

// Absent reports whether the input has no source sequence.
func (in Input[T]) Absent() bool {
	return in.open == nil
}

// Open returns a pinging iterator over the input. ok is false for an absent
// input, in which case nothing is opened. Open panics on a nil token.
func (in Input[T]) Open(p execctx.Pinger, id execctx.OpID) (it Iterator[T], ok bool) {
	execctx.Must(p)
	if in.open == nil {
		return nil, false
	}
	return in.open(p, id), true
}

// Of reads src directly.
func Of[T any](src Sequence[T]) Input[T] {
	if src == nil {
		return Input[T]{}
	}
	return Input[T]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[T] {
		return Ping(src.Iterator(), p, id)
	}}
}

// OfNullable reads the present values of src.
func OfNullable[T any](src Sequence[types.Optional[T]]) Input[T] {
	if src == nil {
		return Input[T]{}
	}
	return Input[T]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[T] {
		return Present(Ping(src.Iterator(), p, id))
	}}
}

// Select reads fn(item) for every item of src.
func Select[S, T any](src Sequence[S], fn func(S) T) Input[T] {
	mustFunc(fn == nil)
	if src == nil {
		return Input[T]{}
	}
	return Input[T]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[T] {
		return Map(Ping(src.Iterator(), p, id), fn)
	}}
}

// SelectNullable reads the present results of fn(item).
func SelectNullable[S, T any](src Sequence[S], fn func(S) types.Optional[T]) Input[T] {
	mustFunc(fn == nil)
	if src == nil {
		return Input[T]{}
	}
	return Input[T]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[T] {
		return Present(Map(Ping(src.Iterator(), p, id), fn))
	}}
}

// SelectIndexed reads fn(item, index) where index counts every item of src,
// including items whose projection is later filtered.
func SelectIndexed[S, T any](src Sequence[S], fn func(S, int) T) Input[T] {
	mustFunc(fn == nil)
	if src == nil {
		return Input[T]{}
	}
	return Input[T]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[T] {
		return MapIndexed(Ping(src.Iterator(), p, id), fn)
	}}
}

// SelectIndexedNullable reads the present results of fn(item, index).
func SelectIndexedNullable[S, T any](src Sequence[S], fn func(S, int) types.Optional[T]) Input[T] {
	mustFunc(fn == nil)
	if src == nil {
		return Input[T]{}
	}
	return Input[T]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[T] {
		return Present(MapIndexed(Ping(src.Iterator(), p, id), fn))
	}}
}

// Transform applies fn to the values that survive in. Pings are unchanged.
func Transform[S, T any](in Input[S], fn func(S) T) Input[T] {
	mustFunc(fn == nil)
	if in.open == nil {
		return Input[T]{}
	}
	return Input[T]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[T] {
		return Map(in.open(p, id), fn)
	}}
}

func mustFunc(missing bool) {
	if missing {
		panic("sequence: nil projection function")
	}
}
