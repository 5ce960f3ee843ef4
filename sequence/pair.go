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

// Pair inputs feed the paired t-test. A position survives a nullable pair
// input only when both sides are present.

// Zip pairs x and y position by position. Every pull of either side pings
// once; the shorter sequence ends the input. The input is absent when either
// sequence is.
func Zip[T any](x, y Sequence[T]) Input[types.Pair[T]] {
	if x == nil || y == nil {
		return Input[types.Pair[T]]{}
	}
	return Input[types.Pair[T]]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[types.Pair[T]] {
		return openZip(x, y, p, id)
	}}
}

// ZipNullable pairs x and y and drops positions where either side is absent.
func ZipNullable[T any](x, y Sequence[types.Optional[T]]) Input[types.Pair[T]] {
	if x == nil || y == nil {
		return Input[types.Pair[T]]{}
	}
	return Input[types.Pair[T]]{open: func(p execctx.Pinger, id execctx.OpID) Iterator[types.Pair[T]] {
		return Present(Map(openZip(x, y, p, id), bothPresent[T]))
	}}
}

func openZip[T any](x, y Sequence[T], p execctx.Pinger, id execctx.OpID) Iterator[types.Pair[T]] {
	return &zipIterator[T]{
		x: Ping(x.Iterator(), p, id),
		y: Ping(y.Iterator(), p, id),
	}
}

func bothPresent[T any](pair types.Pair[types.Optional[T]]) types.Optional[types.Pair[T]] {
	if !pair.X.Valid || !pair.Y.Valid {
		return types.None[types.Pair[T]]()
	}
	return types.Some(types.Pair[T]{X: pair.X.Value, Y: pair.Y.Value})
}

// SelectPair projects both sides from each item of src.
func SelectPair[S, T any](src Sequence[S], fx, fy func(S) T) Input[types.Pair[T]] {
	mustFunc(fx == nil || fy == nil)
	return Select(src, func(item S) types.Pair[T] {
		return types.Pair[T]{X: fx(item), Y: fy(item)}
	})
}

// SelectPairNullable projects both sides and keeps items where both are
// present.
func SelectPairNullable[S, T any](src Sequence[S], fx, fy func(S) types.Optional[T]) Input[types.Pair[T]] {
	mustFunc(fx == nil || fy == nil)
	return SelectNullable(src, func(item S) types.Optional[types.Pair[T]] {
		return bothPresent(types.Pair[types.Optional[T]]{X: fx(item), Y: fy(item)})
	})
}

// SelectPairIndexed projects both sides with the item's position.
func SelectPairIndexed[S, T any](src Sequence[S], fx, fy func(S, int) T) Input[types.Pair[T]] {
	mustFunc(fx == nil || fy == nil)
	return SelectIndexed(src, func(item S, i int) types.Pair[T] {
		return types.Pair[T]{X: fx(item, i), Y: fy(item, i)}
	})
}

// SelectPairIndexedNullable projects both sides with the item's position and
// keeps items where both are present.
func SelectPairIndexedNullable[S, T any](src Sequence[S], fx, fy func(S, int) types.Optional[T]) Input[types.Pair[T]] {
	mustFunc(fx == nil || fy == nil)
	return SelectIndexedNullable(src, func(item S, i int) types.Optional[types.Pair[T]] {
		return bothPresent(types.Pair[types.Optional[T]]{X: fx(item, i), Y: fy(item, i)})
	})
}
