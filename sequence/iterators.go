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
	"errors"

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/types"
)

// Ping wraps it so that every Next first calls p.Ping(id). A ping error ends
// the iteration and is reported by Err.
func Ping[T any](it Iterator[T], p execctx.Pinger, id execctx.OpID) Iterator[T] {
	return &pingIterator[T]{it: it, p: p, id: id}
}

type pingIterator[T any] struct {
	it   Iterator[T]
	p    execctx.Pinger
	id   execctx.OpID
	err  error
	done bool
}

func (pi *pingIterator[T]) Next() bool {
	if pi.done {
		return false
	}
	if err := pi.p.Ping(pi.id); err != nil {
		pi.err = err
		pi.done = true
		return false
	}
	if !pi.it.Next() {
		pi.done = true
		return false
	}
	return true
}

func (pi *pingIterator[T]) Value() T { return pi.it.Value() }

func (pi *pingIterator[T]) Err() error {
	if pi.err != nil {
		return pi.err
	}
	return pi.it.Err()
}

func (pi *pingIterator[T]) Close() error { return pi.it.Close() }

// Map applies fn to every element of it, once per element.
func Map[S, T any](it Iterator[S], fn func(S) T) Iterator[T] {
	return &mapIterator[S, T]{it: it, fn: func(v S, _ int) T { return fn(v) }}
}

// MapIndexed applies fn to every element of it together with its zero-based
// position in it.
func MapIndexed[S, T any](it Iterator[S], fn func(S, int) T) Iterator[T] {
	return &mapIterator[S, T]{it: it, fn: fn}
}

type mapIterator[S, T any] struct {
	it    Iterator[S]
	fn    func(S, int) T
	index int
	cur   T
}

func (m *mapIterator[S, T]) Next() bool {
	if !m.it.Next() {
		return false
	}
	m.cur = m.fn(m.it.Value(), m.index)
	m.index++
	return true
}

func (m *mapIterator[S, T]) Value() T     { return m.cur }
func (m *mapIterator[S, T]) Err() error   { return m.it.Err() }
func (m *mapIterator[S, T]) Close() error { return m.it.Close() }

// Present skips absent values. Each skipped value still costs one pull of it.
func Present[T any](it Iterator[types.Optional[T]]) Iterator[T] {
	return &presentIterator[T]{it: it}
}

type presentIterator[T any] struct {
	it  Iterator[types.Optional[T]]
	cur T
}

func (pr *presentIterator[T]) Next() bool {
	for pr.it.Next() {
		if v, ok := pr.it.Value().Get(); ok {
			pr.cur = v
			return true
		}
	}
	return false
}

func (pr *presentIterator[T]) Value() T     { return pr.cur }
func (pr *presentIterator[T]) Err() error   { return pr.it.Err() }
func (pr *presentIterator[T]) Close() error { return pr.it.Close() }

// zipIterator advances two iterators in lock-step and stops as soon as either
// is exhausted.
type zipIterator[T any] struct {
	x, y Iterator[T]
	cur  types.Pair[T]
}

func (z *zipIterator[T]) Next() bool {
	if !z.x.Next() || !z.y.Next() {
		return false
	}
	z.cur = types.Pair[T]{X: z.x.Value(), Y: z.y.Value()}
	return true
}

func (z *zipIterator[T]) Value() types.Pair[T] { return z.cur }

func (z *zipIterator[T]) Err() error {
	if err := z.x.Err(); err != nil {
		return err
	}
	return z.y.Err()
}

func (z *zipIterator[T]) Close() error {
	return errors.Join(z.x.Close(), z.y.Close())
}
