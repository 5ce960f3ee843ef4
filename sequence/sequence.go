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
Package sequence provides the single-pass iteration protocol of the reducers.

# Iterators

An Iterator is forward-only and disposable, in the style of database/sql.Rows:

	it := seq.Iterator()
	defer it.Close()
	for it.Next() {
		use(it.Value())
	}
	if err := it.Err(); err != nil {
		return err
	}

# Inputs

An Input describes how a reducer reads its data. It binds a source sequence
to an input shape (direct, selector, indexed selector, each optionally
nullable) and is opened with the liveness token of the reduction:

	sequence.Of(values)                         // T
	sequence.OfNullable(values)                 // Optional[T], absent skipped
	sequence.Select(rows, fn)                   // fn(S) T
	sequence.SelectIndexedNullable(rows, fn)    // fn(S, index) Optional[T]

Opening pings once per element pulled from the source, before the pull and
irrespective of whether the element is later filtered as absent. A nil source
sequence is an absent input: it opens no iterator and pings nothing.
*/
package sequence

import (
	"iter"
)

// Iterator is a single-pass cursor.
type Iterator[T any] interface {
	// Next advances to the next element and reports whether there is one.
	Next() bool
	// Value returns the current element. Valid only after Next returned true.
	Value() T
	// Err returns the error that stopped the iteration, if any.
	Err() error
	// Close releases the resources of the iterator. It is safe to call Close
	// more than once.
	Close() error
}

// Sequence produces iterators.
type Sequence[T any] interface {
	Iterator() Iterator[T]
}

// SequenceFunc adapts a function to Sequence.
type SequenceFunc[T any] func() Iterator[T]

func (f SequenceFunc[T]) Iterator() Iterator[T] { return f() }

// Slice returns a sequence over items. A nil slice is an empty sequence, not
// an absent one.
func Slice[T any](items []T) Sequence[T] {
	return SequenceFunc[T](func() Iterator[T] {
		return &sliceIterator[T]{items: items, pos: -1}
	})
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (s *sliceIterator[T]) Next() bool {
	if s.pos+1 >= len(s.items) {
		s.pos = len(s.items)
		return false
	}
	s.pos++
	return true
}

func (s *sliceIterator[T]) Value() T     { return s.items[s.pos] }
func (s *sliceIterator[T]) Err() error   { return nil }
func (s *sliceIterator[T]) Close() error { return nil }

// FromSeq adapts a range-over-func sequence. Closing the iterator stops the
// producer. A nil seq is absent.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	if seq == nil {
		return nil
	}
	return SequenceFunc[T](func() Iterator[T] {
		next, stop := iter.Pull(seq)
		return &pullIterator[T]{next: next, stop: stop}
	})
}

type pullIterator[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
}

func (p *pullIterator[T]) Next() bool {
	v, ok := p.next()
	if !ok {
		return false
	}
	p.cur = v
	return true
}

func (p *pullIterator[T]) Value() T   { return p.cur }
func (p *pullIterator[T]) Err() error { return nil }

func (p *pullIterator[T]) Close() error {
	p.stop()
	return nil
}

// FromChan reads ch until it is closed. Sequences built on a channel can be
// iterated only once. A nil channel is absent.
func FromChan[T any](ch <-chan T) Sequence[T] {
	if ch == nil {
		return nil
	}
	return SequenceFunc[T](func() Iterator[T] {
		return &chanIterator[T]{ch: ch}
	})
}

type chanIterator[T any] struct {
	ch  <-chan T
	cur T
}

func (c *chanIterator[T]) Next() bool {
	v, ok := <-c.ch
	if !ok {
		return false
	}
	c.cur = v
	return true
}

func (c *chanIterator[T]) Value() T     { return c.cur }
func (c *chanIterator[T]) Err() error   { return nil }
func (c *chanIterator[T]) Close() error { return nil }
