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
	"slices"
	"testing"

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPinger counts pings and fails once failAt pings have been seen.
type countingPinger struct {
	pings  int
	failAt int
	ids    []execctx.OpID
}

var errStop = errors.New("stop")

func (c *countingPinger) Ping(id execctx.OpID) error {
	c.pings++
	c.ids = append(c.ids, id)
	if c.failAt > 0 && c.pings >= c.failAt {
		return errStop
	}
	return nil
}

// trackedSeq records whether its iterator was closed.
type trackedSeq[T any] struct {
	items  []T
	opened int
	closed int
}

func (s *trackedSeq[T]) Iterator() Iterator[T] {
	s.opened++
	return &trackedIterator[T]{Iterator: Slice(s.items).Iterator(), seq: s}
}

type trackedIterator[T any] struct {
	Iterator[T]
	seq *trackedSeq[T]
}

func (t *trackedIterator[T]) Close() error {
	t.seq.closed++
	return t.Iterator.Close()
}

func drain[T any](t *testing.T, in Input[T], p execctx.Pinger) ([]T, error) {
	t.Helper()
	it, ok := in.Open(p, 42)
	require.True(t, ok)
	defer it.Close()
	var out []T
	for it.Next() {
		out = append(out, it.Value())
	}
	return out, it.Err()
}

func TestSlice(t *testing.T) {
	it := Slice([]int{1, 2, 3}).Iterator()
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
	assert.NoError(t, it.Close())

	empty := Slice[int](nil).Iterator()
	assert.False(t, empty.Next())
}

func TestFromSeq(t *testing.T) {
	assert.Nil(t, FromSeq[int](nil))

	p := &countingPinger{}
	got, err := drain(t, Of(FromSeq(slices.Values([]string{"a", "b"}))), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	// closing early stops the producer
	stopped := false
	seq := FromSeq(func(yield func(int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})
	it := seq.Iterator()
	require.True(t, it.Next())
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Value())
	require.NoError(t, it.Close())
	assert.True(t, stopped)
}

func TestFromChan(t *testing.T) {
	assert.Nil(t, FromChan[int](nil))

	ch := make(chan int, 3)
	ch <- 4
	ch <- 5
	close(ch)
	got, err := drain(t, Of(FromChan(ch)), &countingPinger{})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got)
}

func TestOfPingsBeforeEveryPull(t *testing.T) {
	p := &countingPinger{}
	got, err := drain(t, Of(Slice([]int{1, 2, 3, 4, 5})), p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	// five elements plus the pull that finds the end
	assert.Equal(t, 6, p.pings)
	for _, id := range p.ids {
		assert.Equal(t, execctx.OpID(42), id)
	}
}

func TestPingFailureStopsIteration(t *testing.T) {
	src := &trackedSeq[int]{items: []int{1, 2, 3, 4, 5}}
	p := &countingPinger{failAt: 3}
	got, err := drain(t, Of[int](src), p)
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, p.pings)
	assert.Equal(t, 1, src.closed)
}

func TestAbsentInput(t *testing.T) {
	p := &countingPinger{}
	inputs := []Input[int]{
		Of[int](nil),
		OfNullable[int](nil),
		Select[string, int](nil, func(string) int { return 0 }),
		SelectIndexed[string, int](nil, func(string, int) int { return 0 }),
		SelectNullable[string, int](nil, func(string) types.Optional[int] { return types.None[int]() }),
		SelectIndexedNullable[string, int](nil, func(string, int) types.Optional[int] { return types.None[int]() }),
		{},
	}
	for _, in := range inputs {
		assert.True(t, in.Absent())
		it, ok := in.Open(p, 1)
		assert.False(t, ok)
		assert.Nil(t, it)
	}
	assert.Equal(t, 0, p.pings)
}

func TestNullFilterPingsSkippedValues(t *testing.T) {
	values := []types.Optional[int]{
		types.None[int](),
		types.Some(1),
		types.None[int](),
		types.None[int](),
		types.Some(2),
		types.None[int](),
	}
	p := &countingPinger{}
	got, err := drain(t, OfNullable(Slice(values)), p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, len(values)+1, p.pings)
}

func TestSelectShapes(t *testing.T) {
	words := Slice([]string{"a", "bb", "", "dddd"})

	t.Run("selector", func(t *testing.T) {
		got, err := drain(t, Select(words, func(s string) int { return len(s) }), &countingPinger{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 0, 4}, got)
	})

	t.Run("indexed selector", func(t *testing.T) {
		got, err := drain(t, SelectIndexed(words, func(s string, i int) int { return len(s)*10 + i }), &countingPinger{})
		require.NoError(t, err)
		assert.Equal(t, []int{10, 21, 2, 43}, got)
	})

	t.Run("nullable selector", func(t *testing.T) {
		p := &countingPinger{}
		got, err := drain(t, SelectNullable(words, func(s string) types.Optional[int] {
			if s == "" {
				return types.None[int]()
			}
			return types.Some(len(s))
		}), p)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 4}, got)
		assert.Equal(t, 5, p.pings)
	})

	t.Run("indexed nullable selector keeps source positions", func(t *testing.T) {
		got, err := drain(t, SelectIndexedNullable(words, func(s string, i int) types.Optional[int] {
			if s == "" {
				return types.None[int]()
			}
			return types.Some(i)
		}), &countingPinger{})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 3}, got)
	})

	t.Run("transform", func(t *testing.T) {
		in := Transform(Of(Slice([]int{1, 2})), func(v int) float64 { return float64(v) / 2 })
		got, err := drain(t, in, &countingPinger{})
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 1}, got)
		assert.True(t, Transform(Of[int](nil), func(v int) int { return v }).Absent())
	})
}

func TestSelectorCalledOncePerElement(t *testing.T) {
	calls := 0
	in := Select(Slice([]int{1, 2, 3}), func(v int) int {
		calls++
		return v
	})
	_, err := drain(t, in, &countingPinger{})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestZip(t *testing.T) {
	x := &trackedSeq[int]{items: []int{1, 2, 3}}
	y := &trackedSeq[int]{items: []int{10, 20}}
	p := &countingPinger{}

	got, err := drain(t, Zip[int](x, y), p)
	require.NoError(t, err)
	assert.Equal(t, []types.Pair[int]{{X: 1, Y: 10}, {X: 2, Y: 20}}, got)
	// 2 pairs pull both sides, then x yields 3 and y finds its end
	assert.Equal(t, 6, p.pings)
	assert.Equal(t, 1, x.closed)
	assert.Equal(t, 1, y.closed)

	assert.True(t, Zip[int](nil, y).Absent())
	assert.True(t, Zip[int](x, nil).Absent())
}

func TestZipNullableDropsPartialPairs(t *testing.T) {
	x := Slice([]types.Optional[float64]{types.Some(1.0), types.None[float64](), types.Some(3.0), types.Some(4.0)})
	y := Slice([]types.Optional[float64]{types.Some(0.5), types.Some(2.0), types.None[float64](), types.Some(1.0)})

	got, err := drain(t, ZipNullable(x, y), &countingPinger{})
	require.NoError(t, err)
	assert.Equal(t, []types.Pair[float64]{{X: 1, Y: 0.5}, {X: 4, Y: 1}}, got)
}

func TestSelectPairShapes(t *testing.T) {
	type row struct {
		before, after int
		valid         bool
	}
	rows := Slice([]row{{1, 2, true}, {3, 5, false}, {7, 7, true}})
	p := &countingPinger{}

	got, err := drain(t, SelectPair(rows,
		func(r row) int { return r.before },
		func(r row) int { return r.after }), p)
	require.NoError(t, err)
	assert.Equal(t, []types.Pair[int]{{X: 1, Y: 2}, {X: 3, Y: 5}, {X: 7, Y: 7}}, got)
	// one ping per item, not per side
	assert.Equal(t, 4, p.pings)

	got, err = drain(t, SelectPairNullable(rows,
		func(r row) types.Optional[int] { return types.Some(r.before) },
		func(r row) types.Optional[int] { return types.Optional[int]{Value: r.after, Valid: r.valid} }), &countingPinger{})
	require.NoError(t, err)
	assert.Equal(t, []types.Pair[int]{{X: 1, Y: 2}, {X: 7, Y: 7}}, got)

	got, err = drain(t, SelectPairIndexed(rows,
		func(r row, i int) int { return r.before + i },
		func(r row, i int) int { return i }), &countingPinger{})
	require.NoError(t, err)
	assert.Equal(t, []types.Pair[int]{{X: 1, Y: 0}, {X: 4, Y: 1}, {X: 9, Y: 2}}, got)

	got, err = drain(t, SelectPairIndexedNullable(rows,
		func(r row, i int) types.Optional[int] { return types.Optional[int]{Value: i, Valid: i != 0} },
		func(r row, i int) types.Optional[int] { return types.Some(r.after) }), &countingPinger{})
	require.NoError(t, err)
	assert.Equal(t, []types.Pair[int]{{X: 1, Y: 5}, {X: 2, Y: 7}}, got)
}

func TestContractViolations(t *testing.T) {
	assert.Panics(t, func() { Of(Slice([]int{1})).Open(nil, 1) })
	// a nil token is rejected even for absent inputs
	assert.Panics(t, func() { Of[int](nil).Open(nil, 1) })
	assert.Panics(t, func() { Select[int, int](Slice([]int{1}), nil) })
	assert.Panics(t, func() { SelectIndexed[int, int](nil, nil) })
	assert.Panics(t, func() { SelectPair[int, int](Slice([]int{1}), func(v int) int { return v }, nil) })
	assert.Panics(t, func() { Transform[int, int](Of[int](nil), nil) })
}
