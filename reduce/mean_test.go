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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/sequence"
	"github.com/rulego/streamagg/types"
)

func TestMean(t *testing.T) {
	avg, err := Mean(numeric.Int32, of[int32](2, 4, 4, 4, 5, 5, 7, 9), &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, Average{Mean: 5, Count: 8}, avg)

	bools, err := Mean(numeric.Bool, of(true, false, true, true), &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.75, bools.Mean)
}

func TestMeanMatchesCompensatedSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	values := make([]float64, 333)
	for i := range values {
		values[i] = rng.NormFloat64() * 1e6
	}
	avg, err := Mean(numeric.Float64, of(values...), &pinger{}, 1)
	require.NoError(t, err)
	total, err := SumCompensated(numeric.Float64, of(values...), &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, total.Sum/float64(total.Count), avg.Mean)
	assert.Equal(t, total.Count, avg.Count)
}

func TestMeanAbsentAndEmpty(t *testing.T) {
	p := &pinger{}
	avg, err := Mean(numeric.Float64, sequence.Of[float64](nil), p, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(avg.Mean))
	assert.Equal(t, int64(0), avg.Count)
	assert.Equal(t, 0, p.pings)

	// a present sequence without values divides by max(count, 1)
	allNull := sequence.OfNullable(sequence.Slice([]types.Optional[float64]{types.None[float64]()}))
	avg, err = Mean(numeric.Float64, allNull, &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, Average{}, avg)
}

func TestMeanCancellation(t *testing.T) {
	avg, err := Mean(numeric.Int64, of[int64](1, 2, 3, 4, 5), &pinger{cancelAt: 3}, 1)
	assert.ErrorIs(t, err, errCanceled)
	assert.Equal(t, Average{}, avg)
}

func TestDescribe(t *testing.T) {
	s, err := Describe(numeric.Int64, of[int64](2, 4, 4, 4, 5, 5, 7, 9), &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 32.0/7.0, s.Variance, 1e-12)
}

// TestDescribeLargeOffset compares against gonum on data whose mean dwarfs
// its spread, where a naive sum of squares loses every significant digit.
func TestDescribeLargeOffset(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 21))
	values := make([]float64, 1000)
	for i := range values {
		values[i] = 1e9 + rng.NormFloat64()
	}
	wantMean, wantVar := stat.MeanVariance(values, nil)

	s, err := Describe(numeric.Float64, of(values...), &pinger{}, 1)
	require.NoError(t, err)
	assert.InDelta(t, wantMean, s.Mean, 1e-6)
	assert.InEpsilon(t, wantVar, s.Variance, 1e-6)
}

func TestDescribeDegenerate(t *testing.T) {
	s, err := Describe(numeric.Float64, sequence.Of[float64](nil), &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Variance))

	s, err = Describe(numeric.Float64, of(3.5), &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Count)
	assert.Equal(t, 3.5, s.Mean)
	assert.True(t, math.IsNaN(s.Variance))

	s, err = Describe(numeric.Float64, of(2.0, 2.0, 2.0), &pinger{}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Variance)

	empty := EmptySummary()
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.Variance))
}

func TestMomentsAccumulator(t *testing.T) {
	var m Moments
	for _, v := range []float64{1, 2, 3, 4} {
		m.Add(v)
	}
	assert.Equal(t, Summary{Count: 4, Mean: 2.5, Variance: 5.0 / 3.0}, m.Summary())
	m.Reset()
	assert.Equal(t, int64(0), m.Count())
}
