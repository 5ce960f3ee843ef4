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

package ttest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/reduce"
	"github.com/rulego/streamagg/sequence"
	"github.com/rulego/streamagg/types"
)

// Result 检验结果
type Result struct {
	PLeft     float64 // P(T <= t)
	PRight    float64 // P(T >= t)
	PTwoSided float64
	DoF       float64
	StdErr    float64
	T         float64
	// X 第一个样本; 双样本检验时 Y 为第二个样本
	X, Y reduce.Summary
}

func nanResult(x, y reduce.Summary) Result {
	nan := math.NaN()
	return Result{PLeft: nan, PRight: nan, PTwoSided: nan, DoF: nan, StdErr: nan, T: nan, X: x, Y: y}
}

// OneSample tests whether the mean of x equals mu.
func OneSample[T any](kind numeric.Real[T], x sequence.Input[T], mu float64, p execctx.Pinger, id execctx.OpID) (Result, error) {
	execctx.Must(p)
	sx, err := reduce.Describe(kind, x, p, id)
	if err != nil {
		return Result{}, err
	}
	if sx.Count == 0 {
		return nanResult(reduce.EmptySummary(), reduce.EmptySummary()), nil
	}
	n := float64(sx.Count)
	stdErr := math.Sqrt(sx.Variance / n)
	return finish(sx.Mean-mu, stdErr, n-1, sx, reduce.EmptySummary()), nil
}

// TwoSample compares the means of two independent samples. Each sample is
// read on its own; their lengths may differ. With equalVariance the pooled
// variance is used, otherwise Welch's approximation.
func TwoSample[T any](kind numeric.Real[T], x, y sequence.Input[T], equalVariance bool, p execctx.Pinger, id execctx.OpID) (Result, error) {
	execctx.Must(p)
	sx, err := reduce.Describe(kind, x, p, id)
	if err != nil {
		return Result{}, err
	}
	sy, err := reduce.Describe(kind, y, p, id)
	if err != nil {
		return Result{}, err
	}
	if sx.Count == 0 || sy.Count == 0 {
		return nanResult(orEmpty(sx), orEmpty(sy)), nil
	}

	nx, ny := float64(sx.Count), float64(sy.Count)
	var stdErr, dof float64
	if equalVariance {
		dof = nx + ny - 2
		pooled := (squares(sx) + squares(sy)) / dof
		stdErr = math.Sqrt(pooled * (1/nx + 1/ny))
	} else {
		ex, ey := sx.Variance/nx, sy.Variance/ny
		stdErr = math.Sqrt(ex + ey)
		dof = (ex + ey) * (ex + ey) / (ex*ex/(nx-1) + ey*ey/(ny-1))
	}
	return finish(sx.Mean-sy.Mean, stdErr, dof, sx, sy), nil
}

// Pooled is TwoSample assuming equal variances.
func Pooled[T any](kind numeric.Real[T], x, y sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Result, error) {
	return TwoSample(kind, x, y, true, p, id)
}

// Welch is TwoSample without assuming equal variances.
func Welch[T any](kind numeric.Real[T], x, y sequence.Input[T], p execctx.Pinger, id execctx.OpID) (Result, error) {
	return TwoSample(kind, x, y, false, p, id)
}

// Paired runs the one-sample test with mu 0 on the differences X - Y.
// Build pairs with sequence.Zip, sequence.ZipNullable or the SelectPair
// shapes; a nullable position counts only when both sides are present.
func Paired[T any](kind numeric.Real[T], pairs sequence.Input[types.Pair[T]], p execctx.Pinger, id execctx.OpID) (Result, error) {
	if kind == nil {
		panic("ttest: nil numeric kind")
	}
	diffs := sequence.Transform(pairs, func(pair types.Pair[T]) float64 {
		return kind.Float64(pair.X) - kind.Float64(pair.Y)
	})
	return OneSample(numeric.Float64, diffs, 0, p, id)
}

// squares is the sum of squared deviations of s; a single value has none.
func squares(s reduce.Summary) float64 {
	if s.Count < 2 {
		return 0
	}
	return s.Variance * float64(s.Count-1)
}

func orEmpty(s reduce.Summary) reduce.Summary {
	if s.Count == 0 {
		return reduce.EmptySummary()
	}
	return s
}

func finish(diff, stdErr, dof float64, x, y reduce.Summary) Result {
	t := diff / stdErr
	if diff == 0 {
		// equal means are t = 0 even when there is no spread
		t = 0
	}
	left, right, two := pValues(t, dof)
	return Result{PLeft: left, PRight: right, PTwoSided: two, DoF: dof, StdErr: stdErr, T: t, X: x, Y: y}
}

// pValues returns the left, right and two-sided tail probabilities of t under
// Student's t distribution with dof degrees of freedom.
func pValues(t, dof float64) (left, right, two float64) {
	switch {
	case math.IsNaN(t):
		return math.NaN(), math.NaN(), math.NaN()
	case t == 0:
		return 0.5, 0.5, 1
	case math.IsNaN(dof) || dof <= 0:
		return math.NaN(), math.NaN(), math.NaN()
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	left = dist.CDF(t)
	right = dist.Survival(t)
	two = math.Min(1, 2*math.Min(left, right))
	return left, right, two
}
