package functions

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/reduce"
	"github.com/rulego/streamagg/sequence"
	"github.com/rulego/streamagg/ttest"
)

// 检验函数的结果字段
const (
	FieldT         = "t"
	FieldDoF       = "dof"
	FieldStdErr    = "stderr"
	FieldPLeft     = "p_left"
	FieldPRight    = "p_right"
	FieldPTwoSided = "p_two_sided"
)

// resultMap 将检验结果转换为表达式可访问的 map
func resultMap(r ttest.Result, twoSamples bool) map[string]interface{} {
	m := map[string]interface{}{
		FieldT:         r.T,
		FieldDoF:       r.DoF,
		FieldStdErr:    r.StdErr,
		FieldPLeft:     r.PLeft,
		FieldPRight:    r.PRight,
		FieldPTwoSided: r.PTwoSided,
	}
	putSummary(m, "x", r.X)
	if twoSamples {
		putSummary(m, "y", r.Y)
	}
	return m
}

func putSummary(m map[string]interface{}, suffix string, s reduce.Summary) {
	m["count_"+suffix] = s.Count
	m["mean_"+suffix] = s.Mean
	m["variance_"+suffix] = s.Variance
}

// TTestOneFunction ttest_one(values, mu)
type TTestOneFunction struct {
	*BaseFunction
}

func NewTTestOneFunction() *TTestOneFunction {
	return &TTestOneFunction{
		BaseFunction: NewBaseFunction("ttest_one", TypeStatistical, "ttest", "One-sample t-test of values against mean mu (default 0)", 1, 2),
	}
}

func (f *TTestOneFunction) Validate(args []interface{}) error {
	if err := f.ValidateArgCount(args); err != nil {
		return err
	}
	if len(args) == 2 {
		if _, err := cast.ToFloat64E(args[1]); err != nil {
			return fmt.Errorf("function %s: mu must be numeric: %w", f.GetName(), err)
		}
	}
	return nil
}

func (f *TTestOneFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	mu := 0.0
	if len(args) > 1 {
		mu = cast.ToFloat64(args[1])
	}
	p, id := ctx.token()
	r, err := ttest.OneSample(numeric.Float64, sample(args[0]), mu, p, id)
	if err != nil {
		return nil, err
	}
	return resultMap(r, false), nil
}

// TTestTwoFunction ttest_two(x, y) and ttest_welch(x, y)
type TTestTwoFunction struct {
	*BaseFunction
	equalVariance bool
}

func NewTTestTwoFunction() *TTestTwoFunction {
	return &TTestTwoFunction{
		BaseFunction:  NewBaseFunction("ttest_two", TypeStatistical, "ttest", "Two-sample t-test assuming equal variances", 2, 2),
		equalVariance: true,
	}
}

func NewTTestWelchFunction() *TTestTwoFunction {
	return &TTestTwoFunction{
		BaseFunction: NewBaseFunction("ttest_welch", TypeStatistical, "ttest", "Welch's two-sample t-test", 2, 2),
	}
}

func (f *TTestTwoFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *TTestTwoFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	r, err := ttest.TwoSample(numeric.Float64, sample(args[0]), sample(args[1]), f.equalVariance, p, id)
	if err != nil {
		return nil, err
	}
	return resultMap(r, true), nil
}

// TTestPairedFunction ttest_paired(x, y)，只有两侧都有值的位置参与检验
type TTestPairedFunction struct {
	*BaseFunction
}

func NewTTestPairedFunction() *TTestPairedFunction {
	return &TTestPairedFunction{
		BaseFunction: NewBaseFunction("ttest_paired", TypeStatistical, "ttest", "Paired t-test on x - y", 2, 2),
	}
}

func (f *TTestPairedFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *TTestPairedFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	pairs := sequence.ZipNullable(optionals(args[0]), optionals(args[1]))
	r, err := ttest.Paired(numeric.Float64, pairs, p, id)
	if err != nil {
		return nil, err
	}
	return resultMap(r, false), nil
}
