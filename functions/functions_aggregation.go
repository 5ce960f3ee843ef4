package functions

import (
	"math"

	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/reduce"
	"github.com/rulego/streamagg/sequence"
)

// 所有聚合函数都展开数组参数，忽略 NULL 和无法转换为数值的值；
// 没有有效值时返回 NULL（count 返回 0）。

// MinFunction calculates the minimum value
type MinFunction struct {
	*BaseFunction
	acc reduce.Extremes[float64]
}

func NewMinFunction() *MinFunction {
	return &MinFunction{
		BaseFunction: NewBaseFunction("min", TypeAggregation, "aggregation", "Calculate minimum value", 1, -1),
		acc:          reduce.NewExtremes[float64](numeric.Float64),
	}
}

func (f *MinFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MinFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	min, count, err := reduce.MinCount(numeric.Float64, values(args), p, id)
	if err != nil || count == 0 {
		return nil, err
	}
	return min, nil
}

func (f *MinFunction) New() AggregatorFunction {
	return &MinFunction{BaseFunction: f.BaseFunction, acc: reduce.NewExtremes[float64](numeric.Float64)}
}

func (f *MinFunction) Add(value interface{}) {
	if v, ok := toFloat(value).Get(); ok {
		f.acc.Add(v)
	}
}

func (f *MinFunction) Result() interface{} {
	if f.acc.Count() == 0 {
		return nil
	}
	return f.acc.Min()
}

func (f *MinFunction) Reset() {
	f.acc.Reset()
}

func (f *MinFunction) Clone() AggregatorFunction {
	return &MinFunction{BaseFunction: f.BaseFunction, acc: f.acc}
}

// MaxFunction calculates the maximum value
type MaxFunction struct {
	*BaseFunction
	acc reduce.Extremes[float64]
}

func NewMaxFunction() *MaxFunction {
	return &MaxFunction{
		BaseFunction: NewBaseFunction("max", TypeAggregation, "aggregation", "Calculate maximum value", 1, -1),
		acc:          reduce.NewExtremes[float64](numeric.Float64),
	}
}

func (f *MaxFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *MaxFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	max, count, err := reduce.MaxCount(numeric.Float64, values(args), p, id)
	if err != nil || count == 0 {
		return nil, err
	}
	return max, nil
}

func (f *MaxFunction) New() AggregatorFunction {
	return &MaxFunction{BaseFunction: f.BaseFunction, acc: reduce.NewExtremes[float64](numeric.Float64)}
}

func (f *MaxFunction) Add(value interface{}) {
	if v, ok := toFloat(value).Get(); ok {
		f.acc.Add(v)
	}
}

func (f *MaxFunction) Result() interface{} {
	if f.acc.Count() == 0 {
		return nil
	}
	return f.acc.Max()
}

func (f *MaxFunction) Reset() {
	f.acc.Reset()
}

func (f *MaxFunction) Clone() AggregatorFunction {
	return &MaxFunction{BaseFunction: f.BaseFunction, acc: f.acc}
}

// SumFunction calculates the compensated sum of numeric values
type SumFunction struct {
	*BaseFunction
	acc reduce.Neumaier
}

func NewSumFunction() *SumFunction {
	return &SumFunction{
		BaseFunction: NewBaseFunction("sum", TypeAggregation, "aggregation", "Calculate sum of numeric values", 1, -1),
	}
}

func (f *SumFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SumFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	total, err := reduce.SumCompensated(numeric.Float64, values(args), p, id)
	if err != nil || total.Count == 0 {
		return nil, err
	}
	return total.Sum, nil
}

func (f *SumFunction) New() AggregatorFunction {
	return &SumFunction{BaseFunction: f.BaseFunction}
}

func (f *SumFunction) Add(value interface{}) {
	if v, ok := toFloat(value).Get(); ok {
		f.acc.Add(v)
	}
}

func (f *SumFunction) Result() interface{} {
	if f.acc.Count() == 0 {
		return nil
	}
	return f.acc.Sum()
}

func (f *SumFunction) Reset() {
	f.acc.Reset()
}

func (f *SumFunction) Clone() AggregatorFunction {
	return &SumFunction{BaseFunction: f.BaseFunction, acc: f.acc}
}

// AvgFunction calculates the average of numeric values
type AvgFunction struct {
	*BaseFunction
	acc reduce.Neumaier
}

func NewAvgFunction() *AvgFunction {
	return &AvgFunction{
		BaseFunction: NewBaseFunction("avg", TypeAggregation, "aggregation", "Calculate average of numeric values", 1, -1),
	}
}

func (f *AvgFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AvgFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	avg, err := reduce.Mean(numeric.Float64, values(args), p, id)
	if err != nil || avg.Count == 0 {
		return nil, err
	}
	return avg.Mean, nil
}

func (f *AvgFunction) New() AggregatorFunction {
	return &AvgFunction{BaseFunction: f.BaseFunction}
}

func (f *AvgFunction) Add(value interface{}) {
	if v, ok := toFloat(value).Get(); ok {
		f.acc.Add(v)
	}
}

func (f *AvgFunction) Result() interface{} {
	if f.acc.Count() == 0 {
		return nil
	}
	return f.acc.Sum() / float64(f.acc.Count())
}

func (f *AvgFunction) Reset() {
	f.acc.Reset()
}

func (f *AvgFunction) Clone() AggregatorFunction {
	return &AvgFunction{BaseFunction: f.BaseFunction, acc: f.acc}
}

// CountFunction counts non-NULL values of any type
type CountFunction struct {
	*BaseFunction
	count int64
}

func NewCountFunction() *CountFunction {
	return &CountFunction{
		BaseFunction: NewBaseFunction("count", TypeAggregation, "aggregation", "Count non-NULL values", 1, -1),
	}
}

func (f *CountFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CountFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	present := sequence.Select(sequence.Slice(flatten(args)), func(v interface{}) bool { return v != nil })
	total, err := reduce.SumBool(present, p, id)
	if err != nil {
		return nil, err
	}
	return total.Sum, nil
}

func (f *CountFunction) New() AggregatorFunction {
	return &CountFunction{BaseFunction: f.BaseFunction}
}

func (f *CountFunction) Add(value interface{}) {
	if value != nil {
		f.count++
	}
}

func (f *CountFunction) Result() interface{} {
	return f.count
}

func (f *CountFunction) Reset() {
	f.count = 0
}

func (f *CountFunction) Clone() AggregatorFunction {
	return &CountFunction{BaseFunction: f.BaseFunction, count: f.count}
}

// VarianceFunction calculates the unbiased sample variance; stddev shares it
type VarianceFunction struct {
	*BaseFunction
	acc  reduce.Moments
	sqrt bool
}

func NewVarianceFunction() *VarianceFunction {
	return &VarianceFunction{
		BaseFunction: NewBaseFunction("variance", TypeAggregation, "aggregation", "Calculate sample variance (N-1)", 1, -1),
	}
}

func NewStdDevFunction() *VarianceFunction {
	return &VarianceFunction{
		BaseFunction: NewBaseFunction("stddev", TypeAggregation, "aggregation", "Calculate sample standard deviation (N-1)", 1, -1),
		sqrt:         true,
	}
}

func (f *VarianceFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *VarianceFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	p, id := ctx.token()
	s, err := reduce.Describe(numeric.Float64, values(args), p, id)
	if err != nil {
		return nil, err
	}
	return f.result(s), nil
}

func (f *VarianceFunction) result(s reduce.Summary) interface{} {
	if s.Count < 2 {
		return nil
	}
	if f.sqrt {
		return math.Sqrt(s.Variance)
	}
	return s.Variance
}

func (f *VarianceFunction) New() AggregatorFunction {
	return &VarianceFunction{BaseFunction: f.BaseFunction, sqrt: f.sqrt}
}

func (f *VarianceFunction) Add(value interface{}) {
	if v, ok := toFloat(value).Get(); ok {
		f.acc.Add(v)
	}
}

func (f *VarianceFunction) Result() interface{} {
	return f.result(f.acc.Summary())
}

func (f *VarianceFunction) Reset() {
	f.acc.Reset()
}

func (f *VarianceFunction) Clone() AggregatorFunction {
	return &VarianceFunction{BaseFunction: f.BaseFunction, acc: f.acc, sqrt: f.sqrt}
}
