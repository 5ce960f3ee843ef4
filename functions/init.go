package functions

// 初始化所有内置函数
func init() {
	registerBuiltinFunctions(globalRegistry)
}

// registerBuiltinFunctions 注册聚合与检验函数
func registerBuiltinFunctions(r *FunctionRegistry) {
	// 聚合函数，同时实现 AggregatorFunction
	_ = r.Register(NewMinFunction())
	_ = r.Register(NewMaxFunction())
	_ = r.Register(NewSumFunction())
	_ = r.Register(NewAvgFunction())
	_ = r.Register(NewCountFunction())
	_ = r.Register(NewVarianceFunction())
	_ = r.Register(NewStdDevFunction())

	// t 检验
	_ = r.Register(NewTTestOneFunction())
	_ = r.Register(NewTTestTwoFunction())
	_ = r.Register(NewTTestWelchFunction())
	_ = r.Register(NewTTestPairedFunction())
}

// NewBuiltinRegistry 创建只包含内置函数的注册器
func NewBuiltinRegistry() *FunctionRegistry {
	r := NewFunctionRegistry()
	registerBuiltinFunctions(r)
	return r
}
