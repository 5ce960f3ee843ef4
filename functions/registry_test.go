package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryEdgeCases(t *testing.T) {
	reg := NewFunctionRegistry()
	// Unregister未注册函数
	assert.False(t, reg.Unregister("not_exist"))
	// 空名
	err := RegisterCustomFunction("", TypeCustom, "", "", 0, 0, nil)
	assert.Error(t, err)
	// 缺少执行函数
	err = RegisterCustomFunction("no_executor", TypeCustom, "", "", 0, 0, nil)
	assert.Error(t, err)

	// 重复注册
	f := func(ctx *FunctionContext, args []interface{}) (interface{}, error) { return len(args), nil }
	require.NoError(t, RegisterCustomFunction("dup_test", TypeCustom, "test", "", 0, -1, f))
	defer Unregister("dup_test")
	assert.Error(t, RegisterCustomFunction("DUP_TEST", TypeCustom, "test", "", 0, -1, f))

	result, err := Execute("Dup_Test", nil, []interface{}{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result)
}

func TestRegistryLifecycle(t *testing.T) {
	reg := NewBuiltinRegistry()

	fn, ok := reg.Get("AVG")
	require.True(t, ok)
	assert.Equal(t, "avg", fn.GetName())
	assert.Equal(t, TypeAggregation, fn.GetType())

	aggregations := reg.GetByType(TypeAggregation)
	assert.Len(t, aggregations, 7)
	assert.Len(t, reg.GetByType(TypeStatistical), 4)
	assert.Len(t, reg.ListAll(), 11)

	assert.True(t, reg.Unregister("stddev"))
	assert.Len(t, reg.GetByType(TypeAggregation), 6)
	// 返回的切片是副本
	assert.Len(t, aggregations, 7)
	_, ok = reg.Get("stddev")
	assert.False(t, ok)

	_, err := reg.Execute("stddev", nil, []interface{}{1})
	assert.Error(t, err)
	_, err = reg.Execute("avg", nil, nil)
	assert.ErrorContains(t, err, "validation failed")
}

func TestGlobalRegistry(t *testing.T) {
	assert.Same(t, globalRegistry, Global())
	for _, name := range []string{"min", "max", "sum", "avg", "count", "variance", "stddev",
		"ttest_one", "ttest_two", "ttest_welch", "ttest_paired"} {
		_, ok := Get(name)
		assert.True(t, ok, name)
	}
}
