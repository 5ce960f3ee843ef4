package functions

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/spf13/cast"

	"github.com/rulego/streamagg/numeric"
	"github.com/rulego/streamagg/sequence"
	"github.com/rulego/streamagg/types"
)

// BaseFunction 基础函数实现，提供名称、分类和参数个数校验
type BaseFunction struct {
	name        string
	fnType      FunctionType
	category    string
	description string
	minArgs     int
	maxArgs     int // -1 表示无限制
}

// NewBaseFunction 创建基础函数
func NewBaseFunction(name string, fnType FunctionType, category, description string, minArgs, maxArgs int) *BaseFunction {
	return &BaseFunction{
		name:        name,
		fnType:      fnType,
		category:    category,
		description: description,
		minArgs:     minArgs,
		maxArgs:     maxArgs,
	}
}

func (bf *BaseFunction) GetName() string        { return bf.name }
func (bf *BaseFunction) GetType() FunctionType  { return bf.fnType }
func (bf *BaseFunction) GetCategory() string    { return bf.category }
func (bf *BaseFunction) GetDescription() string { return bf.description }
func (bf *BaseFunction) GetMinArgs() int        { return bf.minArgs }
func (bf *BaseFunction) GetMaxArgs() int        { return bf.maxArgs }

// ValidateArgCount 验证参数数量
func (bf *BaseFunction) ValidateArgCount(args []interface{}) error {
	argCount := len(args)

	if argCount < bf.minArgs {
		return fmt.Errorf("function %s requires at least %d arguments, got %d", bf.name, bf.minArgs, argCount)
	}

	if bf.maxArgs != -1 && argCount > bf.maxArgs {
		return fmt.Errorf("function %s accepts at most %d arguments, got %d", bf.name, bf.maxArgs, argCount)
	}

	return nil
}

// toFloat 将动态值转换为可空的 float64，nil 和无法转换的值视为缺失
func toFloat(v interface{}) types.Optional[float64] {
	switch x := v.(type) {
	case nil:
		return types.None[float64]()
	case *big.Int:
		if x == nil {
			return types.None[float64]()
		}
		return types.Some(numeric.BigInt.Float64(x))
	case types.Optional[float64]:
		return x
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return types.None[float64]()
	}
	return types.Some(f)
}

// asSlice 将数组或切片展开为 []interface{}，字符串和字节切片不展开
func asSlice(v interface{}) ([]interface{}, bool) {
	switch x := v.(type) {
	case nil, string, []byte:
		return nil, false
	case []interface{}:
		return x, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]interface{}, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// flatten 展开所有数组参数，标量参数保持原样
func flatten(args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args))
	for _, arg := range args {
		if items, ok := asSlice(arg); ok {
			out = append(out, items...)
			continue
		}
		out = append(out, arg)
	}
	return out
}

// values 将所有参数视为一个可空数值序列
func values(args []interface{}) sequence.Input[float64] {
	return sequence.SelectNullable(sequence.Slice(flatten(args)), toFloat)
}

// sample 将单个参数视为一个样本：nil 为缺失输入，标量为单元素样本
func sample(arg interface{}) sequence.Input[float64] {
	if arg == nil {
		return sequence.Input[float64]{}
	}
	items, ok := asSlice(arg)
	if !ok {
		items = []interface{}{arg}
	}
	return sequence.SelectNullable(sequence.Slice(items), toFloat)
}

// optionals 与 sample 相同，但保留缺失位置，供配对检验按位置对齐
func optionals(arg interface{}) sequence.Sequence[types.Optional[float64]] {
	if arg == nil {
		return nil
	}
	items, ok := asSlice(arg)
	if !ok {
		items = []interface{}{arg}
	}
	out := make([]types.Optional[float64], len(items))
	for i, item := range items {
		out[i] = toFloat(item)
	}
	return sequence.Slice(out)
}
