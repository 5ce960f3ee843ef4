package functions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprBridge 将注册的函数暴露给 expr-lang/expr 表达式
//
//	bridge := functions.NewExprBridge(nil)
//	out, err := bridge.Evaluate(&functions.FunctionContext{Exec: ec, OpID: 1},
//		"ttest_welch(before, after).p_two_sided < 0.05", env)
//
// 同名的 expr 内置函数（min、max、sum、count 等）会被注册函数覆盖。
type ExprBridge struct {
	registry *FunctionRegistry
}

// NewExprBridge 创建表达式桥接器，registry 为 nil 时使用全局注册器
func NewExprBridge(registry *FunctionRegistry) *ExprBridge {
	if registry == nil {
		registry = globalRegistry
	}
	return &ExprBridge{registry: registry}
}

// Options 为每个注册函数生成 expr 选项，函数调用共享 fctx 中的活性令牌
func (bridge *ExprBridge) Options(fctx *FunctionContext) []expr.Option {
	all := bridge.registry.ListAll()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]expr.Option, 0, 4*len(names))
	for _, name := range names {
		function := all[name]
		call := func(params ...any) (any, error) {
			if err := function.Validate(params); err != nil {
				return nil, fmt.Errorf("function %s validation failed: %w", function.GetName(), err)
			}
			return function.Execute(fctx, params)
		}
		// 注册小写和大写两个版本
		for _, alias := range []string{name, strings.ToUpper(name)} {
			options = append(options, expr.DisableBuiltin(alias), expr.Function(alias, call))
		}
	}
	return options
}

// Compile 编译表达式，env 中的变量在编译期确定类型
func (bridge *ExprBridge) Compile(expression string, env map[string]interface{}, fctx *FunctionContext) (*vm.Program, error) {
	if env == nil {
		env = map[string]interface{}{}
	}
	options := append([]expr.Option{expr.Env(env)}, bridge.Options(fctx)...)
	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return program, nil
}

// Evaluate 编译并执行表达式
func (bridge *ExprBridge) Evaluate(fctx *FunctionContext, expression string, env map[string]interface{}) (interface{}, error) {
	if env == nil {
		env = map[string]interface{}{}
	}
	program, err := bridge.Compile(expression, env, fctx)
	if err != nil {
		return nil, err
	}
	return expr.Run(program, env)
}

// ResolveFunction 查找表达式中可用的注册函数
func (bridge *ExprBridge) ResolveFunction(name string) (Function, bool) {
	return bridge.registry.Get(name)
}
