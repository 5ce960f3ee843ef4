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

package streamagg

import (
	"context"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/functions"
	"github.com/rulego/streamagg/logger"
	"github.com/rulego/streamagg/types"
)

// Engine 聚合引擎入口，负责创建活性令牌、分配操作编号并执行表达式。
// Engine 可被多个 goroutine 并发使用。
//
// 使用示例:
//
//	engine := streamagg.New(streamagg.WithLogLevel(logger.WARN))
//	out, err := engine.Eval(ctx, "ttest_welch(before, after).p_two_sided", map[string]interface{}{
//		"before": []float64{5.1, 4.9, 5.6},
//		"after":  []float64{6.0, 6.3, 5.8},
//	})
type Engine struct {
	config types.Config
	log    logger.Logger

	// 指标
	registerer prometheus.Registerer
	ownedReg   *prometheus.Registry
	metrics    *execctx.Metrics

	progress execctx.ProgressFunc
	registry *functions.FunctionRegistry
	bridge   *functions.ExprBridge
	nextOp   atomic.Int64
}

// New 创建一个新的引擎实例。
// 支持通过可选的Option参数进行配置。
//
// 示例:
//
//	// 创建默认实例
//	engine := streamagg.New()
//
//	// 从YAML配置创建
//	config, err := types.ParseConfig(data)
//	engine := streamagg.New(streamagg.WithConfig(config))
func New(options ...Option) *Engine {
	e := &Engine{
		config: types.NewConfig(),
	}

	// 应用所有配置选项
	for _, option := range options {
		option(e)
	}

	e.log = logger.Named(logger.GetDefault(), "engine")
	if e.registry == nil {
		e.registry = functions.Global()
	}
	e.bridge = functions.NewExprBridge(e.registry)

	if e.config.Metrics.Enabled || e.registerer != nil {
		if e.registerer == nil {
			e.ownedReg = prometheus.NewRegistry()
			e.registerer = e.ownedReg
		}
		e.metrics = execctx.NewMetrics(e.config.Metrics.Namespace, e.registerer)
	}
	return e
}

// Config 返回引擎使用的配置
func (e *Engine) Config() types.Config {
	return e.config
}

// Gatherer 返回引擎自建的指标注册表；使用 WithMetrics 传入注册器或未启用指标时返回 nil
func (e *Engine) Gatherer() prometheus.Gatherer {
	if e.ownedReg == nil {
		return nil
	}
	return e.ownedReg
}

// Registry 返回引擎使用的函数注册器
func (e *Engine) Registry() *functions.FunctionRegistry {
	return e.registry
}

// ExecCtx 创建一个随 ctx 取消的活性令牌，带有引擎的日志、指标和进度配置
func (e *Engine) ExecCtx(ctx context.Context) *execctx.ExecCtx {
	opts := []execctx.Option{execctx.WithLogger(e.log)}
	if e.metrics != nil {
		opts = append(opts, execctx.WithMetrics(e.metrics))
	}
	if e.progress != nil {
		opts = append(opts, execctx.WithProgress(e.config.Progress.Interval, e.progress))
	}
	return execctx.New(ctx, opts...)
}

// NextOpID 分配一个新的操作编号
func (e *Engine) NextOpID() execctx.OpID {
	return execctx.OpID(e.nextOp.Add(1))
}

// Eval 执行表达式。每次调用使用新的活性令牌和操作编号，ctx 取消后返回
// 包装了 execctx.ErrCanceled 的错误。
func (e *Engine) Eval(ctx context.Context, expression string, env map[string]interface{}) (interface{}, error) {
	fctx, done := e.begin(ctx, env)
	defer done()
	result, err := e.bridge.Evaluate(fctx, expression, env)
	if err != nil {
		e.log.Debug("op %d: evaluate %q failed: %v", fctx.OpID, expression, err)
		return nil, err
	}
	return result, nil
}

// Call 直接调用一个注册函数
func (e *Engine) Call(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	fctx, done := e.begin(ctx, nil)
	defer done()
	result, err := e.registry.Execute(name, fctx, args)
	if err != nil {
		e.log.Debug("op %d: call %s failed: %v", fctx.OpID, name, err)
		return nil, err
	}
	return result, nil
}

func (e *Engine) begin(ctx context.Context, env map[string]interface{}) (*functions.FunctionContext, func()) {
	ec := e.ExecCtx(ctx)
	id := e.NextOpID()
	return &functions.FunctionContext{Data: env, Exec: ec, OpID: id}, func() { ec.Done(id) }
}
