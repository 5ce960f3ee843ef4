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
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/functions"
	"github.com/rulego/streamagg/logger"
	"github.com/rulego/streamagg/types"
)

// Option 表示对引擎默认行为的修改配置。
// 选项按传入顺序生效，后面的选项覆盖前面的设置。
type Option func(*Engine)

// WithLogger 设置自定义日志记录器。
// 与其他包共享同一个默认日志记录器。
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	engine := streamagg.New(WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		logger.SetDefault(log)
	}
}

// WithLogLevel 设置默认日志记录器的日志级别。
//
// 示例:
//
//	// 关闭日志
//	engine := streamagg.New(WithLogLevel(logger.OFF))
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标和级别。
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog 禁用所有日志输出。
func WithDiscardLog() Option {
	return func(e *Engine) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}

// WithConfig 使用给定配置，并按配置设置日志级别。
// 无效的配置会被记录并忽略。
//
// 示例:
//
//	config, err := types.ParseConfig(yamlBytes)
//	if err != nil {
//		return err
//	}
//	engine := streamagg.New(WithConfig(config))
func WithConfig(config types.Config) Option {
	return func(e *Engine) {
		if err := config.Validate(); err != nil {
			logger.Error("ignoring invalid config: %v", err)
			return
		}
		e.config = config
		if level, err := logger.ParseLevel(config.LogLevel); err == nil {
			logger.GetDefault().SetLevel(level)
		}
	}
}

// WithProgress 每个操作每拉取 interval 个元素调用一次 fn。
// interval 为 0 时使用配置中的 Progress.Interval。
//
// 示例:
//
//	engine := streamagg.New(WithProgress(10000, func(id execctx.OpID, pulled int64) {
//		log.Printf("op %d: %d", id, pulled)
//	}))
func WithProgress(interval int64, fn execctx.ProgressFunc) Option {
	return func(e *Engine) {
		if interval > 0 {
			e.config.Progress.Interval = interval
		}
		e.progress = fn
	}
}

// WithMetrics 启用 prometheus 指标并注册到 reg。
// reg 为 nil 时引擎使用自建的注册表，可通过 Engine.Gatherer 获取。
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.config.Metrics.Enabled = true
		if e.config.Metrics.Namespace == "" {
			e.config.Metrics.Namespace = types.NewConfig().Metrics.Namespace
		}
		e.registerer = reg
	}
}

// WithRegistry 使用独立的函数注册器代替全局注册器。
func WithRegistry(registry *functions.FunctionRegistry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}
