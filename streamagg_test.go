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
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/streamagg/execctx"
	"github.com/rulego/streamagg/functions"
	"github.com/rulego/streamagg/logger"
	"github.com/rulego/streamagg/types"
)

// keepLogger 恢复测试前的默认日志记录器
func keepLogger(t *testing.T) {
	prev := logger.GetDefault()
	level := prev.GetLevel()
	t.Cleanup(func() {
		prev.SetLevel(level)
		logger.SetDefault(prev)
	})
}

func TestEngineEval(t *testing.T) {
	keepLogger(t)
	engine := New(WithDiscardLog())
	env := map[string]interface{}{
		"x": []float64{1, 2, 3},
		"y": []float64{4, 5, 6},
	}

	t.Run("聚合函数", func(t *testing.T) {
		result, err := engine.Eval(context.Background(), "max(x) + min(y)", env)
		require.NoError(t, err)
		assert.Equal(t, 7.0, result)
	})

	t.Run("t检验", func(t *testing.T) {
		result, err := engine.Eval(context.Background(), "ttest_two(x, y).dof", env)
		require.NoError(t, err)
		assert.Equal(t, 4.0, result)

		significant, err := engine.Eval(context.Background(), "ttest_two(x, y).p_two_sided < 0.05", env)
		require.NoError(t, err)
		assert.Equal(t, true, significant)
	})

	t.Run("编译错误", func(t *testing.T) {
		_, err := engine.Eval(context.Background(), "avg(", env)
		assert.Error(t, err)
	})

	t.Run("取消", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := engine.Eval(ctx, "avg(x)", env)
		assert.ErrorContains(t, err, execctx.ErrCanceled.Error())
	})
}

func TestEngineCall(t *testing.T) {
	keepLogger(t)
	engine := New(WithDiscardLog())

	result, err := engine.Call(context.Background(), "avg", []int{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Call(ctx, "sum", 1, 2, 3)
	assert.ErrorIs(t, err, execctx.ErrCanceled)

	_, err = engine.Call(context.Background(), "median", 1)
	assert.Error(t, err)
}

func TestEngineOpIDs(t *testing.T) {
	engine := New(WithRegistry(functions.NewFunctionRegistry()))
	first := engine.NextOpID()
	assert.Equal(t, first+1, engine.NextOpID())

	var wg sync.WaitGroup
	seen := sync.Map{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, loaded := seen.LoadOrStore(engine.NextOpID(), true)
			assert.False(t, loaded)
		}()
	}
	wg.Wait()
}

func TestWithProgress(t *testing.T) {
	keepLogger(t)
	var mu sync.Mutex
	var calls []int64
	engine := New(WithDiscardLog(), WithProgress(2, func(id execctx.OpID, pulled int64) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, pulled)
	}))

	_, err := engine.Call(context.Background(), "sum", []int{1, 2, 3, 4})
	require.NoError(t, err)
	// 4 个元素和一次结束检测共 5 次 ping
	assert.Equal(t, []int64{2, 4}, calls)
	assert.Equal(t, int64(2), engine.Config().Progress.Interval)
}

func TestWithMetrics(t *testing.T) {
	keepLogger(t)

	t.Run("自建注册表", func(t *testing.T) {
		engine := New(WithDiscardLog(), WithMetrics(nil))
		require.NotNil(t, engine.Gatherer())

		_, err := engine.Call(context.Background(), "sum", 1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 4.0, testutil.ToFloat64(engine.metrics.Pings))

		count, err := testutil.GatherAndCount(engine.Gatherer(), "streamagg_execctx_pings_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("外部注册器", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		engine := New(WithDiscardLog(), WithMetrics(reg))
		assert.Nil(t, engine.Gatherer())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := engine.Call(ctx, "max", 1, 2)
		require.Error(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(engine.metrics.Cancellations))

		count, err := testutil.GatherAndCount(reg)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("未启用", func(t *testing.T) {
		engine := New(WithDiscardLog())
		assert.Nil(t, engine.Gatherer())
		assert.Nil(t, engine.metrics)
	})
}

func TestWithConfig(t *testing.T) {
	keepLogger(t)

	t.Run("YAML配置", func(t *testing.T) {
		config, err := types.ParseConfig([]byte("logLevel: ERROR\nmetrics:\n  enabled: true\n  namespace: agg\n"))
		require.NoError(t, err)
		engine := New(WithConfig(config))
		assert.Equal(t, logger.ERROR, logger.GetDefault().GetLevel())
		assert.Equal(t, "agg", engine.Config().Metrics.Namespace)
		require.NotNil(t, engine.Gatherer())

		_, err = engine.Call(context.Background(), "count", 1)
		require.NoError(t, err)
		count, err := testutil.GatherAndCount(engine.Gatherer(), "agg_execctx_pings_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("无效配置被忽略", func(t *testing.T) {
		var buf bytes.Buffer
		engine := New(WithLogOutput(&buf, logger.INFO), WithConfig(types.Config{LogLevel: "LOUD"}))
		assert.Equal(t, types.NewConfig(), engine.Config())
		assert.Contains(t, buf.String(), "invalid config")
	})
}

func TestWithLogLevel(t *testing.T) {
	keepLogger(t)

	t.Run("设置Debug级别", func(t *testing.T) {
		var buf bytes.Buffer
		engine := New(WithLogOutput(&buf, logger.INFO), WithLogLevel(logger.DEBUG))
		assert.Equal(t, logger.DEBUG, logger.GetDefault().GetLevel())

		// 失败的表达式在 DEBUG 级别记录
		_, err := engine.Eval(context.Background(), "nope(1)", nil)
		require.Error(t, err)
		assert.Contains(t, buf.String(), "[engine]")
	})

	t.Run("禁用日志输出", func(t *testing.T) {
		New(WithDiscardLog())
		assert.Equal(t, logger.OFF, logger.GetDefault().GetLevel())
	})

	t.Run("自定义日志记录器", func(t *testing.T) {
		custom := logger.NewLogger(logger.WARN, &bytes.Buffer{})
		New(WithLogger(custom))
		assert.Same(t, custom, logger.GetDefault())
	})
}

func TestWithRegistry(t *testing.T) {
	keepLogger(t)
	registry := functions.NewFunctionRegistry()
	require.NoError(t, registry.Register(functions.NewAvgFunction()))
	engine := New(WithDiscardLog(), WithRegistry(registry))
	assert.Same(t, registry, engine.Registry())

	_, err := engine.Call(context.Background(), "sum", 1)
	assert.Error(t, err)
	result, err := engine.Call(context.Background(), "avg", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, result)
}
