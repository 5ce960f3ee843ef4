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

/*
Package streamagg 是一个单次遍历、常量内存的流式聚合与统计检验库。

它把可能非常大的、惰性产生的数值序列归约为最小值、最大值、和、均值，以及
单样本、双样本（合并方差或 Welch）和配对 t 检验的统计量。每拉取一个元素都会
先调用一次活性令牌的 Ping，调用方借此观察进度或取消归约。

# 包结构

	numeric   数值类型：Ordered / Real / Numeric 以及 12 种元素类型
	sequence  单次遍历迭代器、Ping 包装、空值过滤和输入形态（直接、选择器、带下标选择器）
	reduce    极值、和（普通、加宽、补偿）、均值、方差
	ttest     t 检验与 Student-t 分布 p 值
	execctx   活性令牌：基于 context 的取消、进度回调和 prometheus 指标
	functions 动态类型函数注册器与 expr-lang 表达式桥接
	logger    分级日志

# 直接使用泛型归约

	ec := execctx.New(ctx)
	r, err := reduce.MinMaxCount(numeric.Float64, sequence.OfNullable(readings), ec, 1)
	if err != nil {
		return err // 已取消
	}
	if r.Count > 0 {
		fmt.Println(r.Min, r.Max)
	}

# 通过引擎执行表达式

	engine := streamagg.New(streamagg.WithMetrics(prometheus.DefaultRegisterer))
	p, err := engine.Eval(ctx, "ttest_two(x, y).p_two_sided", map[string]interface{}{
		"x": []float64{1, 2, 3},
		"y": []float64{4, 5, 6},
	})

# 错误处理

缺失的输入不是错误：极值返回类型零值且计数为 0，和返回 0，均值和统计量返回 NaN。
取消以错误返回（errors.Is(err, execctx.ErrCanceled)），不返回部分结果。
缺少活性令牌或选择器函数属于调用方的编程错误，会直接 panic。
*/
package streamagg
