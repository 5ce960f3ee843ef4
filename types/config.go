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

package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 引擎配置
type Config struct {
	// 日志级别: DEBUG, INFO, WARN, ERROR, OFF
	LogLevel string `json:"logLevel" yaml:"logLevel"`
	// Progress 进度回调配置
	Progress ProgressConfig `json:"progress" yaml:"progress"`
	// Metrics 监控配置
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// ProgressConfig 进度上报配置
type ProgressConfig struct {
	// Interval 每个操作每隔多少次ping上报一次进度，0表示不上报
	Interval int64 `json:"interval" yaml:"interval"`
}

// MetricsConfig prometheus 指标配置
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		LogLevel: "INFO",
		Progress: ProgressConfig{
			Interval: 0,
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "streamagg",
		},
	}
}

// VerboseConfig 调试配置预设：DEBUG日志，每10000个元素上报一次进度
func VerboseConfig() Config {
	config := NewConfig()
	config.LogLevel = "DEBUG"
	config.Progress.Interval = 10000
	return config
}

// ParseConfig 解析YAML配置，未设置的字段使用默认值
func ParseConfig(data []byte) (Config, error) {
	config := NewConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate 校验配置
func (c Config) Validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "", "DEBUG", "INFO", "WARN", "ERROR", "OFF":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Progress.Interval < 0 {
		return fmt.Errorf("progress interval must not be negative, got %d", c.Progress.Interval)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics namespace is required when metrics are enabled")
	}
	return nil
}
