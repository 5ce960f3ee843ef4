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

package execctx

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "execctx"

// Metrics holds the prometheus counters updated by ExecCtx.
type Metrics struct {
	Pings         prometheus.Counter
	Cancellations prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg when reg is
// not nil.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Pings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "pings_total",
			Help:      "Total number of liveness pings, one per element pulled",
		}),
		Cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "cancellations_total",
			Help:      "Total number of pings that canceled a reduction",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Pings, m.Cancellations)
	}
	return m
}
