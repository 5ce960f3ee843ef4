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

// Package execctx defines the liveness contract between the reducers and the
// surrounding engine.
//
// Every element pulled from an input sequence is preceded by exactly one
// Ping(id). A non-nil error from Ping cancels the reduction: it is returned to
// the caller unchanged and no partial result is produced.
//
//	ec := execctx.New(ctx, execctx.WithProgress(1000, func(id execctx.OpID, pulled int64) {
//		log.Printf("op %d pulled %d", id, pulled)
//	}))
//	min, err := reduce.Min(numeric.Int32, sequence.Of(values), ec, 7)
//	if errors.Is(err, execctx.ErrCanceled) {
//		...
//	}
package execctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rulego/streamagg/logger"
)

// OpID identifies the operation a ping belongs to.
type OpID int64

// Pinger is the liveness token consumed by every reducer.
type Pinger interface {
	// Ping signals progress for operation id. A non-nil error aborts the
	// running reduction.
	Ping(id OpID) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(id OpID) error

func (f PingFunc) Ping(id OpID) error { return f(id) }

// Nop never cancels.
var Nop Pinger = PingFunc(func(OpID) error { return nil })

// ErrCanceled is wrapped by every cancellation reported by ExecCtx.
var ErrCanceled = errors.New("operation canceled")

// ProgressFunc receives the number of pings seen so far for one operation.
type ProgressFunc func(id OpID, pulled int64)

// ExecCtx is a context-backed Pinger. It is safe for concurrent use by
// several reductions.
type ExecCtx struct {
	ctx      context.Context
	log      logger.Logger
	metrics  *Metrics
	interval int64
	progress ProgressFunc

	pings atomic.Int64
	mu    sync.Mutex
	perOp map[OpID]int64
}

// Option configures an ExecCtx.
type Option func(*ExecCtx)

// WithLogger sets the logger used to report cancellations.
func WithLogger(l logger.Logger) Option {
	return func(e *ExecCtx) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics counts pings and cancellations.
func WithMetrics(m *Metrics) Option {
	return func(e *ExecCtx) {
		e.metrics = m
	}
}

// WithProgress calls fn every interval pings of the same operation.
// A non-positive interval disables progress reporting.
func WithProgress(interval int64, fn ProgressFunc) Option {
	return func(e *ExecCtx) {
		if interval <= 0 || fn == nil {
			e.interval, e.progress = 0, nil
			return
		}
		e.interval, e.progress = interval, fn
	}
}

// New creates an ExecCtx that cancels once ctx is done.
func New(ctx context.Context, opts ...Option) *ExecCtx {
	if ctx == nil {
		panic("execctx: nil context")
	}
	e := &ExecCtx{
		ctx: ctx,
		log: logger.Named(logger.GetDefault(), "execctx"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.progress != nil {
		e.perOp = make(map[OpID]int64)
	}
	return e
}

// Background returns an ExecCtx that is never canceled.
func Background() *ExecCtx {
	return New(context.Background())
}

// Context returns the context the ExecCtx observes.
func (e *ExecCtx) Context() context.Context {
	return e.ctx
}

// Ping implements Pinger.
func (e *ExecCtx) Ping(id OpID) error {
	n := e.pings.Add(1)
	if e.metrics != nil {
		e.metrics.Pings.Inc()
	}
	if err := e.ctx.Err(); err != nil {
		if e.metrics != nil {
			e.metrics.Cancellations.Inc()
		}
		cause := context.Cause(e.ctx)
		e.log.Debug("operation %d canceled after %d pings: %v", id, n, cause)
		return fmt.Errorf("%w: operation %d: %w", ErrCanceled, id, cause)
	}
	if e.progress != nil {
		e.report(id)
	}
	return nil
}

func (e *ExecCtx) report(id OpID) {
	e.mu.Lock()
	e.perOp[id]++
	pulled := e.perOp[id]
	e.mu.Unlock()
	if pulled%e.interval == 0 {
		e.progress(id, pulled)
	}
}

// Pings returns the total number of pings received.
func (e *ExecCtx) Pings() int64 {
	return e.pings.Load()
}

// Done forgets the progress counter of a finished operation.
func (e *ExecCtx) Done(id OpID) {
	if e.perOp == nil {
		return
	}
	e.mu.Lock()
	delete(e.perOp, id)
	e.mu.Unlock()
}

// Must panics when p is nil. Reducers call it at entry: a missing token is a
// bug in the caller, not a runtime condition.
func Must(p Pinger) Pinger {
	if p == nil {
		panic("execctx: nil liveness token")
	}
	return p
}
