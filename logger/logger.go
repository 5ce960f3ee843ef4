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

// Package logger provides leveled logging for StreamAgg.
// Components log through the Logger interface; the process-wide default can
// be replaced with SetDefault.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level defines log levels
type Level int32

const (
	// DEBUG debug level, per-operation details such as cancellations
	DEBUG Level = iota
	// INFO info level
	INFO
	// WARN warning level
	WARN
	// ERROR error level
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a case-insensitive level name. An empty name is INFO.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF":
		return OFF, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
	// GetLevel returns the current log level
	GetLevel() Level
}

// defaultLogger writes "[timestamp] [LEVEL] [component] message" lines.
type defaultLogger struct {
	level     *atomic.Int32
	component string
	logger    *log.Logger
}

// NewLogger creates a new logger
// Parameters:
//   - level: log level
//   - output: output destination, such as os.Stdout, os.Stderr, or file
//
// Example:
//
//	log := NewLogger(INFO, os.Stdout)
//	log.Info("engine started")
func NewLogger(level Level, output io.Writer) Logger {
	l := &defaultLogger{
		level:  new(atomic.Int32),
		logger: log.New(output, "", 0),
	}
	l.level.Store(int32(level))
	return l
}

// Named returns a logger that tags every line with component. Loggers that
// are not created by NewLogger are returned unchanged.
func Named(l Logger, component string) Logger {
	dl, ok := l.(*defaultLogger)
	if !ok {
		return l
	}
	if dl.component != "" {
		component = dl.component + "." + component
	}
	return &defaultLogger{level: dl.level, component: component, logger: dl.logger}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *defaultLogger) GetLevel() Level {
	return Level(l.level.Load())
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	current := l.GetLevel()
	if current == OFF || level < current {
		return
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	b.WriteString("] [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.component != "" {
		b.WriteString("[")
		b.WriteString(l.component)
		b.WriteString("] ")
	}
	fmt.Fprintf(&b, format, args...)
	l.logger.Println(b.String())
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}
func (discardLogger) GetLevel() Level                          { return OFF }

var defaultInstance atomic.Value

func init() {
	defaultInstance.Store(holder{NewLogger(INFO, os.Stdout)})
}

// holder keeps the stored dynamic type stable for atomic.Value.
type holder struct{ Logger }

// SetDefault sets the global default logger
func SetDefault(l Logger) {
	if l == nil {
		l = NewDiscardLogger()
	}
	defaultInstance.Store(holder{l})
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	return defaultInstance.Load().(holder).Logger
}

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
