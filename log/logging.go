// Copyright 2024-2026 The gce-deleter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger ログ出力
type Logger struct {
	internal log.Logger
	opt      *LoggerOption
}

// Level ログレベル
type Level string

const (
	LevelError = Level("error")
	LevelWarn  = Level("warn")
	LevelInfo  = Level("info")
	LevelDebug = Level("debug")
)

// Levels 指定可能なログレベルのリスト
var Levels = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}

// ParseLevel 文字列からLevelを返す。Levelsに含まれない場合はエラー
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid log level: %q, options: %v", s, Levels)
}

// LoggerOption ログ出力のオプション
type LoggerOption struct {
	Writer    io.Writer // 出力先(デフォルトはos.Stderr)
	JSON      bool      // JSON出力するか(falseの場合はlogfmt)
	TimeStamp bool      // タイムスタンプを含めるか
	Caller    bool      // caller(呼び出し箇所)を含めるか
	Level     Level     // 出力するログのレベル
}

// NewLogger 指定のオプションで新しいロガーを生成して返す
//
// optは省略(nil)でも可、デフォルトでは標準エラーに出力される
func NewLogger(opt *LoggerOption) *Logger {
	if opt == nil {
		opt = &LoggerOption{}
	}
	if opt.Writer == nil {
		opt.Writer = os.Stderr
	}

	logger := &Logger{opt: opt}
	logger.internal = newInternalLogger(opt)
	return logger
}

// NewNopLogger 何も出力しないロガーを返す
func NewNopLogger() *Logger {
	return &Logger{
		internal: log.NewNopLogger(),
		opt:      &LoggerOption{Writer: io.Discard},
	}
}

func newInternalLogger(opt *LoggerOption) log.Logger {
	w := log.NewSyncWriter(opt.Writer)
	var logger log.Logger
	if opt.JSON {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}

	if opt.TimeStamp {
		logger = log.With(logger, "timestamp", log.TimestampFormat(time.Now, time.RFC3339))
	}
	if opt.Caller {
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	switch opt.Level {
	case LevelError:
		logger = level.NewFilter(logger, level.AllowError())
	case LevelWarn:
		logger = level.NewFilter(logger, level.AllowWarn())
	case LevelInfo:
		logger = level.NewFilter(logger, level.AllowInfo())
	case LevelDebug:
		logger = level.NewFilter(logger, level.AllowDebug())
	}
	return logger
}

func (l *Logger) Log(keyvals ...interface{}) error {
	return l.internal.Log(keyvals...)
}

// With 指定されたkey-valuesを持つコンテキストロガーを返す
//
// see: https://pkg.go.dev/github.com/go-kit/log
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{
		internal: log.With(l.internal, keyvals...),
		opt:      l.opt,
	}
}

// WithPrefix 指定されたkey-valuesを先頭に持つコンテキストロガーを返す
func (l *Logger) WithPrefix(keyvals ...interface{}) *Logger {
	return &Logger{
		internal: log.WithPrefix(l.internal, keyvals...),
		opt:      l.opt,
	}
}

// Error レベルErrorでログ出力
func (l *Logger) Error(keyvals ...interface{}) error {
	return level.Error(l.internal).Log(keyvals...)
}

// Warn レベルWarnでログ出力
func (l *Logger) Warn(keyvals ...interface{}) error {
	return level.Warn(l.internal).Log(keyvals...)
}

// Info レベルInfoでログ出力
func (l *Logger) Info(keyvals ...interface{}) error {
	return level.Info(l.internal).Log(keyvals...)
}

// Debug レベルDebugでログ出力
func (l *Logger) Debug(keyvals ...interface{}) error {
	return level.Debug(l.internal).Log(keyvals...)
}
