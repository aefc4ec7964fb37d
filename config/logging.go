// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures the zap logger container events are written to.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"` // json or console
	Development bool   `yaml:"development"`
}

// Validate reports every problem with the logging configuration.
func (l LoggingConfig) Validate() error {
	var err error
	if _, lerr := l.level(); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	switch l.Encoding {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("invalid logging.encoding %q", l.Encoding))
	}
	return err
}

func (l LoggingConfig) level() (zapcore.Level, error) {
	var lv zapcore.Level
	if err := lv.UnmarshalText([]byte(l.Level)); err != nil {
		return lv, fmt.Errorf("invalid logging.level %q: %w", l.Level, err)
	}
	return lv, nil
}

// Build creates the logger.
func (l LoggingConfig) Build(opts ...zap.Option) (*zap.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	lv, _ := l.level()

	cfg := zap.NewProductionConfig()
	if l.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lv)
	cfg.Encoding = l.Encoding
	return cfg.Build(opts...)
}
