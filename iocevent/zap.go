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

package iocevent

import (
	"go.uber.org/zap"
)

// ZapLogger is an ioc event logger that logs events to Zap.
//
// Registrations and singleton builds are logged at Info level, successful
// lookups at Debug level and every failure at Error level.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.Logger.Error("registration failed",
				zap.String("type", e.TypeName),
				zap.String("key", e.Key),
				zap.String("lifetime", e.Lifetime),
				zap.String("caller", e.Caller),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("registered",
				zap.String("type", e.TypeName),
				zap.String("key", e.Key),
				zap.String("lifetime", e.Lifetime),
				zap.String("caller", e.Caller),
			)
		}
	case *Configured:
		if e.Err != nil {
			l.Logger.Error("configuration failed",
				zap.Int("registrations", e.Registrations),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("configured", zap.Int("registrations", e.Registrations))
		}
	case *Resolved:
		if e.Err != nil {
			l.Logger.Error("resolve failed",
				zap.String("type", e.TypeName),
				zap.String("key", e.Key),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("resolved",
				zap.String("type", e.TypeName),
				zap.String("key", e.Key),
			)
		}
	case *SingletonBuilt:
		if e.Err != nil {
			l.Logger.Error("singleton build failed",
				zap.String("type", e.TypeName),
				zap.String("runtime", e.Runtime.String()),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("singleton built",
				zap.String("type", e.TypeName),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	}
}
