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

// Package iocevent defines a means of changing how an ioc container logs
// internal events.
//
// # Changing the Logger
//
// By default, containers use the [NopLogger] and stay silent.
//
// You can use the ioc.WithLogger option to change this behavior by passing
// any implementation of the [Logger] interface. If you're using Zap inside
// your application, you can use the [ZapLogger] implementation.
//
//	c := ioc.New(
//		ioc.WithLogger(&iocevent.ZapLogger{Logger: log}),
//	)
//
// Several loggers can be combined with [MultiLogger].
//
// # Implementing a Custom Logger
//
// [Event] is a union type that represents all the different events a
// container can emit. Use a type switch to handle each event type.
//
//	func (l *MyLogger) LogEvent(e iocevent.Event) {
//		switch e := e.(type) {
//		case *iocevent.Registered:
//			// ...
//		case *iocevent.SingletonBuilt:
//			// ...
//		}
//	}
//
// LogEvent may be called from many goroutines at once, since containers are
// shared between concurrent callers.
package iocevent
