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

// Package ioctest provides helpers for tests of code that configures or
// resolves from an ioc container.
package ioctest

import (
	"github.com/rfcommon/ioc"
	"github.com/rfcommon/ioc/iocevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// New builds a container, runs configure against it and fails the test if
// any registration fails. Container events are written to the test log.
func New(t TB, configure func(ioc.Configurator), opts ...ioc.Option) *ioc.Container {
	opts = append([]ioc.Option{ioc.WithLogger(NewTestLogger(t))}, opts...)
	c := ioc.New(opts...)
	if err := c.Configure(configure); err != nil {
		t.Errorf("container didn't configure cleanly: %v", err)
		t.FailNow()
	}
	return c
}

// NewTestLogger returns an iocevent.Logger that writes to the test log.
func NewTestLogger(t TB) iocevent.Logger {
	return &iocevent.ConsoleLogger{W: testLogWriter{t}}
}

type testLogWriter struct{ t TB }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", p)
	return len(p), nil
}

// MustGet resolves the T registered under ioc.DefaultKey, failing the test
// if that isn't possible.
func MustGet[T any](t TB, r ioc.Resolver) T {
	return MustGetKeyed[T](t, r, ioc.DefaultKey)
}

// MustGetKeyed resolves the T registered under key, failing the test if
// that isn't possible.
func MustGetKeyed[T any](t TB, r ioc.Resolver, key string) T {
	v, err := ioc.GetKeyed[T](r, key)
	if err != nil {
		t.Errorf("could not resolve %q: %v", key, err)
		t.FailNow()
	}
	return v
}
