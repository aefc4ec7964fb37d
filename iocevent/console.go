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
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger is an ioc event logger that attempts to write human-readable
// messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer

	mu sync.Mutex
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.W, "[IoC] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to register %v[%q] (caller: %s): %v", e.TypeName, e.Key, e.Caller, e.Err)
		} else {
			l.logf("REGISTER\t%v[%q] as %s (caller: %s)", e.TypeName, e.Key, e.Lifetime, e.Caller)
		}
	case *Configured:
		if e.Err != nil {
			l.logf("ERROR\t\tConfiguration failed after %d registrations: %v", e.Registrations, e.Err)
		} else {
			l.logf("CONFIGURED\t%d registrations", e.Registrations)
		}
	case *Resolved:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to resolve %v[%q]: %v", e.TypeName, e.Key, e.Err)
		} else {
			l.logf("RESOLVE\t%v[%q]", e.TypeName, e.Key)
		}
	case *SingletonBuilt:
		if e.Err != nil {
			l.logf("ERROR\t\tSingleton %v failed in %s: %v", e.TypeName, e.Runtime, e.Err)
		} else {
			l.logf("SINGLETON\t%v built in %s", e.TypeName, e.Runtime)
		}
	}
}
