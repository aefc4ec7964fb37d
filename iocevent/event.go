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
	"time"
)

// Event defines an event emitted by an ioc container.
type Event interface {
	event() // Only iocevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()     {}
func (*Configured) event()     {}
func (*Resolved) event()       {}
func (*SingletonBuilt) event() {}

// Registered is emitted after a constructor was added to the container, or
// after the container refused to add it.
type Registered struct {
	// TypeName is the name of the service type the constructor produces.
	TypeName string
	// Key is the key the constructor was registered under.
	Key string
	// Lifetime is either "transient" or "singleton".
	Lifetime string
	// Caller is the function that registered the constructor.
	Caller string
	// Err is non-nil if the registration was rejected.
	Err error
}

// Configured is emitted when a Configure call has finished running its
// setup routine.
type Configured struct {
	// Registrations is the number of registration attempts made by the
	// setup routine.
	Registrations int
	// Err holds every registration error, combined.
	Err error
}

// Resolved is emitted for every lookup made against the container,
// including lookups made by constructors for their own dependencies.
type Resolved struct {
	TypeName string
	Key      string
	Err      error
}

// SingletonBuilt is emitted after a singleton constructor ran. A failed
// build leaves the singleton unbuilt.
type SingletonBuilt struct {
	TypeName string
	Runtime  time.Duration
	Err      error
}
