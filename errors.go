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

package ioc

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilConstructor is returned when a nil constructor is registered.
var ErrNilConstructor = errors.New("ioc: nil constructor")

// TypeNotRegisteredError is returned when nothing at all is registered for
// the requested type.
type TypeNotRegisteredError struct {
	Type reflect.Type
}

func (e *TypeNotRegisteredError) Error() string {
	return fmt.Sprintf("ioc: nothing registered for %v", e.Type)
}

// KeyNotRegisteredError is returned when a type is registered but not under
// the requested key. The container always surfaces it wrapped in a
// ResolveError; use errors.As to get at it.
type KeyNotRegisteredError struct {
	Type reflect.Type
	Key  string
}

func (e *KeyNotRegisteredError) Error() string {
	return fmt.Sprintf("ioc: no constructor registered for key %q of %v", e.Key, e.Type)
}

// ConflictingRegistrationError is returned when a registration clashes with
// an earlier one for the same type: a transient registration for a
// singleton type or the other way around, a second singleton, or (under
// DuplicateKeysReject) a second constructor for the same key.
type ConflictingRegistrationError struct {
	Type reflect.Type
	Key  string

	// Registered is the lifetime fixed by the first registration of Type.
	Registered Lifetime
	// Requested is the lifetime of the rejected registration.
	Requested Lifetime
}

func (e *ConflictingRegistrationError) Error() string {
	if e.Registered == e.Requested {
		return fmt.Sprintf("ioc: %v already has a %v constructor for key %q", e.Type, e.Registered, e.Key)
	}
	return fmt.Sprintf("ioc: cannot register %v as %v: already registered as %v", e.Type, e.Requested, e.Registered)
}

// ResolveError is returned when a registered type could not be resolved,
// either because the key is unknown or because its constructor failed. Err
// is the underlying failure and may itself be a ResolveError for one of the
// constructor's dependencies.
type ResolveError struct {
	Type reflect.Type
	Key  string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("ioc: could not resolve %v for key %q: %v", e.Type, e.Key, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ConstructorPanicError is returned when a constructor panics. If the
// recovered value is an error, it is available through errors.Unwrap.
type ConstructorPanicError struct {
	Type  reflect.Type
	Value interface{}
}

func (e *ConstructorPanicError) Error() string {
	return fmt.Sprintf("ioc: constructor for %v panicked: %v", e.Type, e.Value)
}

func (e *ConstructorPanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
