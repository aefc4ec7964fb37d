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
	"reflect"

	"github.com/rfcommon/ioc/internal/iocreflect"
	"go.uber.org/multierr"
)

// Configurator is the registration side of a container. Use the Add
// functions rather than calling it directly; they derive the service type
// from their type parameter.
type Configurator interface {
	// Register adds a transient constructor for t under key. Registering a
	// type that is already a singleton fails with a
	// ConflictingRegistrationError, as does registering a key twice unless
	// the container ignores duplicate keys.
	Register(t reflect.Type, key string, ctor func(Resolver) (interface{}, error)) error

	// RegisterSingleton adds the only constructor of t. It fails with a
	// ConflictingRegistrationError if anything is already registered for t.
	RegisterSingleton(t reflect.Type, ctor func(Resolver) (interface{}, error)) error
}

// Constructor builds a T. It receives a Resolver to look up its own
// dependencies with; errors from those lookups should be returned as is.
type Constructor[T any] func(Resolver) (T, error)

func (ctor Constructor[T]) erase() factory {
	if ctor == nil {
		return nil
	}
	return func(r Resolver) (interface{}, error) {
		return ctor(r)
	}
}

// Add registers ctor as the transient constructor of T under DefaultKey.
func Add[T any](c Configurator, ctor Constructor[T]) error {
	return c.Register(iocreflect.TypeOf[T](), DefaultKey, ctor.erase())
}

// AddKeyed registers ctor as a transient constructor of T under key. A type
// may have any number of keyed constructors.
func AddKeyed[T any](c Configurator, key string, ctor Constructor[T]) error {
	return c.Register(iocreflect.TypeOf[T](), key, ctor.erase())
}

// AddSingleton registers ctor as the singleton constructor of T. It runs
// on the first lookup of T and its result is shared by all later lookups.
func AddSingleton[T any](c Configurator, ctor Constructor[T]) error {
	return c.RegisterSingleton(iocreflect.TypeOf[T](), ctor.erase())
}

// Supply registers an already built value as the singleton T.
func Supply[T any](c Configurator, value T) error {
	return AddSingleton[T](c, func(Resolver) (T, error) {
		return value, nil
	})
}

// recorder is the Configurator handed to Configure's setup routine. It
// keeps every registration error.
type recorder struct {
	c     *Container
	count int
	err   error
}

var _ Configurator = (*recorder)(nil)

func (r *recorder) Register(t reflect.Type, key string, ctor func(Resolver) (interface{}, error)) error {
	r.count++
	err := r.c.Register(t, key, ctor)
	r.err = multierr.Append(r.err, err)
	return err
}

func (r *recorder) RegisterSingleton(t reflect.Type, ctor func(Resolver) (interface{}, error)) error {
	r.count++
	err := r.c.RegisterSingleton(t, ctor)
	r.err = multierr.Append(r.err, err)
	return err
}
