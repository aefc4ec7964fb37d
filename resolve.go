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
	"fmt"
	"reflect"

	"github.com/rfcommon/ioc/internal/iocreflect"
)

// Resolver is the lookup side of a container. Constructors receive one so
// that they can resolve their own dependencies; it cannot be used to
// register anything.
type Resolver interface {
	// Resolve builds an instance of t for key. The returned value, if
	// non-nil, is assignable to t.
	Resolve(t reflect.Type, key string) (interface{}, error)
}

// Get resolves the T registered under DefaultKey.
func Get[T any](r Resolver) (T, error) {
	return GetKeyed[T](r, DefaultKey)
}

// GetKeyed resolves the T registered under key.
func GetKeyed[T any](r Resolver, key string) (T, error) {
	var zero T

	t := iocreflect.TypeOf[T]()
	v, err := r.Resolve(t, key)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}

	// Only a constructor registered through the untyped Configurator can
	// produce something else.
	out, ok := v.(T)
	if !ok {
		return zero, &ResolveError{
			Type: t,
			Key:  key,
			Err:  fmt.Errorf("constructor produced %T, not %v", v, t),
		}
	}
	return out, nil
}

// MustGet is like Get but panics if T cannot be resolved.
func MustGet[T any](r Resolver) T {
	return MustGetKeyed[T](r, DefaultKey)
}

// MustGetKeyed is like GetKeyed but panics if T cannot be resolved.
func MustGetKeyed[T any](r Resolver, key string) T {
	v, err := GetKeyed[T](r, key)
	if err != nil {
		panic(err)
	}
	return v
}
