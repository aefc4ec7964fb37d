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
	"sort"
	"sync"
)

// factory is a type-erased Constructor.
type factory func(Resolver) (interface{}, error)

// builder owns the constructors registered for one service type.
type builder interface {
	lifetime() Lifetime

	// build produces an instance for key, handing r to the constructor so
	// that it can resolve its own dependencies.
	build(r Resolver, key string) (interface{}, error)

	// keys lists the registered keys in sorted order.
	keys() []string
}

// keyedBuilder holds transient constructors by key. Every build calls the
// constructor again.
type keyedBuilder struct {
	typ reflect.Type

	mu    sync.RWMutex
	ctors map[string]factory
}

var _ builder = (*keyedBuilder)(nil)

func newKeyedBuilder(t reflect.Type) *keyedBuilder {
	return &keyedBuilder{
		typ:   t,
		ctors: make(map[string]factory),
	}
}

func (b *keyedBuilder) lifetime() Lifetime { return Transient }

// add stores ctor under key unless the key is taken, and reports whether it
// was stored.
func (b *keyedBuilder) add(key string, ctor factory) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.ctors[key]; ok {
		return false
	}
	b.ctors[key] = ctor
	return true
}

func (b *keyedBuilder) build(r Resolver, key string) (interface{}, error) {
	b.mu.RLock()
	ctor, ok := b.ctors[key]
	b.mu.RUnlock()

	if !ok {
		return nil, &KeyNotRegisteredError{Type: b.typ, Key: key}
	}
	return invoke(b.typ, ctor, r)
}

func (b *keyedBuilder) keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.ctors))
	for k := range b.ctors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// invoke calls ctor, turning a panic into a ConstructorPanicError.
func invoke(t reflect.Type, ctor factory, r Resolver) (v interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, &ConstructorPanicError{Type: t, Value: p}
		}
	}()
	return ctor(r)
}
