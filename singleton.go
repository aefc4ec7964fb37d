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
	"sync"
	"sync/atomic"
	"time"

	"github.com/rfcommon/ioc/iocevent"
	"github.com/rfcommon/ioc/internal/iocreflect"
)

// singletonBuilder builds its type at most once. Readers that find the value
// already built never take the lock; concurrent first readers wait on mu
// while exactly one of them runs the constructor.
//
// A constructor that fails or panics leaves the slot empty, so the next
// lookup runs it again. Once a build succeeds the value is never replaced.
type singletonBuilder struct {
	typ  reflect.Type
	ctor factory
	log  iocevent.Logger

	mu    sync.Mutex // held while building
	value atomic.Pointer[instance]
}

// instance boxes a built value so that a nil value still counts as built.
type instance struct {
	v interface{}
}

var _ builder = (*singletonBuilder)(nil)

func newSingletonBuilder(t reflect.Type, ctor factory, log iocevent.Logger) *singletonBuilder {
	return &singletonBuilder{
		typ:  t,
		ctor: ctor,
		log:  log,
	}
}

func (b *singletonBuilder) lifetime() Lifetime { return Singleton }

// build ignores key: singletons are scoped to their type.
func (b *singletonBuilder) build(r Resolver, _ string) (interface{}, error) {
	if inst := b.value.Load(); inst != nil {
		return inst.v, nil
	}
	return b.buildSlow(r)
}

func (b *singletonBuilder) buildSlow(r Resolver) (interface{}, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Someone else may have finished the build while we waited.
	if inst := b.value.Load(); inst != nil {
		return inst.v, nil
	}

	start := time.Now()
	v, err := invoke(b.typ, b.ctor, r)
	b.log.LogEvent(&iocevent.SingletonBuilt{
		TypeName: iocreflect.TypeName(b.typ),
		Runtime:  time.Since(start),
		Err:      err,
	})
	if err != nil {
		return nil, err
	}

	b.value.Store(&instance{v: v})
	return v, nil
}

// built reports whether the singleton has been constructed.
func (b *singletonBuilder) built() bool {
	return b.value.Load() != nil
}

func (b *singletonBuilder) keys() []string {
	return []string{DefaultKey}
}
