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
	"sort"
	"sync"

	"github.com/rfcommon/ioc/iocevent"
	"github.com/rfcommon/ioc/internal/iocreflect"
)

// Container maps service types to the constructors that build them.
//
// Populate a Container with Configure (or the Add functions) before
// resolving anything from it. Registering a type while other goroutines
// resolve the same type is not supported. Once configured, a Container is
// safe for concurrent use.
type Container struct {
	mu       sync.RWMutex
	builders map[reflect.Type]builder

	log           iocevent.Logger
	duplicateKeys DuplicateKeyPolicy
}

var (
	_ Configurator = (*Container)(nil)
	_ Resolver     = (*Container)(nil)
)

// New builds an empty Container.
func New(opts ...Option) *Container {
	c := &Container{
		builders: make(map[reflect.Type]builder),
		log:      iocevent.NopLogger,
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Configure runs setup against the container. Errors returned by the
// registrations made inside setup are combined and returned, so setup
// routines may ignore them.
//
//	err := c.Configure(func(cfg ioc.Configurator) {
//		ioc.Add[Foo](cfg, NewBar)
//		ioc.AddKeyed[Foo](cfg, "baz", NewBaz)
//		ioc.AddSingleton[*Qux](cfg, NewQux)
//	})
func (c *Container) Configure(setup func(Configurator)) error {
	r := &recorder{c: c}
	setup(r)
	c.log.LogEvent(&iocevent.Configured{
		Registrations: r.count,
		Err:           r.err,
	})
	return r.err
}

// Register adds a transient constructor for t under key. See Configurator.
func (c *Container) Register(t reflect.Type, key string, ctor func(Resolver) (interface{}, error)) error {
	err := c.register(t, key, ctor)
	c.log.LogEvent(&iocevent.Registered{
		TypeName: iocreflect.TypeName(t),
		Key:      key,
		Lifetime: Transient.String(),
		Caller:   iocreflect.Caller(),
		Err:      err,
	})
	return err
}

func (c *Container) register(t reflect.Type, key string, ctor factory) error {
	if ctor == nil {
		return fmt.Errorf("cannot register %v for key %q: %w", t, key, ErrNilConstructor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.builders[t]
	if !ok {
		b = newKeyedBuilder(t)
		c.builders[t] = b
	}

	kb, ok := b.(*keyedBuilder)
	if !ok {
		return &ConflictingRegistrationError{
			Type:       t,
			Key:        key,
			Registered: b.lifetime(),
			Requested:  Transient,
		}
	}
	if !kb.add(key, ctor) && c.duplicateKeys == DuplicateKeysReject {
		return &ConflictingRegistrationError{
			Type:       t,
			Key:        key,
			Registered: Transient,
			Requested:  Transient,
		}
	}
	return nil
}

// RegisterSingleton adds the only constructor for t. See Configurator.
func (c *Container) RegisterSingleton(t reflect.Type, ctor func(Resolver) (interface{}, error)) error {
	err := c.registerSingleton(t, ctor)
	c.log.LogEvent(&iocevent.Registered{
		TypeName: iocreflect.TypeName(t),
		Key:      DefaultKey,
		Lifetime: Singleton.String(),
		Caller:   iocreflect.Caller(),
		Err:      err,
	})
	return err
}

func (c *Container) registerSingleton(t reflect.Type, ctor factory) error {
	if ctor == nil {
		return fmt.Errorf("cannot register singleton %v: %w", t, ErrNilConstructor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.builders[t]; ok {
		return &ConflictingRegistrationError{
			Type:       t,
			Key:        DefaultKey,
			Registered: b.lifetime(),
			Requested:  Singleton,
		}
	}
	c.builders[t] = newSingletonBuilder(t, ctor, c.log)
	return nil
}

// Resolve looks up the builder for t and builds an instance for key.
//
// It fails with a TypeNotRegisteredError if nothing is registered for t. Any
// failure of the builder, such as an unknown key or a failing constructor,
// is returned wrapped in a ResolveError naming t and key.
func (c *Container) Resolve(t reflect.Type, key string) (interface{}, error) {
	v, err := c.resolve(t, key)
	c.log.LogEvent(&iocevent.Resolved{
		TypeName: iocreflect.TypeName(t),
		Key:      key,
		Err:      err,
	})
	return v, err
}

func (c *Container) resolve(t reflect.Type, key string) (interface{}, error) {
	c.mu.RLock()
	b, ok := c.builders[t]
	c.mu.RUnlock()

	if !ok {
		return nil, &TypeNotRegisteredError{Type: t}
	}

	// Constructors only get to see the read-only side of the container.
	v, err := b.build(view{c}, key)
	if err != nil {
		return nil, &ResolveError{Type: t, Key: key, Err: err}
	}
	return v, nil
}

// Has reports whether a lookup of t under key would find a constructor.
// Singletons answer for every key.
func (c *Container) Has(t reflect.Type, key string) bool {
	c.mu.RLock()
	b, ok := c.builders[t]
	c.mu.RUnlock()

	switch {
	case !ok:
		return false
	case b.lifetime() == Singleton:
		return true
	}
	for _, k := range b.keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Registration describes what a container holds for one type.
type Registration struct {
	Type     reflect.Type
	Lifetime Lifetime
	Keys     []string

	// Built reports whether a singleton has already been constructed. It is
	// always false for transient types.
	Built bool
}

func (r Registration) String() string {
	return fmt.Sprintf("%v %v %q", r.Type, r.Lifetime, r.Keys)
}

// Registrations lists the container's contents ordered by type name.
func (c *Container) Registrations() []Registration {
	c.mu.RLock()
	regs := make([]Registration, 0, len(c.builders))
	for t, b := range c.builders {
		reg := Registration{
			Type:     t,
			Lifetime: b.lifetime(),
			Keys:     b.keys(),
		}
		if sb, ok := b.(*singletonBuilder); ok {
			reg.Built = sb.built()
		}
		regs = append(regs, reg)
	}
	c.mu.RUnlock()

	sort.Slice(regs, func(i, j int) bool {
		return regs[i].Type.String() < regs[j].Type.String()
	})
	return regs
}

// view is the Resolver handed to constructors.
type view struct{ c *Container }

func (v view) Resolve(t reflect.Type, key string) (interface{}, error) {
	return v.c.Resolve(t, key)
}
