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

// Package ioc is a small dependency resolution container.
//
// A Container maps a service type, optionally qualified by a string key, to
// the constructor that builds it. Constructors are plain functions that
// receive a Resolver, which they use to look up their own dependencies.
//
// # Lifetimes
//
// Transient types are built anew on every lookup. A transient type may have
// several constructors, each under its own key; DefaultKey is used when no
// key is given.
//
// Singleton types have exactly one constructor. It runs on the first lookup,
// no matter how many goroutines race for it, and its result is shared by all
// later lookups. If it fails, nothing is cached and the next lookup tries
// again.
//
// The first registration of a type fixes its lifetime.
//
// # Configuring and resolving
//
// Registration happens in one phase, before anything is resolved:
//
//	c := ioc.New()
//	err := c.Configure(func(cfg ioc.Configurator) {
//		ioc.Add[Foo](cfg, func(ioc.Resolver) (Foo, error) {
//			return &Bar{}, nil
//		})
//		ioc.AddKeyed[Foo](cfg, "baz", func(ioc.Resolver) (Foo, error) {
//			return &Baz{}, nil
//		})
//		ioc.AddSingleton[*Qux](cfg, NewQux)
//		ioc.Add[*Depending](cfg, func(r ioc.Resolver) (*Depending, error) {
//			foo, err := ioc.GetKeyed[Foo](r, "baz")
//			if err != nil {
//				return nil, err
//			}
//			return &Depending{Foo: foo}, nil
//		})
//	})
//
// After that the container may be shared freely:
//
//	dep, err := ioc.Get[*Depending](c)
//
// # Errors
//
// Looking up a type nobody registered fails with a TypeNotRegisteredError.
// Every other failure comes back as a ResolveError naming the type and key
// that were asked for and wrapping the cause, which may be a
// KeyNotRegisteredError, a constructor's own error, or the ResolveError of
// one of its dependencies. Use errors.As to inspect the chain.
//
// The container does not detect dependency cycles and never tears down what
// it built.
package ioc
