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

// Package iocfx exposes services held by an ioc container to applications
// built with go.uber.org/fx and to go.uber.org/dig containers.
//
// Services registered under DefaultKey are provided as plain values of their
// type; any other key becomes the name of the value.
//
//	app := fx.New(
//		iocfx.Module(c),
//		iocfx.Provide[Foo](c, ioc.DefaultKey),
//		iocfx.Provide[Foo](c, "baz"), // `name:"baz"`
//		fx.Invoke(run),
//	)
//
// Lookups happen when fx or dig first needs the value, and follow the
// lifetime the type was registered with in the ioc container. Note that fx
// and dig call each provider at most once per application.
package iocfx

import (
	"github.com/rfcommon/ioc"
	"go.uber.org/dig"
	"go.uber.org/fx"
)

func constructor[T any](r ioc.Resolver, key string) func() (T, error) {
	return func() (T, error) {
		return ioc.GetKeyed[T](r, key)
	}
}

// Provide returns an fx.Option providing the T registered under key.
func Provide[T any](r ioc.Resolver, key string) fx.Option {
	ctor := constructor[T](r, key)
	if key == ioc.DefaultKey {
		return fx.Provide(ctor)
	}
	return fx.Provide(fx.Annotated{Name: key, Target: ctor})
}

// Module returns an fx.Option providing r itself as an ioc.Resolver, for
// fx constructors that need to look services up by key.
func Module(r ioc.Resolver) fx.Option {
	return fx.Module("ioc",
		fx.Provide(func() ioc.Resolver { return r }),
	)
}

// ProvideDig adds a provider for the T registered under key to dc.
func ProvideDig[T any](dc *dig.Container, r ioc.Resolver, key string) error {
	var opts []dig.ProvideOption
	if key != ioc.DefaultKey {
		opts = append(opts, dig.Name(key))
	}
	return dc.Provide(constructor[T](r, key), opts...)
}
