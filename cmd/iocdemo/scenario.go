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

package main

import (
	"sync/atomic"
	"time"

	"github.com/rfcommon/ioc"
)

// Foo has a default and a keyed implementation.
type Foo interface {
	Name() string
}

// Bar is the default Foo.
type Bar struct{}

// Name implements Foo.
func (*Bar) Name() string { return "bar" }

// Baz is the Foo registered under "baz".
type Baz struct{}

// Name implements Foo.
func (*Baz) Name() string { return "baz" }

// Qux is a singleton that is slow to build.
type Qux struct{ BuiltAt time.Time }

// Depending needs a Foo.
type Depending struct {
	Foo Foo
}

// scenario registers the demo services. buildDelay slows Qux down so that
// concurrent first lookups overlap.
type scenario struct {
	buildDelay time.Duration

	quxBuilds atomic.Int32
}

func (s *scenario) configure(cfg ioc.Configurator) {
	ioc.Add[Foo](cfg, func(ioc.Resolver) (Foo, error) {
		return &Bar{}, nil
	})
	ioc.AddKeyed[Foo](cfg, "baz", func(ioc.Resolver) (Foo, error) {
		return &Baz{}, nil
	})
	ioc.AddSingleton[*Qux](cfg, func(ioc.Resolver) (*Qux, error) {
		s.quxBuilds.Add(1)
		time.Sleep(s.buildDelay)
		return &Qux{BuiltAt: time.Now()}, nil
	})
	ioc.Add[*Depending](cfg, s.depending(ioc.DefaultKey))
	ioc.AddKeyed[*Depending](cfg, "b", s.depending("baz"))
}

func (s *scenario) depending(fooKey string) ioc.Constructor[*Depending] {
	return func(r ioc.Resolver) (*Depending, error) {
		foo, err := ioc.GetKeyed[Foo](r, fooKey)
		if err != nil {
			return nil, err
		}
		return &Depending{Foo: foo}, nil
	}
}
