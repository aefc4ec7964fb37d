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

package ioc_test

import (
	"errors"
	"fmt"

	"github.com/rfcommon/ioc"
)

type Greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

type french struct{}

func (french) Greet() string { return "bonjour" }

type Clock struct{ ticks int }

type Service struct {
	greeter Greeter
	clock   *Clock
}

func Example() {
	c := ioc.New()
	err := c.Configure(func(cfg ioc.Configurator) {
		ioc.Add[Greeter](cfg, func(ioc.Resolver) (Greeter, error) {
			return english{}, nil
		})
		ioc.AddKeyed[Greeter](cfg, "fr", func(ioc.Resolver) (Greeter, error) {
			return french{}, nil
		})
		ioc.AddSingleton[*Clock](cfg, func(ioc.Resolver) (*Clock, error) {
			return &Clock{}, nil
		})
		ioc.Add[*Service](cfg, func(r ioc.Resolver) (*Service, error) {
			g, err := ioc.GetKeyed[Greeter](r, "fr")
			if err != nil {
				return nil, err
			}
			clock, err := ioc.Get[*Clock](r)
			if err != nil {
				return nil, err
			}
			return &Service{greeter: g, clock: clock}, nil
		})
	})
	if err != nil {
		panic(err)
	}

	svc, err := ioc.Get[*Service](c)
	if err != nil {
		panic(err)
	}
	fmt.Println(svc.greeter.Greet())
	fmt.Println(svc.clock == ioc.MustGet[*Clock](c))

	_, err = ioc.GetKeyed[Greeter](c, "de")
	var notKeyed *ioc.KeyNotRegisteredError
	fmt.Println(errors.As(err, &notKeyed), notKeyed.Key)

	// Output:
	// bonjour
	// true
	// true de
}
