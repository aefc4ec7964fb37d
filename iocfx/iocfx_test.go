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

package iocfx_test

import (
	"testing"

	"github.com/rfcommon/ioc"
	"github.com/rfcommon/ioc/iocfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type Foo interface{ Name() string }

type bar struct{ n int }

func (*bar) Name() string { return "bar" }

type baz struct{ n int }

func (*baz) Name() string { return "baz" }

type qux struct{ n int }

func newContainer(t *testing.T) *ioc.Container {
	c := ioc.New()
	require.NoError(t, c.Configure(func(cfg ioc.Configurator) {
		ioc.Add[Foo](cfg, func(ioc.Resolver) (Foo, error) { return &bar{}, nil })
		ioc.AddKeyed[Foo](cfg, "baz", func(ioc.Resolver) (Foo, error) { return &baz{}, nil })
		ioc.AddSingleton[*qux](cfg, func(ioc.Resolver) (*qux, error) { return &qux{}, nil })
	}))
	return c
}

func TestProvide(t *testing.T) {
	t.Parallel()

	c := newContainer(t)

	type params struct {
		fx.In

		Default Foo
		Baz     Foo `name:"baz"`
		Qux     *qux
	}

	var got params
	app := fxtest.New(t,
		fx.NopLogger,
		iocfx.Provide[Foo](c, ioc.DefaultKey),
		iocfx.Provide[Foo](c, "baz"),
		iocfx.Provide[*qux](c, ioc.DefaultKey),
		fx.Invoke(func(p params) { got = p }),
	)
	app.RequireStart().RequireStop()

	assert.IsType(t, &bar{}, got.Default)
	assert.IsType(t, &baz{}, got.Baz)
	assert.Same(t, ioc.MustGet[*qux](c), got.Qux, "fx must see the container's singleton")
}

func TestProvideMissingKey(t *testing.T) {
	t.Parallel()

	c := newContainer(t)
	app := fx.New(
		fx.NopLogger,
		iocfx.Provide[Foo](c, "nope"),
		fx.Invoke(func(p struct {
			fx.In

			Foo Foo `name:"nope"`
		}) {
		}),
	)

	err := app.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no constructor registered for key "nope"`)
}

func TestModule(t *testing.T) {
	t.Parallel()

	c := newContainer(t)

	var foo Foo
	app := fxtest.New(t,
		fx.NopLogger,
		iocfx.Module(c),
		fx.Invoke(func(r ioc.Resolver) error {
			var err error
			foo, err = ioc.GetKeyed[Foo](r, "baz")
			return err
		}),
	)
	app.RequireStart().RequireStop()

	assert.Equal(t, "baz", foo.Name())
}

func TestProvideDig(t *testing.T) {
	t.Parallel()

	c := newContainer(t)
	dc := dig.New()
	require.NoError(t, iocfx.ProvideDig[Foo](dc, c, ioc.DefaultKey))
	require.NoError(t, iocfx.ProvideDig[Foo](dc, c, "baz"))

	type params struct {
		dig.In

		Default Foo
		Baz     Foo `name:"baz"`
	}

	require.NoError(t, dc.Invoke(func(p params) {
		assert.Equal(t, "bar", p.Default.Name())
		assert.Equal(t, "baz", p.Baz.Name())
	}))

	t.Run("missing type", func(t *testing.T) {
		dc := dig.New()
		require.NoError(t, iocfx.ProvideDig[*qux](dc, ioc.New(), ioc.DefaultKey))

		err := dc.Invoke(func(*qux) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing registered for *iocfx_test.qux")
	})
}
