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

package iocreflect

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, reflect.Interface, TypeOf[io.Reader]().Kind())
	assert.Equal(t, "io.Reader", TypeOf[io.Reader]().String())
	assert.Equal(t, "*bytes.Buffer", TypeOf[*bytes.Buffer]().String())
	assert.Equal(t, "int", TypeOf[int]().String())
	assert.NotEqual(t, TypeOf[io.Reader](), TypeOf[io.Writer]())
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<nil>", TypeName(nil))
	assert.Equal(t, "fmt.Stringer", TypeName(TypeOf[fmt.Stringer]()))
}

func TestCaller(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "github.com/rfcommon/ioc/internal/iocreflect.TestCaller", Caller())
}
