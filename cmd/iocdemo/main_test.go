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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the demo with a quiet logger and a private metrics registry.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ioc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: error
metrics:
  enabled: true
`), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd(prometheus.NewRegistry())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"resolve", "foo"}, "foo[default] => *main.Bar (bar)\n"},
		{[]string{"resolve", "foo", "--key", "baz"}, "foo[baz] => *main.Baz (baz)\n"},
		{[]string{"resolve", "depending"}, "depending[default] => *main.Depending with *main.Bar\n"},
		{[]string{"resolve", "depending", "-k", "b"}, "depending[b] => *main.Depending with *main.Baz\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestResolveQux(t *testing.T) {
	t.Parallel()

	out, err := run(t, "resolve", "qux")
	require.NoError(t, err)
	assert.Contains(t, out, "qux => *main.Qux built at ")
}

func TestResolveUnknownKey(t *testing.T) {
	t.Parallel()

	out, err := run(t, "resolve", "foo", "--key", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no constructor registered for key "nope" of main.Foo`)
	assert.Contains(t, out, "Error:")
}

func TestResolveUnknownService(t *testing.T) {
	t.Parallel()

	_, err := run(t, "resolve", "widget")
	assert.Error(t, err)
}

func TestRace(t *testing.T) {
	t.Parallel()

	out, err := run(t, "race", "-n", "32", "--build-delay", "20ms")
	require.NoError(t, err)
	assert.Equal(t, "32 lookups, 1 instance(s), 1 constructor call(s)\n", out)
}

func TestList(t *testing.T) {
	t.Parallel()

	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Equal(t,
		`*main.Depending transient ["b" "default"]`+"\n"+
			`*main.Qux singleton ["default"]`+"\n"+
			`main.Foo transient ["baz" "default"]`+"\n",
		out)
}

func TestBadConfig(t *testing.T) {
	t.Parallel()

	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Error(t, err)
}
