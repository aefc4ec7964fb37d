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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rfcommon/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
container:
  duplicate_keys: ignore
logging:
  level: debug
  encoding: console
metrics:
  enabled: true
  namespace: app
`))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Container: ContainerConfig{DuplicateKeys: ioc.DuplicateKeysIgnore},
		Logging:   LoggingConfig{Level: "debug", Encoding: "console"},
		Metrics:   MetricsConfig{Enabled: true, Namespace: "app"},
	}, cfg)
}

func TestParseKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("logging:\n  level: warn\n"))
	require.NoError(t, err)

	want := Default()
	want.Logging.Level = "warn"
	assert.Equal(t, want, cfg)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc     string
		give     string
		wantErrs []string
	}{
		{
			desc:     "bad policy",
			give:     "container:\n  duplicate_keys: sometimes\n",
			wantErrs: []string{`unknown duplicate key policy "sometimes"`},
		},
		{
			desc:     "not yaml",
			give:     "container: [",
			wantErrs: []string{"parsing config"},
		},
		{
			desc: "everything wrong",
			give: "logging:\n  level: loud\n  encoding: xml\nmetrics:\n  enabled: true\n  namespace: ''\n",
			wantErrs: []string{
				`invalid logging.level "loud"`,
				`invalid logging.encoding "xml"`,
				"metrics.namespace must be set",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.give))
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.Contains(t, err.Error(), want)
			}
			if len(tt.wantErrs) > 1 {
				assert.Len(t, multierr.Errors(err), len(tt.wantErrs))
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ioc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("container:\n  duplicate_keys: ignore\n"), 0o644))

	t.Run("path", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ioc.DuplicateKeysIgnore, cfg.Container.DuplicateKeys)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvConfigFile, path)
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ioc.DuplicateKeysIgnore, cfg.Container.DuplicateKeys)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("expands environment", func(t *testing.T) {
		path := filepath.Join(dir, "expand.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"logging:\n  level: ${IOC_TEST_LEVEL}\n"+
				"metrics:\n  namespace: ${IOC_TEST_NAMESPACE:svc}\n"), 0o644))

		t.Setenv("IOC_TEST_LEVEL", "debug")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "svc", cfg.Metrics.Namespace)

		t.Setenv("IOC_TEST_NAMESPACE", "app")
		cfg, err = Load(path)
		require.NoError(t, err)
		assert.Equal(t, "app", cfg.Metrics.Namespace)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

type service struct{ n int }

func TestOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Container.DuplicateKeys = ioc.DuplicateKeysIgnore
	cfg.Metrics.Enabled = true

	core, logs := observer.New(zapcore.DebugLevel)
	reg := prometheus.NewRegistry()

	opts, err := cfg.Options(zap.New(core), reg)
	require.NoError(t, err)

	c := ioc.New(opts...)
	newService := func(ioc.Resolver) (*service, error) { return &service{}, nil }
	require.NoError(t, ioc.Add[*service](c, newService))
	require.NoError(t, ioc.Add[*service](c, newService), "duplicate keys are ignored")
	ioc.MustGet[*service](c)

	assert.Equal(t, 2, logs.FilterMessage("registered").Len())
	assert.Equal(t, 1, logs.FilterMessage("resolved").Len())

	count, err := testutil.GatherAndCount(reg, "ioc_resolutions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoggingBuild(t *testing.T) {
	t.Parallel()

	log, err := LoggingConfig{Level: "warn", Encoding: "console", Development: true}.Build()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	_, err = LoggingConfig{Level: "info", Encoding: "xml"}.Build()
	assert.Error(t, err)
}
