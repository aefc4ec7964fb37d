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
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rfcommon/ioc"
	"github.com/rfcommon/ioc/iocevent"
	"github.com/rfcommon/ioc/iocmetrics"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable holding the path of the
// configuration file.
const EnvConfigFile = "IOC_CONFIG"

// Config is the YAML configuration of a container and its observability.
type Config struct {
	Container ContainerConfig `yaml:"container"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ContainerConfig holds container policy.
type ContainerConfig struct {
	// DuplicateKeys is either "reject" or "ignore".
	DuplicateKeys ioc.DuplicateKeyPolicy `yaml:"duplicate_keys"`
}

// MetricsConfig configures Prometheus metrics for container events.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Container: ContainerConfig{
			DuplicateKeys: ioc.DuplicateKeysReject,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Metrics: MetricsConfig{
			Namespace: "ioc",
		},
	}
}

// Load reads and parses the YAML file at path. An empty path falls back to
// $IOC_CONFIG, and then to Default. References to ${VAR} or ${VAR:default}
// in the file are expanded from the environment before parsing.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse([]byte(os.Expand(string(b), lookupEnv)))
}

// lookupEnv resolves VAR or VAR:default.
func lookupEnv(name string) string {
	name, def, hasDefault := strings.Cut(name, ":")
	if v, ok := os.LookupEnv(name); ok || !hasDefault {
		return v
	}
	return def
}

// Parse parses YAML on top of Default and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var err error
	switch c.Container.DuplicateKeys {
	case ioc.DuplicateKeysReject, ioc.DuplicateKeysIgnore:
	default:
		err = multierr.Append(err, fmt.Errorf("invalid container.duplicate_keys %v", c.Container.DuplicateKeys))
	}
	err = multierr.Append(err, c.Logging.Validate())
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		err = multierr.Append(err, fmt.Errorf("metrics.namespace must be set when metrics are enabled"))
	}
	return err
}

// Options builds the container options described by the configuration.
// Events go to log, and to Prometheus collectors registered with reg when
// metrics are enabled.
func (c Config) Options(log *zap.Logger, reg prometheus.Registerer) ([]ioc.Option, error) {
	loggers := []iocevent.Logger{&iocevent.ZapLogger{Logger: log}}
	if c.Metrics.Enabled {
		m, err := iocmetrics.New(reg, c.Metrics.Namespace)
		if err != nil {
			return nil, err
		}
		loggers = append(loggers, m)
	}

	return []ioc.Option{
		ioc.WithLogger(iocevent.MultiLogger(loggers...)),
		ioc.WithDuplicateKeys(c.Container.DuplicateKeys),
	}, nil
}
