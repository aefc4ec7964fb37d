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

// iocdemo assembles a small service graph in an ioc container and resolves
// from it on demand.
//
//	iocdemo resolve foo --key baz
//	iocdemo race -n 128
//	iocdemo list
package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rfcommon/ioc"
	"github.com/rfcommon/ioc/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(prometheus.DefaultRegisterer).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	reg prometheus.Registerer

	configPath string
	buildDelay time.Duration

	log       *zap.Logger
	scenario  *scenario
	container *ioc.Container
}

func newRootCmd(reg prometheus.Registerer) *cobra.Command {
	a := &app{reg: reg}

	cmd := &cobra.Command{
		Use:          "iocdemo",
		Short:        "Resolve services from a demo ioc container",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"path to a YAML config file (default $"+config.EnvConfigFile+")")
	cmd.PersistentFlags().DurationVar(&a.buildDelay, "build-delay", 5*time.Millisecond,
		"time the Qux singleton takes to build")

	cmd.AddCommand(
		a.newResolveCmd(),
		a.newRaceCmd(),
		a.newListCmd(),
	)
	return cmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.log, err = cfg.Logging.Build()
	if err != nil {
		return err
	}
	opts, err := cfg.Options(a.log, a.reg)
	if err != nil {
		return err
	}

	a.scenario = &scenario{buildDelay: a.buildDelay}
	a.container = ioc.New(opts...)
	return a.container.Configure(a.scenario.configure)
}

func (a *app) newResolveCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:       "resolve {foo|depending|qux}",
		Short:     "Resolve one service and describe it",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"foo", "depending", "qux"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd.OutOrStdout(), args[0], key)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", ioc.DefaultKey, "registration key")
	return cmd
}

func (a *app) resolve(w io.Writer, service, key string) error {
	switch service {
	case "foo":
		foo, err := ioc.GetKeyed[Foo](a.container, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "foo[%s] => %T (%s)\n", key, foo, foo.Name())
	case "depending":
		dep, err := ioc.GetKeyed[*Depending](a.container, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "depending[%s] => %T with %T\n", key, dep, dep.Foo)
	case "qux":
		qux, err := ioc.GetKeyed[*Qux](a.container, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "qux => %T built at %s\n", qux, qux.BuiltAt.Format(time.RFC3339Nano))
	default:
		return fmt.Errorf("unknown service %q", service)
	}
	return nil
}

func (a *app) newRaceCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Resolve the Qux singleton from many goroutines at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 1 {
				return fmt.Errorf("-n must be positive, got %d", n)
			}
			return a.race(cmd.OutOrStdout(), n)
		},
	}
	cmd.Flags().IntVarP(&n, "goroutines", "n", 64, "number of concurrent lookups")
	return cmd
}

func (a *app) race(w io.Writer, n int) error {
	var (
		ready = make(chan struct{})
		wg    sync.WaitGroup
		got   = make([]*Qux, n)
		errs  = make([]error, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-ready
			got[i], errs[i] = ioc.Get[*Qux](a.container)
		}(i)
	}
	close(ready)
	wg.Wait()

	instances := make(map[*Qux]struct{})
	for i := range got {
		if errs[i] != nil {
			return errs[i]
		}
		instances[got[i]] = struct{}{}
	}
	fmt.Fprintf(w, "%d lookups, %d instance(s), %d constructor call(s)\n",
		n, len(instances), a.scenario.quxBuilds.Load())
	return nil
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered services",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, reg := range a.container.Registrations() {
				fmt.Fprintln(cmd.OutOrStdout(), reg)
			}
		},
	}
}
