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

// Package iocmetrics records Prometheus metrics from container events.
//
//	m, err := iocmetrics.New(prometheus.DefaultRegisterer, "ioc")
//	c := ioc.New(ioc.WithLogger(m))
package iocmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rfcommon/ioc/iocevent"
	"go.uber.org/multierr"
)

const (
	_resultSuccess = "success"
	_resultFailure = "failure"
)

// Metrics is an ioc event logger that counts registrations and lookups and
// times singleton builds.
type Metrics struct {
	registrations *prometheus.CounterVec
	resolutions   *prometheus.CounterVec
	builds        *prometheus.HistogramVec
}

var _ iocevent.Logger = (*Metrics)(nil)

// New builds the collectors and registers them with reg.
func New(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Constructor registrations by lifetime and result.",
		}, []string{"lifetime", "result"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Lookups by service type and result.",
		}, []string{"type", "result"}),
		builds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "singleton_build_seconds",
			Help:      "Time spent running singleton constructors.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"type", "result"}),
	}

	err := multierr.Combine(
		reg.Register(m.registrations),
		reg.Register(m.resolutions),
		reg.Register(m.builds),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LogEvent updates the metrics matching the event.
func (m *Metrics) LogEvent(event iocevent.Event) {
	switch e := event.(type) {
	case *iocevent.Registered:
		m.registrations.WithLabelValues(e.Lifetime, result(e.Err)).Inc()
	case *iocevent.Resolved:
		m.resolutions.WithLabelValues(e.TypeName, result(e.Err)).Inc()
	case *iocevent.SingletonBuilt:
		m.builds.WithLabelValues(e.TypeName, result(e.Err)).Observe(e.Runtime.Seconds())
	}
}

func result(err error) string {
	if err != nil {
		return _resultFailure
	}
	return _resultSuccess
}
