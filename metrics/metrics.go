/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics exports the contents of an enum registry as Prometheus metrics.
package metrics

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/enum/apis"
)

const namespace = "enum"

var states = [...]apis.State{apis.Uninitialized, apis.Initializing, apis.Ready, apis.Failed}

// Collector is a prometheus.Collector reporting, per enum type, the number of
// constants created so far and the initialization state.
//
// Values are read from the registry on every scrape; the collector keeps no
// state of its own.
type Collector struct {
	reg       apis.Registry
	name      func(reflect.Type) string
	constants *prometheus.Desc
	state     *prometheus.Desc
	types     *prometheus.Desc
}

// Option configures a Collector.
type Option func(*Collector)

// WithTypeNamer sets the function used for the "type" label.
// The default is the explicitly registered name, or the type string.
func WithTypeNamer(fn func(reflect.Type) string) Option {
	return func(c *Collector) {
		if fn != nil {
			c.name = fn
		}
	}
}

// NewCollector returns a collector over reg.
func NewCollector(reg apis.Registry, opts ...Option) *Collector {
	c := &Collector{
		reg: reg,
		constants: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "constants"),
			"Number of constants created for the enum type.",
			[]string{"type"}, nil,
		),
		state: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "type", "state"),
			"Initialization state of the enum type; 1 for the current state.",
			[]string{"type", "state"}, nil,
		),
		types: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "types"),
			"Number of enum types known to the registry.",
			nil, nil,
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.constants
	ch <- c.state
	ch <- c.types
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	entries := c.reg.Entries()
	ch <- prometheus.MustNewConstMetric(c.types, prometheus.GaugeValue, float64(len(entries)))
	for _, e := range entries {
		label := c.label(e)
		ch <- prometheus.MustNewConstMetric(c.constants, prometheus.GaugeValue, float64(e.Len), label)
		for _, s := range states {
			v := 0.0
			if e.State == s {
				v = 1
			}
			ch <- prometheus.MustNewConstMetric(c.state, prometheus.GaugeValue, v, label, s.String())
		}
	}
}

func (c *Collector) label(e apis.Entry) string {
	if c.name != nil {
		return c.name(e.Type)
	}
	if e.Name != "" {
		return e.Name
	}
	return e.Type.String()
}
