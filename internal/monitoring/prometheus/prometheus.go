// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	decisions    *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return errors.New("metric not instantiated")
	}

	h, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	h.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return errors.New("metric not instantiated")
	}

	g, err := m.dependencies.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

// IncrementDecisionCounter counts assignability decisions, labelled by
// operation and outcome.
func (m *Monitor) IncrementDecisionCounter(tags map[string]string) error {
	if m.decisions == nil {
		return errors.New("metric not instantiated")
	}

	c, err := m.decisions.GetMetricWith(tags)
	if err != nil {
		return err
	}

	c.Inc()

	return nil
}

func (m *Monitor) register(c prometheus.Collector) prometheus.Collector {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	are := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &are) {
		return are.ExistingCollector
	}

	m.logger.Errorf("failed to register collector: %v", err)

	return c
}

func (m *Monitor) registerMetrics() {
	labels := prometheus.Labels{"service": m.service}

	m.responseTime = m.register(
		prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_response_time_seconds",
				Help:        "http_response_time_seconds",
				ConstLabels: labels,
			},
			[]string{"route", "status"},
		),
	).(*prometheus.HistogramVec)

	m.dependencies = m.register(
		prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "dependency_available",
				Help:        "dependency_available",
				ConstLabels: labels,
			},
			[]string{"component"},
		),
	).(*prometheus.GaugeVec)

	m.decisions = m.register(
		prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "rbac_decisions_total",
				Help:        "assignability decisions by operation and outcome",
				ConstLabels: labels,
			},
			[]string{"operation", "outcome"},
		),
	).(*prometheus.CounterVec)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
