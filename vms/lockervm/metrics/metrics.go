// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"errors"

	"github.com/luxfi/metric"

	"github.com/luxfi/locker/vms/lockervm/fee"
)

const (
	opLabel  = "op"
	feeLabel = "fee"
)

var (
	_ Metrics = (*metricsImpl)(nil)

	opLabels  = []string{opLabel}
	feeLabels = []string{feeLabel}
)

type Metrics interface {
	// MarkSucceeded records an operation that committed.
	MarkSucceeded(op string)
	// MarkFailed records an operation that was rejected and rolled back.
	MarkFailed(op string)
	// AddFee records the value charged by a fee.
	AddFee(c fee.Charge)
	AddLocked(amount uint64)
	AddReleased(amount uint64)
}

type metricsImpl struct {
	succeeded metric.CounterVec
	failed    metric.CounterVec
	fees      metric.CounterVec

	locked   metric.Counter
	released metric.Counter
}

func New(registerer metric.Registerer) (Metrics, error) {
	m := &metricsImpl{
		succeeded: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "ops_succeeded",
				Help: "number of locker operations committed",
			},
			opLabels,
		),
		failed: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "ops_failed",
				Help: "number of locker operations rejected",
			},
			opLabels,
		),
		fees: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "fees_charged",
				Help: "value charged as fees",
			},
			feeLabels,
		),
		locked: metric.NewCounter(metric.CounterOpts{
			Name: "value_locked",
			Help: "value moved into vaults",
		}),
		released: metric.NewCounter(metric.CounterOpts{
			Name: "value_released",
			Help: "value moved out of vaults",
		}),
	}

	err := errors.Join(
		registerer.Register(metric.AsCollector(m.succeeded)),
		registerer.Register(metric.AsCollector(m.failed)),
		registerer.Register(metric.AsCollector(m.fees)),
		registerer.Register(metric.AsCollector(m.locked)),
		registerer.Register(metric.AsCollector(m.released)),
	)
	return m, err
}

func (m *metricsImpl) MarkSucceeded(op string) {
	m.succeeded.With(metric.Labels{
		opLabel: op,
	}).Inc()
}

func (m *metricsImpl) MarkFailed(op string) {
	m.failed.With(metric.Labels{
		opLabel: op,
	}).Inc()
}

func (m *metricsImpl) AddFee(c fee.Charge) {
	if !c.Due() {
		return
	}
	m.fees.With(metric.Labels{
		feeLabel: c.Kind.String(),
	}).Add(float64(c.Amount))
}

func (m *metricsImpl) AddLocked(amount uint64) {
	m.locked.Add(float64(amount))
}

func (m *metricsImpl) AddReleased(amount uint64) {
	m.released.Add(float64(amount))
}
