package llm

import (
	"sync/atomic"
	"time"
)

// Metrics tracks provider call counts and latency.
type Metrics struct {
	calls   atomic.Int64
	errors  atomic.Int64
	latency atomic.Int64 // total nanoseconds
}

// Snapshot is a point-in-time copy of Metrics.
type Snapshot struct {
	Calls  int64 `json:"calls"`
	Errors int64 `json:"errors"`
	// AvgLatencyMs is the mean call latency in milliseconds
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	// ErrorRate is the share of failed calls as a percentage
	ErrorRate float64 `json:"error_rate"`
}

// Record adds one provider call.
func (m *Metrics) Record(duration time.Duration, err error) {
	m.calls.Add(1)
	m.latency.Add(duration.Nanoseconds())
	if err != nil {
		m.errors.Add(1)
	}
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		Calls:  m.calls.Load(),
		Errors: m.errors.Load(),
	}
	if s.Calls > 0 {
		s.AvgLatencyMs = float64(m.latency.Load()) / float64(s.Calls) / 1e6
		s.ErrorRate = float64(s.Errors) / float64(s.Calls) * 100
	}
	return s
}
