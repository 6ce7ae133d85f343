package main

import (
	"sync"
	"time"
)

type metricsCollector struct {
	mu             sync.Mutex
	interval       time.Duration
	tickCount      int
	completions    int
	lastReportTime time.Time
}

func newMetricsCollector(interval time.Duration) *metricsCollector {
	return &metricsCollector{
		interval:       interval,
		lastReportTime: time.Now(),
	}
}

func (m *metricsCollector) RecordTicks(count int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.tickCount += count
	m.emitIfNeeded()
	m.mu.Unlock()
}

func (m *metricsCollector) RecordCompletions(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.mu.Lock()
	m.completions += count
	m.emitIfNeeded()
	m.mu.Unlock()
}

func (m *metricsCollector) emitIfNeeded() {
	now := time.Now()
	if now.Sub(m.lastReportTime) < m.interval {
		return
	}
	duration := now.Sub(m.lastReportTime).Seconds()
	throughput := float64(m.tickCount)
	if duration > 0 {
		throughput = throughput / duration
	}
	GetLogger().Infof("Throughput %.0f ticks/s, sorts completed %d", throughput, m.completions)
	m.tickCount = 0
	m.completions = 0
	m.lastReportTime = now
}

var metrics = newMetricsCollector(5 * time.Second)
