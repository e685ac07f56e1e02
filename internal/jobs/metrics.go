package jobs

import (
	"sync"
	"time"
)

// MetricsData represents job metrics without the mutex (safe for copying)
type MetricsData struct {
	JobsCreated          int64         `json:"jobs_created"`
	JobsCompleted        int64         `json:"jobs_completed"`
	JobsFailed           int64         `json:"jobs_failed"`
	TotalExecutionTime   time.Duration `json:"total_execution_time_ns"`
	AverageExecutionTime time.Duration `json:"average_execution_time_ns"`
	LastUpdated          time.Time     `json:"last_updated"`
}

// Metrics tracks performance counters for background jobs
type Metrics struct {
	mu                   sync.RWMutex
	jobsCreated          int64
	jobsCompleted        int64
	jobsFailed           int64
	totalExecutionTime   time.Duration
	averageExecutionTime time.Duration
	lastUpdated          time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{lastUpdated: time.Now()}
}

// RecordJobCreated increments the job creation counter
func (m *Metrics) RecordJobCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobsCreated++
	m.lastUpdated = time.Now()
}

// RecordJobCompleted records a successful job completion
func (m *Metrics) RecordJobCompleted(executionTime time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobsCompleted++
	m.totalExecutionTime += executionTime
	m.averageExecutionTime = m.totalExecutionTime / time.Duration(m.jobsCompleted)
	m.lastUpdated = time.Now()
}

// RecordJobFailed records a job failure
func (m *Metrics) RecordJobFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobsFailed++
	m.lastUpdated = time.Now()
}

// Snapshot returns a copy of the current counters
func (m *Metrics) Snapshot() MetricsData {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MetricsData{
		JobsCreated:          m.jobsCreated,
		JobsCompleted:        m.jobsCompleted,
		JobsFailed:           m.jobsFailed,
		TotalExecutionTime:   m.totalExecutionTime,
		AverageExecutionTime: m.averageExecutionTime,
		LastUpdated:          m.lastUpdated,
	}
}
