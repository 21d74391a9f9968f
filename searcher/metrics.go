package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Expansions int64 // Nodes whose successors were generated
	Steps      int64 // Depth steps, rounds or local search iterations
	TimeOver   bool
}

type MetricsCollector interface {
	Start()
	AddExpansion()
	AddStep()
	SetTimeOver()
	Complete() SearchMetrics
}

// Searches are single threaded, so plain counters suffice.
type metricsCollector struct {
	startTime  time.Time
	expansions int64
	steps      int64
	timeOver   bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddExpansion() {
	m.expansions++
}

func (m *metricsCollector) AddStep() {
	m.steps++
}

func (m *metricsCollector) SetTimeOver() {
	m.timeOver = true
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Expansions: m.expansions,
		Steps:      m.steps,
		TimeOver:   m.timeOver,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddExpansion()           {}
func (m *noMetricsCollector) AddStep()                {}
func (m *noMetricsCollector) SetTimeOver()            {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
