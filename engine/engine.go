package engine

import "github.com/4eta/thunder-book/experiments/metrics"

type Engine interface {
	// Run plays one game to the end and reports it with per-move search metrics
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
