package searcher

import (
	"time"

	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/meta"
	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	width      int
	depth      int
	rounds     int
	timed      bool
	duration   time.Duration
	iterations int
	startTemp  float64
	endTemp    float64
	rng        *rand.Rand
	metrics    MetricsCollector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		width:      1,
		iterations: meta.PLAN_ITERATIONS,
		startTemp:  meta.ANNEAL_START_TEMP,
		endTemp:    meta.ANNEAL_END_TEMP,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = game.EntropyRand()
	}
	return s
}

func WithWidth(width int) Option {
	return func(s *settings) {
		if width > 0 {
			s.width = width
		}
	}
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithRounds(rounds int) Option {
	return func(s *settings) {
		if rounds > 0 {
			s.rounds = rounds
		}
	}
}

// WithDuration bounds a search by wall-clock time. A zero duration is valid:
// the search runs a single step and returns.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		s.timed = true
		s.duration = max(duration, 0)
	}
}

func WithIterations(iterations int) Option {
	return func(s *settings) {
		if iterations >= 0 {
			s.iterations = iterations
		}
	}
}

func WithTemperature(start, end float64) Option {
	return func(s *settings) {
		s.startTemp = start
		s.endTemp = end
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = NewMetricsCollector()
	}
}
