package searcher

import (
	"github.com/4eta/thunder-book/game"

	"github.com/rs/zerolog/log"
)

// Searcher picks the action to execute from a state.
type Searcher[S game.State[S]] interface {
	FindNextAction(state S) game.Action
	// Metrics describes the last FindNextAction call.
	Metrics() SearchMetrics
}

// Optimizer improves a whole plan and returns the best plan it observed.
type Optimizer[S game.Plan[S]] interface {
	Optimize(state S) S
	Metrics() SearchMetrics
}

// measured is embedded by every strategy to share metrics bookkeeping.
type measured struct {
	collector MetricsCollector
	last      SearchMetrics
}

func (m *measured) start() {
	m.collector.Start()
}

func (m *measured) complete() {
	m.last = m.collector.Complete()
}

func (m *measured) Metrics() SearchMetrics {
	return m.last
}

// decide returns the root action that leads to best. A search that never left
// the root falls back to the first legal action.
func decide[S game.State[S]](root S, best *node[S]) game.Action {
	if best != nil && best.firstAction != game.NoAction {
		return best.firstAction
	}
	actions := root.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions from root state")
	}
	log.Warn().Msgf("search did not expand the root, falling back to %s", actions[0])
	return actions[0]
}
