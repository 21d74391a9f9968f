package searcher

import (
	"math"

	"github.com/4eta/thunder-book/game"
)

// MiniMax searches the full game tree to a fixed depth in negamax form. It
// requires EvaluateScore to be the mover's lead over its opponent. There is
// no pruning, so it only suits short games with few actions.
type MiniMax[S game.State[S]] struct {
	measured
	depth int
}

// NewMiniMax counts depth in plies, the root move included.
func NewMiniMax[S game.State[S]](options ...Option) *MiniMax[S] {
	s := newSettings(options)
	if s.depth <= 0 {
		panic("Must specify minimax depth")
	}
	return &MiniMax[S]{
		measured: measured{collector: s.metrics},
		depth:    s.depth,
	}
}

func (m *MiniMax[S]) FindNextAction(state S) game.Action {
	m.start()
	defer m.complete()

	bestAction := game.NoAction
	bestScore := game.Score(math.MinInt)
	for _, action := range state.LegalActions() {
		next := state.Clone()
		next.Advance(action)
		score := -miniMaxScore(next, m.depth-1, m.collector)
		if score > bestScore {
			bestScore = score
			bestAction = action
		}
	}
	m.collector.AddExpansion()
	if bestAction == game.NoAction {
		panic("no legal actions from root state")
	}
	return bestAction
}

// MiniMaxScore returns the best lead the mover of state can secure within
// depth plies against a perfect opponent.
func MiniMaxScore[S game.State[S]](state S, depth int) game.Score {
	return miniMaxScore(state, depth, NewNoMetricsCollector())
}

func miniMaxScore[S game.State[S]](state S, depth int, metrics MetricsCollector) game.Score {
	if state.IsDone() || depth <= 0 {
		return state.EvaluateScore()
	}
	actions := state.LegalActions()
	if len(actions) == 0 {
		return state.EvaluateScore()
	}
	metrics.AddExpansion()
	bestScore := game.Score(math.MinInt)
	for _, action := range actions {
		next := state.Clone()
		next.Advance(action)
		if score := -miniMaxScore(next, depth-1, metrics); score > bestScore {
			bestScore = score
		}
	}
	return bestScore
}
