package searcher

import (
	"github.com/4eta/thunder-book/game"
	"golang.org/x/exp/rand"
)

// Greedy looks one ply ahead and takes the action with the strictly best
// evaluation. Ties keep the earlier action.
type Greedy[S game.State[S]] struct {
	measured
}

func NewGreedy[S game.State[S]](options ...Option) *Greedy[S] {
	s := newSettings(options)
	return &Greedy[S]{measured: measured{collector: s.metrics}}
}

func (g *Greedy[S]) FindNextAction(state S) game.Action {
	g.start()
	defer g.complete()

	var maxScore game.Score
	bestAction := game.NoAction
	for _, action := range state.LegalActions() {
		next := state.Clone()
		next.Advance(action)
		if score := next.EvaluateScore(); score > maxScore {
			maxScore = score
			bestAction = action
		}
	}
	g.collector.AddExpansion()
	if bestAction != game.NoAction {
		return bestAction
	}
	// Nothing beats a zero baseline
	actions := state.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions from root state")
	}
	return actions[0]
}

// Random picks a uniformly random legal action.
type Random[S game.State[S]] struct {
	measured
	rng *rand.Rand
}

func NewRandom[S game.State[S]](options ...Option) *Random[S] {
	s := newSettings(options)
	return &Random[S]{measured: measured{collector: s.metrics}, rng: s.rng}
}

func (r *Random[S]) FindNextAction(state S) game.Action {
	r.start()
	defer r.complete()

	actions := state.LegalActions()
	if len(actions) == 0 {
		panic("no legal actions from root state")
	}
	return actions[r.rng.Intn(len(actions))]
}
