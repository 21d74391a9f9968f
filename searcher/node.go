package searcher

import (
	"github.com/4eta/thunder-book/game"
)

// node is a frontier entry. The state is owned by the node; score is the
// state's evaluation at insertion time and firstAction is the root action
// this line of play started with.
type node[S game.State[S]] struct {
	state       S
	score       game.Score
	firstAction game.Action
	seq         int
}

func newRoot[S game.State[S]](state S) *node[S] {
	return &node[S]{
		state:       state.Clone(),
		score:       state.EvaluateScore(),
		firstAction: game.NoAction,
	}
}

// expand pushes every successor of parent. Children of the root take their own
// action as firstAction, deeper nodes inherit it. Terminal nodes have no successors.
func expand[S game.State[S]](parent *node[S], metrics MetricsCollector, push func(*node[S])) {
	if parent.state.IsDone() {
		return
	}
	for _, action := range parent.state.LegalActions() {
		next := parent.state.Clone()
		next.Advance(action)
		child := &node[S]{
			state:       next,
			score:       next.EvaluateScore(),
			firstAction: parent.firstAction,
		}
		if parent.firstAction == game.NoAction {
			child.firstAction = action
		}
		push(child)
	}
	metrics.AddExpansion()
}
