package game

import "golang.org/x/exp/rand"

// Score is a cumulative reward, or a reward differential for two-player states.
type Score int

// State is the expansion contract consumed by the per-step searchers.
// Advance mutates the receiver, so searchers branch by cloning first.
type State[S any] interface {
	IsDone() bool
	LegalActions() []Action
	Advance(action Action)
	// EvaluateScore is the ordering key of a state inside a search frontier,
	// from the point of view of the player about to move.
	EvaluateScore() Score
	Clone() S
}

// Plan is the contract of a state whose whole future is fixed by an initial
// assignment, optimised by local search instead of per-step decisions.
type Plan[S any] interface {
	Init(rng *rand.Rand)
	Transition(rng *rand.Rand)
	Score() Score
	Clone() S
}
