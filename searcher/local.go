package searcher

import (
	"math"

	"github.com/4eta/thunder-book/game"
	"golang.org/x/exp/rand"
)

// RandomPlan returns a random placement. It is the baseline for local search.
type RandomPlan[S game.Plan[S]] struct {
	measured
	rng *rand.Rand
}

func NewRandomPlan[S game.Plan[S]](options ...Option) *RandomPlan[S] {
	s := newSettings(options)
	return &RandomPlan[S]{measured: measured{collector: s.metrics}, rng: s.rng}
}

func (r *RandomPlan[S]) Optimize(state S) S {
	r.start()
	defer r.complete()

	plan := state.Clone()
	plan.Init(r.rng)
	return plan
}

// HillClimb starts from a random plan and keeps a transition only if it
// strictly improves the score.
type HillClimb[S game.Plan[S]] struct {
	measured
	iterations int
	rng        *rand.Rand
}

func NewHillClimb[S game.Plan[S]](options ...Option) *HillClimb[S] {
	s := newSettings(options)
	return &HillClimb[S]{
		measured:   measured{collector: s.metrics},
		iterations: s.iterations,
		rng:        s.rng,
	}
}

func (h *HillClimb[S]) Optimize(state S) S {
	h.start()
	defer h.complete()

	now := state.Clone()
	now.Init(h.rng)
	bestScore := now.Score()
	for i := 0; i < h.iterations; i++ {
		next := now.Clone()
		next.Transition(h.rng)
		if nextScore := next.Score(); nextScore > bestScore {
			now = next
			bestScore = nextScore
		}
		h.collector.AddStep()
	}
	return now
}

// SimulatedAnnealing also accepts worse plans, with probability
// exp(delta/temperature) where delta is measured against the best score so far
// and the temperature falls linearly from start to end.
type SimulatedAnnealing[S game.Plan[S]] struct {
	measured
	iterations int
	startTemp  float64
	endTemp    float64
	rng        *rand.Rand
}

func NewSimulatedAnnealing[S game.Plan[S]](options ...Option) *SimulatedAnnealing[S] {
	s := newSettings(options)
	return &SimulatedAnnealing[S]{
		measured:   measured{collector: s.metrics},
		iterations: s.iterations,
		startTemp:  s.startTemp,
		endTemp:    s.endTemp,
		rng:        s.rng,
	}
}

func (a *SimulatedAnnealing[S]) Optimize(state S) S {
	a.start()
	defer a.complete()

	now := state.Clone()
	now.Init(a.rng)
	nowScore := now.Score()
	bestScore := nowScore
	best := now.Clone()

	for i := 0; i < a.iterations; i++ {
		next := now.Clone()
		next.Transition(a.rng)
		nextScore := next.Score()
		if diff := nextScore - bestScore; diff > 0 || a.accept(diff, i) {
			now = next
			nowScore = nextScore
		}
		if nowScore > bestScore {
			bestScore = nowScore
			best = now.Clone()
		}
		a.collector.AddStep()
	}
	return best
}

func (a *SimulatedAnnealing[S]) temperature(i int) float64 {
	return a.startTemp + (a.endTemp-a.startTemp)*float64(i)/float64(a.iterations)
}

// accept draws against exp(diff/temperature). A temperature of 0 rejects.
func (a *SimulatedAnnealing[S]) accept(diff game.Score, i int) bool {
	temp := a.temperature(i)
	if temp <= 0 {
		return false
	}
	return a.rng.Float64() < math.Exp(float64(diff)/temp)
}
