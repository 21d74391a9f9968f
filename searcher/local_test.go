package searcher

import (
	"testing"

	"github.com/4eta/thunder-book/game"
	"github.com/stretchr/testify/require"
)

func newTestPlan(seed uint64) *game.AutoMoveMazeState {
	return game.NewAutoMoveMazeState(game.DefaultAutoMazeConfig(), game.SeededRand(seed))
}

func TestRandomPlan(t *testing.T) {
	state := newTestPlan(1)
	plan := NewRandomPlan[*game.AutoMoveMazeState](WithRand(game.SeededRand(2))).Optimize(state)

	for _, c := range plan.Characters() {
		require.True(t, state.Config().Contains(c))
	}
	require.Equal(t, make([]game.Coord, state.Config().Characters), state.Characters(), "Input plan should be left untouched")
}

func TestHillClimb(t *testing.T) {
	t.Run("never ends below its starting plan", func(t *testing.T) {
		for seed := uint64(0); seed < 5; seed++ {
			state := newTestPlan(seed)
			start := NewRandomPlan[*game.AutoMoveMazeState](WithRand(game.SeededRand(seed + 100))).Optimize(state)
			climbed := NewHillClimb[*game.AutoMoveMazeState](
				WithRand(game.SeededRand(seed+100)), WithIterations(200),
			).Optimize(state)

			require.GreaterOrEqual(t, climbed.Score(), start.Score(), "seed %d", seed)
		}
	})

	t.Run("zero iterations returns the random start", func(t *testing.T) {
		state := newTestPlan(3)
		start := NewRandomPlan[*game.AutoMoveMazeState](WithRand(game.SeededRand(9))).Optimize(state)
		climbed := NewHillClimb[*game.AutoMoveMazeState](WithRand(game.SeededRand(9)), WithIterations(0)).Optimize(state)
		require.Equal(t, start.Characters(), climbed.Characters())
	})

	t.Run("same seed finds the same plan", func(t *testing.T) {
		state := newTestPlan(4)
		a := NewHillClimb[*game.AutoMoveMazeState](WithRand(game.SeededRand(5)), WithIterations(100)).Optimize(state)
		b := NewHillClimb[*game.AutoMoveMazeState](WithRand(game.SeededRand(5)), WithIterations(100)).Optimize(state)
		require.Equal(t, a.Characters(), b.Characters())
	})

	t.Run("counts iterations", func(t *testing.T) {
		climb := NewHillClimb[*game.AutoMoveMazeState](WithRand(game.SeededRand(5)), WithIterations(50), WithMetrics())
		climb.Optimize(newTestPlan(4))
		require.Equal(t, int64(50), climb.Metrics().Steps)
	})
}

func TestSimulatedAnnealing(t *testing.T) {
	t.Run("returns the best plan it saw", func(t *testing.T) {
		for seed := uint64(0); seed < 5; seed++ {
			state := newTestPlan(seed)
			start := NewRandomPlan[*game.AutoMoveMazeState](WithRand(game.SeededRand(seed + 100))).Optimize(state)
			annealed := NewSimulatedAnnealing[*game.AutoMoveMazeState](
				WithRand(game.SeededRand(seed+100)), WithIterations(200), WithTemperature(50, 0),
			).Optimize(state)

			require.GreaterOrEqual(t, annealed.Score(), start.Score(), "seed %d", seed)
		}
	})

	t.Run("frozen annealing is hill climbing", func(t *testing.T) {
		state := newTestPlan(6)
		climbed := NewHillClimb[*game.AutoMoveMazeState](WithRand(game.SeededRand(8)), WithIterations(150)).Optimize(state)
		annealed := NewSimulatedAnnealing[*game.AutoMoveMazeState](
			WithRand(game.SeededRand(8)), WithIterations(150), WithTemperature(0, 0),
		).Optimize(state)

		require.Equal(t, climbed.Characters(), annealed.Characters())
		require.Equal(t, climbed.Score(), annealed.Score())
	})

	t.Run("temperature falls linearly", func(t *testing.T) {
		anneal := NewSimulatedAnnealing[*game.AutoMoveMazeState](WithIterations(100), WithTemperature(100, 0))
		require.InDelta(t, 100.0, anneal.temperature(0), 1e-9)
		require.InDelta(t, 50.0, anneal.temperature(50), 1e-9)
		require.InDelta(t, 1.0, anneal.temperature(99), 1e-9)
	})
}
