package searcher

import (
	"testing"

	"github.com/4eta/thunder-book/game"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// bestFirstPlayerLead enumerates the game tree explicitly: the first player
// maximises its lead and the second player minimises it.
func bestFirstPlayerLead(state *game.AlternateMazeState) game.Score {
	if state.IsDone() {
		return state.FirstPlayerLead()
	}
	var leads []game.Score
	for _, action := range state.LegalActions() {
		next := state.Clone()
		next.Advance(action)
		leads = append(leads, bestFirstPlayerLead(next))
	}
	if state.IsFirst() {
		return slices.Max(leads)
	}
	return slices.Min(leads)
}

func TestNewMiniMax(t *testing.T) {
	require.Panics(t, func() { NewMiniMax[*game.AlternateMazeState]() })
	require.NotPanics(t, func() { NewMiniMax[*game.AlternateMazeState](WithDepth(1)) })
}

func TestMiniMaxScore(t *testing.T) {
	cfg := game.DefaultDuelConfig()

	t.Run("depth zero is the evaluation", func(t *testing.T) {
		for seed := uint64(0); seed < 10; seed++ {
			state := game.NewAlternateMazeState(cfg, game.SeededRand(seed))
			state.Advance(state.LegalActions()[0])
			require.Equal(t, state.EvaluateScore(), MiniMaxScore(state, 0))

			swapped := state.Clone()
			swapped.SwapRoles()
			require.Equal(t, -MiniMaxScore(state, 0), MiniMaxScore(swapped, 0))
		}
	})

	t.Run("finished games are the evaluation", func(t *testing.T) {
		state := game.NewAlternateMazeState(cfg, game.SeededRand(3))
		for !state.IsDone() {
			state.Advance(state.LegalActions()[0])
		}
		require.Equal(t, state.EvaluateScore(), MiniMaxScore(state, 3))

		swapped := state.Clone()
		swapped.SwapRoles()
		require.Equal(t, -MiniMaxScore(state, 3), MiniMaxScore(swapped, 3), "Roles are symmetric in a zero-sum game")
	})

	t.Run("full depth matches explicit enumeration", func(t *testing.T) {
		for seed := uint64(0); seed < 10; seed++ {
			state := game.NewAlternateMazeState(cfg, game.SeededRand(seed))
			require.Equal(t, bestFirstPlayerLead(state), MiniMaxScore(state, cfg.EndTurn), "seed %d", seed)

			state.Advance(state.LegalActions()[0])
			require.Equal(t, -bestFirstPlayerLead(state), MiniMaxScore(state, cfg.EndTurn), "seed %d", seed)
		}
	})
}

func TestMiniMax(t *testing.T) {
	cfg := game.DefaultDuelConfig()

	t.Run("full depth plays an optimal first move", func(t *testing.T) {
		minimax := NewMiniMax[*game.AlternateMazeState](WithDepth(cfg.EndTurn))
		for seed := uint64(0); seed < 10; seed++ {
			state := game.NewAlternateMazeState(cfg, game.SeededRand(seed))
			action := minimax.FindNextAction(state)
			require.True(t, slices.Contains(state.LegalActions(), action))

			next := state.Clone()
			next.Advance(action)
			require.Equal(t, bestFirstPlayerLead(state), bestFirstPlayerLead(next), "seed %d", seed)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		minimax := NewMiniMax[*game.AlternateMazeState](WithDepth(3))
		state := game.NewAlternateMazeState(cfg, game.SeededRand(11))
		require.Equal(t, minimax.FindNextAction(state), minimax.FindNextAction(state.Clone()))
	})

	t.Run("plays both seats to the end", func(t *testing.T) {
		minimax := NewMiniMax[*game.AlternateMazeState](WithDepth(2), WithMetrics())
		state := game.NewAlternateMazeState(cfg, game.SeededRand(12))
		for !state.IsDone() {
			action := minimax.FindNextAction(state)
			require.True(t, slices.Contains(state.LegalActions(), action))
			require.Positive(t, minimax.Metrics().Expansions)
			state.Advance(action)
		}
		require.NotEqual(t, game.Continue, state.WinningStatus())
	})
}
