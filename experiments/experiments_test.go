package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/4eta/thunder-book/engine"
	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/searcher"
	"github.com/stretchr/testify/require"
)

var smallMaze = game.Config{Height: 5, Width: 5, EndTurn: 6}

func TestSummarize(t *testing.T) {
	s := summarize("run", []float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.Equal(t, 8, s.Games)
	require.InDelta(t, 5.0, s.Mean, 1e-9)
	require.InDelta(t, 2.138, s.StdDev, 1e-3)
	require.Equal(t, 2.0, s.Min)
	require.Equal(t, 9.0, s.Max)

	single := summarize("run", []float64{3})
	require.Zero(t, single.StdDev)
}

func TestConfigSeeds(t *testing.T) {
	require.Equal(t, []uint64{14, 15, 16}, Config{Games: 3, Seed: 14}.seeds())
	require.Len(t, Config{Games: 4, Entropy: true}.seeds(), 4)
}

func TestRunScoreExperiment(t *testing.T) {
	t.Run("matches games played by hand", func(t *testing.T) {
		cfg := Config{Name: "score", Games: 3, Seed: 5}
		summary, err := RunScoreExperiment(cfg, smallMaze, "greedy")
		require.NoError(t, err)
		require.Equal(t, 3, summary.Games)
		require.NotEmpty(t, summary.RunID)

		total := 0.0
		for i := uint64(0); i < 3; i++ {
			e := engine.NewLocalEngine(game.NewMazeState(smallMaze, game.SeededRand(5+i)), searcher.NewGreedy[*game.MazeState]())
			gameMetric, _ := e.Run()
			total += float64(gameMetric.Score)
		}
		require.InDelta(t, total/3, summary.Mean, 1e-9)
	})

	t.Run("writes csv files", func(t *testing.T) {
		out := t.TempDir()
		cfg := Config{Name: "score", Games: 2, Seed: 1, OutDir: out}
		summary, err := RunScoreExperiment(cfg, smallMaze, "beam:width=2,depth=2,metrics")
		require.NoError(t, err)

		dir := filepath.Join(out, "score", summary.RunID)
		for _, name := range []string{"games.csv", "moves.csv"} {
			info, err := os.Stat(filepath.Join(dir, name))
			require.NoError(t, err)
			require.Positive(t, info.Size())
		}
	})

	t.Run("reports bad configurations", func(t *testing.T) {
		_, err := RunScoreExperiment(Config{Name: "score", Games: 1}, smallMaze, "beam")
		require.Error(t, err)
		_, err = RunScoreExperiment(Config{Name: "score", Games: 0}, smallMaze, "greedy")
		require.Error(t, err)
		_, err = RunScoreExperiment(Config{Name: "score", Games: 1}, game.Config{Height: 0, Width: 3, EndTurn: 1}, "greedy")
		require.ErrorIs(t, err, game.ErrInvalidConfig)
	})
}

func TestRunPlanExperiment(t *testing.T) {
	cfg := Config{Name: "plan", Games: 2, Seed: 3}
	gameCfg := game.Config{Height: 6, Width: 6, EndTurn: 6, Characters: 2}

	summary, err := RunPlanExperiment(cfg, gameCfg, "hillclimb:iterations=20")
	require.NoError(t, err)
	require.Equal(t, 2, summary.Games)
	require.GreaterOrEqual(t, summary.Max, summary.Min)

	_, err = RunPlanExperiment(cfg, game.Config{Height: 6, Width: 6, EndTurn: 6}, "random")
	require.Error(t, err, "Plans need characters")
}

func TestRunWinRateExperiment(t *testing.T) {
	cfg := Config{Name: "duel", Games: 3, Seed: 0}

	t.Run("identical agents split evenly", func(t *testing.T) {
		summary, err := RunWinRateExperiment(cfg, game.DefaultDuelConfig(), [2]string{"minimax:depth=2", "minimax:depth=2"})
		require.NoError(t, err)
		require.Equal(t, 6, summary.Games)
		require.InDelta(t, 0.5, summary.WinRate, 1e-9, "Deterministic twins win each seat once")
		require.Equal(t, summary.Wins, summary.Losses)
	})

	t.Run("counts every game", func(t *testing.T) {
		summary, err := RunWinRateExperiment(cfg, game.DefaultDuelConfig(), [2]string{"minimax:depth=3", "random"})
		require.NoError(t, err)
		require.Equal(t, summary.Games, summary.Wins+summary.Draws+summary.Losses)
		require.GreaterOrEqual(t, summary.WinRate, 0.0)
		require.LessOrEqual(t, summary.WinRate, 1.0)
	})

	t.Run("reports bad agents", func(t *testing.T) {
		_, err := RunWinRateExperiment(cfg, game.DefaultDuelConfig(), [2]string{"minimax", "random"})
		require.Error(t, err)
	})
}
