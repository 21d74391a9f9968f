package experiments

import (
	"fmt"

	"github.com/4eta/thunder-book/engine"
	"github.com/4eta/thunder-book/experiments/metrics"
	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/player"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Config describes one batch of games.
type Config struct {
	Name    string
	Games   int
	Seed    uint64 // Game i is played on seed Seed+i
	Entropy bool   // Draw seeds from the clock instead
	OutDir  string // Empty disables CSV output
}

func (c Config) validate() error {
	if c.Games <= 0 {
		return errors.Errorf("experiment %q needs a positive number of games, got %d", c.Name, c.Games)
	}
	return nil
}

func (c Config) seeds() []uint64 {
	seeds := make([]uint64, c.Games)
	entropy := game.EntropyRand()
	for i := range seeds {
		if c.Entropy {
			seeds[i] = entropy.Uint64()
		} else {
			seeds[i] = c.Seed + uint64(i)
		}
	}
	return seeds
}

// Summary aggregates the final scores of a batch.
type Summary struct {
	RunID  string
	Games  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func summarize(runID string, scores []float64) Summary {
	s := Summary{
		RunID: runID,
		Games: len(scores),
		Mean:  stat.Mean(scores, nil),
		Min:   floats.Min(scores),
		Max:   floats.Max(scores),
	}
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(scores, nil)
	}
	return s
}

// WinRateSummary is reported from the first agent's point of view over both seatings.
type WinRateSummary struct {
	RunID   string
	Games   int
	WinRate float64
	Wins    int
	Draws   int
	Losses  int
}

type engineFactory func(rng *rand.Rand) (engine.Engine, error)

// RunScoreExperiment plays single-agent games and averages the final scores.
func RunScoreExperiment(cfg Config, gameCfg game.Config, agent string) (Summary, error) {
	if err := gameCfg.Validate(); err != nil {
		return Summary{}, err
	}
	return runScored(cfg, agent, func(rng *rand.Rand) (engine.Engine, error) {
		state := game.NewMazeState(gameCfg, rng)
		s, err := player.NewMazeSearcher(agent, rng)
		if err != nil {
			return nil, err
		}
		return engine.NewLocalEngine(state, s), nil
	})
}

// RunPlanExperiment optimizes character placements and averages the resulting scores.
func RunPlanExperiment(cfg Config, gameCfg game.Config, optimizer string) (Summary, error) {
	if err := gameCfg.Validate(); err != nil {
		return Summary{}, err
	}
	if gameCfg.Characters <= 0 {
		return Summary{}, errors.Errorf("plan experiment needs at least one character, got %d", gameCfg.Characters)
	}
	return runScored(cfg, optimizer, func(rng *rand.Rand) (engine.Engine, error) {
		state := game.NewAutoMoveMazeState(gameCfg, rng)
		o, err := player.NewPlanOptimizer(optimizer, rng)
		if err != nil {
			return nil, err
		}
		return engine.NewPlanEngine(state, o), nil
	})
}

func runScored(cfg Config, agent string, newEngine engineFactory) (Summary, error) {
	if err := cfg.validate(); err != nil {
		return Summary{}, err
	}
	runID := uuid.NewString()
	scores := make([]float64, 0, cfg.Games)
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Str("run", runID).Msgf("starting %s experiment with agent %q...", cfg.Name, agent)

	for i, seed := range cfg.seeds() {
		e, err := newEngine(game.SeededRand(seed))
		if err != nil {
			return Summary{}, errors.WithMessagef(err, "failed to set up game %d", i+1)
		}

		log.Info().Str("run", runID).Msgf("starting game %d of %d with seed %d...", i+1, cfg.Games, seed)
		gameMetric, moveMetrics := e.Run()
		gameMetric.Seed = seed
		scores = append(scores, float64(gameMetric.Score))
		log.Info().Str("run", runID).Msgf("completed game %d of %d with score %d", i+1, cfg.Games, gameMetric.Score)

		gameRecords = append(gameRecords, metrics.GameRecord{RunID: runID, Game: i + 1, Agent: agent, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{RunID: runID, Game: i + 1, MoveMetric: mm})
		}
	}

	summary := summarize(runID, scores)
	log.Info().Str("run", runID).Msgf("completed %s experiment: mean=%.2f stddev=%.2f min=%.0f max=%.0f",
		cfg.Name, summary.Mean, summary.StdDev, summary.Min, summary.Max)

	return summary, store(cfg, runID, gameRecords, moveRecords)
}

// RunWinRateExperiment plays every seed twice, once from each seat, and
// returns the first agent's win rate. A draw counts as half a win.
func RunWinRateExperiment(cfg Config, gameCfg game.Config, agents [2]string) (WinRateSummary, error) {
	if err := cfg.validate(); err != nil {
		return WinRateSummary{}, err
	}
	if err := gameCfg.Validate(); err != nil {
		return WinRateSummary{}, err
	}
	runID := uuid.NewString()
	summary := WinRateSummary{RunID: runID}
	total := 0.0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Str("run", runID).Msgf("starting %s experiment: %q vs %q...", cfg.Name, agents[0], agents[1])

	for i, seed := range cfg.seeds() {
		for j := 0; j < 2; j++ {
			first, second := agents[j], agents[1-j]
			e, err := newDuel(gameCfg, seed, first, second)
			if err != nil {
				return WinRateSummary{}, errors.WithMessagef(err, "failed to set up game %d", i+1)
			}

			gameMetric, moveMetrics := e.Run()
			gameMetric.Seed = seed
			point := gameMetric.WinRatePoint
			if j == 1 {
				point = 1 - point
			}
			total += point
			summary.Games++
			switch point {
			case 1:
				summary.Wins++
			case 0:
				summary.Losses++
			default:
				summary.Draws++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				RunID:      runID,
				Game:       summary.Games,
				Agent:      first,
				Opponent:   second,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{RunID: runID, Game: summary.Games, MoveMetric: mm})
			}
		}
		log.Info().Str("run", runID).Msgf("seed %d of %d: win rate %.3f", i+1, cfg.Games, total/float64(summary.Games))
	}

	summary.WinRate = total / float64(summary.Games)
	log.Info().Str("run", runID).Msgf("completed %s experiment: win rate %.3f (%d wins, %d draws, %d losses)",
		cfg.Name, summary.WinRate, summary.Wins, summary.Draws, summary.Losses)

	return summary, store(cfg, runID, gameRecords, moveRecords)
}

// newDuel builds both searchers from the board's source so a seating is reproducible.
func newDuel(gameCfg game.Config, seed uint64, first, second string) (*engine.DuelEngine, error) {
	rng := game.SeededRand(seed)
	state := game.NewAlternateMazeState(gameCfg, rng)
	a, err := player.NewDuelSearcher(first, rng)
	if err != nil {
		return nil, err
	}
	b, err := player.NewDuelSearcher(second, rng)
	if err != nil {
		return nil, err
	}
	return engine.NewDuelEngine(state, a, b), nil
}

func store(cfg Config, runID string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	if cfg.OutDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name, runID)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
