package engine

import (
	"time"

	"github.com/4eta/thunder-book/experiments/metrics"
	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/searcher"
	"github.com/rs/zerolog/log"
)

// PlanEngine places the characters of an auto-move game with one optimizer
// and lets the game play itself out.
type PlanEngine struct {
	State     *game.AutoMoveMazeState
	Optimizer searcher.Optimizer[*game.AutoMoveMazeState]
	Plan      *game.AutoMoveMazeState
}

func NewPlanEngine(state *game.AutoMoveMazeState, o searcher.Optimizer[*game.AutoMoveMazeState]) *PlanEngine {
	if o == nil {
		panic("Must specify an optimizer")
	}
	return &PlanEngine{State: state, Optimizer: o}
}

func (e *PlanEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()

	e.Plan = e.Optimizer.Optimize(e.State)
	moveMetrics := []metrics.MoveMetric{{
		Step:          1,
		Action:        game.NoAction,
		SearchMetrics: e.Optimizer.Metrics(),
	}}
	score := e.Plan.Score()
	log.Debug().Stringer("plan", e.Plan).Int("score", int(score)).Msg("plan optimized")

	endTime := time.Now()
	return metrics.GameMetric{
		Score:      score,
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
		TotalMoves: e.State.Config().EndTurn,
	}, moveMetrics
}
