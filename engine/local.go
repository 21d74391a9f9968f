package engine

import (
	"fmt"
	"time"

	"github.com/4eta/thunder-book/experiments/metrics"
	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/searcher"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// LocalEngine plays a single-agent maze game with one searcher.
type LocalEngine struct {
	State    *game.MazeState
	Searcher searcher.Searcher[*game.MazeState]
	History  []game.Action
}

func NewLocalEngine(state *game.MazeState, s searcher.Searcher[*game.MazeState]) *LocalEngine {
	if s == nil {
		panic("Must specify a searcher")
	}
	return &LocalEngine{State: state, Searcher: s}
}

// Run executes the game loop until the turn limit.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Debug().Stringer("state", e.State).Msg("game started")
	for !e.State.IsDone() {
		action := e.Searcher.FindNextAction(e.State)
		if !slices.Contains(e.State.LegalActions(), action) {
			panic(fmt.Sprintf("searcher chose illegal action %s at turn %d", action, e.State.Turn()))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          e.State.Turn() + 1,
			Action:        action,
			SearchMetrics: e.Searcher.Metrics(),
		})

		e.State.Advance(action)
		e.History = append(e.History, action)
		log.Debug().Stringer("action", action).Stringer("state", e.State).Msg("turn played")
	}

	endTime := time.Now()
	return metrics.GameMetric{
		Score:      e.State.GameScore(),
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
		TotalMoves: len(e.History),
	}, moveMetrics
}
