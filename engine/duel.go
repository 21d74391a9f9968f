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

const (
	FirstPlayer  = "first"
	SecondPlayer = "second"
	NoWinner     = "draw"
)

// DuelEngine alternates two searchers on a two-player game. Agents[0] plays
// the first seat.
type DuelEngine struct {
	State   *game.AlternateMazeState
	Agents  [2]searcher.Searcher[*game.AlternateMazeState]
	History []game.Action
}

func NewDuelEngine(state *game.AlternateMazeState, first, second searcher.Searcher[*game.AlternateMazeState]) *DuelEngine {
	if first == nil || second == nil {
		panic("Must specify two searchers")
	}
	return &DuelEngine{State: state, Agents: [2]searcher.Searcher[*game.AlternateMazeState]{first, second}}
}

func (e *DuelEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Debug().Stringer("state", e.State).Msg("duel started")
	for !e.State.IsDone() {
		player := e.State.Mover()
		agent := e.Agents[player]
		action := agent.FindNextAction(e.State)
		if !slices.Contains(e.State.LegalActions(), action) {
			panic(fmt.Sprintf("player %d chose illegal action %s at turn %d", player, action, e.State.Turn()))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          e.State.Turn() + 1,
			Player:        player,
			Action:        action,
			SearchMetrics: agent.Metrics(),
		})

		e.State.Advance(action)
		e.History = append(e.History, action)
		log.Debug().Int("player", player).Stringer("action", action).Stringer("state", e.State).Msg("turn played")
	}

	endTime := time.Now()
	return metrics.GameMetric{
		Score:        e.State.FirstPlayerLead(),
		WinRatePoint: e.State.FirstPlayerScoreForWinRate(),
		Winner:       e.Winner(),
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     endTime.Sub(startTime),
		TotalMoves:   len(e.History),
	}, moveMetrics
}

// Winner names the winning seat, or is empty while the game is running.
func (e *DuelEngine) Winner() string {
	if !e.State.IsDone() {
		return ""
	}
	switch lead := e.State.FirstPlayerLead(); {
	case lead > 0:
		return FirstPlayer
	case lead < 0:
		return SecondPlayer
	default:
		return NoWinner
	}
}
