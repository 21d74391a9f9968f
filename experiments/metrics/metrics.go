package metrics

import (
	"time"

	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/searcher"
)

type MoveMetric struct {
	Step   int
	Player int // Seat index, always 0 in single-agent games
	Action game.Action
	searcher.SearchMetrics
}

type GameMetric struct {
	Seed         uint64
	Score        game.Score // Final score, or the first player's lead in a duel
	WinRatePoint float64    // First player's 1, 0.5 or 0, duels only
	Winner       string
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type GameRecord struct {
	RunID    string
	Game     int
	Agent    string // Strategy config of the first seat
	Opponent string // Strategy config of the second seat, duels only
	GameMetric
}

type MoveRecord struct {
	RunID string
	Game  int // GameRecord.Game
	MoveMetric
}
