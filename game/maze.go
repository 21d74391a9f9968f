package game

import (
	"fmt"

	"github.com/4eta/thunder-book/meta"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// MazeState is the single-agent game: one character walks the board for
// EndTurn turns and collects the points of the cells it steps on.
type MazeState struct {
	cfg       Config
	points    []int // Row-major, collected cells are 0
	turn      int
	character Coord
	gameScore Score
}

// NewMazeState places the character and fills every other cell with a random point.
func NewMazeState(cfg Config, rng *rand.Rand) *MazeState {
	mustValidate(cfg)
	character := randomCoord(cfg, rng)
	points := randomPoints(cfg, rng, meta.MAX_POINT)
	points[cfg.index(character)] = 0
	return &MazeState{
		cfg:       cfg,
		points:    points,
		character: character,
	}
}

// IsDone panics if the turn limit was exceeded, which only a broken caller can cause.
func (s *MazeState) IsDone() bool {
	if s.turn > s.cfg.EndTurn {
		panic(fmt.Sprintf("turn %d exceeds end turn %d", s.turn, s.cfg.EndTurn))
	}
	return s.turn == s.cfg.EndTurn
}

func (s *MazeState) Advance(action Action) {
	if s.IsDone() {
		panic("cannot advance a finished game")
	}
	next := s.character.Move(action)
	if !s.cfg.Contains(next) {
		panic(fmt.Sprintf("action %s moves character out of the board to %+v", action, next))
	}
	s.character = next
	idx := s.cfg.index(next)
	if point := s.points[idx]; point > 0 {
		s.gameScore += Score(point)
		s.points[idx] = 0
	}
	s.turn++
}

func (s *MazeState) LegalActions() []Action {
	return legalActionsFrom(s.cfg, s.character)
}

func (s *MazeState) EvaluateScore() Score {
	return s.gameScore
}

func (s *MazeState) Clone() *MazeState {
	clone := *s
	clone.points = slices.Clone(s.points)
	return &clone
}

func (s *MazeState) Config() Config {
	return s.cfg
}

func (s *MazeState) Turn() int {
	return s.turn
}

func (s *MazeState) Character() Coord {
	return s.character
}

func (s *MazeState) GameScore() Score {
	return s.gameScore
}

// Point returns the uncollected point at c.
func (s *MazeState) Point(c Coord) int {
	return s.points[s.cfg.index(c)]
}

func legalActionsFrom(cfg Config, from Coord) []Action {
	actions := make([]Action, 0, 4)
	for _, action := range Actions() {
		if cfg.Contains(from.Move(action)) {
			actions = append(actions, action)
		}
	}
	return actions
}
