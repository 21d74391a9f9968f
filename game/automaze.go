package game

import (
	"fmt"

	"github.com/4eta/thunder-book/meta"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// AutoMoveMazeState is the multi-agent game. Players only choose where the
// characters start; afterwards every character greedily steps to its best
// neighbouring cell each turn.
type AutoMoveMazeState struct {
	cfg        Config
	points     []int
	turn       int
	characters []Coord
	gameScore  Score
}

// NewAutoMoveMazeState fills the board. All characters start at the origin
// until Init or SetCharacter places them.
func NewAutoMoveMazeState(cfg Config, rng *rand.Rand) *AutoMoveMazeState {
	mustValidate(cfg)
	if cfg.Characters <= 0 {
		panic("auto move maze needs at least one character")
	}
	return &AutoMoveMazeState{
		cfg:        cfg,
		points:     randomPoints(cfg, rng, meta.MAX_POINT),
		characters: make([]Coord, cfg.Characters),
	}
}

func (s *AutoMoveMazeState) SetCharacter(id int, c Coord) {
	if id < 0 || id >= len(s.characters) {
		panic(fmt.Sprintf("character id %d out of range [0, %d)", id, len(s.characters)))
	}
	if !s.cfg.Contains(c) {
		panic(fmt.Sprintf("character position %+v out of the board", c))
	}
	s.characters[id] = c
}

// Init places every character at random.
func (s *AutoMoveMazeState) Init(rng *rand.Rand) {
	for id := range s.characters {
		s.SetCharacter(id, randomCoord(s.cfg, rng))
	}
}

// Transition moves one random character to a random cell.
func (s *AutoMoveMazeState) Transition(rng *rand.Rand) {
	id := rng.Intn(len(s.characters))
	s.SetCharacter(id, randomCoord(s.cfg, rng))
}

// Score plays the placement to the end on a copy and returns the final score.
// Start cells are worth nothing.
func (s *AutoMoveMazeState) Score() Score {
	tmp := s.Clone()
	for _, c := range tmp.characters {
		tmp.points[tmp.cfg.index(c)] = 0
	}
	for !tmp.IsDone() {
		tmp.Advance()
	}
	return tmp.gameScore
}

func (s *AutoMoveMazeState) IsDone() bool {
	if s.turn > s.cfg.EndTurn {
		panic(fmt.Sprintf("turn %d exceeds end turn %d", s.turn, s.cfg.EndTurn))
	}
	return s.turn == s.cfg.EndTurn
}

// Advance moves every character, then collects for all of them in id order.
// Characters sharing a cell collect it once.
func (s *AutoMoveMazeState) Advance() {
	if s.IsDone() {
		panic("cannot advance a finished game")
	}
	for id := range s.characters {
		s.movePlayer(id)
	}
	for _, c := range s.characters {
		idx := s.cfg.index(c)
		s.gameScore += Score(s.points[idx])
		s.points[idx] = 0
	}
	s.turn++
}

func (s *AutoMoveMazeState) movePlayer(id int) {
	from := s.characters[id]
	bestPoint := -1
	bestAction := NoAction
	for _, action := range legalActionsFrom(s.cfg, from) {
		point := s.points[s.cfg.index(from.Move(action))]
		if point > bestPoint {
			bestPoint = point
			bestAction = action
		}
	}
	if bestAction == NoAction { // 1x1 board
		return
	}
	s.characters[id] = from.Move(bestAction)
}

func (s *AutoMoveMazeState) Clone() *AutoMoveMazeState {
	clone := *s
	clone.points = slices.Clone(s.points)
	clone.characters = slices.Clone(s.characters)
	return &clone
}

func (s *AutoMoveMazeState) Config() Config {
	return s.cfg
}

func (s *AutoMoveMazeState) Turn() int {
	return s.turn
}

func (s *AutoMoveMazeState) GameScore() Score {
	return s.gameScore
}

func (s *AutoMoveMazeState) Characters() []Coord {
	return slices.Clone(s.characters)
}

func (s *AutoMoveMazeState) Point(c Coord) int {
	return s.points[s.cfg.index(c)]
}
