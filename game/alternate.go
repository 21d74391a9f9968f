package game

import (
	"fmt"

	"github.com/4eta/thunder-book/meta"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type WinningStatus int

const (
	Continue WinningStatus = iota
	Win
	Lose
	Draw
)

func (w WinningStatus) String() string {
	switch w {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return "continue"
	}
}

// Character is one side of a two-player game.
type Character struct {
	Coord     Coord
	GameScore Score
}

// AlternateMazeState is the two-player zero-sum game. Players move in turn;
// slot 0 is always the first player and mover is the slot about to move.
type AlternateMazeState struct {
	cfg        Config
	points     []int
	turn       int
	characters [2]Character
	mover      int
}

// NewAlternateMazeState starts the players at the middle row of opposite edges.
func NewAlternateMazeState(cfg Config, rng *rand.Rand) *AlternateMazeState {
	mustValidate(cfg)
	s := &AlternateMazeState{
		cfg:    cfg,
		points: randomPoints(cfg, rng, meta.MAX_POINT),
		characters: [2]Character{
			{Coord: Coord{Y: cfg.Height / 2, X: 0}},
			{Coord: Coord{Y: cfg.Height / 2, X: cfg.Width - 1}},
		},
	}
	for _, c := range s.characters {
		s.points[cfg.index(c.Coord)] = 0
	}
	return s
}

func (s *AlternateMazeState) IsDone() bool {
	if s.turn > s.cfg.EndTurn {
		panic(fmt.Sprintf("turn %d exceeds end turn %d", s.turn, s.cfg.EndTurn))
	}
	return s.turn == s.cfg.EndTurn
}

// Advance moves the mover, awards its points, then hands the turn over.
func (s *AlternateMazeState) Advance(action Action) {
	if s.IsDone() {
		panic("cannot advance a finished game")
	}
	character := &s.characters[s.mover]
	next := character.Coord.Move(action)
	if !s.cfg.Contains(next) {
		panic(fmt.Sprintf("action %s moves player %d out of the board to %+v", action, s.mover, next))
	}
	character.Coord = next
	idx := s.cfg.index(next)
	if point := s.points[idx]; point > 0 {
		character.GameScore += Score(point)
		s.points[idx] = 0
	}
	s.turn++
	s.mover = 1 - s.mover
}

func (s *AlternateMazeState) LegalActions() []Action {
	return legalActionsFrom(s.cfg, s.characters[s.mover].Coord)
}

// Score is the mover's lead over the other player.
func (s *AlternateMazeState) Score() Score {
	return s.characters[s.mover].GameScore - s.characters[1-s.mover].GameScore
}

func (s *AlternateMazeState) EvaluateScore() Score {
	return s.Score()
}

// SwapRoles hands the turn to the other player without moving anyone.
func (s *AlternateMazeState) SwapRoles() {
	s.mover = 1 - s.mover
}

func (s *AlternateMazeState) Mover() int {
	return s.mover
}

// IsFirst reports whether the first player is about to move.
func (s *AlternateMazeState) IsFirst() bool {
	return s.mover == 0
}

// WinningStatus is reported from the mover's point of view.
func (s *AlternateMazeState) WinningStatus() WinningStatus {
	if !s.IsDone() {
		return Continue
	}
	switch score := s.Score(); {
	case score > 0:
		return Win
	case score < 0:
		return Lose
	default:
		return Draw
	}
}

// FirstPlayerScoreForWinRate returns 1 if the first player won, 0 if it lost
// and 0.5 for a draw or an unfinished game.
func (s *AlternateMazeState) FirstPlayerScoreForWinRate() float64 {
	if !s.IsDone() {
		return 0.5
	}
	switch lead := s.FirstPlayerLead(); {
	case lead > 0:
		return 1.0
	case lead < 0:
		return 0.0
	default:
		return 0.5
	}
}

// FirstPlayerLead is the first player's score minus the second player's.
func (s *AlternateMazeState) FirstPlayerLead() Score {
	return s.characters[0].GameScore - s.characters[1].GameScore
}

func (s *AlternateMazeState) Clone() *AlternateMazeState {
	clone := *s
	clone.points = slices.Clone(s.points)
	return &clone
}

func (s *AlternateMazeState) Config() Config {
	return s.cfg
}

func (s *AlternateMazeState) Turn() int {
	return s.turn
}

func (s *AlternateMazeState) Characters() [2]Character {
	return s.characters
}

func (s *AlternateMazeState) Point(c Coord) int {
	return s.points[s.cfg.index(c)]
}
