package game

import (
	"errors"
	"fmt"

	"github.com/4eta/thunder-book/meta"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config fixes the shape of a scenario. It never changes during a game.
type Config struct {
	Height     int
	Width      int
	EndTurn    int
	Characters int // Only used by AutoMoveMazeState
}

func DefaultMazeConfig() Config {
	return Config{Height: meta.MAZE_HEIGHT, Width: meta.MAZE_WIDTH, EndTurn: meta.MAZE_END_TURN, Characters: 1}
}

func DefaultAutoMazeConfig() Config {
	return Config{
		Height:     meta.AUTO_MAZE_HEIGHT,
		Width:      meta.AUTO_MAZE_WIDTH,
		EndTurn:    meta.AUTO_MAZE_END_TURN,
		Characters: meta.AUTO_MAZE_CHARACTERS,
	}
}

func DefaultDuelConfig() Config {
	return Config{Height: meta.DUEL_HEIGHT, Width: meta.DUEL_WIDTH, EndTurn: meta.DUEL_END_TURN, Characters: 2}
}

func (c Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Height, c.Width)
	}
	if c.EndTurn <= 0 {
		return fmt.Errorf("%w: end turn must be positive, got %d", ErrInvalidConfig, c.EndTurn)
	}
	if c.Characters < 0 {
		return fmt.Errorf("%w: negative character count %d", ErrInvalidConfig, c.Characters)
	}
	return nil
}

// Contains reports whether coord lies on the board.
func (c Config) Contains(coord Coord) bool {
	return coord.Y >= 0 && coord.Y < c.Height && coord.X >= 0 && coord.X < c.Width
}

func (c Config) index(coord Coord) int {
	return coord.Y*c.Width + coord.X
}

func mustValidate(c Config) {
	if err := c.Validate(); err != nil {
		panic(err.Error())
	}
}
