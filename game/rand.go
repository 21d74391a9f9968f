package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// SeededRand returns a reproducible source; the same seed yields the same game.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// EntropyRand returns a non-reproducible source.
func EntropyRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

func randomPoints(cfg Config, rng *rand.Rand, maxPoint int) []int {
	points := make([]int, cfg.Height*cfg.Width)
	for i := range points {
		points[i] = rng.Intn(maxPoint)
	}
	return points
}

func randomCoord(cfg Config, rng *rand.Rand) Coord {
	y := rng.Intn(cfg.Height)
	x := rng.Intn(cfg.Width)
	return Coord{Y: y, X: x}
}
