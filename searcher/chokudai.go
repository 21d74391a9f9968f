package searcher

import (
	"time"

	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/timekeeper"
)

// ChokudaiSearch keeps one frontier per depth and, each round, expands up to
// width nodes of every depth into the next one. Frontiers persist across
// rounds so deeper levels fill up progressively. It runs a fixed number of
// rounds or, when none is given, rounds until the duration is over.
type ChokudaiSearch[S game.State[S]] struct {
	measured
	width    int
	depth    int
	rounds   int
	timed    bool
	duration time.Duration
}

func NewChokudaiSearch[S game.State[S]](options ...Option) *ChokudaiSearch[S] {
	s := newSettings(options)
	if s.depth <= 0 {
		panic("Must specify chokudai search depth")
	}
	if s.rounds <= 0 && !s.timed {
		panic("Must specify chokudai search rounds or duration")
	}
	return &ChokudaiSearch[S]{
		measured: measured{collector: s.metrics},
		width:    s.width,
		depth:    s.depth,
		rounds:   s.rounds,
		timed:    s.timed,
		duration: s.duration,
	}
}

func (c *ChokudaiSearch[S]) FindNextAction(state S) game.Action {
	c.start()
	defer c.complete()

	beams := make([]*frontier[S], c.depth+1)
	for t := range beams {
		beams[t] = newFrontier[S]()
	}
	beams[0].push(newRoot(state))

	if c.rounds > 0 {
		for i := 0; i < c.rounds; i++ {
			c.round(beams)
		}
	} else {
		tk := timekeeper.New(c.duration)
		for {
			c.round(beams)
			if tk.IsTimeOver() {
				c.collector.SetTimeOver()
				break
			}
		}
	}

	// The deepest surviving candidate has the most simulated future
	for t := c.depth; t >= 0; t-- {
		if !beams[t].empty() {
			return decide(state, beams[t].peek())
		}
	}
	return decide(state, nil)
}

func (c *ChokudaiSearch[S]) round(beams []*frontier[S]) {
	for t := 0; t < c.depth; t++ {
		for w := 0; w < c.width; w++ {
			if beams[t].empty() || beams[t].peek().state.IsDone() {
				break
			}
			expand(beams[t].pop(), c.collector, beams[t+1].push)
		}
	}
	c.collector.AddStep()
}
