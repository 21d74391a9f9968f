package searcher

import (
	"time"

	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/timekeeper"
)

// BeamSearch keeps the width best states of each depth and expands only those.
// It is bounded either by depth or, when no depth is given, by a duration
// checked once per depth step.
type BeamSearch[S game.State[S]] struct {
	measured
	width    int
	depth    int
	timed    bool
	duration time.Duration
}

func NewBeamSearch[S game.State[S]](options ...Option) *BeamSearch[S] {
	s := newSettings(options)
	if s.depth <= 0 && !s.timed {
		panic("Must specify beam depth or duration")
	}
	return &BeamSearch[S]{
		measured: measured{collector: s.metrics},
		width:    s.width,
		depth:    s.depth,
		timed:    s.timed,
		duration: s.duration,
	}
}

func (b *BeamSearch[S]) FindNextAction(state S) game.Action {
	b.start()
	defer b.complete()

	var best *node[S]
	if b.depth > 0 {
		best = b.searchDepth(state)
	} else {
		best = b.searchTime(state)
	}
	return decide(state, best)
}

func (b *BeamSearch[S]) searchDepth(state S) *node[S] {
	root := newRoot(state)
	now := newFrontier[S]()
	now.push(root)
	best := root
	for t := 0; t < b.depth; t++ {
		next := b.step(now)
		if next.empty() {
			break
		}
		now = next
		best = now.peek()
		if best.state.IsDone() {
			break
		}
	}
	return best
}

func (b *BeamSearch[S]) searchTime(state S) *node[S] {
	tk := timekeeper.New(b.duration)
	root := newRoot(state)
	now := newFrontier[S]()
	now.push(root)
	best := root
	for {
		next := b.step(now)
		if next.empty() {
			break
		}
		now = next
		best = now.peek()
		if best.state.IsDone() {
			break
		}
		if tk.IsTimeOver() {
			b.collector.SetTimeOver()
			break
		}
	}
	return best
}

// step pops up to width nodes from now and returns the frontier of their successors.
func (b *BeamSearch[S]) step(now *frontier[S]) *frontier[S] {
	next := newFrontier[S]()
	for w := 0; w < b.width && !now.empty(); w++ {
		expand(now.pop(), b.collector, next.push)
	}
	b.collector.AddStep()
	return next
}
