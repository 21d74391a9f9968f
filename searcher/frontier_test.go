package searcher

import (
	"testing"

	"github.com/4eta/thunder-book/game"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Run("pops by descending score", func(t *testing.T) {
		f := newFrontier[*mockState]()
		for _, score := range []game.Score{3, 9, 1, 7} {
			f.push(&node[*mockState]{score: score})
		}

		var got []game.Score
		for !f.empty() {
			got = append(got, f.pop().score)
		}
		require.Equal(t, []game.Score{9, 7, 3, 1}, got)
	})

	t.Run("ties pop in insertion order", func(t *testing.T) {
		f := newFrontier[*mockState]()
		f.push(&node[*mockState]{score: 4, firstAction: game.Left})
		f.push(&node[*mockState]{score: 4, firstAction: game.Right})
		f.push(&node[*mockState]{score: 2, firstAction: game.Up})
		f.push(&node[*mockState]{score: 4, firstAction: game.Down})

		require.Equal(t, game.Left, f.peek().firstAction)
		require.Equal(t, game.Left, f.pop().firstAction)
		require.Equal(t, game.Right, f.pop().firstAction)
		require.Equal(t, game.Down, f.pop().firstAction)
		require.Equal(t, game.Up, f.pop().firstAction)
		require.True(t, f.empty())
	})
}
