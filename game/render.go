package game

import (
	"fmt"
	"strings"
)

func (s *MazeState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn:%d, score:%d\n", s.turn, s.gameScore)
	board := renderPoints(s.cfg, s.points, '0')
	board[s.character.Y][s.character.X] = '@'
	writeBoard(&sb, board)
	return sb.String()
}

func (s *AutoMoveMazeState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn:%d, score:%d\n", s.turn, s.gameScore)
	board := renderPoints(s.cfg, s.points, '0')
	for _, c := range s.characters {
		board[c.Y][c.X] = '@'
	}
	writeBoard(&sb, board)
	return sb.String()
}

func (s *AlternateMazeState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn:%d, A:%d, B:%d\n", s.turn, s.characters[0].GameScore, s.characters[1].GameScore)
	board := renderPoints(s.cfg, s.points, '.')
	for i, c := range s.characters {
		board[c.Coord.Y][c.Coord.X] = 'A' + byte(i)
	}
	writeBoard(&sb, board)
	return sb.String()
}

func renderPoints(cfg Config, points []int, empty byte) [][]byte {
	board := make([][]byte, cfg.Height)
	for y := range board {
		board[y] = make([]byte, cfg.Width)
		for x := range board[y] {
			point := points[cfg.index(Coord{Y: y, X: x})]
			if point == 0 {
				board[y][x] = empty
			} else {
				board[y][x] = '0' + byte(point%10)
			}
		}
	}
	return board
}

func writeBoard(sb *strings.Builder, board [][]byte) {
	for _, row := range board {
		sb.Write(row)
		sb.WriteByte('\n')
	}
}
