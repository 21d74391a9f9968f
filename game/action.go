package game

import "fmt"

// Action moves a character by one cell.
type Action int

const (
	Right Action = iota
	Down
	Left
	Up
)

// NoAction marks a search node that has not left the root yet.
const NoAction Action = -1

var (
	dx = [4]int{1, 0, -1, 0}
	dy = [4]int{0, 1, 0, -1}

	actionNames = [4]string{"right", "down", "left", "up"}
)

// Actions returns all four actions in enumeration order. Search tie-breaks
// depend on this order.
func Actions() []Action {
	return []Action{Right, Down, Left, Up}
}

func (a Action) IsValid() bool {
	return a >= Right && a <= Up
}

func (a Action) String() string {
	if a == NoAction {
		return "none"
	}
	if !a.IsValid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Coord is a cell position.
type Coord struct {
	Y int
	X int
}

// Move returns the neighbour of c in the direction of a.
func (c Coord) Move(a Action) Coord {
	if !a.IsValid() {
		panic(fmt.Sprintf("invalid action %d", int(a)))
	}
	return Coord{Y: c.Y + dy[a], X: c.X + dx[a]}
}
