package game

// HierarchicalPilot is a Go pilot that picks moves by strict priority:
// stay on the field and off the body, then chase food through moves that
// leave enough room for the whole snake, then take whichever move leaves
// the most room.
type HierarchicalPilot struct{}

func NewHierarchicalPilot() *HierarchicalPilot {
	return &HierarchicalPilot{}
}

// candidateMoves lists straight first, then the two turns. A stationary snake
// may go anywhere.
func candidateMoves(current Direction) []Direction {
	if current.IsZero() {
		return Directions
	}
	straight := current.Unit()
	moves := []Direction{straight}
	for _, dir := range Directions {
		if (dir.Dx != 0 && straight.Dx == 0) || (dir.Dy != 0 && straight.Dy == 0) {
			moves = append(moves, dir)
		}
	}
	return moves
}

func (p *HierarchicalPilot) NextKey(view PilotView) (Key, error) {
	cellSize := view.Grid.CellSize
	blocked := bodyCells(view.Body)

	// 1. Walls and body.
	var safeMoves []Direction
	for _, move := range candidateMoves(view.Direction) {
		next := view.Head.Add(move.Scale(cellSize))
		if !view.Grid.Contains(next) {
			continue
		}
		if _, ok := blocked[next]; ok {
			continue
		}
		safeMoves = append(safeMoves, move)
	}
	if len(safeMoves) == 0 {
		return KeyNone, nil
	}

	need := len(view.Body) + 1
	rooms := measureRoom(view.Grid, view.Head, safeMoves, blocked, need)

	// 2. Food, through moves that do not trap the snake.
	best, bestDistance := -1, 0
	for i, move := range safeMoves {
		if rooms[i] < need {
			continue
		}
		distance := GetManhattanDistance(view.Head.Add(move.Scale(cellSize)), view.Food)
		if best < 0 || distance < bestDistance {
			best, bestDistance = i, distance
		}
	}

	// 3. Most room.
	if best < 0 {
		best = 0
		for i := range safeMoves {
			if rooms[i] > rooms[best] {
				best = i
			}
		}
	}

	chosen := safeMoves[best]
	if !view.Direction.IsZero() && chosen == view.Direction.Unit() {
		return KeyNone, nil
	}
	return KeyForDirection(chosen), nil
}
