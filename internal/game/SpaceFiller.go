package game

import "sync"

func bodyCells(body []Position) map[Position]struct{} {
	cells := make(map[Position]struct{}, len(body))
	for _, segment := range body {
		cells[segment] = struct{}{}
	}
	return cells
}

// reachableCells flood fills from start and counts the free cells it reaches,
// stopping once limit cells have been found.
func reachableCells(grid Grid, start Position, blocked map[Position]struct{}, limit int) int {
	if !grid.Contains(start) {
		return 0
	}
	if _, ok := blocked[start]; ok {
		return 0
	}

	seen := map[Position]struct{}{start: {}}
	q := []Position{start}
	for len(q) > 0 && len(seen) < limit {
		current := q[0]
		q = q[1:]

		for _, dir := range Directions {
			next := current.Add(dir.Scale(grid.CellSize))
			if !grid.Contains(next) {
				continue
			}
			if _, ok := blocked[next]; ok {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			q = append(q, next)
		}
	}

	if len(seen) > limit {
		return limit
	}
	return len(seen)
}

// measureRoom fills from the cell each move would enter, one goroutine per move.
// blocked is only read.
func measureRoom(grid Grid, head Position, moves []Direction, blocked map[Position]struct{}, limit int) []int {
	rooms := make([]int, len(moves))
	var wg sync.WaitGroup
	for i, move := range moves {
		wg.Add(1)
		go func(i int, next Position) {
			defer wg.Done()
			rooms[i] = reachableCells(grid, next, blocked, limit)
		}(i, head.Add(move.Scale(grid.CellSize)))
	}
	wg.Wait()
	return rooms
}
