package game

import "math/rand"

// FoodPlacer picks cell-aligned food positions.
type FoodPlacer struct {
	grid      Grid
	rng       *rand.Rand
	avoidBody bool
}

func NewFoodPlacer(grid Grid, rng *rand.Rand, avoidBody bool) *FoodPlacer {
	return &FoodPlacer{grid: grid, rng: rng, avoidBody: avoidBody}
}

// Place returns a uniformly random cell. Unless avoidBody is set the snake's
// own cells are candidates too.
func (fp *FoodPlacer) Place(body []Position) Position {
	if !fp.avoidBody || len(body) == 0 {
		return fp.grid.RandomCell(fp.rng)
	}

	occupied := make(map[Position]struct{}, len(body))
	for _, segment := range body {
		occupied[segment] = struct{}{}
	}

	free := make([]Position, 0, fp.grid.Columns()*fp.grid.Rows())
	for row := 0; row < fp.grid.Rows(); row++ {
		for col := 0; col < fp.grid.Columns(); col++ {
			pos := fp.grid.PositionOf(col, row)
			if _, taken := occupied[pos]; !taken {
				free = append(free, pos)
			}
		}
	}

	if len(free) == 0 {
		return fp.grid.RandomCell(fp.rng)
	}
	return free[fp.rng.Intn(len(free))]
}
