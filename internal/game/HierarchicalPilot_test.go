package game

import "testing"

func TestHierarchicalPilotSteering(t *testing.T) {
	grid := DefaultConfig().Grid()
	small := Grid{Width: 100, Height: 100, CellSize: 20}

	tests := []struct {
		name string
		view PilotView
		want []Key
	}{
		{
			name: "starts toward food",
			view: PilotView{Grid: grid, Head: Position{X: 400, Y: 300}, Food: Position{X: 600, Y: 300}},
			want: []Key{KeyRight},
		},
		{
			name: "keeps going when food is ahead",
			view: PilotView{Grid: grid, Head: Position{X: 400, Y: 300}, Food: Position{X: 600, Y: 300}, Direction: Direction{Dx: 20}},
			want: []Key{KeyNone},
		},
		{
			name: "turns away from the wall",
			view: PilotView{Grid: grid, Head: Position{X: 780, Y: 300}, Food: Position{X: 780, Y: 300}, Direction: Direction{Dx: 20}},
			want: []Key{KeyUp, KeyDown},
		},
		{
			name: "skips a pocket too small for the body",
			view: PilotView{
				Grid:      small,
				Head:      Position{X: 20, Y: 80},
				Body:      []Position{{X: 20, Y: 0}, {X: 20, Y: 20}, {X: 20, Y: 40}, {X: 20, Y: 60}, {X: 20, Y: 80}},
				Food:      Position{X: 0, Y: 0},
				Direction: Direction{Dy: 20},
			},
			want: []Key{KeyRight},
		},
		{
			name: "gives up when boxed in",
			view: PilotView{
				Grid:      small,
				Head:      Position{X: 0, Y: 20},
				Body:      []Position{{X: 0, Y: 40}, {X: 20, Y: 40}, {X: 20, Y: 20}, {X: 20, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 20}},
				Food:      Position{X: 80, Y: 80},
				Direction: Direction{Dy: 20},
			},
			want: []Key{KeyNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHierarchicalPilot().NextKey(tt.view)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if got == want {
					return
				}
			}
			t.Fatalf("got %s, want one of %v", got, tt.want)
		})
	}
}

func TestReachableCells(t *testing.T) {
	grid := Grid{Width: 100, Height: 100, CellSize: 20}
	wall := bodyCells([]Position{{X: 20, Y: 0}, {X: 20, Y: 20}, {X: 20, Y: 40}, {X: 20, Y: 60}, {X: 20, Y: 80}})

	tests := []struct {
		name    string
		start   Position
		blocked map[Position]struct{}
		limit   int
		want    int
	}{
		{"empty field", Position{}, nil, 100, 25},
		{"walled off column", Position{}, wall, 100, 5},
		{"other side of the wall", Position{X: 80, Y: 80}, wall, 100, 15},
		{"stops at the limit", Position{}, nil, 7, 7},
		{"blocked start", Position{X: 20, Y: 20}, wall, 100, 0},
		{"off the field", Position{X: -20}, nil, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reachableCells(grid, tt.start, tt.blocked, tt.limit); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHierarchicalPilotPlaysLongRounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.FoodAvoidsBody = true
	gm, err := GetNewGameManager(cfg, WithPilot(NewHierarchicalPilot()), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("failed to create game manager: %v", err)
	}

	for i := 0; i < 3000; i++ {
		result := gm.Step(nil)
		if result.State != StateRunning {
			t.Fatalf("pilot crashed at tick %d with score %d: %s", i+1, result.Score, result.Reason)
		}
		if result.Score >= 5 {
			return
		}
	}
	t.Fatal("pilot never collected five pieces of food")
}
