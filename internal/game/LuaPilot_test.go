package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestPilot(t *testing.T) *LuaPilot {
	t.Helper()
	pilot, err := NewDefaultLuaPilot()
	if err != nil {
		t.Fatalf("failed to load default pilot: %v", err)
	}
	t.Cleanup(pilot.Close)
	return pilot
}

func TestDefaultPilotSteering(t *testing.T) {
	grid := DefaultConfig().Grid()

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
			name: "turns when food is beside",
			view: PilotView{Grid: grid, Head: Position{X: 400, Y: 300}, Food: Position{X: 400, Y: 500}, Direction: Direction{Dx: 20}},
			want: []Key{KeyDown},
		},
		{
			name: "keeps going when food is ahead",
			view: PilotView{Grid: grid, Head: Position{X: 400, Y: 300}, Food: Position{X: 600, Y: 300}, Direction: Direction{Dx: 20}},
			want: []Key{KeyNone},
		},
		{
			name: "never reverses",
			view: PilotView{Grid: grid, Head: Position{X: 400, Y: 300}, Food: Position{X: 100, Y: 300}, Direction: Direction{Dx: 20}},
			want: []Key{KeyNone, KeyUp, KeyDown},
		},
		{
			name: "turns away from the wall",
			view: PilotView{Grid: grid, Head: Position{X: 780, Y: 300}, Food: Position{X: 780, Y: 300}, Direction: Direction{Dx: 20}},
			want: []Key{KeyUp, KeyDown},
		},
		{
			name: "avoids its own body",
			view: PilotView{
				Grid:      grid,
				Head:      Position{X: 400, Y: 300},
				Body:      []Position{{X: 400, Y: 320}, {X: 420, Y: 320}, {X: 420, Y: 300}, {X: 400, Y: 300}},
				Food:      Position{X: 400, Y: 500},
				Direction: Direction{Dx: -20},
			},
			want: []Key{KeyNone, KeyUp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pilot := newTestPilot(t)
			got, err := pilot.NextKey(tt.view)
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

func TestDefaultPilotSurvivesAnEmptyField(t *testing.T) {
	pilot := newTestPilot(t)
	cfg := DefaultConfig()
	cfg.Seed = 11
	cfg.FoodAvoidsBody = true
	gm, err := GetNewGameManager(cfg, WithPilot(pilot), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("failed to create game manager: %v", err)
	}

	for i := 0; i < 2000; i++ {
		result := gm.Step(nil)
		if result.State != StateRunning {
			t.Fatalf("pilot crashed at tick %d: %s", i+1, result.Reason)
		}
		if result.Score >= 3 {
			return
		}
	}
	t.Fatal("pilot never collected three pieces of food")
}

func TestNewLuaPilotErrors(t *testing.T) {
	if _, err := NewLuaPilot("broken", "function nextDirection("); err == nil {
		t.Fatal("expected a parse error")
	}

	_, err := NewLuaPilot("missing", "function somethingElse() end")
	if err == nil || !strings.Contains(err.Error(), pilotFunctionName) {
		t.Fatalf("expected a missing function error, got %v", err)
	}

	if _, err := LoadLuaPilot(filepath.Join(t.TempDir(), "nope.lua")); err == nil {
		t.Fatal("expected a read error")
	}
}

func TestLuaPilotRuntimeErrors(t *testing.T) {
	pilot, err := NewLuaPilot("angry", `function nextDirection(view) error("nope") end`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer pilot.Close()

	if _, err := pilot.NextKey(PilotView{Grid: DefaultConfig().Grid()}); err == nil {
		t.Fatal("expected a runtime error")
	}

	wrongType, err := NewLuaPilot("wrong", `function nextDirection(view) return 42 end`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer wrongType.Close()

	if _, err := wrongType.NextKey(PilotView{Grid: DefaultConfig().Grid()}); err == nil {
		t.Fatal("expected a type error")
	}
}

func TestLoadLuaPilotFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "down.lua")
	if err := os.WriteFile(path, []byte(`function nextDirection(view) return {Dx = 0, Dy = 1} end`), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	pilot, err := LoadLuaPilot(path)
	if err != nil {
		t.Fatalf("failed to load script: %v", err)
	}
	defer pilot.Close()

	got, err := pilot.NextKey(PilotView{Grid: DefaultConfig().Grid()})
	if err != nil || got != KeyDown {
		t.Fatalf("expected down, got %s (%v)", got, err)
	}
}
