package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type GameState int

const (
	StateRunning GameState = iota
	StateLost
	StateTerminated
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateLost:
		return "lost"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

type LossReason int

const (
	LossNone LossReason = iota
	LossWall
	LossSelf
)

func (r LossReason) String() string {
	switch r {
	case LossWall:
		return "wall"
	case LossSelf:
		return "self"
	}
	return "none"
}

// FrameResult is everything the renderer needs to draw one frame.
type FrameResult struct {
	RoundID   uuid.UUID
	Tick      int
	State     GameState
	Reason    LossReason
	Head      Position
	Body      []Position
	Food      Position
	Score     int
	Direction Direction
	AteFood   bool
}

// Round is a single life of the snake, from a fresh start until it is lost.
type Round struct {
	ID        uuid.UUID
	StartedAt time.Time

	grid   Grid
	player *Player
	food   Position
	placer *FoodPlacer
	state  GameState
	reason LossReason
	tick   int
}

func NewRound(cfg Config, rng *rand.Rand) *Round {
	grid := cfg.Grid()
	placer := NewFoodPlacer(grid, rng, cfg.FoodAvoidsBody)
	player := CreateNewPlayer(grid.Center())

	return &Round{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		grid:      grid,
		player:    player,
		placer:    placer,
		food:      placer.Place([]Position{player.Head}),
		state:     StateRunning,
	}
}

// Tick runs one iteration of the loop. Once the round is lost it only returns
// the final snapshot.
func (r *Round) Tick(keys []Key) FrameResult {
	if r.state != StateRunning {
		return r.Snapshot()
	}

	r.tick++
	r.player.UpdateDirection(keys, r.grid.CellSize)
	head := r.player.Move()

	if !r.grid.Contains(head) {
		r.lose(LossWall)
		return r.Snapshot()
	}

	r.player.AddHeadToBody()

	if r.player.HitsItself() {
		r.lose(LossSelf)
		return r.Snapshot()
	}

	ate := false
	if head == r.food {
		r.player.Grow()
		r.food = r.placer.Place(r.player.Body)
		ate = true
	}

	result := r.Snapshot()
	result.AteFood = ate
	return result
}

func (r *Round) lose(reason LossReason) {
	r.state = StateLost
	r.reason = reason
}

func (r *Round) Snapshot() FrameResult {
	body := make([]Position, len(r.player.Body))
	copy(body, r.player.Body)

	return FrameResult{
		RoundID:   r.ID,
		Tick:      r.tick,
		State:     r.state,
		Reason:    r.reason,
		Head:      r.player.Head,
		Body:      body,
		Food:      r.food,
		Score:     r.player.Score(),
		Direction: r.player.CurrentDirection,
	}
}

func (r *Round) State() GameState {
	return r.state
}

func (r *Round) Grid() Grid {
	return r.grid
}

// PilotView exposes the round to a Pilot without handing out mutable state.
func (r *Round) PilotView() PilotView {
	body := make([]Position, len(r.player.Body))
	copy(body, r.player.Body)

	return PilotView{
		Grid:      r.grid,
		Head:      r.player.Head,
		Body:      body,
		Food:      r.food,
		Direction: r.player.CurrentDirection,
	}
}
