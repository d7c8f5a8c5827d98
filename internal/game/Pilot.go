package game

// PilotView is the read-only picture of a round handed to a Pilot each tick.
type PilotView struct {
	Grid      Grid
	Head      Position
	Body      []Position
	Food      Position
	Direction Direction
}

// Pilot steers the snake on the player's behalf. KeyNone means keep going.
type Pilot interface {
	NextKey(view PilotView) (Key, error)
}
