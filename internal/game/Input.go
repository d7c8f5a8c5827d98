package game

// Key is a key-down event after it has been translated from the host terminal.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyRestart
	KeyQuit
	// KeyClose is the window going away. It is honored in any state.
	KeyClose
)

var keyNames = map[Key]string{
	KeyNone:    "none",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyRestart: "restart",
	KeyQuit:    "quit",
	KeyClose:   "close",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the unit direction of an arrow key.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyLeft:
		return DirectionLeft, true
	case KeyRight:
		return DirectionRight, true
	case KeyUp:
		return DirectionUp, true
	case KeyDown:
		return DirectionDown, true
	}
	return Direction{}, false
}

// KeyForDirection maps a unit direction back to its arrow key.
func KeyForDirection(d Direction) Key {
	switch d.Unit() {
	case DirectionLeft:
		return KeyLeft
	case DirectionRight:
		return KeyRight
	case DirectionUp:
		return KeyUp
	case DirectionDown:
		return KeyDown
	}
	return KeyNone
}
