package game

// Player is the snake. Body is oldest first and its last element is the head
// once the first tick has run.
type Player struct {
	Head             Position
	Body             []Position
	CurrentDirection Direction
	TargetLength     int
}

func CreateNewPlayer(spawnPoint Position) *Player {
	return &Player{
		Head:         spawnPoint,
		Body:         []Position{},
		TargetLength: 1,
	}
}

// UpdateDirection applies the arrow keys of one tick. A key counts only when the
// velocity the tick started with is zero along that key's axis, and the last
// such key wins.
func (p *Player) UpdateDirection(keys []Key, cellSize int) {
	startDirection := p.CurrentDirection
	for _, k := range keys {
		dir, ok := k.Direction()
		if !ok {
			continue
		}
		if dir.Dx != 0 && startDirection.Dx != 0 {
			continue
		}
		if dir.Dy != 0 && startDirection.Dy != 0 {
			continue
		}
		p.CurrentDirection = dir.Scale(cellSize)
	}
}

// Move advances the head by the current direction without touching the body.
func (p *Player) Move() Position {
	p.Head = p.Head.Add(p.CurrentDirection)
	return p.Head
}

// AddHeadToBody appends the head and trims the tail to the target length.
func (p *Player) AddHeadToBody() {
	p.Body = append(p.Body, p.Head)
	if len(p.Body) > p.TargetLength {
		p.Body = p.Body[len(p.Body)-p.TargetLength:]
	}
}

// HitsItself reports whether the head overlaps any other body segment.
func (p *Player) HitsItself() bool {
	if len(p.Body) == 0 {
		return false
	}
	for _, segment := range p.Body[:len(p.Body)-1] {
		if segment == p.Head {
			return true
		}
	}
	return false
}

func (p *Player) Occupies(pos Position) bool {
	for _, segment := range p.Body {
		if segment == pos {
			return true
		}
	}
	return false
}

func (p *Player) Grow() {
	p.TargetLength++
}

func (p *Player) Score() int {
	return p.TargetLength - 1
}
