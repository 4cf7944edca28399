package world

// DefaultFuel is the fuel a new player starts with.
const DefaultFuel uint = 100

// Player is the miner: a grid position plus fuel and score counters.
type Player struct {
	Pos   Coord
	Fuel  uint
	Score uint
}

// NewPlayer creates a player at the origin with the given fuel and no score.
func NewPlayer(fuel uint) *Player {
	return &Player{Pos: C(0, 0), Fuel: fuel}
}

// burn spends fuel, stopping at zero.
func (p *Player) burn(cost uint) {
	if cost >= p.Fuel {
		p.Fuel = 0
		return
	}
	p.Fuel -= cost
}
