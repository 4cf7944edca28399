package world

import (
	"github.com/vovakirdan/tui-miner/internal/core"
)

// DefaultMoveCost is the fuel spent per tile moved.
const DefaultMoveCost uint = 10

// State is the lifecycle state of a simulation.
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

// Reason explains why a simulation terminated.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonPlayerQuit
	ReasonOutOfFuel
)

// String returns the reason name stored with scores.
func (r Reason) String() string {
	switch r {
	case ReasonPlayerQuit:
		return "player_quit"
	case ReasonOutOfFuel:
		return "out_of_fuel"
	default:
		return ""
	}
}

// Status is the outcome of a tick.
type Status struct {
	State  State
	Reason Reason
}

// Terminated reports whether the simulation has ended.
func (s Status) Terminated() bool {
	return s.State == StateTerminated
}

// Rules holds the tunable constants of the step.
type Rules struct {
	MoveCost uint
}

// DefaultRules returns the stock rules.
func DefaultRules() Rules {
	return Rules{MoveCost: DefaultMoveCost}
}

// Sim owns a grid and a player and advances them one tick at a time.
// Termination is absorbing: once terminated, Step changes nothing.
type Sim struct {
	grid    *Grid
	player  *Player
	rules   Rules
	status  Status
	tick    uint64
	elapsed float64 // seconds of wall-clock time fed through Step
}

// NewSim creates a running simulation.
func NewSim(grid *Grid, player *Player, rules Rules) *Sim {
	return &Sim{
		grid:   grid,
		player: player,
		rules:  rules,
	}
}

// Step advances the simulation by one tick using the held commands.
// dt is accumulated but does not scale movement: every tick moves at
// most one tile per axis.
func (s *Sim) Step(cmds core.CommandState, dt float64) Status {
	if s.status.Terminated() {
		return s.status
	}
	s.tick++
	s.elapsed += dt

	if cmds.Held(core.CommandExit) {
		s.status = Status{State: StateTerminated, Reason: ReasonPlayerQuit}
		return s.status
	}

	next := s.player.Pos
	// Opposing commands both apply and cancel out
	if cmds.Held(core.CommandRight) {
		next.X++
	}
	if cmds.Held(core.CommandLeft) {
		next.X--
	}
	if cmds.Held(core.CommandUp) {
		next.Y--
	}
	if cmds.Held(core.CommandDown) {
		next.Y++
	}
	next = s.clamp(next)

	if next != s.player.Pos {
		s.player.burn(s.rules.MoveCost)
	}
	s.player.Pos = next

	s.player.Score += s.grid.Mine(next)

	if s.player.Fuel == 0 {
		s.status = Status{State: StateTerminated, Reason: ReasonOutOfFuel}
	}
	return s.status
}

// clamp keeps c inside [0, w-1) x [0, h-1). The last row and column are
// outside the playable range.
func (s *Sim) clamp(c Coord) Coord {
	return Coord{
		X: clampAxis(c.X, s.grid.Width()-1),
		Y: clampAxis(c.Y, s.grid.Height()-1),
	}
}

// clampAxis restricts v to [0, limit), collapsing to 0 when the range is empty.
func clampAxis(v, limit int) int {
	if v > limit-1 {
		v = limit - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Status returns the current status.
func (s *Sim) Status() Status { return s.status }

// Tick returns the number of ticks processed.
func (s *Sim) Tick() uint64 { return s.tick }

// Elapsed returns the total seconds passed to Step.
func (s *Sim) Elapsed() float64 { return s.elapsed }

// Player returns a copy of the player.
func (s *Sim) Player() Player { return *s.player }

// Grid returns the simulation's grid. Callers outside the package must
// treat it as read-only; use Snapshot for a detached copy.
func (s *Sim) Grid() *Grid { return s.grid }
