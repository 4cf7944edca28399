package world

import (
	"encoding/hex"
	"fmt"
	"strings"

	"lukechampine.com/blake3"
)

// Snapshot is a detached, read-only view of the world for renderers.
// Mutating a snapshot never affects the simulation.
type Snapshot struct {
	Width  int
	Height int
	Tiles  []Tile // row-major, len Width*Height
	Player Player
	Status Status
	Tick   uint64
}

// Snapshot captures the current world state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Width:  s.grid.Width(),
		Height: s.grid.Height(),
		Tiles:  s.grid.Tiles(),
		Player: *s.player,
		Status: s.status,
		Tick:   s.tick,
	}
}

// At returns the tile at c, or Air outside the snapshot.
func (s Snapshot) At(c Coord) Tile {
	if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
		return TileAir
	}
	return s.Tiles[c.Y*s.Width+c.X]
}

// Dump renders the snapshot as text for debugging and scripted runs.
//
// Format:
//
//	Score: 510, Fuel: 80
//	#.#
//	#M#
//	###
//
// Tiles use Tile.Char; the player is drawn as 'M'.
func Dump(s Snapshot) string {
	var sb strings.Builder
	sb.Grow((s.Width+1)*s.Height + 32)

	fmt.Fprintf(&sb, "Score: %d, Fuel: %d\n", s.Player.Score, s.Player.Fuel)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.Player.Pos == C(x, y) {
				sb.WriteRune('M')
				continue
			}
			sb.WriteRune(s.At(C(x, y)).Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fingerprint returns a BLAKE3 digest of the grid's dimensions and tiles.
// Two grids share a fingerprint only if they are identical.
func Fingerprint(g *Grid) string {
	h := blake3.New(32, nil)
	fmt.Fprintf(h, "%dx%d:", g.w, g.h)
	buf := make([]byte, len(g.tiles))
	for i, t := range g.tiles {
		buf[i] = byte(t)
	}
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil))
}
