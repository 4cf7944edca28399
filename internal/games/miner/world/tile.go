// Package world holds the mining game's simulation: the tile grid, the
// player, world generation and the per-tick step. It is UI-agnostic and
// deterministic for a given seed and command sequence.
package world

import "fmt"

// OreGrade distinguishes the kinds of ore a tile can hold.
type OreGrade uint8

const (
	GradeCopper OreGrade = iota
	GradeIron
	GradeGold
	GradeTitanium
)

// String returns the lowercase grade name.
func (g OreGrade) String() string {
	switch g {
	case GradeCopper:
		return "copper"
	case GradeIron:
		return "iron"
	case GradeGold:
		return "gold"
	case GradeTitanium:
		return "titanium"
	default:
		return "unknown"
	}
}

// Tile is the content of one grid cell. The ore variants are laid out
// contiguously so that Ore(grade) is a simple offset.
type Tile uint8

const (
	TileAir Tile = iota
	TileRegolith
	TileBoulder
	TileTreasure
	TileCopper
	TileIron
	TileGold
	TileTitanium

	tileCount
)

// tilePoints is the score awarded for mining each tile.
var tilePoints = [tileCount]uint{
	TileAir:      0,
	TileRegolith: 10,
	TileBoulder:  0,
	TileTreasure: 500,
	TileCopper:   15,
	TileIron:     25,
	TileGold:     50,
	TileTitanium: 100,
}

// Ore returns the ore tile of the given grade.
func Ore(g OreGrade) Tile {
	if g > GradeTitanium {
		g = GradeCopper
	}
	return TileCopper + Tile(g)
}

// IsOre reports whether the tile is one of the ore variants.
func (t Tile) IsOre() bool {
	return t >= TileCopper && t <= TileTitanium
}

// Grade returns the ore grade of an ore tile.
func (t Tile) Grade() (OreGrade, bool) {
	if !t.IsOre() {
		return 0, false
	}
	return OreGrade(t - TileCopper), true
}

// Points returns the score for mining this tile.
func (t Tile) Points() uint {
	if t >= tileCount {
		return 0
	}
	return tilePoints[t]
}

// Char returns the character used in text dumps.
func (t Tile) Char() rune {
	switch {
	case t == TileAir:
		return '.'
	case t == TileRegolith:
		return '#'
	case t == TileBoulder:
		return 'B'
	case t == TileTreasure:
		return 'T'
	case t.IsOre():
		return 'O'
	default:
		return '?'
	}
}

// String returns a readable tile name.
func (t Tile) String() string {
	switch t {
	case TileAir:
		return "air"
	case TileRegolith:
		return "regolith"
	case TileBoulder:
		return "boulder"
	case TileTreasure:
		return "treasure"
	}
	if g, ok := t.Grade(); ok {
		return fmt.Sprintf("ore(%s)", g)
	}
	return "unknown"
}
