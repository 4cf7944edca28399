package miner

import (
	"fmt"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

// tileStyle is how a tile appears on screen.
type tileStyle struct {
	r     rune
	color core.Color
}

var oreStyles = map[world.OreGrade]tileStyle{
	world.GradeCopper:   {'o', core.ColorOrange},
	world.GradeIron:     {'o', core.ColorWhite},
	world.GradeGold:     {'o', core.ColorYellow},
	world.GradeTitanium: {'o', core.ColorBrightCyan},
}

func styleFor(t world.Tile) tileStyle {
	if grade, ok := t.Grade(); ok {
		return oreStyles[grade]
	}
	switch t {
	case world.TileRegolith:
		return tileStyle{'▒', core.ColorBrown}
	case world.TileBoulder:
		return tileStyle{'█', core.ColorGray}
	case world.TileTreasure:
		return tileStyle{'$', core.ColorBrightYellow}
	default:
		return tileStyle{' ', core.ColorDefault}
	}
}

// Render draws the HUD and the part of the world around the player.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	snap := g.sim.Snapshot()

	g.renderHUD(dst, snap)
	g.renderWorld(dst, snap)

	if snap.Status.Terminated() {
		switch snap.Status.Reason {
		case world.ReasonOutOfFuel:
			renderOverlay(dst, "Out of fuel!", fmt.Sprintf("Final Score: %d", snap.Player.Score))
		default:
			renderOverlay(dst, "Surfaced", fmt.Sprintf("Final Score: %d", snap.Player.Score))
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap world.Snapshot) {
	hud := fmt.Sprintf(" %s | Score: %d  Fuel: %d  Depth: %d",
		g.preset.Title, snap.Player.Score, snap.Player.Fuel, snap.Player.Pos.Y)
	dst.DrawText(0, 0, hud)

	fuelColor := core.ColorGreen
	if snap.Player.Fuel <= g.cfg.Player.MoveCost*3 {
		fuelColor = core.ColorRed
	}
	// Recolor the fuel figure
	label := fmt.Sprintf("Fuel: %d", snap.Player.Fuel)
	if i := indexRunes(hud, label); i >= 0 {
		dst.DrawTextColored(i, 0, label, fuelColor)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWorld draws tiles and the player, scrolling to keep the player visible.
func (g *Game) renderWorld(dst *core.Screen, snap world.Snapshot) {
	viewW := dst.Width()
	viewH := dst.Height() - hudHeight
	if viewW <= 0 || viewH <= 0 {
		return
	}

	originX, offsetX := camera(snap.Player.Pos.X, snap.Width, viewW)
	originY, offsetY := camera(snap.Player.Pos.Y, snap.Height, viewH)

	for sy := 0; sy < viewH && originY+sy < snap.Height; sy++ {
		for sx := 0; sx < viewW && originX+sx < snap.Width; sx++ {
			c := world.C(originX+sx, originY+sy)
			st := styleFor(snap.At(c))
			if c == snap.Player.Pos {
				st = tileStyle{'M', core.ColorBrightGreen}
			}
			dst.SetColored(offsetX+sx, hudHeight+offsetY+sy, st.r, st.color)
		}
	}
}

// camera returns the first world column (or row) in view and the screen
// offset that centers a world smaller than the view.
func camera(pos, size, view int) (origin, offset int) {
	if size <= view {
		return 0, (view - size) / 2
	}
	origin = core.Clamp(pos-view/2, 0, size-view)
	return origin, 0
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// indexRunes returns the rune offset of sub in s, or -1.
func indexRunes(s, sub string) int {
	rs, subRs := []rune(s), []rune(sub)
	for i := 0; i+len(subRs) <= len(rs); i++ {
		if string(rs[i:i+len(subRs)]) == sub {
			return i
		}
	}
	return -1
}
