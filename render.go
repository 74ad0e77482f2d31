package main

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/blockjump/common"
	"github.com/milk9111/blockjump/levels"
	"github.com/milk9111/blockjump/prefabs"
	"golang.org/x/image/colornames"
)

type Palette struct {
	Background color.Color
	Avatar     color.Color
	Stone      color.Color
	Breakable  color.Color
	JumpPower  color.Color
	GridLine   color.Color
}

func newPalette(p prefabs.PaletteSpec) Palette {
	return Palette{
		Background: p.Background.Or(colornames.White),
		Avatar:     p.Avatar.Or(color.NRGBA{R: 80, G: 80, B: 200, A: 255}),
		Stone:      p.Stone.Or(color.NRGBA{R: 80, G: 80, B: 80, A: 255}),
		Breakable:  p.Breakable.Or(color.NRGBA{R: 175, G: 175, B: 210, A: 255}),
		JumpPower:  p.JumpPower.Or(colornames.Forestgreen),
		GridLine:   p.GridLine.Or(color.NRGBA{R: 150, G: 150, B: 150, A: 77}),
	}
}

// tileColor returns how t is drawn. Rainbow tiles change colour every frame.
func (p Palette) tileColor(t levels.Tile) (color.Color, bool) {
	switch t {
	case levels.Stone:
		return p.Stone, true
	case levels.Rainbow:
		return color.NRGBA{R: uint8(rand.IntN(256)), G: uint8(rand.IntN(256)), B: uint8(rand.IntN(256)), A: 255}, true
	case levels.Breakable:
		return p.Breakable, true
	case levels.JumpPower:
		return p.JumpPower, true
	default:
		return nil, false
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.world
	ts := float32(g.tileSize)
	gw, gh := float32(w.Grid.Width)*ts, float32(w.Grid.Height)*ts

	vector.FillRect(screen, 0, 0, gw, gh, g.palette.Background, false)

	for x := 0; x < w.Grid.Width; x++ {
		for y := 0; y < w.Grid.Height; y++ {
			c, ok := g.palette.tileColor(w.Grid.At(x, y))
			if !ok {
				continue
			}
			// One pixel of overlap hides seams at fractional tile sizes.
			vector.FillRect(screen, float32(x)*ts, float32(y)*ts, ts+1, ts+1, c, false)
		}
	}

	if w.Debug {
		for x := 0; x <= w.Grid.Width; x++ {
			vector.StrokeLine(screen, float32(x)*ts, 0, float32(x)*ts, gh, 1, g.palette.GridLine, false)
		}
		for y := 0; y <= w.Grid.Height; y++ {
			vector.StrokeLine(screen, 0, float32(y)*ts, gw, float32(y)*ts, 1, g.palette.GridLine, false)
		}
	}

	// Draw between the last two physics positions by the fraction of a step
	// still waiting in the accumulator.
	b := w.Body
	alpha := 0.0
	if g.stepper.Step > 0 {
		alpha = g.stepper.Pending() / g.stepper.Step
	}
	cx := float32(common.Lerp(b.LastPos.X, b.Pos.X, alpha)) * ts
	cy := float32(common.Lerp(b.LastPos.Y, b.Pos.Y, alpha)) * ts
	bw, bh := float32(b.Width), float32(b.Height)
	vector.FillRect(screen, cx-bw/2, cy-bh/2, bw, bh, g.palette.Avatar, false)

	if w.Debug {
		// Hitbox at the last physics position, without interpolation.
		bb := b.Bounds()
		red := color.NRGBA{R: 255, G: 80, B: 80, A: 255}
		vector.StrokeRect(screen, float32(bb.L)*ts, float32(bb.B)*ts,
			float32(bb.R-bb.L)*ts, float32(bb.T-bb.B)*ts, 1, red, false)
		vector.FillRect(screen, cx-2, cy-2, 4, 4, red, false)
	}
}

func drawDebugText(screen *ebiten.Image, lines []string) {
	const lineHeight = 16
	vector.FillRect(screen, 4, 4, 300, float32(len(lines)*lineHeight+8), color.NRGBA{A: 160}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 8+i*lineHeight)
	}
}
