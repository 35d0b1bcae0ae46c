package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/melonfall/common"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func (g *Game) drawHUD(screen *ebiten.Image) {
	drawLabel(screen, fmt.Sprintf("SCORE %d", g.world.Score), 12, 10)
	drawLabel(screen, fmt.Sprintf("BEST  %d", g.best), 12, 28)
	if g.mixer.Muted() {
		drawLabel(screen, "MUTED", common.BaseWidth-64, 10)
	}

	if g.debug {
		msg := fmt.Sprintf("TPS %.0f  FPS %.0f  bodies %d  tick %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), len(g.world.Bodies), g.world.Tick())
		ebitenutil.DebugPrintAt(screen, msg, 8, common.BaseHeight-24)
	}
}

func drawLabel(dst *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(dst, s, hudFace, op)
}
