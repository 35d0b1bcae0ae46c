package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/melonfall/common"
	"github.com/milk9111/melonfall/sim"
)

var (
	backgroundColor = color.NRGBA{R: 0x1c, G: 0x1e, B: 0x26, A: 0xff}
	wallColor       = color.NRGBA{R: 0x5a, G: 0x5f, B: 0x73, A: 0xff}
	dangerColor     = color.NRGBA{R: 0xd9, G: 0x53, B: 0x4f, A: 0x78}
	guideColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
	rimColor        = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x55}
)

// tierPalette indexes by tier; one entry per rung of the size ladder.
var tierPalette = []color.NRGBA{
	{R: 0xe6, G: 0x45, B: 0x53, A: 0xff},
	{R: 0xf0, G: 0x8a, B: 0x5d, A: 0xff},
	{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
	{R: 0xf7, G: 0xc7, B: 0x44, A: 0xff},
	{R: 0xe8, G: 0x7e, B: 0x3c, A: 0xff},
	{R: 0xd9, G: 0x30, B: 0x25, A: 0xff},
	{R: 0xf2, G: 0xe9, B: 0xa0, A: 0xff},
	{R: 0xf5, G: 0xa8, B: 0xc0, A: 0xff},
	{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff},
	{R: 0x8c, G: 0xc8, B: 0x61, A: 0xff},
	{R: 0x2e, G: 0x8b, B: 0x3c, A: 0xff},
}

func tierColor(tier int) color.NRGBA {
	if tier < 0 || tier >= len(tierPalette) {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return tierPalette[tier]
}

// drawArena paints the backdrop, the walls and floor, and the line the
// pile should stay under.
func drawArena(dst *ebiten.Image, dangerY float32) {
	dst.Fill(backgroundColor)

	w := float32(common.BaseWidth)
	h := float32(common.BaseHeight)
	vector.StrokeLine(dst, 1, 0, 1, h, 2, wallColor, false)
	vector.StrokeLine(dst, w-1, 0, w-1, h, 2, wallColor, false)
	vector.StrokeLine(dst, 0, h-1, w, h-1, 2, wallColor, false)

	vector.StrokeLine(dst, 0, dangerY, w, dangerY, 1, dangerColor, false)
}

// drawBody renders one circle. ghost draws it translucent, which is how
// the pending body waits above the arena.
func drawBody(dst *ebiten.Image, b *sim.Body, ghost bool) {
	c := tierColor(b.Tier)
	if ghost {
		c.A = 0xa0
	}
	cx := float32(b.Pos.X)
	cy := float32(b.Pos.Y)
	r := float32(b.Radius())
	vector.DrawFilledCircle(dst, cx, cy, r, c, true)
	vector.StrokeCircle(dst, cx, cy, r, 2, rimColor, true)
}

// drawGuide drops a faint aim line from the pending body to the floor.
func drawGuide(dst *ebiten.Image, pending *sim.Body) {
	x := float32(pending.Pos.X)
	top := float32(pending.Pos.Y + pending.Radius())
	vector.StrokeLine(dst, x, top, x, float32(common.BaseHeight), 1, guideColor, false)
}
