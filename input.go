package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame input state for the drop loop.
type Input struct {
	// CursorX is the pointer position in logical pixels. CursorMoved is
	// true only on frames where the pointer actually moved, so a parked
	// mouse doesn't fight the keyboard for the pending body.
	CursorX     float64
	CursorMoved bool
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// Single-frame edges.
	DropPressed  bool
	ResetPressed bool
	PausePressed bool
	MutePressed  bool

	prevCursorX int
	prevCursorY int
}

func NewInput() *Input { return &Input{} }

// Update polls the keyboard, mouse and first gamepad.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.CursorMoved = mx != i.prevCursorX || my != i.prevCursorY
	i.prevCursorX, i.prevCursorY = mx, my
	i.CursorX = float64(mx)

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	var gpDrop, gpPause bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		gpDrop = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpPause = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
	i.MoveX = moveX

	i.DropPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		gpDrop
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpDrop
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gpPause
	i.MutePressed = inpututil.IsKeyJustPressed(ebiten.KeyM)
}
