package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/blockjump/component"
)

var controlKeys = map[component.Control][]ebiten.Key{
	component.ControlLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	component.ControlRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	component.ControlJump:  {ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
	component.ControlDebug: {ebiten.KeyL},
}

// pollControls copies keyboard and gamepad state into in. With movement off
// only the debug toggle is read, leaving the rest to the autopilot.
func pollControls(in *component.Input, movement bool) {
	var padLeft, padRight, padJump bool
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		padLeft = x < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
		padRight = x > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)
		padJump = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	for c, keys := range controlKeys {
		if !movement && c != component.ControlDebug {
			continue
		}
		held := anyKeyPressed(keys)
		switch c {
		case component.ControlLeft:
			held = held || padLeft
		case component.ControlRight:
			held = held || padRight
		case component.ControlJump:
			held = held || padJump
		}
		in.Set(c, held)
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF12)
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func copyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}

func respawnPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// clickPosition returns the cursor position on the frame the left button
// goes down.
func clickPosition() (float64, float64, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}
