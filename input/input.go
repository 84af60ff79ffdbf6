// Package input polls the keyboard and gamepads and hands the held
// directions to the motion core as intent.
package input

import (
	"math"

	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Binding lists the keys and standard gamepad buttons for one direction.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps each direction to its inputs.
var Bindings = map[config.Direction]Binding{
	config.DirUp: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	config.DirDown: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	config.DirLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	config.DirRight: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
}

// Analog sticks below this magnitude count as released
const stickDeadZone = 0.25

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll returns the directions currently held on any device.
func Poll() config.Direction {
	held := config.DirNone
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for dir, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held |= dir
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					held |= dir
				}
			}
		}
	}

	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		held |= stickDirection(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		)
	}

	return held
}

// stickDirection converts a stick position (screen space, y down) to held
// directions.
func stickDirection(h, v float64) config.Direction {
	held := config.DirNone
	if math.Abs(h) >= stickDeadZone {
		if h > 0 {
			held |= config.DirRight
		} else {
			held |= config.DirLeft
		}
	}
	if math.Abs(v) >= stickDeadZone {
		if v > 0 {
			held |= config.DirDown
		} else {
			held |= config.DirUp
		}
	}
	return held
}

// UpdateIntents writes this frame's held directions to every player.
// Must run BEFORE the motion systems.
func UpdateIntents(w donburi.World) {
	held := Poll()
	tags.Player.Each(w, func(e *donburi.Entry) {
		components.Intent.Get(e).Held = held
	})
}
