// Package ebiteninput adapts Ebitengine's input polling to an
// arbor.InputSource. Construct a Source and pass it to arbor.Config; call
// nothing else, the engine reads it once per frame.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/arbor"
)

// Source polls ebiten's cursor, mouse buttons, wheel, and modifier keys.
// The zero value is ready to use.
type Source struct{}

// ReadInput captures the current frame's input snapshot.
func (Source) ReadInput() arbor.InputState {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()

	var state arbor.InputState
	state.MousePos = arbor.Vec2{X: float64(mx), Y: float64(my)}
	state.Buttons[arbor.MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.Buttons[arbor.MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	state.Buttons[arbor.MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	state.Wheel = wheelY
	state.Modifiers = readModifiers()
	state.DeltaSeconds = 1.0 / float64(ebiten.TPS())
	return state
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() arbor.KeyModifiers {
	var mods arbor.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= arbor.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= arbor.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= arbor.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= arbor.ModMeta
	}
	return mods
}
