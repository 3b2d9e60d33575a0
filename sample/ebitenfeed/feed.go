// Package ebitenfeed provides a desktop sample.Provider built on
// ebiten's per-frame polling API. It is the only provider with full
// gamepad, wheel, and character-input coverage.
package ebitenfeed

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/padkit/sample"
)

// wheelStep converts ebiten's wheel units into counter notches.
const wheelStep = 120

// Feed assembles one frame snapshot per Poll from ebiten state.
// Call Poll exactly once per ebiten Update.
type Feed struct {
	prevKeys sample.KeySet
	wheel    int

	// scratch buffers reused across frames
	keys  []ebiten.Key
	chars []rune
	pads  []ebiten.GamepadID
}

// New creates an ebiten-backed provider.
func New() *Feed {
	return &Feed{}
}

// Poll builds the current frame snapshot.
func (f *Feed) Poll() sample.Frame {
	var frame sample.Frame

	f.keys = inpututil.AppendPressedKeys(f.keys[:0])
	for _, k := range f.keys {
		if sk, ok := keyFromEbiten(k); ok {
			frame.Keys.Set(sk)
		}
	}
	frame.PrevKeys = f.prevKeys
	f.prevKeys = frame.Keys

	frame.Mouse.X, frame.Mouse.Y = ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		frame.Mouse.SetDown(sample.MouseLeft)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		frame.Mouse.SetDown(sample.MouseRight)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		frame.Mouse.SetDown(sample.MouseMiddle)
	}

	// Forward scroll decrements the counter so the aggregator's
	// previous-minus-current delta reads positive.
	_, wy := ebiten.Wheel()
	f.wheel -= int(math.Round(wy * wheelStep))
	frame.Mouse.Wheel = f.wheel

	f.pads = ebiten.AppendGamepadIDs(f.pads[:0])
	for _, id := range f.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		frame.Pad.Connected = true
		for pb, eb := range padButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, eb) {
				frame.Pad.SetDown(pb)
			}
		}
		frame.Pad.Left = sample.Vec{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		frame.Pad.Right = sample.Vec{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		}
		break
	}

	f.chars = ebiten.AppendInputChars(f.chars[:0])
	if len(f.chars) > 0 {
		frame.Text = append([]rune(nil), f.chars...)
	}

	return frame
}

var padButtons = map[sample.PadButton]ebiten.StandardGamepadButton{
	sample.PadA:      ebiten.StandardGamepadButtonRightBottom,
	sample.PadB:      ebiten.StandardGamepadButtonRightRight,
	sample.PadX:      ebiten.StandardGamepadButtonRightLeft,
	sample.PadY:      ebiten.StandardGamepadButtonRightTop,
	sample.PadL1:     ebiten.StandardGamepadButtonFrontTopLeft,
	sample.PadR1:     ebiten.StandardGamepadButtonFrontTopRight,
	sample.PadL2:     ebiten.StandardGamepadButtonFrontBottomLeft,
	sample.PadR2:     ebiten.StandardGamepadButtonFrontBottomRight,
	sample.PadSelect: ebiten.StandardGamepadButtonCenterLeft,
	sample.PadStart:  ebiten.StandardGamepadButtonCenterRight,
	sample.PadL3:     ebiten.StandardGamepadButtonLeftStick,
	sample.PadR3:     ebiten.StandardGamepadButtonRightStick,
	sample.PadUp:     ebiten.StandardGamepadButtonLeftTop,
	sample.PadDown:   ebiten.StandardGamepadButtonLeftBottom,
	sample.PadLeft:   ebiten.StandardGamepadButtonLeftLeft,
	sample.PadRight:  ebiten.StandardGamepadButtonLeftRight,
}

var keyTable = map[ebiten.Key]sample.Key{
	ebiten.KeyA: sample.KeyA, ebiten.KeyB: sample.KeyB, ebiten.KeyC: sample.KeyC,
	ebiten.KeyD: sample.KeyD, ebiten.KeyE: sample.KeyE, ebiten.KeyF: sample.KeyF,
	ebiten.KeyG: sample.KeyG, ebiten.KeyH: sample.KeyH, ebiten.KeyI: sample.KeyI,
	ebiten.KeyJ: sample.KeyJ, ebiten.KeyK: sample.KeyK, ebiten.KeyL: sample.KeyL,
	ebiten.KeyM: sample.KeyM, ebiten.KeyN: sample.KeyN, ebiten.KeyO: sample.KeyO,
	ebiten.KeyP: sample.KeyP, ebiten.KeyQ: sample.KeyQ, ebiten.KeyR: sample.KeyR,
	ebiten.KeyS: sample.KeyS, ebiten.KeyT: sample.KeyT, ebiten.KeyU: sample.KeyU,
	ebiten.KeyV: sample.KeyV, ebiten.KeyW: sample.KeyW, ebiten.KeyX: sample.KeyX,
	ebiten.KeyY: sample.KeyY, ebiten.KeyZ: sample.KeyZ,

	ebiten.KeyDigit0: sample.Key0, ebiten.KeyDigit1: sample.Key1,
	ebiten.KeyDigit2: sample.Key2, ebiten.KeyDigit3: sample.Key3,
	ebiten.KeyDigit4: sample.Key4, ebiten.KeyDigit5: sample.Key5,
	ebiten.KeyDigit6: sample.Key6, ebiten.KeyDigit7: sample.Key7,
	ebiten.KeyDigit8: sample.Key8, ebiten.KeyDigit9: sample.Key9,

	ebiten.KeyArrowUp:   sample.KeyUp,
	ebiten.KeyArrowDown: sample.KeyDown,
	ebiten.KeyArrowLeft: sample.KeyLeft, ebiten.KeyArrowRight: sample.KeyRight,

	ebiten.KeyEnter: sample.KeyEnter, ebiten.KeyEscape: sample.KeyEscape,
	ebiten.KeySpace: sample.KeySpace, ebiten.KeyBackspace: sample.KeyBackspace,
	ebiten.KeyTab: sample.KeyTab, ebiten.KeyDelete: sample.KeyDelete,
	ebiten.KeyInsert: sample.KeyInsert, ebiten.KeyHome: sample.KeyHome,
	ebiten.KeyEnd: sample.KeyEnd, ebiten.KeyPageUp: sample.KeyPageUp,
	ebiten.KeyPageDown: sample.KeyPageDown,

	ebiten.KeyShift: sample.KeyShift, ebiten.KeyControl: sample.KeyControl,
	ebiten.KeyAlt: sample.KeyAlt,

	ebiten.KeyComma: sample.KeyComma, ebiten.KeyPeriod: sample.KeyPeriod,
	ebiten.KeySlash: sample.KeySlash, ebiten.KeySemicolon: sample.KeySemicolon,
	ebiten.KeyApostrophe: sample.KeyApostrophe, ebiten.KeyMinus: sample.KeyMinus,
	ebiten.KeyEqual: sample.KeyEqual, ebiten.KeyLeftBracket: sample.KeyLeftBracket,
	ebiten.KeyRightBracket: sample.KeyRightBracket,
	ebiten.KeyBackslash:    sample.KeyBackslash,
	ebiten.KeyBackquote:    sample.KeyBacktick,

	ebiten.KeyF1: sample.KeyF1, ebiten.KeyF2: sample.KeyF2,
	ebiten.KeyF3: sample.KeyF3, ebiten.KeyF4: sample.KeyF4,
	ebiten.KeyF5: sample.KeyF5, ebiten.KeyF6: sample.KeyF6,
	ebiten.KeyF7: sample.KeyF7, ebiten.KeyF8: sample.KeyF8,
	ebiten.KeyF9: sample.KeyF9, ebiten.KeyF10: sample.KeyF10,
	ebiten.KeyF11: sample.KeyF11, ebiten.KeyF12: sample.KeyF12,
}

func keyFromEbiten(k ebiten.Key) (sample.Key, bool) {
	sk, ok := keyTable[k]
	return sk, ok
}
