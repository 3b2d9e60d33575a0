package sample

// Key identifies a keyboard key in a device-neutral code space.
// Codes stay below 128 so a KeySet fits in two words.
type Key uint8

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyTab
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyShift
	KeyControl
	KeyAlt

	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyApostrophe
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeyBacktick

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

var keyNames = map[Key]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyUp: "up", KeyDown: "down", KeyLeft: "left", KeyRight: "right",

	KeyEnter: "enter", KeyEscape: "escape", KeySpace: "space",
	KeyBackspace: "backspace", KeyTab: "tab", KeyDelete: "delete",
	KeyInsert: "insert", KeyHome: "home", KeyEnd: "end",
	KeyPageUp: "pageup", KeyPageDown: "pagedown",

	KeyShift: "shift", KeyControl: "control", KeyAlt: "alt",

	KeyComma: "comma", KeyPeriod: "period", KeySlash: "slash",
	KeySemicolon: "semicolon", KeyApostrophe: "apostrophe",
	KeyMinus: "minus", KeyEqual: "equal",
	KeyLeftBracket: "leftbracket", KeyRightBracket: "rightbracket",
	KeyBackslash: "backslash", KeyBacktick: "backtick",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4",
	KeyF5: "f5", KeyF6: "f6", KeyF7: "f7", KeyF8: "f8",
	KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, n := range keyNames {
		m[n] = k
	}
	return m
}()

// KeyName returns the canonical lowercase name for k, or "" if k has none.
func KeyName(k Key) string {
	return keyNames[k]
}

// KeyByName resolves a canonical key name. Used by the binding
// persistence layer.
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

var padNames = map[PadButton]string{
	PadA: "a", PadB: "b", PadX: "x", PadY: "y",
	PadL1: "l1", PadR1: "r1", PadL2: "l2", PadR2: "r2",
	PadSelect: "select", PadStart: "start", PadL3: "l3", PadR3: "r3",
	PadUp: "dpad_up", PadDown: "dpad_down", PadLeft: "dpad_left", PadRight: "dpad_right",
}

var padsByName = func() map[string]PadButton {
	m := make(map[string]PadButton, len(padNames))
	for b, n := range padNames {
		m[n] = b
	}
	return m
}()

// PadName returns the canonical name for pad button b.
func PadName(b PadButton) string {
	return padNames[b]
}

// PadByName resolves a canonical pad button name.
func PadByName(name string) (PadButton, bool) {
	b, ok := padsByName[name]
	return b, ok
}

var mouseNames = map[MouseButton]string{
	MouseLeft:   "left",
	MouseRight:  "right",
	MouseMiddle: "middle",
}

var mouseByName = func() map[string]MouseButton {
	m := make(map[string]MouseButton, len(mouseNames))
	for b, n := range mouseNames {
		m[n] = b
	}
	return m
}()

// MouseName returns the canonical name for mouse button b.
func MouseName(b MouseButton) string {
	return mouseNames[b]
}

// MouseByName resolves a canonical mouse button name.
func MouseByName(name string) (MouseButton, bool) {
	b, ok := mouseByName[name]
	return b, ok
}
