// Package termfeed provides a terminal sample.Provider built on tcell.
// Terminals report key presses, not holds, so a key reads down for
// exactly the one frame that drains its event; there is no gamepad.
// Suitable for menu-driven TUIs and for the sandbox demos.
package termfeed

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/padkit/sample"
)

// wheelStep converts one wheel event into counter notches.
const wheelStep = 120

// Feed drains tcell events into per-frame snapshots. Events are read
// on a goroutine owned by the screen; Poll only ever drains the
// channel, so the core never blocks on the terminal.
type Feed struct {
	events chan tcell.Event
	quit   chan struct{}

	prevKeys sample.KeySet
	mouseX   int
	mouseY   int
	buttons  uint8
	wheel    int
}

// New starts draining events from an initialized screen.
func New(screen tcell.Screen) *Feed {
	f := &Feed{
		events: make(chan tcell.Event, 128),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(f.events, f.quit)
	return f
}

// Stop ends event delivery. The feed keeps returning frames with the
// last mouse state and no keys.
func (f *Feed) Stop() {
	close(f.quit)
}

// Poll drains pending events and builds the current frame snapshot.
func (f *Feed) Poll() sample.Frame {
	var keys sample.KeySet
	var text []rune

drain:
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				break drain
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				f.applyKey(e, &keys, &text)
			case *tcell.EventMouse:
				f.applyMouse(e)
			}
		default:
			break drain
		}
	}

	frame := sample.Frame{
		Keys:     keys,
		PrevKeys: f.prevKeys,
		Mouse: sample.MouseState{
			Buttons: f.buttons,
			X:       f.mouseX,
			Y:       f.mouseY,
			Wheel:   f.wheel,
		},
		Text: text,
	}
	f.prevKeys = keys
	return frame
}

func (f *Feed) applyKey(e *tcell.EventKey, keys *sample.KeySet, text *[]rune) {
	if e.Modifiers()&tcell.ModShift != 0 {
		keys.Set(sample.KeyShift)
	}
	if e.Modifiers()&tcell.ModCtrl != 0 {
		keys.Set(sample.KeyControl)
	}
	if e.Modifiers()&tcell.ModAlt != 0 {
		keys.Set(sample.KeyAlt)
	}

	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		if k, shifted, ok := keyFromRune(r); ok {
			keys.Set(k)
			if shifted {
				keys.Set(sample.KeyShift)
			}
		}
		*text = append(*text, r)
		return
	}
	k := e.Key()
	if sk, ok := specialKeys[k]; ok {
		keys.Set(sk)
		return
	}
	// Ctrl+letter arrives as a dedicated key code; report it as the
	// letter with the control modifier. Tab, Enter and Backspace share
	// codes with ctrl letters and are already handled above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		keys.Set(sample.KeyControl)
		keys.Set(sample.KeyA + sample.Key(k-tcell.KeyCtrlA))
	}
}

func (f *Feed) applyMouse(e *tcell.EventMouse) {
	f.mouseX, f.mouseY = e.Position()

	btns := e.Buttons()
	var held sample.MouseState
	if btns&tcell.Button1 != 0 {
		held.SetDown(sample.MouseLeft)
	}
	if btns&tcell.Button2 != 0 {
		held.SetDown(sample.MouseRight)
	}
	if btns&tcell.Button3 != 0 {
		held.SetDown(sample.MouseMiddle)
	}
	f.buttons = held.Buttons

	// Forward scroll decrements the counter so the aggregator's
	// previous-minus-current delta reads positive.
	if btns&tcell.WheelUp != 0 {
		f.wheel -= wheelStep
	}
	if btns&tcell.WheelDown != 0 {
		f.wheel += wheelStep
	}
}

var specialKeys = map[tcell.Key]sample.Key{
	tcell.KeyUp:         sample.KeyUp,
	tcell.KeyDown:       sample.KeyDown,
	tcell.KeyLeft:       sample.KeyLeft,
	tcell.KeyRight:      sample.KeyRight,
	tcell.KeyEnter:      sample.KeyEnter,
	tcell.KeyEscape:     sample.KeyEscape,
	tcell.KeyBackspace:  sample.KeyBackspace,
	tcell.KeyBackspace2: sample.KeyBackspace,
	tcell.KeyTab:        sample.KeyTab,
	tcell.KeyDelete:     sample.KeyDelete,
	tcell.KeyInsert:     sample.KeyInsert,
	tcell.KeyHome:       sample.KeyHome,
	tcell.KeyEnd:        sample.KeyEnd,
	tcell.KeyPgUp:       sample.KeyPageUp,
	tcell.KeyPgDn:       sample.KeyPageDown,
	tcell.KeyF1:         sample.KeyF1,
	tcell.KeyF2:         sample.KeyF2,
	tcell.KeyF3:         sample.KeyF3,
	tcell.KeyF4:         sample.KeyF4,
	tcell.KeyF5:         sample.KeyF5,
	tcell.KeyF6:         sample.KeyF6,
	tcell.KeyF7:         sample.KeyF7,
	tcell.KeyF8:         sample.KeyF8,
	tcell.KeyF9:         sample.KeyF9,
	tcell.KeyF10:        sample.KeyF10,
	tcell.KeyF11:        sample.KeyF11,
	tcell.KeyF12:        sample.KeyF12,
}

var runeKeys = map[rune]sample.Key{
	' ': sample.KeySpace,
	',': sample.KeyComma, '.': sample.KeyPeriod, '/': sample.KeySlash,
	';': sample.KeySemicolon, '\'': sample.KeyApostrophe,
	'-': sample.KeyMinus, '=': sample.KeyEqual,
	'[': sample.KeyLeftBracket, ']': sample.KeyRightBracket,
	'\\': sample.KeyBackslash, '`': sample.KeyBacktick,
}

// keyFromRune maps a text rune onto the neutral key space. shifted
// reports an uppercase letter, so the synthetic shift key can be set.
func keyFromRune(r rune) (k sample.Key, shifted, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return sample.KeyA + sample.Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return sample.KeyA + sample.Key(r-'A'), true, true
	case r >= '0' && r <= '9':
		return sample.Key0 + sample.Key(r-'0'), false, true
	}
	if k, ok := runeKeys[r]; ok {
		return k, false, true
	}
	return sample.KeyNone, false, false
}
