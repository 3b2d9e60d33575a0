package input

import (
	"fmt"
	"log"
	"unicode"

	"github.com/lixenwraith/padkit/sample"
	"github.com/lixenwraith/padkit/signal"
)

// Aggregator owns the logical-id → signal mapping and is the single
// per-frame update entry point. It drives every registered button and
// axis from one frame snapshot, tracks the wheel delta and cursor
// position, and provides lock/mock facilities for deterministic runs.
//
// The aggregator is constructed and threaded explicitly by the host
// loop; there is no package-level instance.
type Aggregator struct {
	provider sample.Provider
	logger   *log.Logger

	buttons     map[signal.ID]*signal.Button
	axes        map[signal.ID]*signal.Axis
	buttonOrder []signal.ID
	axisOrder   []signal.ID

	locked bool
	frame  sample.Frame

	wheelPrimed bool
	prevWheel   int
	wheelDelta  int
	cursorX     int
	cursorY     int

	capturing  bool
	captureMax int
	text       []rune

	warned map[signal.ID]bool
}

// New creates an aggregator reading snapshots from provider.
// Diagnostics go to the default logger; hosts redirect it the same way
// they redirect the rest of their logging.
func New(provider sample.Provider) *Aggregator {
	return &Aggregator{
		provider: provider,
		logger:   log.Default(),
		buttons:  make(map[signal.ID]*signal.Button),
		axes:     make(map[signal.ID]*signal.Axis),
		warned:   make(map[signal.ID]bool),
	}
}

// SetLogger replaces the diagnostic logger. A nil logger silences
// diagnostics entirely.
func (a *Aggregator) SetLogger(l *log.Logger) {
	a.logger = l
}

// --- Registration ---

// RegisterButton adds bindings to the button for id, creating it on
// first reference.
func (a *Aggregator) RegisterButton(id signal.ID, bindings ...signal.Binding) *signal.Button {
	b := a.getOrCreateButton(id)
	b.Register(bindings...)
	return b
}

// RegisterAxis adds bindings to the axis for id, creating it on first
// reference.
func (a *Aggregator) RegisterAxis(id signal.ID, bindings ...signal.Binding) *signal.Axis {
	ax := a.getOrCreateAxis(id)
	ax.Register(bindings...)
	return ax
}

func (a *Aggregator) getOrCreateButton(id signal.ID) *signal.Button {
	if b, ok := a.buttons[id]; ok {
		return b
	}
	b := signal.NewButton(id)
	a.buttons[id] = b
	a.buttonOrder = append(a.buttonOrder, id)
	return b
}

func (a *Aggregator) getOrCreateAxis(id signal.ID) *signal.Axis {
	if ax, ok := a.axes[id]; ok {
		return ax
	}
	ax := signal.NewAxis(id)
	a.axes[id] = ax
	a.axisOrder = append(a.axisOrder, id)
	return ax
}

// Button returns the button for id if registered.
func (a *Aggregator) Button(id signal.ID) (*signal.Button, bool) {
	b, ok := a.buttons[id]
	return b, ok
}

// Axis returns the axis for id if registered.
func (a *Aggregator) Axis(id signal.ID) (*signal.Axis, bool) {
	ax, ok := a.axes[id]
	return ax, ok
}

// MustAxis returns the axis for id and panics if it was never
// registered. Axes are expected to be registered before first use;
// a missing one is a wrong id table, not a runtime condition.
func (a *Aggregator) MustAxis(id signal.ID) *signal.Axis {
	ax, ok := a.axes[id]
	if !ok {
		panic(fmt.Sprintf("input: axis %d queried before registration", id))
	}
	return ax
}

// ButtonIDs returns registered button ids in registration order.
func (a *Aggregator) ButtonIDs() []signal.ID {
	out := make([]signal.ID, len(a.buttonOrder))
	copy(out, a.buttonOrder)
	return out
}

// AxisIDs returns registered axis ids in registration order.
func (a *Aggregator) AxisIDs() []signal.ID {
	out := make([]signal.ID, len(a.axisOrder))
	copy(out, a.axisOrder)
	return out
}

// --- Per-frame update ---

// Update drives all signals from a fresh snapshot. Must be invoked
// exactly once per host frame, before any other system queries signals
// for that frame. While locked it is a no-op and the previous frame's
// queryable state stays intact.
func (a *Aggregator) Update() {
	if a.locked {
		return
	}
	a.apply(a.provider.Poll())
}

func (a *Aggregator) apply(f sample.Frame) {
	for _, id := range a.buttonOrder {
		a.buttons[id].Update(f)
	}
	for _, id := range a.axisOrder {
		a.axes[id].Update(f)
	}

	// Wheel delta is previous minus current so a counter dropping on
	// forward scroll yields a positive delta.
	if a.wheelPrimed {
		a.wheelDelta = a.prevWheel - f.Mouse.Wheel
	} else {
		a.wheelDelta = 0
		a.wheelPrimed = true
	}
	a.prevWheel = f.Mouse.Wheel

	// Cursor position is always observable, even when buttons are
	// suppressed by consumption.
	a.cursorX, a.cursorY = f.Mouse.X, f.Mouse.Y

	a.frame = f

	if a.capturing {
		a.captureFrame(f)
	}
}

// Lock engages or releases the global input lock. Engaging first feeds
// an empty sample through every signal so no stale down state leaks
// across the lock boundary; everything then reads released/zero and
// stays frozen until the lock is lifted. Cursor and wheel state keep
// their pre-lock values.
func (a *Aggregator) Lock(on bool) {
	if on && !a.locked {
		empty := sample.Empty()
		for _, id := range a.buttonOrder {
			a.buttons[id].Update(empty)
		}
		for _, id := range a.axisOrder {
			a.axes[id].Update(empty)
		}
	}
	a.locked = on
}

// Locked reports whether the input lock is engaged.
func (a *Aggregator) Locked() bool {
	return a.locked
}

// --- Mock injection ---

// MockPress forces a press on the button for id, creating it on first
// reference. Downstream pressed semantics match a real transition.
func (a *Aggregator) MockPress(id signal.ID) {
	a.getOrCreateButton(id).Press()
}

// MockAxis forces a value on the axis for id, creating it on first
// reference. Downstream tick semantics match a real transition.
func (a *Aggregator) MockAxis(id signal.ID, v sample.Vec) {
	a.getOrCreateAxis(id).Mock(v)
}

// --- Queries ---

// Pressed reports the press edge for id, subject to consumption.
// Unregistered ids log a diagnostic once and read false.
func (a *Aggregator) Pressed(id signal.ID) bool { return a.pressed(id, false) }

// PressedRaw reports the press edge for id ignoring consumption.
func (a *Aggregator) PressedRaw(id signal.ID) bool { return a.pressed(id, true) }

// Down reports the held state for id, subject to consumption.
func (a *Aggregator) Down(id signal.ID) bool { return a.down(id, false) }

// DownRaw reports the held state for id ignoring consumption.
func (a *Aggregator) DownRaw(id signal.ID) bool { return a.down(id, true) }

// Released reports the release edge for id, subject to consumption.
func (a *Aggregator) Released(id signal.ID) bool { return a.released(id, false) }

// ReleasedRaw reports the release edge for id ignoring consumption.
func (a *Aggregator) ReleasedRaw(id signal.ID) bool { return a.released(id, true) }

func (a *Aggregator) pressed(id signal.ID, raw bool) bool {
	b, ok := a.buttons[id]
	if !ok {
		a.warnMissing(id)
		return false
	}
	return b.Pressed(raw)
}

func (a *Aggregator) down(id signal.ID, raw bool) bool {
	b, ok := a.buttons[id]
	if !ok {
		a.warnMissing(id)
		return false
	}
	return b.Down(raw)
}

func (a *Aggregator) released(id signal.ID, raw bool) bool {
	b, ok := a.buttons[id]
	if !ok {
		a.warnMissing(id)
		return false
	}
	return b.Released(raw)
}

func (a *Aggregator) warnMissing(id signal.ID) {
	if a.warned[id] {
		return
	}
	a.warned[id] = true
	if a.logger != nil {
		a.logger.Printf("input: query for unregistered button id %d", id)
	}
}

// Shortcut reports true only on the frame key transitions down while
// every modifier was already held on the previous frame and still is.
func (a *Aggregator) Shortcut(key sample.Key, mods ...sample.Key) bool {
	f := a.frame
	if !f.Keys.Down(key) || f.PrevKeys.Down(key) {
		return false
	}
	for _, m := range mods {
		if !f.Keys.Down(m) || !f.PrevKeys.Down(m) {
			return false
		}
	}
	return true
}

// CursorPosition returns the last observed mouse position.
func (a *Aggregator) CursorPosition() (int, int) {
	return a.cursorX, a.cursorY
}

// WheelDelta returns this frame's scroll delta (previous counter minus
// current counter).
func (a *Aggregator) WheelDelta() int {
	return a.wheelDelta
}

// --- Consumption ---

// Consume claims the button for id and propagates the claim to every
// other button sharing at least one physical binding with it, so one
// hardware press cannot be double-handled under a different logical id.
func (a *Aggregator) Consume(id signal.ID) {
	b, ok := a.buttons[id]
	if !ok {
		a.warnMissing(id)
		return
	}
	b.Consume()
	mine := b.Bindings()
	for _, otherID := range a.buttonOrder {
		if otherID == id {
			continue
		}
		other := a.buttons[otherID]
		if signal.SharesBinding(mine, other.Bindings()) {
			other.Consume()
		}
	}
}

// ConsumeAxis claims the axis for id. Axis consumption never propagates.
func (a *Aggregator) ConsumeAxis(id signal.ID) {
	if ax, ok := a.axes[id]; ok {
		ax.Consume()
	}
}

// ConsumeAll claims every registered button and axis for this frame.
func (a *Aggregator) ConsumeAll() {
	for _, id := range a.buttonOrder {
		a.buttons[id].Consume()
	}
	for _, id := range a.axisOrder {
		a.axes[id].Consume()
	}
}

// --- Text capture ---

// CaptureText toggles the keyboard text side channel. While enabled,
// printable characters accumulate up to maxLen and backspace trims the
// last one. Disabling clears the buffer.
func (a *Aggregator) CaptureText(enable bool, maxLen int) {
	a.capturing = enable
	a.captureMax = maxLen
	if !enable {
		a.text = a.text[:0]
	}
}

// TypedText returns the accumulated captured text.
func (a *Aggregator) TypedText() string {
	return string(a.text)
}

func (a *Aggregator) captureFrame(f sample.Frame) {
	// Backspace arrives as a key edge on most providers.
	if f.Keys.Down(sample.KeyBackspace) && !f.PrevKeys.Down(sample.KeyBackspace) {
		a.trimText()
	}
	for _, r := range f.Text {
		switch r {
		case '\n', '\r', 0x1b:
			// Control characters never enter the buffer.
		case '\b', 0x7f:
			a.trimText()
		default:
			if unicode.IsPrint(r) && len(a.text) < a.captureMax {
				a.text = append(a.text, r)
			}
		}
	}
}

func (a *Aggregator) trimText() {
	if len(a.text) > 0 {
		a.text = a.text[:len(a.text)-1]
	}
}
