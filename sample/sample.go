package sample

// Vec is a 2D analog reading with each component in [-1, 1].
type Vec struct {
	X, Y float64
}

// MouseButton identifies a physical mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)

// MouseState is the mouse portion of a frame snapshot.
// Wheel is a cumulative counter; the aggregator derives per-frame
// deltas as previous minus current.
type MouseState struct {
	Buttons uint8
	X, Y    int
	Wheel   int
}

// Down reports whether button b is held in this snapshot.
func (m MouseState) Down(b MouseButton) bool {
	return m.Buttons&(1<<b) != 0
}

// SetDown marks button b held. Used by providers assembling a frame.
func (m *MouseState) SetDown(b MouseButton) {
	m.Buttons |= 1 << b
}

// PadButton identifies a standard-layout gamepad button.
type PadButton uint8

const (
	PadA PadButton = iota
	PadB
	PadX
	PadY
	PadL1
	PadR1
	PadL2
	PadR2
	PadSelect
	PadStart
	PadL3
	PadR3
	PadUp
	PadDown
	PadLeft
	PadRight
	padButtonCount
)

// PadState is the gamepad portion of a frame snapshot.
// A disconnected pad reads as all-released with zero sticks.
type PadState struct {
	Connected bool
	Buttons   uint32
	Left      Vec
	Right     Vec
}

// Down reports whether pad button b is held in this snapshot.
func (p PadState) Down(b PadButton) bool {
	return p.Buttons&(1<<b) != 0
}

// SetDown marks pad button b held. Used by providers assembling a frame.
func (p *PadState) SetDown(b PadButton) {
	p.Buttons |= 1 << b
}

// KeySet is a bitset over Key values.
type KeySet [2]uint64

// Down reports whether key k is held.
func (s KeySet) Down(k Key) bool {
	if k >= keyCount {
		return false
	}
	return s[k/64]&(1<<(k%64)) != 0
}

// Set marks key k held.
func (s *KeySet) Set(k Key) {
	if k >= keyCount {
		return
	}
	s[k/64] |= 1 << (k % 64)
}

// Clear marks key k released.
func (s *KeySet) Clear(k Key) {
	if k >= keyCount {
		return
	}
	s[k/64] &^= 1 << (k % 64)
}

// Frame is the immutable per-frame device snapshot consumed by the
// input layer. Providers produce one Frame per host frame and never
// mutate a Frame after handing it out.
//
// Text carries the raw character stream for the text-capture side
// channel; it is independent of Keys so that key-down state and typed
// characters cannot disagree about ordering within a frame.
type Frame struct {
	Keys     KeySet
	PrevKeys KeySet
	Mouse    MouseState
	Pad      PadState
	Text     []rune
}

// Empty returns the all-released frame. Feeding it through every
// signal releases any held state, which is how the aggregator flushes
// before engaging an input lock.
func Empty() Frame {
	return Frame{}
}

// Provider supplies one device snapshot per host frame. The core
// never queries devices outside Poll.
type Provider interface {
	Poll() Frame
}
