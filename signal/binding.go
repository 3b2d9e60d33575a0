package signal

import (
	"github.com/lixenwraith/padkit/sample"
)

// ID identifies a logical input action (e.g. "submit"), independent of
// any physical device. Hosts define their own dense id tables.
type ID int

// BindingKind tags the variants of a Binding.
type BindingKind uint8

const (
	BindNone BindingKind = iota
	BindKey
	BindMouseButton
	BindPadButton
	BindPadAxisButton // stick component crossing a threshold, read as digital
	BindPadAxis       // analog stick contribution to a virtual axis
	BindFourWay       // four digital sub-bindings forming a virtual d-pad
)

// Stick selects one of the two analog sticks.
type Stick uint8

const (
	StickLeft Stick = iota
	StickRight
)

// Component selects the X or Y reading of a stick.
type Component uint8

const (
	ComponentX Component = iota
	ComponentY
)

// FourWay groups four digital sub-bindings into a virtual d-pad.
// Sub-bindings must themselves be digital kinds.
type FourWay struct {
	Up, Left, Down, Right Binding
}

// Binding maps one physical device signal onto a logical id.
// Bindings are plain values; Equal defines identity for duplicate
// suppression and consumption propagation.
type Binding struct {
	Kind      BindingKind
	Key       sample.Key
	Mouse     sample.MouseButton
	Pad       sample.PadButton
	Stick     Stick
	Component Component
	Threshold float64 // BindPadAxisButton: |reading| must exceed this
	Negative  bool    // BindPadAxisButton: trigger on the negative side
	Four      *FourWay
}

// KeyBinding binds a keyboard key.
func KeyBinding(k sample.Key) Binding {
	return Binding{Kind: BindKey, Key: k}
}

// MouseBinding binds a mouse button.
func MouseBinding(b sample.MouseButton) Binding {
	return Binding{Kind: BindMouseButton, Mouse: b}
}

// PadBinding binds a gamepad button.
func PadBinding(b sample.PadButton) Binding {
	return Binding{Kind: BindPadButton, Pad: b}
}

// PadAxisButton binds one stick component read as a digital button.
// The binding is down while the component exceeds threshold on the
// chosen side.
func PadAxisButton(s Stick, c Component, threshold float64, negative bool) Binding {
	return Binding{Kind: BindPadAxisButton, Stick: s, Component: c, Threshold: threshold, Negative: negative}
}

// PadAxisBinding binds a full analog stick as an axis contribution.
func PadAxisBinding(s Stick) Binding {
	return Binding{Kind: BindPadAxis, Stick: s}
}

// FourWayBinding binds four digital sub-bindings as a virtual d-pad
// axis contribution. Up and left read negative, down and right positive.
func FourWayBinding(up, left, down, right Binding) Binding {
	return Binding{Kind: BindFourWay, Four: &FourWay{Up: up, Left: left, Down: down, Right: right}}
}

// Equal reports whether two bindings name the same physical signal.
func (b Binding) Equal(o Binding) bool {
	if b.Kind != o.Kind {
		return false
	}
	switch b.Kind {
	case BindKey:
		return b.Key == o.Key
	case BindMouseButton:
		return b.Mouse == o.Mouse
	case BindPadButton:
		return b.Pad == o.Pad
	case BindPadAxisButton:
		return b.Stick == o.Stick && b.Component == o.Component &&
			b.Threshold == o.Threshold && b.Negative == o.Negative
	case BindPadAxis:
		return b.Stick == o.Stick
	case BindFourWay:
		if b.Four == nil || o.Four == nil {
			return b.Four == o.Four
		}
		return b.Four.Up.Equal(o.Four.Up) && b.Four.Left.Equal(o.Four.Left) &&
			b.Four.Down.Equal(o.Four.Down) && b.Four.Right.Equal(o.Four.Right)
	}
	return true
}

// digitalDown evaluates a digital binding against a frame.
// Analog kinds (BindPadAxis, BindFourWay) always read false here; they
// contribute through axis evaluation instead.
func digitalDown(b Binding, f sample.Frame) bool {
	switch b.Kind {
	case BindKey:
		return f.Keys.Down(b.Key)
	case BindMouseButton:
		return f.Mouse.Down(b.Mouse)
	case BindPadButton:
		return f.Pad.Down(b.Pad)
	case BindPadAxisButton:
		v := stickValue(f, b.Stick)
		r := v.X
		if b.Component == ComponentY {
			r = v.Y
		}
		if b.Negative {
			return r < -b.Threshold
		}
		return r > b.Threshold
	}
	return false
}

func stickValue(f sample.Frame, s Stick) sample.Vec {
	if !f.Pad.Connected {
		return sample.Vec{}
	}
	if s == StickRight {
		return f.Pad.Right
	}
	return f.Pad.Left
}

// registerBinding appends b to dst unless an equal binding is present.
func registerBinding(dst []Binding, b Binding) []Binding {
	for _, have := range dst {
		if have.Equal(b) {
			return dst
		}
	}
	return append(dst, b)
}

// SharesBinding reports whether the two binding sets name at least one
// common physical signal. Drives consumption propagation across logical
// ids bound to the same hardware.
func SharesBinding(a, b []Binding) bool {
	for _, x := range a {
		for _, y := range b {
			if x.Equal(y) {
				return true
			}
		}
	}
	return false
}
