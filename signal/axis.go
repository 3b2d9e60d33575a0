package signal

import (
	"github.com/lixenwraith/padkit/sample"
)

// Axis is a logical 2D signal aggregating analog stick bindings and
// digital four-way bindings. Alongside the continuous value it keeps a
// sign-quantized integer pair and per-component tick flags that pulse
// exactly once when the quantized component changes.
type Axis struct {
	id       ID
	bindings []Binding

	value        sample.Vec
	intX, intY   int
	tickX, tickY bool
	consumed     bool
}

// NewAxis creates an unbound axis for a logical id.
func NewAxis(id ID) *Axis {
	return &Axis{id: id}
}

// ID returns the logical id this axis answers to.
func (a *Axis) ID() ID {
	return a.id
}

// Register adds bindings. Duplicates are idempotent.
func (a *Axis) Register(bindings ...Binding) {
	for _, bind := range bindings {
		a.bindings = registerBinding(a.bindings, bind)
	}
}

// ClearBindings removes all bindings without resetting transient state.
func (a *Axis) ClearBindings() {
	a.bindings = a.bindings[:0]
}

// SetBindings replaces the binding set wholesale.
func (a *Axis) SetBindings(bindings []Binding) {
	a.bindings = a.bindings[:0]
	a.Register(bindings...)
}

// Bindings returns a copy of the current binding set.
func (a *Axis) Bindings() []Binding {
	out := make([]Binding, len(a.bindings))
	copy(out, a.bindings)
	return out
}

// Update recomputes the axis fully from its bindings; no value carries
// over between frames. Analog contributions sum per component, clamped
// to [-1, 1]. When any digital four-way binding is active on a
// component, the digital net replaces the analog reading for that
// component (digital beats analog on conflict).
func (a *Axis) Update(f sample.Frame) {
	var analog sample.Vec
	var digX, digY float64
	var hasDigX, hasDigY bool

	for _, b := range a.bindings {
		switch b.Kind {
		case BindPadAxis:
			v := stickValue(f, b.Stick)
			analog.X += v.X
			analog.Y += v.Y
		case BindFourWay:
			if b.Four == nil {
				continue
			}
			left := digitalDown(b.Four.Left, f)
			right := digitalDown(b.Four.Right, f)
			up := digitalDown(b.Four.Up, f)
			down := digitalDown(b.Four.Down, f)
			if left || right {
				hasDigX = true
				if left {
					digX--
				}
				if right {
					digX++
				}
			}
			if up || down {
				hasDigY = true
				if up {
					digY--
				}
				if down {
					digY++
				}
			}
		}
	}

	v := sample.Vec{X: clamp1(analog.X), Y: clamp1(analog.Y)}
	if hasDigX {
		v.X = clamp1(digX)
	}
	if hasDigY {
		v.Y = clamp1(digY)
	}
	a.commit(v)
	a.consumed = false
}

// Mock forces a value bypassing any device sample, producing the same
// quantization and tick semantics as a real transition. Lasts until
// the next update.
func (a *Axis) Mock(v sample.Vec) {
	a.commit(sample.Vec{X: clamp1(v.X), Y: clamp1(v.Y)})
	a.consumed = false
}

func (a *Axis) commit(v sample.Vec) {
	prevX, prevY := a.intX, a.intY
	a.value = v
	a.intX = sign(v.X)
	a.intY = sign(v.Y)
	a.tickX = a.intX != prevX
	a.tickY = a.intY != prevY
}

// Consume claims this axis for the rest of the frame.
func (a *Axis) Consume() {
	a.consumed = true
}

// Consumed reports whether the axis was claimed this frame.
func (a *Axis) Consumed() bool {
	return a.consumed
}

// Value returns the continuous reading. With raw false, a consumed
// axis reads zero.
func (a *Axis) Value(raw bool) sample.Vec {
	if !raw && a.consumed {
		return sample.Vec{}
	}
	return a.value
}

// Int returns the sign-quantized pair, subject to consumption unless raw.
func (a *Axis) Int(raw bool) (int, int) {
	if !raw && a.consumed {
		return 0, 0
	}
	return a.intX, a.intY
}

// TickX pulses when the quantized X component changed this frame.
func (a *Axis) TickX(raw bool) bool {
	if !raw && a.consumed {
		return false
	}
	return a.tickX
}

// TickY pulses when the quantized Y component changed this frame.
func (a *Axis) TickY(raw bool) bool {
	if !raw && a.consumed {
		return false
	}
	return a.tickY
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
