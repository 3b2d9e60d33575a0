package signal

import (
	"github.com/lixenwraith/padkit/sample"
)

// Button is a logical boolean signal aggregating one or more physical
// bindings. It tracks edge transitions against the previous frame and
// a per-frame consumed flag used for input-claim coordination.
type Button struct {
	id       ID
	bindings []Binding

	pressed  bool
	down     bool
	released bool
	consumed bool
}

// NewButton creates an unbound button for a logical id.
func NewButton(id ID) *Button {
	return &Button{id: id}
}

// ID returns the logical id this button answers to.
func (b *Button) ID() ID {
	return b.id
}

// Register adds bindings. Duplicates are idempotent.
func (b *Button) Register(bindings ...Binding) {
	for _, bind := range bindings {
		b.bindings = registerBinding(b.bindings, bind)
	}
}

// ClearBindings removes all bindings. Transient press state is kept;
// it settles on the next update.
func (b *Button) ClearBindings() {
	b.bindings = b.bindings[:0]
}

// SetBindings replaces the binding set wholesale. Used by the
// persistence layer when loading user preferences.
func (b *Button) SetBindings(bindings []Binding) {
	b.bindings = b.bindings[:0]
	b.Register(bindings...)
}

// Bindings returns a copy of the current binding set.
func (b *Button) Bindings() []Binding {
	out := make([]Binding, len(b.bindings))
	copy(out, b.bindings)
	return out
}

// Update recomputes edge state from a frame snapshot. Must be called
// exactly once per frame. The consumed flag resets here, which makes
// consumption frame-scoped without a separate clearing pass.
func (b *Button) Update(f sample.Frame) {
	prev := b.down
	raw := false
	for _, bind := range b.bindings {
		if digitalDown(bind, f) {
			raw = true
			break
		}
	}
	b.pressed = raw && !prev
	b.released = !raw && prev
	b.down = raw
	b.consumed = false
}

// Press forces a press without a device sample, lasting until the next
// update. The following update sees the button as previously-down, so a
// released edge fires exactly as it would after a real press.
func (b *Button) Press() {
	b.pressed = true
	b.down = true
	b.released = false
	b.consumed = false
}

// Consume claims this button for the rest of the frame. Non-raw
// queries read neutral until the next update.
func (b *Button) Consume() {
	b.consumed = true
}

// Consumed reports whether the button was claimed this frame.
func (b *Button) Consumed() bool {
	return b.consumed
}

// Pressed reports the false→true edge. With raw false, a consumed
// button reads false regardless of the underlying edge.
func (b *Button) Pressed(raw bool) bool {
	if !raw && b.consumed {
		return false
	}
	return b.pressed
}

// Down reports the held state, subject to consumption unless raw.
func (b *Button) Down(raw bool) bool {
	if !raw && b.consumed {
		return false
	}
	return b.down
}

// Released reports the true→false edge, subject to consumption unless raw.
func (b *Button) Released(raw bool) bool {
	if !raw && b.consumed {
		return false
	}
	return b.released
}
