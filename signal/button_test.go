package signal

import (
	"testing"

	"github.com/lixenwraith/padkit/sample"
)

func keyFrame(keys ...sample.Key) sample.Frame {
	var f sample.Frame
	for _, k := range keys {
		f.Keys.Set(k)
	}
	return f
}

// TestButtonEdgeDetection verifies pressed/down/released over a raw sequence
func TestButtonEdgeDetection(t *testing.T) {
	b := NewButton(1)
	b.Register(KeyBinding(sample.KeyEnter))

	steps := []struct {
		name     string
		held     bool
		pressed  bool
		down     bool
		released bool
	}{
		{"idle", false, false, false, false},
		{"press edge", true, true, true, false},
		{"held", true, false, true, false},
		{"still held", true, false, true, false},
		{"release edge", false, false, false, true},
		{"idle again", false, false, false, false},
	}

	for _, st := range steps {
		if st.held {
			b.Update(keyFrame(sample.KeyEnter))
		} else {
			b.Update(sample.Empty())
		}
		if got := b.Pressed(true); got != st.pressed {
			t.Errorf("%s: Expected pressed=%v, got %v", st.name, st.pressed, got)
		}
		if got := b.Down(true); got != st.down {
			t.Errorf("%s: Expected down=%v, got %v", st.name, st.down, got)
		}
		if got := b.Released(true); got != st.released {
			t.Errorf("%s: Expected released=%v, got %v", st.name, st.released, got)
		}
	}
}

// TestButtonAggregatesBindings verifies the raw state is the OR over bindings
func TestButtonAggregatesBindings(t *testing.T) {
	b := NewButton(1)
	b.Register(KeyBinding(sample.KeyZ), PadBinding(sample.PadA))

	var f sample.Frame
	f.Pad.Connected = true
	f.Pad.SetDown(sample.PadA)
	b.Update(f)
	if !b.Down(true) {
		t.Error("Expected pad binding alone to hold the button down")
	}

	b.Update(keyFrame(sample.KeyZ))
	if !b.Down(true) {
		t.Error("Expected key binding alone to hold the button down")
	}
	if b.Pressed(true) {
		t.Error("Expected no press edge when the aggregated state never dropped")
	}
}

// TestButtonConsumptionFrameScoped verifies consume suppresses non-raw queries
// for the rest of the frame and resets on the next update
func TestButtonConsumptionFrameScoped(t *testing.T) {
	b := NewButton(1)
	b.Register(KeyBinding(sample.KeySpace))

	b.Update(keyFrame(sample.KeySpace))
	if !b.Pressed(false) {
		t.Fatal("Expected press edge before consumption")
	}

	b.Consume()
	if b.Pressed(false) || b.Down(false) {
		t.Error("Expected non-raw queries to read false after consume")
	}
	if !b.Pressed(true) || !b.Down(true) {
		t.Error("Expected raw queries to ignore consumption")
	}

	// Still held next frame: consumed resets, down is readable again.
	b.Update(keyFrame(sample.KeySpace))
	if !b.Down(false) {
		t.Error("Expected consumption to reset on the next update")
	}
	if b.Pressed(false) {
		t.Error("Expected no new press edge while held")
	}
}

// TestButtonMockPress verifies a forced press behaves like a real transition
func TestButtonMockPress(t *testing.T) {
	b := NewButton(1)
	b.Register(KeyBinding(sample.KeyEnter))
	b.Update(sample.Empty())

	b.Press()
	if !b.Pressed(false) || !b.Down(false) {
		t.Error("Expected mock press to read pressed and down")
	}

	// The next empty update must produce a release edge, exactly as if
	// a real press had ended.
	b.Update(sample.Empty())
	if !b.Released(true) {
		t.Error("Expected release edge on the update after a mock press")
	}
	if b.Pressed(true) || b.Down(true) {
		t.Error("Expected mock press to last exactly one frame")
	}
}

// TestButtonRegisterIdempotent verifies duplicate bindings collapse
func TestButtonRegisterIdempotent(t *testing.T) {
	b := NewButton(1)
	b.Register(KeyBinding(sample.KeyA))
	b.Register(KeyBinding(sample.KeyA), KeyBinding(sample.KeyA))

	if n := len(b.Bindings()); n != 1 {
		t.Errorf("Expected 1 binding after duplicate registration, got %d", n)
	}
}

// TestButtonClearBindings verifies clearing keeps transient state until update
func TestButtonClearBindings(t *testing.T) {
	b := NewButton(1)
	b.Register(KeyBinding(sample.KeyA))
	b.Update(keyFrame(sample.KeyA))

	b.ClearBindings()
	if !b.Down(true) {
		t.Error("Expected transient down state to survive ClearBindings")
	}

	b.Update(keyFrame(sample.KeyA))
	if b.Down(true) {
		t.Error("Expected button to settle released once unbound")
	}
	if !b.Released(true) {
		t.Error("Expected release edge when bindings vanished")
	}
}

// TestSharesBinding verifies shared-hardware detection across binding sets
func TestSharesBinding(t *testing.T) {
	a := []Binding{KeyBinding(sample.KeyA), PadBinding(sample.PadA)}
	b := []Binding{PadBinding(sample.PadA)}
	c := []Binding{KeyBinding(sample.KeyB)}

	if !SharesBinding(a, b) {
		t.Error("Expected sets sharing the pad button to overlap")
	}
	if SharesBinding(a, c) {
		t.Error("Expected disjoint sets not to overlap")
	}
}

// TestFourWayBindingEqual verifies recursive equality of four-way bindings
func TestFourWayBindingEqual(t *testing.T) {
	mk := func() Binding {
		return FourWayBinding(
			KeyBinding(sample.KeyUp), KeyBinding(sample.KeyLeft),
			KeyBinding(sample.KeyDown), KeyBinding(sample.KeyRight),
		)
	}
	if !mk().Equal(mk()) {
		t.Error("Expected identical four-way bindings to be equal")
	}

	other := FourWayBinding(
		KeyBinding(sample.KeyW), KeyBinding(sample.KeyA),
		KeyBinding(sample.KeyS), KeyBinding(sample.KeyD),
	)
	if mk().Equal(other) {
		t.Error("Expected different four-way bindings to differ")
	}
}
