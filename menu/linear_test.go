package menu

import (
	"testing"
	"time"

	"github.com/lixenwraith/padkit/clock"
	"github.com/lixenwraith/padkit/input"
	"github.com/lixenwraith/padkit/sample"
	"github.com/lixenwraith/padkit/signal"
)

const (
	testSubmit signal.ID = 1
	testCancel signal.ID = 2
	testAxis   signal.ID = 1
)

// nullProvider always reports an idle device.
type nullProvider struct{}

func (nullProvider) Poll() sample.Frame { return sample.Empty() }

func newMenuAggregator() *input.Aggregator {
	a := input.New(nullProvider{})
	a.SetLogger(nil)
	a.RegisterButton(testSubmit)
	a.RegisterButton(testCancel)
	a.RegisterAxis(testAxis)
	return a
}

// tickAxis forces a fresh quantized transition so the axis ticks.
func tickAxis(a *input.Aggregator, x, y float64) {
	a.MockAxis(testAxis, sample.Vec{})
	a.MockAxis(testAxis, sample.Vec{X: x, Y: y})
}

const dt = 16 * time.Millisecond

// TestLinearWrap verifies wrap-around past the last option
func TestLinearWrap(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(5, 5, testSubmit, testCancel, testAxis)
	m.Selection = 4

	tickAxis(a, 0, 1)
	m.Update(a, dt)

	if m.Selection != 0 {
		t.Errorf("Expected selection to wrap to 0, got %d", m.Selection)
	}
	if m.OverflowY != 1 {
		t.Errorf("Expected overflowY=1 on wrap, got %d", m.OverflowY)
	}
	if m.PreviousSelection != 4 {
		t.Errorf("Expected previous selection 4, got %d", m.PreviousSelection)
	}
}

// TestLinearClampHoldsBoundary verifies the clamp flag stops at the edge and
// the submit result is unaffected
func TestLinearClampHoldsBoundary(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(5, 5, testSubmit, testCancel, testAxis)
	m.Clamp = true
	m.Selection = 4

	tickAxis(a, 0, 1)
	a.MockPress(testSubmit)
	pressed := m.Update(a, dt)

	if m.Selection != 4 {
		t.Errorf("Expected selection clamped at 4, got %d", m.Selection)
	}
	if !pressed {
		t.Error("Expected submit result unaffected by the clamped move")
	}
	if m.OverflowY != 1 {
		t.Errorf("Expected overflowY=1 at the clamped edge, got %d", m.OverflowY)
	}
}

// TestLinearSkipsDisabled verifies moves skip unavailable options
func TestLinearSkipsDisabled(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(3, 3, testSubmit, testCancel, testAxis)
	m.IsOptionDisabled = func(i int) bool { return i == 1 }

	tickAxis(a, 0, 1)
	m.Update(a, dt)

	if m.Selection != 2 {
		t.Errorf("Expected selection to skip index 1 and land on 2, got %d", m.Selection)
	}
}

// TestLinearAllDisabledIsNoop verifies a fully disabled set never moves or loops
func TestLinearAllDisabledIsNoop(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(4, 4, testSubmit, testCancel, testAxis)
	m.IsOptionDisabled = func(int) bool { return true }

	tickAxis(a, 0, 1)
	m.Update(a, dt)

	if m.Selection != 0 || m.JustMoved {
		t.Errorf("Expected no-op on fully disabled set, got selection %d (moved=%v)", m.Selection, m.JustMoved)
	}
}

// TestLinearDisabledMenuReturnsNotPressed verifies the disabled/empty guard
func TestLinearDisabledMenuReturnsNotPressed(t *testing.T) {
	tests := []struct {
		name   string
		length int
		off    bool
	}{
		{"disabled flag", 5, true},
		{"zero length", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newMenuAggregator()
			m := NewLinear(tt.length, 5, testSubmit, testCancel, testAxis)
			m.Disabled = tt.off

			a.MockPress(testSubmit)
			tickAxis(a, 0, 1)
			if m.Update(a, dt) {
				t.Error("Expected not-pressed from an inactive menu")
			}
			if m.Selection != 0 || m.Scroll != 0 {
				t.Error("Expected no selection/scroll mutation on an inactive menu")
			}
			// The submit edge was still claimed.
			if a.Pressed(testSubmit) {
				t.Error("Expected submit consumed even when the menu is inactive")
			}
			if !a.PressedRaw(testSubmit) {
				t.Error("Expected the raw edge to remain visible")
			}
		})
	}
}

// TestLinearSubmitConsumed verifies return-on-press and the claim protocol
func TestLinearSubmitConsumed(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(3, 3, testSubmit, testCancel, testAxis)

	a.MockPress(testSubmit)
	if !m.Update(a, dt) {
		t.Fatal("Expected true exactly on the submit frame")
	}
	if a.Pressed(testSubmit) {
		t.Error("Expected a second listener to see submit consumed")
	}

	a.Update() // next frame, mock expired
	if m.Update(a, dt) {
		t.Error("Expected false once the press edge passed")
	}
}

// TestLinearCancel verifies the canceled flag and cancel consumption
func TestLinearCancel(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(3, 3, testSubmit, testCancel, testAxis)

	a.MockPress(testCancel)
	if m.Update(a, dt) {
		t.Error("Expected cancel not to count as submit")
	}
	if !m.Canceled {
		t.Error("Expected canceled flag on the cancel frame")
	}
	if a.Pressed(testCancel) {
		t.Error("Expected cancel consumed")
	}
}

// TestLinearScrollFollowsSelection verifies the viewport law
func TestLinearScrollFollowsSelection(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(10, 3, testSubmit, testCancel, testAxis)

	for i := 0; i < 4; i++ {
		tickAxis(a, 0, 1)
		m.Update(a, dt)
	}
	if m.Selection != 4 {
		t.Fatalf("Expected selection 4 after four moves, got %d", m.Selection)
	}
	if m.Scroll != 2 {
		t.Errorf("Expected scroll 2 to keep selection visible, got %d", m.Scroll)
	}

	// Moving back above the viewport pulls scroll up to the selection.
	m.Selection = 1
	tickAxis(a, 0, -1)
	m.Update(a, dt)
	if m.Selection != 0 || m.Scroll != 0 {
		t.Errorf("Expected selection 0/scroll 0, got %d/%d", m.Selection, m.Scroll)
	}
}

// TestLinearSmoothScrollApproachesTarget verifies per-frame smoothing
func TestLinearSmoothScrollApproachesTarget(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(10, 2, testSubmit, testCancel, testAxis)

	for i := 0; i < 5; i++ {
		tickAxis(a, 0, 1)
		m.Update(a, dt)
	}
	if m.Scroll != 4 {
		t.Fatalf("Expected scroll 4, got %d", m.Scroll)
	}
	if m.SmoothScroll <= 0 || m.SmoothScroll >= 4 {
		t.Errorf("Expected smooth scroll strictly between 0 and 4 mid-glide, got %v", m.SmoothScroll)
	}

	before := m.SmoothScroll
	m.Update(a, dt) // no move, smoothing continues
	if m.SmoothScroll <= before {
		t.Error("Expected smoothing to keep approaching the target without moves")
	}
}

// TestLinearHorizontal verifies the orientation switch reads the X component
func TestLinearHorizontal(t *testing.T) {
	a := newMenuAggregator()
	m := NewLinear(4, 4, testSubmit, testCancel, testAxis)
	m.Horizontal = true

	tickAxis(a, 1, 0)
	m.Update(a, dt)
	if m.Selection != 1 {
		t.Errorf("Expected horizontal tick to advance selection, got %d", m.Selection)
	}

	tickAxis(a, 0, 1)
	m.Update(a, dt)
	if m.Selection != 1 {
		t.Errorf("Expected vertical tick ignored in horizontal mode, got %d", m.Selection)
	}
}

// TestLinearMoveTimestamps verifies LastMoved uses the injected clock
func TestLinearMoveTimestamps(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := clock.NewMock(start)

	a := newMenuAggregator()
	m := NewLinear(3, 3, testSubmit, testCancel, testAxis)
	m.Clock = mock

	mock.Advance(5 * time.Second)
	tickAxis(a, 0, 1)
	m.Update(a, dt)

	want := start.Add(5 * time.Second)
	if !m.LastMoved.Equal(want) {
		t.Errorf("Expected LastMoved %v, got %v", want, m.LastMoved)
	}
}
