package menu

import (
	"testing"

	"github.com/lixenwraith/padkit/sample"
)

// 7 options, 3 per row:
//
//	0 1 2
//	3 4 5
//	6
func newTestGrid() *Grid {
	return NewGrid(7, 3, 3, testSubmit, testCancel, testAxis)
}

// TestGridGeometry verifies height and last-row width are recomputed on use
func TestGridGeometry(t *testing.T) {
	g := newTestGrid()
	if g.Height() != 3 {
		t.Errorf("Expected height 3, got %d", g.Height())
	}
	if g.LastRowWidth() != 1 {
		t.Errorf("Expected last row width 1, got %d", g.LastRowWidth())
	}

	g.Selection = 5
	if g.Row() != 1 || g.Column() != 2 {
		t.Errorf("Expected row 1 column 2, got %d/%d", g.Row(), g.Column())
	}

	// Geometry follows field mutation without any refresh call.
	g.Width = 4
	if g.Height() != 2 || g.LastRowWidth() != 3 {
		t.Errorf("Expected 2 rows with last width 3 after reshape, got %d/%d", g.Height(), g.LastRowWidth())
	}
}

// TestGridHorizontalWrap verifies an unclamped row move wraps within the row
func TestGridHorizontalWrap(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.Selection = 2

	tickAxis(a, 1, 0)
	g.Update(a, dt)

	if g.Selection != 0 {
		t.Errorf("Expected wrap to row start 0, got %d", g.Selection)
	}
	if g.OverflowX != 1 {
		t.Errorf("Expected overflowX=1 on row wrap, got %d", g.OverflowX)
	}
}

// TestGridClampRight verifies a clamped edge absorbs the move on a short row
func TestGridClampRight(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.Flags = ClampRight
	g.Selection = 6 // only cell of the last row

	tickAxis(a, 1, 0)
	g.Update(a, dt)

	if g.Selection != 6 {
		t.Errorf("Expected selection held at 6, got %d", g.Selection)
	}
	if g.OverflowX != 1 {
		t.Errorf("Expected overflowX=1 at the clamped edge, got %d", g.OverflowX)
	}
	if g.JustMoved {
		t.Error("Expected no move flag on a clamped boundary stop")
	}
}

// TestGridVerticalShortColumn verifies column moves respect the short last row
func TestGridVerticalShortColumn(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.Selection = 5 // row 1, column 2; column 2 has no cell in row 2

	tickAxis(a, 0, 1)
	g.Update(a, dt)

	if g.Selection != 2 {
		t.Errorf("Expected wrap to cell 2 within the two-row column, got %d", g.Selection)
	}
	if g.OverflowY != 1 {
		t.Errorf("Expected overflowY=1 on column wrap, got %d", g.OverflowY)
	}
}

// TestGridClampBottom verifies the vertical clamp on a short column
func TestGridClampBottom(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.Flags = ClampBottom
	g.Selection = 5

	tickAxis(a, 0, 1)
	g.Update(a, dt)

	if g.Selection != 5 || g.OverflowY != 1 {
		t.Errorf("Expected selection held at 5 with overflowY=1, got %d/%d", g.Selection, g.OverflowY)
	}
}

// TestGridRotate verifies the input components swap roles
func TestGridRotate(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.Rotate = true

	// A vertical tick drives a horizontal move when rotated.
	tickAxis(a, 0, 1)
	g.Update(a, dt)
	if g.Selection != 1 {
		t.Errorf("Expected rotated vertical tick to move within the row, got %d", g.Selection)
	}

	tickAxis(a, 1, 0)
	g.Update(a, dt)
	if g.Selection != 4 {
		t.Errorf("Expected rotated horizontal tick to move down a row, got %d", g.Selection)
	}
}

// TestGridSkipsDisabledAlongAxis verifies disabled cells are skipped in the
// direction of travel only
func TestGridSkipsDisabledAlongAxis(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.IsOptionDisabled = func(i int) bool { return i == 1 }

	tickAxis(a, 1, 0)
	g.Update(a, dt)
	if g.Selection != 2 {
		t.Errorf("Expected move to skip disabled cell 1 and land on 2, got %d", g.Selection)
	}
}

// TestGridDisabledRowWrapsToSelf verifies the bounded search terminates when
// the only enabled cell in the line is the current one
func TestGridDisabledRowWrapsToSelf(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.IsOptionDisabled = func(i int) bool { return i == 1 || i == 2 }

	tickAxis(a, 1, 0)
	g.Update(a, dt)
	if g.Selection != 0 {
		t.Errorf("Expected wrap back to cell 0, got %d", g.Selection)
	}
	if g.OverflowX != 1 {
		t.Errorf("Expected overflowX=1 after wrapping the row, got %d", g.OverflowX)
	}
}

// TestGridDiagonal verifies one frame can carry both a row and a column step
func TestGridDiagonal(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()

	tickAxis(a, 1, 1)
	g.Update(a, dt)
	if g.Selection != 4 {
		t.Errorf("Expected diagonal move to cell 4, got %d", g.Selection)
	}
	if !g.JustMoved {
		t.Error("Expected move flag on a diagonal step")
	}
}

// TestGridShrunkSizeRecovers verifies a stale selection moves back into range
// after the caller shrinks Size between frames
func TestGridShrunkSizeRecovers(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.Selection = 6
	g.Size = 5 // cells 5 and 6 no longer exist

	tickAxis(a, 0, 1)
	g.Update(a, dt)
	if g.Selection < 0 || g.Selection >= g.Size {
		t.Errorf("Expected selection recovered into [0,%d), got %d", g.Size, g.Selection)
	}
}

// TestGridRowScroll verifies scrolling operates on rows
func TestGridRowScroll(t *testing.T) {
	a := newMenuAggregator()
	g := NewGrid(12, 3, 2, testSubmit, testCancel, testAxis)

	for i := 0; i < 3; i++ {
		tickAxis(a, 0, 1)
		g.Update(a, dt)
	}
	if g.Selection != 9 {
		t.Fatalf("Expected selection 9 after three row moves, got %d", g.Selection)
	}
	if g.Scroll != 2 {
		t.Errorf("Expected row scroll 2 to keep row 3 visible, got %d", g.Scroll)
	}
}

// TestGridSubmitProtocol verifies submit returns true on its edge and is consumed
func TestGridSubmitProtocol(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()

	a.MockPress(testSubmit)
	if !g.Update(a, dt) {
		t.Fatal("Expected true on the submit frame")
	}
	if a.Pressed(testSubmit) {
		t.Error("Expected submit consumed after the grid handled it")
	}

	a.MockPress(testCancel)
	if g.Update(a, dt) {
		t.Error("Expected cancel not to count as submit")
	}
	if !g.Canceled {
		t.Error("Expected canceled flag on the cancel frame")
	}
}

// TestGridMoveConsumesAxis verifies the axis is claimed only when a move happened
func TestGridMoveConsumesAxis(t *testing.T) {
	a := newMenuAggregator()
	g := newTestGrid()
	g.IsOptionDisabled = func(int) bool { return true }

	tickAxis(a, 1, 0)
	g.Update(a, dt)
	ax := a.MustAxis(testAxis)
	if !ax.TickX(false) {
		t.Error("Expected axis left unconsumed when nothing moved")
	}

	g.IsOptionDisabled = nil
	tickAxis(a, 1, 0)
	g.Update(a, dt)
	if ax.TickX(false) {
		t.Error("Expected axis consumed by the move")
	}
	if ax.Value(true) == (sample.Vec{}) {
		t.Error("Expected raw axis value to survive consumption")
	}
}
