package menu

import (
	"time"

	"github.com/lixenwraith/padkit/clock"
	"github.com/lixenwraith/padkit/input"
	"github.com/lixenwraith/padkit/signal"
)

// ClampFlags selects boundary policy per grid edge.
type ClampFlags uint8

const (
	ClampLeft ClampFlags = 1 << iota
	ClampRight
	ClampTop
	ClampBottom

	// ClampSize additionally clamps the final linear index into
	// [0, Size) after geometric computation, tolerating a short last row.
	ClampSize

	ClampAll = ClampLeft | ClampRight | ClampTop | ClampBottom
)

// Grid is the selection/scroll state machine for a width×height grid
// menu. Geometry (height, last-row width) is recomputed from Size and
// Width on every use, never stored, so callers may change either
// between frames without staleness.
type Grid struct {
	Selection         int
	PreviousSelection int
	Scroll            int
	SmoothScroll      float64

	Size  int
	Width int

	// VisibleRows is the viewport height in rows; scrolling operates
	// over rows, not raw indices.
	VisibleRows int

	Disabled bool

	// Rotate swaps the roles of the horizontal and vertical input
	// components, for rotated layouts.
	Rotate bool

	Flags ClampFlags

	IsOptionDisabled func(int) bool

	SubmitID signal.ID
	CancelID signal.ID
	AxisID   signal.ID

	Canceled  bool
	JustMoved bool
	OverflowX int
	OverflowY int

	LastMoved   time.Time
	LastPressed time.Time

	ScrollRate float64
	Clock      clock.Provider
}

// NewGrid creates a grid menu over size options laid out width per row.
func NewGrid(size, width, visibleRows int, submit, cancel, axis signal.ID) *Grid {
	return &Grid{
		Size:        size,
		Width:       width,
		VisibleRows: visibleRows,
		SubmitID:    submit,
		CancelID:    cancel,
		AxisID:      axis,
		ScrollRate:  DefaultScrollRate,
		Clock:       clock.NewMonotonic(),
	}
}

// Height returns ceil(Size/Width); the last row may be short.
func (g *Grid) Height() int {
	if g.Width <= 0 || g.Size <= 0 {
		return 0
	}
	return (g.Size + g.Width - 1) / g.Width
}

// LastRowWidth returns the number of cells in the final row.
func (g *Grid) LastRowWidth() int {
	h := g.Height()
	if h == 0 {
		return 0
	}
	return g.Size - (h-1)*g.Width
}

// Row returns the selected row.
func (g *Grid) Row() int {
	if g.Width <= 0 {
		return 0
	}
	return g.Selection / g.Width
}

// Column returns the selected column within its row.
func (g *Grid) Column() int {
	if g.Width <= 0 {
		return 0
	}
	return g.Selection % g.Width
}

// Update advances the grid one frame and returns true exactly on the
// frame submit was pressed. Horizontal and vertical moves are
// independent 1D steps within the current row/column.
func (g *Grid) Update(in *input.Aggregator, dt time.Duration) bool {
	g.JustMoved = false
	g.OverflowX = 0
	g.OverflowY = 0
	g.Canceled = false

	submitted := in.Pressed(g.SubmitID)
	if submitted {
		in.Consume(g.SubmitID)
	}
	if in.Pressed(g.CancelID) {
		in.Consume(g.CancelID)
		g.Canceled = true
	}

	if g.Disabled || g.Size == 0 || g.Width <= 0 {
		return false
	}

	if ax, ok := in.Axis(g.AxisID); ok {
		tickH, valH := ax.TickX(false), ax.Value(false).X
		tickV, valV := ax.TickY(false), ax.Value(false).Y
		if g.Rotate {
			tickH, valH, tickV, valV = tickV, valV, tickH, valH
		}

		moved := false
		if tickH && valH != 0 {
			moved = g.moveHorizontal(sign(valH)) || moved
		}
		if tickV && valV != 0 {
			moved = g.moveVertical(sign(valV)) || moved
		}
		if moved {
			ax.Consume()
		}
	}

	g.ensureRowVisible()
	g.SmoothScroll = Smooth(g.SmoothScroll, float64(g.Scroll), dt, g.scrollRate())

	if submitted {
		g.LastPressed = g.now()
	}
	return submitted
}

func (g *Grid) moveHorizontal(dir int) bool {
	row := g.Row()
	col := g.Column()
	width := g.rowWidth(row)
	if width <= 0 {
		return false
	}

	clamped := g.Flags&ClampLeft != 0
	if dir > 0 {
		clamped = g.Flags&ClampRight != 0
	}

	next, crossed, ok := g.step1D(col, dir, width, clamped, func(pos int) bool {
		return g.cellDisabled(row*g.Width + pos)
	})
	if !ok {
		if clamped && atEdge(col, dir, width) {
			g.OverflowX = dir
			return true
		}
		return false
	}
	if crossed {
		g.OverflowX = dir
	}
	g.commit(row*g.Width + next)
	return true
}

func (g *Grid) moveVertical(dir int) bool {
	row := g.Row()
	col := g.Column()
	height := g.columnHeight(col)
	if height <= 0 {
		return false
	}

	clamped := g.Flags&ClampTop != 0
	if dir > 0 {
		clamped = g.Flags&ClampBottom != 0
	}

	next, crossed, ok := g.step1D(row, dir, height, clamped, func(pos int) bool {
		return g.cellDisabled(pos*g.Width + col)
	})
	if !ok {
		if clamped && atEdge(row, dir, height) {
			g.OverflowY = dir
			return true
		}
		return false
	}
	if crossed {
		g.OverflowY = dir
	}
	g.commit(next*g.Width + col)
	return true
}

// step1D finds the closest enabled position from `from` along dir in
// [0, count). crossed reports that the search wrapped past an edge.
// Bounded by count steps so a fully disabled line cannot loop forever.
func (g *Grid) step1D(from, dir, count int, clamped bool, disabled func(int) bool) (next int, crossed, ok bool) {
	for step := 1; step <= count; step++ {
		pos := from + dir*step
		if pos < 0 || pos >= count {
			if clamped {
				return 0, false, false
			}
			crossed = true
			pos = ((pos % count) + count) % count
		}
		if !disabled(pos) {
			return pos, crossed, true
		}
	}
	return 0, false, false
}

func (g *Grid) commit(index int) {
	if g.Flags&ClampSize != 0 {
		if index >= g.Size {
			index = g.Size - 1
		}
		if index < 0 {
			index = 0
		}
	}
	g.PreviousSelection = g.Selection
	g.Selection = index
	g.JustMoved = true
	g.LastMoved = g.now()
}

// cellDisabled treats indices beyond Size as unavailable, covering the
// missing cells of a short last row.
func (g *Grid) cellDisabled(index int) bool {
	if index < 0 || index >= g.Size {
		return true
	}
	return g.IsOptionDisabled != nil && g.IsOptionDisabled(index)
}

func (g *Grid) rowWidth(row int) int {
	h := g.Height()
	if row < 0 || row >= h {
		return 0
	}
	if row == h-1 {
		return g.LastRowWidth()
	}
	return g.Width
}

// columnHeight returns the number of rows that contain column col.
func (g *Grid) columnHeight(col int) int {
	h := g.Height()
	if h == 0 || col < 0 || col >= g.Width {
		return 0
	}
	if col < g.LastRowWidth() {
		return h
	}
	return h - 1
}

func atEdge(pos, dir, count int) bool {
	if dir > 0 {
		return pos >= count-1
	}
	return pos <= 0
}

// ensureRowVisible keeps the selected row inside the row viewport.
func (g *Grid) ensureRowVisible() {
	if g.VisibleRows <= 0 {
		g.Scroll = 0
		return
	}
	row := g.Row()
	if row < g.Scroll {
		g.Scroll = row
	} else if row >= g.Scroll+g.VisibleRows {
		g.Scroll = row - g.VisibleRows + 1
	}
	max := g.Height() - g.VisibleRows
	if max < 0 {
		max = 0
	}
	if g.Scroll > max {
		g.Scroll = max
	}
	if g.Scroll < 0 {
		g.Scroll = 0
	}
}

func (g *Grid) scrollRate() float64 {
	if g.ScrollRate > 0 {
		return g.ScrollRate
	}
	return DefaultScrollRate
}

func (g *Grid) now() time.Time {
	if g.Clock != nil {
		return g.Clock.Now()
	}
	return time.Time{}
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
