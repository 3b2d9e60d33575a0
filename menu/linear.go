package menu

import (
	"time"

	"github.com/lixenwraith/padkit/clock"
	"github.com/lixenwraith/padkit/input"
	"github.com/lixenwraith/padkit/signal"
)

// Linear is the selection/scroll state machine for a one-dimensional
// menu. It is driven once per frame by a submit button, a cancel
// button, and one component of a 2D axis, all read through an
// Aggregator. It never touches rendering; callers read Selection,
// Scroll and SmoothScroll to draw.
type Linear struct {
	Selection         int
	PreviousSelection int
	Scroll            int
	SmoothScroll      float64

	Length       int
	VisibleItems int

	// Disabled suspends the whole menu: updates return not-pressed and
	// leave selection/scroll untouched.
	Disabled bool

	// Clamp stops at the ends of [0, Length) instead of wrapping.
	Clamp bool

	// Horizontal reads the X axis component instead of Y.
	Horizontal bool

	// IsOptionDisabled marks individual options unavailable; moves skip
	// them. Nil means every option is available.
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

// NewLinear creates a vertical menu over length options with the given
// viewport height, wired to the three logical ids.
func NewLinear(length, visible int, submit, cancel, axis signal.ID) *Linear {
	return &Linear{
		Length:       length,
		VisibleItems: visible,
		SubmitID:     submit,
		CancelID:     cancel,
		AxisID:       axis,
		ScrollRate:   DefaultScrollRate,
		Clock:        clock.NewMonotonic(),
	}
}

// Update advances the menu one frame and returns true exactly on the
// frame submit was pressed. Submit and cancel are consumed on their
// press edges; the axis is consumed when it causes a move.
func (m *Linear) Update(in *input.Aggregator, dt time.Duration) bool {
	m.JustMoved = false
	m.OverflowX = 0
	m.OverflowY = 0
	m.Canceled = false

	submitted := in.Pressed(m.SubmitID)
	if submitted {
		in.Consume(m.SubmitID)
	}
	if in.Pressed(m.CancelID) {
		in.Consume(m.CancelID)
		m.Canceled = true
	}

	if m.Disabled || m.Length == 0 {
		return false
	}

	if ax, ok := in.Axis(m.AxisID); ok {
		tick, val := ax.TickY(false), ax.Value(false).Y
		if m.Horizontal {
			tick, val = ax.TickX(false), ax.Value(false).X
		}
		if tick && val != 0 {
			dir := 1
			if val < 0 {
				dir = -1
			}
			if m.move(dir) {
				ax.Consume()
			}
		}
	}

	m.ensureVisible()
	m.SmoothScroll = Smooth(m.SmoothScroll, float64(m.Scroll), dt, m.scrollRate())

	if submitted {
		m.LastPressed = m.now()
	}
	return submitted
}

// move advances the selection one step in dir, skipping disabled
// options. Returns true when the selection changed or the move was
// absorbed by a clamped boundary.
func (m *Linear) move(dir int) bool {
	next, crossed, ok := m.nextAvailable(m.Selection, dir)
	if !ok {
		// Boundary stop still claims the input; a fully disabled set
		// does not.
		if m.Clamp && m.boundary(dir) {
			m.setOverflow(dir)
			return true
		}
		return false
	}
	if crossed {
		m.setOverflow(dir)
	}
	m.PreviousSelection = m.Selection
	m.Selection = next
	m.JustMoved = true
	m.LastMoved = m.now()
	return true
}

// nextAvailable finds the closest enabled option from `from` in
// direction dir. crossed reports that the search wrapped past an end.
// Bounded by Length steps so a fully disabled set cannot loop forever.
func (m *Linear) nextAvailable(from, dir int) (next int, crossed, ok bool) {
	for step := 1; step <= m.Length; step++ {
		idx := from + dir*step
		if idx < 0 || idx >= m.Length {
			if m.Clamp {
				return 0, false, false
			}
			crossed = true
			idx = ((idx % m.Length) + m.Length) % m.Length
		}
		if !m.optionDisabled(idx) {
			return idx, crossed, true
		}
	}
	return 0, false, false
}

func (m *Linear) boundary(dir int) bool {
	if dir > 0 {
		return m.Selection >= m.Length-1
	}
	return m.Selection <= 0
}

func (m *Linear) setOverflow(dir int) {
	if m.Horizontal {
		m.OverflowX = dir
	} else {
		m.OverflowY = dir
	}
}

func (m *Linear) optionDisabled(i int) bool {
	return m.IsOptionDisabled != nil && m.IsOptionDisabled(i)
}

// ensureVisible keeps the selection inside [Scroll, Scroll+VisibleItems).
func (m *Linear) ensureVisible() {
	if m.VisibleItems <= 0 {
		m.Scroll = 0
		return
	}
	if m.Selection < m.Scroll {
		m.Scroll = m.Selection
	} else if m.Selection >= m.Scroll+m.VisibleItems {
		m.Scroll = m.Selection - m.VisibleItems + 1
	}
	max := m.Length - m.VisibleItems
	if max < 0 {
		max = 0
	}
	if m.Scroll > max {
		m.Scroll = max
	}
	if m.Scroll < 0 {
		m.Scroll = 0
	}
}

func (m *Linear) scrollRate() float64 {
	if m.ScrollRate > 0 {
		return m.ScrollRate
	}
	return DefaultScrollRate
}

func (m *Linear) now() time.Time {
	if m.Clock != nil {
		return m.Clock.Now()
	}
	return time.Time{}
}
