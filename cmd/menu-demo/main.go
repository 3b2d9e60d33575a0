// Command menu-demo is a terminal sandbox for the input/menu stack:
// termfeed → aggregator → linear + grid menus, with audio cues.
// Arrows move, Enter submits, Tab switches menus, Escape quits.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/padkit/feedback"
	"github.com/lixenwraith/padkit/input"
	"github.com/lixenwraith/padkit/menu"
	"github.com/lixenwraith/padkit/profile"
	"github.com/lixenwraith/padkit/sample"
	"github.com/lixenwraith/padkit/sample/termfeed"
	"github.com/lixenwraith/padkit/signal"
)

// Logical ids for the demo.
const (
	actionSubmit signal.ID = iota
	actionCancel
)

const axisMove signal.ID = 0

const tickInterval = 16 * time.Millisecond

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	feed := termfeed.New(screen)
	defer feed.Stop()

	agg := input.New(feed)
	agg.SetLogger(log.New(io.Discard, "", 0))

	table := profile.New(
		profile.Default{
			ID: actionSubmit, Kind: profile.KindButton, AllowRemap: true,
			Bindings: []signal.Binding{
				signal.KeyBinding(sample.KeyEnter),
				signal.PadBinding(sample.PadA),
			},
		},
		profile.Default{
			ID: actionCancel, Kind: profile.KindButton, AllowRemap: true,
			Bindings: []signal.Binding{
				signal.KeyBinding(sample.KeyEscape),
				signal.PadBinding(sample.PadB),
			},
		},
		profile.Default{
			ID: axisMove, Kind: profile.KindAxis,
			Bindings: []signal.Binding{
				signal.FourWayBinding(
					signal.KeyBinding(sample.KeyUp),
					signal.KeyBinding(sample.KeyLeft),
					signal.KeyBinding(sample.KeyDown),
					signal.KeyBinding(sample.KeyRight),
				),
				signal.PadAxisBinding(signal.StickLeft),
			},
		},
	)
	table.Apply(agg)

	// Audio is best-effort; the demo runs silent when no device exists.
	cues, _ := feedback.NewCues(beep.SampleRate(44100))
	defer cues.Close()

	items := []string{
		"New Game", "Continue", "Options", "Locked", "Credits", "Gallery", "Quit",
	}
	list := menu.NewLinear(len(items), 5, actionSubmit, actionCancel, axisMove)
	list.IsOptionDisabled = func(i int) bool { return items[i] == "Locked" }

	grid := menu.NewGrid(7, 3, 3, actionSubmit, actionCancel, axisMove)
	grid.Flags = menu.ClampSize

	focusGrid := false
	status := "ready"

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()

	for now := range ticker.C {
		dt := now.Sub(last)
		last = now

		agg.Update()

		if agg.Shortcut(sample.KeyTab) {
			focusGrid = !focusGrid
		}

		if focusGrid {
			if grid.Update(agg, dt) {
				cues.Submit()
				status = fmt.Sprintf("grid chose cell %d", grid.Selection)
			}
			if grid.JustMoved {
				cues.Move()
			}
			if grid.Canceled {
				cues.Cancel()
				return
			}
		} else {
			if list.Update(agg, dt) {
				cues.Submit()
				status = fmt.Sprintf("list chose %q", items[list.Selection])
			}
			if list.JustMoved {
				cues.Move()
			}
			if list.Canceled {
				cues.Cancel()
				return
			}
		}

		draw(screen, items, list, grid, agg, focusGrid, status)
	}
}

func draw(screen tcell.Screen, items []string, list *menu.Linear, grid *menu.Grid, agg *input.Aggregator, focusGrid bool, status string) {
	screen.Clear()

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	normal := tcell.StyleDefault
	selected := tcell.StyleDefault.Reverse(true)

	drawText(screen, 2, 0, normal.Bold(true), "menu-demo  (Tab switches focus, Escape quits)")

	// Linear menu viewport.
	drawText(screen, 2, 2, headerStyle(!focusGrid), "[ list ]")
	for row := 0; row < list.VisibleItems; row++ {
		idx := list.Scroll + row
		if idx >= list.Length {
			break
		}
		style := normal
		if list.IsOptionDisabled(idx) {
			style = dim
		}
		if idx == list.Selection && !focusGrid {
			style = selected
		}
		drawText(screen, 4, 3+row, style, items[idx])
	}

	// Grid viewport.
	drawText(screen, 24, 2, headerStyle(focusGrid), "[ grid ]")
	for i := 0; i < grid.Size; i++ {
		x := 24 + (i%grid.Width)*5
		y := 3 + i/grid.Width - grid.Scroll
		if y < 3 || y >= 3+grid.VisibleRows {
			continue
		}
		style := normal
		if i == grid.Selection && focusGrid {
			style = selected
		}
		drawText(screen, x, y, style, fmt.Sprintf("[%d]", i))
	}

	cx, cy := agg.CursorPosition()
	drawText(screen, 2, 10, dim, fmt.Sprintf("cursor %d,%d  wheel %+d  %s", cx, cy, agg.WheelDelta(), status))

	screen.Show()
}

func headerStyle(focused bool) tcell.Style {
	if focused {
		return tcell.StyleDefault.Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
