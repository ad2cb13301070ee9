// Package view is an interactive terminal viewer for solved scenarios,
// drawn with tcell.
//
// Keys: Tab / Shift-Tab cycle routes, s toggles raw and smoothed paths,
// q, Esc or Ctrl-C quit.
package view

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/scenario"
)

// headerRows is the number of status lines above the map.
const headerRows = 2

var (
	styleText     = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWaypoint = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleMarker   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Viewer renders one route result at a time onto a screen.
type Viewer struct {
	screen  tcell.Screen
	sc      *scenario.Scenario
	results []scenario.Result
	current int
	showRaw bool
}

// New returns a Viewer drawing results of sc on screen. The screen must
// already be initialized; the Viewer never calls Fini.
func New(screen tcell.Screen, sc *scenario.Scenario, results []scenario.Result) *Viewer {
	return &Viewer{screen: screen, sc: sc, results: results}
}

// Open initializes the terminal, runs the viewer until the user quits or
// ctx is done, and restores the terminal.
func Open(ctx context.Context, sc *scenario.Scenario, results []scenario.Result) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("view: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("view: init screen: %w", err)
	}
	defer screen.Fini()

	return New(screen, sc, results).Run(ctx)
}

// Current returns the index of the displayed route and whether the raw
// path is shown.
func (v *Viewer) Current() (int, bool) {
	return v.current, v.showRaw
}

// Run draws and handles events until a quit key arrives (nil error) or
// ctx is done (ctx.Err()).
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// HandleEvent applies ev and reports whether the viewer should keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			v.step(1)
		case tcell.KeyBacktab:
			v.step(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 's':
				v.showRaw = !v.showRaw
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) step(d int) {
	if n := len(v.results); n > 0 {
		v.current = (v.current + d + n) % n
	}
}

// Draw repaints the whole screen.
func (v *Viewer) Draw() {
	v.screen.Clear()

	if len(v.results) == 0 {
		v.text(0, 0, "no routes", styleError)
		v.screen.Show()
		return
	}

	res := v.results[v.current]
	v.text(0, 0, v.title(res), styleText)
	if res.Err != nil {
		v.text(0, 1, res.Err.Error(), styleError)
	} else {
		v.text(0, 1, "[Tab] next route  [s] raw/smoothed  [q] quit", styleDim)
	}

	rows := strings.Split(v.sc.Map.Render(res.Overlays(v.showRaw)...), "\n")
	for y, row := range rows {
		x := 0
		for _, r := range row {
			v.screen.SetContent(x, y+headerRows, r, nil, glyphStyle(r))
			x++
		}
	}

	v.screen.Show()
}

func (v *Viewer) title(res scenario.Result) string {
	mode := "smoothed"
	if v.showRaw || res.Smoothed == nil {
		mode = "raw"
	}
	title := fmt.Sprintf("route %s (%d/%d) %v->%v %s", res.Route.Name, v.current+1, len(v.results),
		res.Route.From, res.Route.To, mode)
	if res.Err == nil {
		title += fmt.Sprintf(" steps=%d", len(res.Raw)-1)
		if mode == "smoothed" {
			title += fmt.Sprintf(" waypoints=%d", len(res.Smoothed))
		}
	}
	return title
}

func (v *Viewer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func glyphStyle(r rune) tcell.Style {
	switch {
	case r == gridmap.GlyphWall:
		return styleWall
	case r == gridmap.GlyphOpen:
		return styleDim
	case r == scenario.GlyphRaw, r == scenario.GlyphSegment:
		return stylePath
	case r == scenario.GlyphWaypoint:
		return styleWaypoint
	case unicode.IsLetter(r):
		return styleMarker
	}
	return styleText
}
