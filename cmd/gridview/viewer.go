package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/application/session"
	"github.com/younwookim/gridrun/internal/application/state"
	"github.com/younwookim/gridrun/internal/application/system"
	"github.com/younwookim/gridrun/internal/domain/entity"
)

// Terminals report key presses but not releases, so a press keeps a
// direction held for this many frames
const holdFrames = 6

var (
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleCracked    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHazard     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePickup     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleExit       = tcell.StyleDefault.Foreground(tcell.ColorGold)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGlutton    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleArrow      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus     = tcell.StyleDefault.Reverse(true)
)

// Viewer drives a session from the keyboard and draws it as text
type Viewer struct {
	screen  tcell.Screen
	session *session.Session
	log     *zap.Logger
	dt      float64

	// frames left on each held direction
	left, right, up, down int
	// frames left on the drawn bow; autorepeat keeps it drawn
	fire int
	// one-shot actions for the next frame
	jump, build, brk bool
}

// NewViewer wraps an initialized screen
func NewViewer(screen tcell.Screen, s *session.Session, framerate int, log *zap.Logger) *Viewer {
	return &Viewer{
		screen:  screen,
		session: s,
		log:     log,
		dt:      1.0 / float64(framerate),
	}
}

// Run steps the session on a ticker until the user quits
func (v *Viewer) Run() {
	ticker := time.NewTicker(time.Duration(v.dt * float64(time.Second)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.tick()
			v.draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep running
func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		v.session.TogglePause()
	case tcell.KeyLeft:
		v.left, v.right = holdFrames, 0
	case tcell.KeyRight:
		v.right, v.left = holdFrames, 0
	case tcell.KeyUp:
		v.up, v.down = holdFrames, 0
	case tcell.KeyDown:
		v.down, v.up = holdFrames, 0
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return true
}

func (v *Viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'a':
		v.left, v.right = holdFrames, 0
	case 'd':
		v.right, v.left = holdFrames, 0
	case 'w':
		v.up, v.down = holdFrames, 0
	case 's':
		v.down, v.up = holdFrames, 0
	case ' ':
		v.jump = true
	case 'j':
		v.build = true
	case 'k':
		v.brk = true
	case 'f':
		v.fire = holdFrames
	case 'r':
		if v.session.State().IsOver() {
			if err := v.session.Restart(); err != nil {
				v.log.Error("restart failed", zap.Error(err))
			}
		}
	}
	return true
}

// input builds this frame's input and ages the held keys
func (v *Viewer) input() system.InputState {
	in := system.InputState{
		Left:        v.left > 0,
		Right:       v.right > 0,
		Up:          v.up > 0,
		Down:        v.down > 0,
		JumpPressed: v.jump,
		Build:       v.build,
		Break:       v.brk,
		Fire:        v.fire > 0,
	}
	v.left = max(0, v.left-1)
	v.right = max(0, v.right-1)
	v.up = max(0, v.up-1)
	v.down = max(0, v.down-1)
	v.fire = max(0, v.fire-1)
	v.jump, v.build, v.brk = false, false, false
	return in
}

func (v *Viewer) tick() {
	before := v.session.State()
	after := v.session.Step(v.dt, v.input())
	if after != before {
		v.log.Info("state changed", zap.Stringer("from", before), zap.Stringer("to", after))
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()

	stage := v.session.Stage()
	height := stage.NumTilesY()

	// Row 0 is the bottom line of the map
	for row := 0; row < height; row++ {
		for col := 0; col < stage.NumTilesX(); col++ {
			if r, style, ok := tileRune(stage.GetTileValue(row, col)); ok {
				v.screen.SetContent(col, height-1-row, r, nil, style)
			}
		}
	}

	for _, p := range v.session.Projectiles() {
		if p.Active {
			v.put(p.Position.Cell, height, '*', styleProjectile)
		}
	}
	for _, a := range v.session.Arrows() {
		if a.Active {
			v.put(a.Position.Cell, height, '-', styleArrow)
		}
	}
	for _, g := range v.session.Gluttons() {
		if g.Active {
			v.put(g.Body.Position.Cell, height, 'G', styleGlutton)
		}
	}
	v.put(v.session.Player().Body.Position.Cell, height, '@', stylePlayer)

	v.drawText(0, height, styleStatus, v.status())
	v.screen.Show()
}

func (v *Viewer) put(c entity.Cell, height int, r rune, style tcell.Style) {
	v.screen.SetContent(c.Col, height-1-c.Row, r, nil, style)
}

func (v *Viewer) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *Viewer) status() string {
	p := v.session.Player()
	line := fmt.Sprintf(" %s  hp %d/%d  lives %d  jumps %d  kills %d ",
		v.session.Stage().Name, p.Health, p.MaxHealth, p.Lives, p.HighJumpCharges, p.Kills)
	switch st := v.session.State(); st {
	case state.StatePlaying:
	case state.StatePaused:
		line += " PAUSED (esc) "
	default:
		line += fmt.Sprintf(" %s (r restarts, q quits) ", st)
	}
	return line
}

func tileRune(value int) (rune, tcell.Style, bool) {
	switch {
	case value == entity.TileCracked, value == entity.TileCrumbling:
		return '%', styleCracked, true
	case entity.IsSolid(value):
		return '#', styleWall, true
	case value == entity.TileHazard:
		return '^', styleHazard, true
	case value == entity.TileLoseMarker:
		return 'x', styleHazard, true
	case value == entity.TileLevelExit:
		return 'E', styleExit, true
	case value == entity.TileExtraLife:
		return '+', stylePickup, true
	case value == entity.TileShovel:
		return '/', stylePickup, true
	case value >= entity.TileHealthPotion && value <= entity.TileJumpPotion:
		return '!', stylePickup, true
	}
	return 0, tcell.StyleDefault, false
}
