// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/gridrun/internal/application/scene"
	"github.com/younwookim/gridrun/internal/application/session"
	"github.com/younwookim/gridrun/internal/application/state"
	"github.com/younwookim/gridrun/internal/application/system"
	"github.com/younwookim/gridrun/internal/domain/entity"
	"github.com/younwookim/gridrun/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorCracked    = color.RGBA{110, 90, 80, 255}
	colorCrumbling  = color.RGBA{140, 100, 70, 255}
	colorHazard     = color.RGBA{200, 50, 50, 255}
	colorPotion     = color.RGBA{120, 160, 255, 255}
	colorLife       = color.RGBA{255, 120, 180, 255}
	colorShovel     = color.RGBA{180, 180, 180, 255}
	colorExit       = color.RGBA{255, 215, 0, 255}
	colorLose       = color.RGBA{90, 0, 90, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorGlutton    = color.RGBA{200, 100, 100, 255}
	colorProjectile = color.RGBA{255, 100, 100, 255}
	colorArrow      = color.RGBA{240, 240, 240, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
)

// InputSource supplies one frame of input
type InputSource interface {
	GetInput() system.InputState
}

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	input    InputSource
	log      *zap.Logger
	screenW  int
	screenH  int
	tilePx   int
	dt       float64
	lastStep state.GameState

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene over a running session.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.Config, s *session.Session, input InputSource, recordPath string, log *zap.Logger) *Playing {
	p := &Playing{
		session:        s,
		input:          input,
		log:            log,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		tilePx:         cfg.Display.TilePixels,
		dt:             1.0 / float64(cfg.Display.Framerate),
		lastStep:       s.State(),
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(s.Level(), s.Stage().Name)
		log.Info("recording enabled", zap.String("path", recordPath), zap.Int("level", s.Level()))
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.session.State() {
	case state.StatePlaying, state.StateStageClear:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.session.TogglePause()
		}
	case state.StateGameOver, state.StateComplete:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.session.TogglePause()
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.step(p.input.GetInput())
}

// step feeds one frame of input to the session
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	next := p.session.Step(p.dt, input)
	if next == p.lastStep {
		return
	}
	p.lastStep = next
	p.log.Debug("state changed", zap.Stringer("state", next), zap.Int("frame", p.session.Frame()))

	// Auto-save recording when the run ends
	if next.IsOver() && p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Warn("failed to save recording", zap.String("path", filename), zap.Error(err))
		return
	}
	p.log.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
}

func (p *Playing) restart() error {
	if err := p.session.Restart(); err != nil {
		return fmt.Errorf("restart level: %w", err)
	}
	p.lastStep = p.session.State()
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.session.Level(), p.session.Stage().Name)
	}
	return nil
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	stage := p.session.Stage()
	player := p.session.Player()

	// Follow the player, clamped to the stage
	px, py := p.toScreen(player.Body.Position)
	camX := clamp(int(px)-p.screenW/2+p.tilePx/2, 0, stage.NumTilesX()*p.tilePx-p.screenW)
	camY := clamp(int(py)-p.screenH/2+p.tilePx/2, 0, stage.NumTilesY()*p.tilePx-p.screenH)

	p.drawTiles(screen, camX, camY)
	p.drawGluttons(screen, camX, camY)
	p.drawProjectiles(screen, camX, camY)
	p.drawArrows(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawUI(screen)

	switch p.session.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen, "GAME OVER")
	case state.StateComplete:
		p.drawGameOverOverlay(screen, "ALL LEVELS CLEAR")
	}
}

// toScreen maps a grid position to the top-left pixel of its sprite.
// Row 0 is drawn at the bottom of the stage.
func (p *Playing) toScreen(pos entity.GridPosition) (x, y float64) {
	stage := p.session.Stage()
	size := float64(p.tilePx)
	x = pos.ToWorldSpace(entity.AxisX, size, stage.StepsPerTileX())
	y = float64(stage.NumTilesY()-1)*size - pos.ToWorldSpace(entity.AxisY, size, stage.StepsPerTileY())
	return x, y
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	stage := p.session.Stage()
	size := float64(p.tilePx)

	for row := 0; row < stage.NumTilesY(); row++ {
		for col := 0; col < stage.NumTilesX(); col++ {
			c, ok := tileColor(stage.GetTileValue(row, col))
			if !ok {
				continue
			}
			x := float64(col*p.tilePx - camX)
			y := float64((stage.NumTilesY()-1-row)*p.tilePx - camY)
			ebitenutil.DrawRect(screen, x, y, size, size, c)
		}
	}
}

func tileColor(value int) (color.Color, bool) {
	switch {
	case value == entity.TileCracked:
		return colorCracked, true
	case value == entity.TileCrumbling:
		return colorCrumbling, true
	case entity.IsSolid(value):
		return colorWall, true
	case value == entity.TileHazard:
		return colorHazard, true
	case value == entity.TileExtraLife:
		return colorLife, true
	case value == entity.TileShovel:
		return colorShovel, true
	case value == entity.TileLevelExit:
		return colorExit, true
	case value == entity.TileLoseMarker:
		return colorLose, true
	case value >= entity.TileHealthPotion && value <= entity.TileJumpPotion:
		return colorPotion, true
	}
	return nil, false
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	x, y := p.toScreen(p.session.Player().Body.Position)
	size := float64(p.tilePx)
	ebitenutil.DrawRect(screen, x-float64(camX), y-float64(camY), size, size, colorPlayer)
}

func (p *Playing) drawGluttons(screen *ebiten.Image, camX, camY int) {
	size := float64(p.tilePx)
	for _, g := range p.session.Gluttons() {
		if !g.Active {
			continue
		}
		x, y := p.toScreen(g.Body.Position)
		ebitenutil.DrawRect(screen, x-float64(camX), y-float64(camY), size, size, colorGlutton)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, camX, camY int) {
	half := float64(p.tilePx) / 2
	for _, proj := range p.session.Projectiles() {
		if !proj.Active {
			continue
		}
		x, y := p.toScreen(proj.Position)
		ebitenutil.DrawRect(screen, x+half-2-float64(camX), y+half-2-float64(camY), 4, 4, colorProjectile)
	}
}

// drawArrows draws each arrow as a thin bar across the middle of its tile
func (p *Playing) drawArrows(screen *ebiten.Image, camX, camY int) {
	size := float64(p.tilePx)
	for _, a := range p.session.Arrows() {
		if !a.Active {
			continue
		}
		x, y := p.toScreen(a.Position)
		ebitenutil.DrawRect(screen, x-float64(camX), y+size/2-1-float64(camY), size, 2, colorArrow)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	player := p.session.Player()

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := float64(player.Health) / float64(player.MaxHealth)
	if healthRatio < 0 {
		healthRatio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	status := fmt.Sprintf("%s  Lives: %d  Jumps: %d  Kills: %d", p.session.Stage().Name, player.Lives, player.HighJumpCharges, player.Kills)
	if player.HasShovel {
		status += "  Shovel"
	}
	if player.BowCharge > 0 {
		status += fmt.Sprintf("  Bow %.1f", player.BowCharge)
	}
	if player.IsSpeedBoosted() {
		status += fmt.Sprintf("  Speed %.0fs", player.SpeedTimer)
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	ebitenutil.DebugPrint(screen, "A/D: Move | Space: Jump | W/S: Aim | J: Build | K: Break | L: Bow | ESC: Pause")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image, title string) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("%s\n\nLevel: %d\nFrames: %d\n\nPress Z to restart", title, p.session.Level()+1, p.session.Frame())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Info("level entered", zap.String("stage", p.session.Stage().Name), zap.Int("level", p.session.Level()))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
