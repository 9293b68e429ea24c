// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platformer/internal/application/controller"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorObstacle = color.RGBA{80, 80, 100, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorEye      = color.RGBA{20, 20, 20, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 150}
)

// InputSource yields one input snapshot per tick.
type InputSource interface {
	GetInput() system.InputState
}

// Options are the optional parts of a Playing scene.
type Options struct {
	// RecordPath enables recording; the file is written when the scene exits.
	RecordPath string
	// Input defaults to the keyboard.
	Input InputSource
	// Focused defaults to ebiten.IsFocused.
	Focused func() bool
	// Logger receives controller traces.
	Logger *slog.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	sceneCfg   *config.SceneConfig
	obstacles  []*entity.Body
	state      state.GameState
	controller *controller.PlayerController
	camera     *Camera
	input      InputSource
	focused    func() bool
	screenW    int
	screenH    int

	sprite *ebiten.Image

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// NewController builds the player controller described by cfg. The playing
// scene and headless replays share it so both simulate the same player.
func NewController(cfg *config.GameConfig, camera controller.CameraSink, logger *slog.Logger) (*controller.PlayerController, error) {
	playerCfg := cfg.Entities.Player
	player, err := entity.NewPhysicsPlayer(
		playerCfg.Spawn.X, playerCfg.Spawn.Y,
		playerCfg.Size.Width, playerCfg.Size.Height,
		entity.Tuning{
			Acceleration: cfg.Physics.Movement.Acceleration,
			JumpImpulse:  cfg.Physics.Jump.Impulse,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", playerCfg.ID, err)
	}

	clips, err := system.LoadClips(playerCfg.Animations)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", playerCfg.ID, err)
	}

	return controller.New(player, controller.Config{
		Physics: cfg.Physics,
		Clips:   clips,
		Camera:  camera,
		Logger:  logger,
	})
}

// New creates a new Playing scene for sceneCfg.
func New(cfg *config.GameConfig, sceneCfg *config.SceneConfig, opts Options) (*Playing, error) {
	obstacles, err := system.LoadObstacles(sceneCfg)
	if err != nil {
		return nil, err
	}

	display := cfg.Physics.Display
	camera := NewCamera(display.ScreenWidth, display.ScreenHeight, float32(display.CameraEase))

	ctrl, err := NewController(cfg, camera, opts.Logger)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		sceneCfg:       sceneCfg,
		obstacles:      obstacles,
		state:          state.StatePlaying,
		controller:     ctrl,
		camera:         camera,
		input:          opts.Input,
		focused:        opts.Focused,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		recordFilename: opts.RecordPath,
	}
	if p.input == nil {
		p.input = system.NewInputSystem(nil)
	}
	if p.focused == nil {
		p.focused = ebiten.IsFocused
	}

	// Place the camera before the first frame is drawn
	camera.MapPosition(ctrl.CameraOffset())

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(sceneCfg.ID)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	input := p.input.GetInput()

	p.state = p.state.Next(p.focused(), input.Quit)
	switch p.state {
	case state.StateQuit:
		p.saveRecording()
		return nil, ebiten.Termination
	case state.StatePaused:
		return nil, nil
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input, dt)
	}

	p.controller.ApplyInput(input, dt)
	if err := p.controller.Update(dt, p.obstacles); err != nil {
		return nil, fmt.Errorf("scene %s: %w", p.sceneCfg.ID, err)
	}

	if p.recorder != nil {
		p.recorder.Checkpoint(p.controller.Body(), p.controller.Action())
	}

	p.camera.Update(dt)

	return nil, nil // nil = stay on this scene
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera.X, p.camera.Y
	for _, o := range p.obstacles {
		ebitenutil.DrawRect(screen, o.X+camX, o.Y+camY, o.Width, o.Height, colorObstacle)
	}

	frame := p.controller.Frame()
	p.drawPlayer(screen, frame, camX, camY)
	p.drawDebug(screen, frame)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

// drawPlayer draws the placeholder sprite, mirrored around its right edge
// when the player faces left.
func (p *Playing) drawPlayer(screen *ebiten.Image, frame controller.RenderFrame, camX, camY float64) {
	if p.sprite == nil {
		p.sprite = newPlayerSprite(int(frame.Width), int(frame.Height))
	}

	op := &ebiten.DrawImageOptions{}
	if frame.Mirrored() {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Translate(frame.OriginX()+camX, frame.Y+camY)
	screen.DrawImage(p.sprite, op)
}

func (p *Playing) drawDebug(screen *ebiten.Image, frame controller.RenderFrame) {
	body := p.controller.Body()
	text := fmt.Sprintf("scene: %s\naction: %s frame: %d facing: %s\nx: %.1f y: %.1f\nspeed: %.1f, %.1f grounded: %v",
		p.sceneCfg.Name, frame.Action, frame.AnimationFrame, frame.Facing,
		body.X, body.Y, body.SpeedX, body.SpeedY, p.controller.Grounded())
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED", p.screenW/2-20, p.screenH/2)
}

// newPlayerSprite builds a solid body with an eye on the right so the
// facing is visible.
func newPlayerSprite(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(colorPlayer)
	eye := w / 5
	if eye < 1 {
		eye = 1
	}
	ebitenutil.DrawRect(img, float64(w-2*eye), float64(h/5), float64(eye), float64(eye), colorEye)
	return img
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Entering scene %s (%d obstacles)", p.sceneCfg.Name, len(p.obstacles))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// State returns the current run state.
func (p *Playing) State() state.GameState {
	return p.state
}

// Controller returns the player controller.
func (p *Playing) Controller() *controller.PlayerController {
	return p.controller
}

// Camera returns the view camera.
func (p *Playing) Camera() *Camera {
	return p.camera
}
