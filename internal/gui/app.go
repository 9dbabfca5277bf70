package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/starfield/internal/config"
	"github.com/san-kum/starfield/internal/field"
)

// Theme colors for everything that is not a star.
var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColCursor  = rl.NewColor(255, 255, 255, 100)
)

// Spiral-of-death guard: a stalled frame never owes more than this much
// simulated time.
const maxFrameTime = 0.25

type App struct {
	World  *field.World
	Opts   field.Options
	Bounds field.Bounds
	Camera rl.Camera2D

	Running bool
	accum   float64
	quit    bool

	width, height int32
	title         string
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}

	w := int32(cfg.Window.Width)
	h := int32(cfg.Window.Height)
	return &App{
		World:  field.NewWorld(cfg.FieldParams()),
		Opts:   opts,
		Bounds: field.CenteredBounds(float64(w), float64(h)),
		// Offsetting the camera by half the window centers the origin,
		// so world coordinates stay origin-relative.
		Camera: rl.Camera2D{
			Offset: rl.NewVector2(float32(w)/2, float32(h)/2),
			Zoom:   1,
		},
		Running: true,
		width:   w,
		height:  h,
		title:   cfg.Window.Title,
	}, nil
}

// Run opens the window and blocks in the update/draw loop until the user
// quits or the window closes.
func Run(cfg *config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}

	rl.InitWindow(app.width, app.height, app.title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyP) {
		if a.Opts.Mode == field.ModeLines {
			a.Opts.Mode = field.ModePoints
		} else {
			a.Opts.Mode = field.ModeLines
		}
	}
	if rl.IsKeyPressed(rl.KeyL) {
		a.Opts.Primary = !a.Opts.Primary
	}
	if rl.IsKeyPressed(rl.KeyN) {
		a.Opts.Secondary = !a.Opts.Secondary
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Opts.Static = !a.Opts.Static
	}

	// Held left button places the attractor at the cursor, translated into
	// the origin-centered world space; release clears it.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		world := rl.GetScreenToWorld2D(rl.GetMousePosition(), a.Camera)
		a.World.SetAttractor(field.Vec2{X: float64(world.X), Y: float64(world.Y)})
	} else if a.World.Attractor != nil {
		a.World.ClearAttractor()
	}

	// Fixed timestep: catch the simulation up to wall clock in whole ticks,
	// zero or more per frame. Pausing drops the debt instead of banking it.
	if !a.Running {
		a.accum = 0
		return
	}
	a.accum += float64(rl.GetFrameTime())
	if a.accum > maxFrameTime {
		a.accum = maxFrameTime
	}
	tick := a.World.Params.TickDuration
	for a.accum >= tick {
		a.World.Advance(a.Bounds)
		a.accum -= tick
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode2D(a.Camera)
	for _, p := range field.Render(a.World.Stars, a.World.Now(), a.Opts) {
		a.drawPrimitive(p)
	}
	if at := a.World.Attractor; at != nil {
		rl.DrawCircleLines(int32(at.X), int32(at.Y), 8, ColCursor)
		rl.DrawCircleLines(int32(at.X), int32(at.Y), 16, ColCursor)
	}
	rl.EndMode2D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawPrimitive(p field.Primitive) {
	col := toRaylib(p.Color)
	if p.Kind == field.KindCircle {
		rl.DrawCircleV(vec(p.Center), float32(p.Radius), col)
		return
	}
	rl.DrawLineEx(vec(p.From), vec(p.To), float32(p.Width), col)
	if p.RoundCap {
		r := float32(p.Width) / 2
		rl.DrawCircleV(vec(p.From), r, col)
		rl.DrawCircleV(vec(p.To), r, col)
	}
}

func (a *App) drawHUD() {
	a.text(a.title, 20, 20, 20, ColSelect)
	a.text(fmt.Sprintf(":: %d stars", len(a.World.Stars)), 130, 24, 14, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.text(status, int(a.width)-110, 20, 14, col)

	a.text("[SPACE] PAUSE  [P] POINTS/LINES  [L] PRIMARY  [N] SECONDARY  [C] COLOR  [Q] QUIT",
		20, int(a.height)-30, 12, ColTextDim)
	a.text(fmt.Sprintf("%d FPS", rl.GetFPS()), int(a.width)-80, int(a.height)-30, 12, ColTextDim)
}

func (a *App) text(s string, x, y, size int, col rl.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), col)
}

func vec(v field.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func toRaylib(c field.Color) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
