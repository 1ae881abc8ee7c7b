// Package gui renders the pendulum wave in a Raylib window. Raylib also
// supplies the frame clock (GetFrameTime) and the input events, both
// translated into scene events before the core sees them.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/pendwave/internal/config"
	"github.com/san-kum/pendwave/internal/scene"
	"github.com/san-kum/pendwave/internal/wave"
)

type App struct {
	runner *scene.Runner
}

// Run opens the window and blocks until it is closed. Fails only on an
// invalid configuration, before any window exists.
func Run(cfg *config.Config) error {
	field, err := wave.NewField(cfg.Tuning())
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "pendwave")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FrameRateLimit))
	rl.SetExitKey(0)

	app := &App{runner: scene.New(field)}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.runner.Done() {
		a.Update()
		a.Draw()
	}
}

// Update polls input, translates it into scene events and steps the
// simulation by the frame's real elapsed time.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.runner.Handle(scene.TogglePause{})
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.runner.Handle(scene.Reset{})
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyRight) {
		a.runner.Handle(scene.SpeedUp{})
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyLeft) {
		a.runner.Handle(scene.SpeedDown{})
	}
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
		a.runner.Handle(scene.Quit{})
	}
	if rl.IsWindowResized() {
		a.runner.Handle(scene.Resize{
			Width:  float64(rl.GetScreenWidth()),
			Height: float64(rl.GetScreenHeight()),
		})
	}

	a.runner.Step(float64(rl.GetFrameTime()))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(config.BackgroundColor))

	a.runner.Render(renderer{})
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	ck := a.runner.Clock()

	rl.DrawText("pendwave", 20, 20, 24, rl.LightGray)
	rl.DrawText(fmt.Sprintf("t = %.1fs   speed %.2fx", ck.Total(), ck.TimeScale()), 20, 52, 16, rl.Gray)

	if ck.Paused() {
		rl.DrawText("PAUSED", 20, 76, 16, rl.Yellow)
	}

	h := int32(rl.GetScreenHeight())
	rl.DrawText("[SPACE] PAUSE  [R] RESET  [UP/DOWN] SPEED  [ESC] QUIT", 20, h-30, 14, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), int32(rl.GetScreenWidth())-80, h-30, 14, rl.DarkGray)
}

// renderer draws the scene geometry with raylib primitives. The bob is a
// filled disc over a slightly larger disc in the darkened bob color,
// which reads as a 2px outline.
type renderer struct{}

func (renderer) DrawPivot(center wave.Vec2, radius float64, color wave.RGB) {
	rl.DrawCircleV(vec(center), float32(radius), toRaylib(color))
}

func (renderer) DrawString(from, to wave.Vec2, color wave.RGB) {
	rl.DrawLineV(vec(from), vec(to), toRaylib(color))
}

func (renderer) DrawBob(center wave.Vec2, radius float64, color wave.RGB) {
	rl.DrawCircleV(vec(center), float32(radius+2), toRaylib(color.Darken()))
	rl.DrawCircleV(vec(center), float32(radius), toRaylib(color))
}

func vec(v wave.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func toRaylib(c wave.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
