package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tlindem/wellpath/pkg/viewer"
)

// handleInput processes one frame of user input
func (app *App) handleInput() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = rl.GetMousePosition()
		app.Interaction.mouseMoved = false
	}

	// Drag: rotate in 3D, pan in 2D
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			if app.Camera.Mode == viewer.Mode2D {
				app.Camera.Pan(float64(delta.X), float64(delta.Y))
			} else {
				app.Camera.Rotate(float64(-delta.Y)*0.01, float64(delta.X)*0.01)
			}
		}
	}

	// Click without movement selects the nearest station
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		drag := rl.Vector2Distance(app.Interaction.mouseDownPos, pos)
		if !app.Interaction.mouseMoved && drag < 5.0 {
			app.selectStation(float64(pos.X), float64(pos.Y))
		}
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		if app.Camera.Mode == viewer.Mode2D {
			app.Camera.ScaleBy(1.0 + float64(wheel)*0.05)
		} else {
			app.Camera.ZoomBy(float64(wheel) * 0.1)
		}
	}

	// Keyboard controls
	if rl.IsKeyPressed(rl.KeyTab) {
		if app.Camera.Mode == viewer.Mode3D {
			app.Camera.Mode = viewer.Mode2D
		} else {
			app.Camera.Mode = viewer.Mode3D
		}
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyUp) {
		app.Camera.StepFocus(1, app.Well.path)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyDown) {
		app.Camera.StepFocus(-1, app.Well.path)
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		app.Camera.StepFocus(len(app.Well.path), app.Well.path)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.resetView()
	}
	if rl.IsKeyPressed(rl.KeyZ) {
		app.Camera.ResetPan()
	}
}

// resetView restores the default orientation for the current mode
func (app *App) resetView() {
	app.Camera.Pitch = 0
	app.Camera.Yaw = 0
	app.Camera.Zoom = 1.0
	app.Camera.ResetPan()
	app.Camera.FitTo(app.Well.path.BoundingBox())
}

// selectStation focuses the projected station nearest to a screen click
func (app *App) selectStation(screenX, screenY float64) {
	const pickRadius = 20.0

	cx := float64(rl.GetScreenWidth()) / 2
	cy := float64(rl.GetScreenHeight()) / 2

	best := -1
	bestDist := math.MaxFloat64
	for i := range app.Well.path {
		x, y := app.projectToScreen(app.Well.path[i], cx, cy)
		dist := math.Hypot(x-screenX, y-screenY)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	if best >= 0 && bestDist < pickRadius {
		app.Camera.FocusedIndex = best
	}
}
