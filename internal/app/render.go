package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tlindem/wellpath/pkg/trajectory"
	"github.com/tlindem/wellpath/pkg/viewer"
)

// projectToScreen maps a trajectory point to absolute screen coordinates
// for the current camera mode.
func (app *App) projectToScreen(pt trajectory.Point, cx, cy float64) (float64, float64) {
	if app.Camera.Mode == viewer.Mode2D {
		sx, sy := app.Camera.Project2D(pt.World())
		return cx + sx, cy + sy
	}
	sx, sy, _ := app.Camera.Project(pt.World())
	return cx + sx, cy + sy
}

// drawWell renders the offset wells, the primary trajectory, the surface
// marker and the focused-station marker.
func (app *App) drawWell() {
	cx := float64(rl.GetScreenWidth()) / 2
	cy := float64(rl.GetScreenHeight()) / 2

	for _, offset := range app.Well.offsets {
		app.drawPath(offset.Points, cx, cy, rl.NewColor(offset.Color.R, offset.Color.G, offset.Color.B, 200))
	}

	app.drawPrimary(cx, cy)

	if len(app.Well.path) > 0 {
		// Surface location
		sx, sy := app.projectToScreen(app.Well.path[0], cx, cy)
		rl.DrawCircleV(rl.NewVector2(float32(sx), float32(sy)), 5, rl.NewColor(240, 240, 240, 255))
	}

	if i := app.Camera.FocusedIndex; i >= 0 && i < len(app.Well.path) {
		fx, fy := app.projectToScreen(app.Well.path[i], cx, cy)
		rl.DrawCircleLines(int32(fx), int32(fy), 8, rl.NewColor(255, 220, 80, 255))
		rl.DrawCircleV(rl.NewVector2(float32(fx), float32(fy)), 3, rl.NewColor(255, 220, 80, 255))
	}
}

// drawPath draws a trajectory as a polyline in a single color
func (app *App) drawPath(path trajectory.Path, cx, cy float64, c rl.Color) {
	for i := 1; i < len(path); i++ {
		x0, y0 := app.projectToScreen(path[i-1], cx, cy)
		x1, y1 := app.projectToScreen(path[i], cx, cy)
		rl.DrawLineV(
			rl.NewVector2(float32(x0), float32(y0)),
			rl.NewVector2(float32(x1), float32(y1)),
			c,
		)
	}
}

// drawPrimary draws the main well with depth cueing: segments further from
// the camera fade toward the background.
func (app *App) drawPrimary(cx, cy float64) {
	path := app.Well.path
	if app.Camera.Mode == viewer.Mode2D {
		app.drawPath(path, cx, cy, rl.NewColor(120, 180, 255, 255))
		return
	}

	for i := 1; i < len(path); i++ {
		x0, y0, _ := app.Camera.Project(path[i-1].World())
		x1, y1, depth := app.Camera.Project(path[i].World())

		// Fade with rotated depth. The cueing range tracks the projection
		// scale so it survives refits.
		t := depth / (2 * viewer.DefaultProjectionScale)
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		shade := 255 - t*140
		c := rl.NewColor(uint8(shade*0.5), uint8(shade*0.7), uint8(shade), 255)

		rl.DrawLineV(
			rl.NewVector2(float32(cx+x0), float32(cy+y0)),
			rl.NewVector2(float32(cx+x1), float32(cy+y1)),
			c,
		)
	}
}
