package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/steering"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
	"github.com/tlindem/wellpath/pkg/viewer"
)

// Guidance is one HUD-ready set of steering numbers for a focused station.
type Guidance struct {
	MotorYield   float64
	BuildRate    float64
	TurnRate     float64
	SlideSeen    float64
	SlideAhead   float64
	ProjectedInc float64
	ProjectedAz  float64
	Rotating     bool

	Deviation    steering.Deviation
	DoglegNeeded float64
}

// computeGuidance derives the steering panel values for the focused
// station, applying operator overrides where present.
func computeGuidance(path trajectory.Path, focused int, opts Options) Guidance {
	var g Guidance
	if focused < 0 || focused >= len(path) {
		return g
	}
	curr := path[focused]
	g.Rotating = opts.Steering.IsRotating(opts.Live.RotaryRPM)

	hasPrev := focused > 0
	var prev trajectory.Point
	if hasPrev {
		prev = path[focused-1]
	}

	g.MotorYield = steering.EffectiveMotorYield(opts.Params,
		prev.Inclination, curr.Inclination, prev.MeasuredDepth, curr.MeasuredDepth, hasPrev)
	if opts.Overrides.HasMotorYield {
		g.MotorYield = opts.Overrides.MotorYield
	}

	if hasPrev {
		g.BuildRate = steering.BuildRate(prev.Inclination, curr.Inclination, prev.MeasuredDepth, curr.MeasuredDepth)
		g.TurnRate = steering.TurnRate(prev.Azimuth, curr.Azimuth, prev.MeasuredDepth, curr.MeasuredDepth)
	}

	g.SlideSeen = steering.SlideSeen(g.MotorYield, opts.Params.SlideDistance, g.Rotating)
	if opts.Overrides.HasSlideSeen {
		g.SlideSeen = opts.Overrides.SlideSeen
	}
	g.SlideAhead = steering.SlideAhead(g.MotorYield, opts.Params.SlideDistance, opts.Params.BitToBendDistance, g.Rotating)

	g.ProjectedInc = steering.ProjectedInclination(curr.Inclination, g.BuildRate, opts.Params.ProjectionDistance)
	g.ProjectedAz = steering.ProjectedAzimuth(curr.Azimuth, g.TurnRate, opts.Params.ProjectionDistance)

	g.Deviation = steering.EvaluateTargetLine(curr.TVD, curr.NorthSouth, curr.EastWest, curr.Azimuth, opts.Target)
	g.DoglegNeeded = opts.Target.DoglegToTarget(curr.Inclination, curr.Azimuth, opts.Params.ProjectionDistance)
	if opts.Overrides.HasDogleg {
		g.DoglegNeeded = opts.Overrides.Dogleg
	}
	return g
}

var (
	hudText   = rl.NewColor(210, 215, 225, 255)
	hudDim    = rl.NewColor(130, 135, 150, 255)
	hudPass   = rl.NewColor(110, 200, 110, 255)
	hudWarn   = rl.NewColor(230, 190, 70, 255)
	hudFail   = rl.NewColor(230, 90, 80, 255)
	hudAccent = rl.NewColor(255, 220, 80, 255)
)

// drawHUD overlays station details, steering guidance and controls help
func (app *App) drawHUD() {
	i := app.Camera.FocusedIndex
	if i < 0 || i >= len(app.Well.path) {
		rl.DrawText("No survey data", 20, 20, 20, hudText)
		return
	}
	pt := app.Well.path[i]

	y := int32(20)
	line := func(text string, c rl.Color) {
		rl.DrawText(text, 20, y, 18, c)
		y += 24
	}

	mode := "3D"
	if app.Camera.Mode == viewer.Mode2D {
		mode = "Plan"
	}
	line(fmt.Sprintf("%s view  |  station %d/%d", mode, i+1, len(app.Well.path)), hudAccent)
	line(fmt.Sprintf("MD %.1f ft  Inc %.2f  Az %.2f", pt.MeasuredDepth, pt.Inclination, pt.Azimuth), hudText)
	line(fmt.Sprintf("TVD %.1f  NS %+.1f  EW %+.1f", pt.TVD, pt.NorthSouth, pt.EastWest), hudText)
	line(fmt.Sprintf("VS %.1f ft (az %.1f)", analysis.VerticalSection(pt.NorthSouth, pt.EastWest, app.opts.VSAzimuth), app.opts.VSAzimuth), hudDim)
	if pt.Gamma != 0 {
		line(fmt.Sprintf("Gamma %.1f api", pt.Gamma), hudDim)
	}

	if i < len(app.Well.quality) {
		q := app.Well.quality[i]
		c := hudPass
		switch q.Status {
		case survey.StatusWarning:
			c = hudWarn
		case survey.StatusFail:
			c = hudFail
		}
		line(fmt.Sprintf("Quality: %s (%s)", q.Status, q.Message), c)
	}
	y += 12

	g := computeGuidance(app.Well.path, i, app.opts)
	state := "sliding"
	if g.Rotating {
		state = "rotating"
	}
	line(fmt.Sprintf("Steering (%s, %.0f rpm)", state, app.opts.Live.RotaryRPM), hudAccent)
	line(fmt.Sprintf("Motor yield %.2f  Build %.2f  Turn %.2f deg/100ft", g.MotorYield, g.BuildRate, g.TurnRate), hudText)
	line(fmt.Sprintf("Slide seen %.2f  ahead %.2f deg", g.SlideSeen, g.SlideAhead), hudText)
	line(fmt.Sprintf("Projected @%.0f ft: Inc %.2f  Az %.2f", app.opts.Params.ProjectionDistance, g.ProjectedInc, g.ProjectedAz), hudText)
	y += 12

	line("Target line", hudAccent)
	vertical := "high"
	if g.Deviation.AboveBelow < 0 {
		vertical = "low"
	}
	side := "right"
	if g.Deviation.LeftRight < 0 {
		side = "left"
	}
	line(fmt.Sprintf("%.1f ft %s  /  %.1f ft %s of plan", absf(g.Deviation.AboveBelow), vertical, absf(g.Deviation.LeftRight), side), hudText)
	line(fmt.Sprintf("Distance %.1f ft  DLS needed %.2f deg/100ft", g.Deviation.DistanceToTarget, g.DoglegNeeded), hudText)

	app.drawControlsHelp()
	rl.DrawFPS(int32(rl.GetScreenWidth())-95, 10)
}

func (app *App) drawControlsHelp() {
	help := "drag rotate/pan  wheel zoom  click pick  arrows step  tab 2d/3d  r reset"
	h := int32(rl.GetScreenHeight())
	rl.DrawText(help, 20, h-30, 16, hudDim)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
