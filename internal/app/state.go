package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tlindem/wellpath/pkg/steering"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
	"github.com/tlindem/wellpath/pkg/viewer"
	"github.com/tlindem/wellpath/pkg/watcher"
)

// LiveInputs are the readings normally supplied by the WITS feed. The
// viewer treats them as externally owned snapshot values.
type LiveInputs struct {
	RotaryRPM float64
}

// Overrides are operator-entered steering values. When present they take
// precedence over the computed numbers on the HUD.
type Overrides struct {
	MotorYield    float64
	HasMotorYield bool
	SlideSeen     float64
	HasSlideSeen  bool
	Dogleg        float64
	HasDogleg     bool
}

// Options configures an interactive viewer session
type Options struct {
	SurveyFile  string
	OffsetFiles []string

	Params    steering.CurveParameters
	Target    steering.TargetLine
	Steering  steering.Config
	Limits    survey.Limits
	Live      LiveInputs
	Overrides Overrides

	VSAzimuth float64 // reference azimuth for vertical section numbers
}

// WellData holds the current survey snapshot and everything derived from it
type WellData struct {
	stations []survey.Station
	path     trajectory.Path
	quality  []survey.Assessment
	offsets  []trajectory.OffsetWell
}

// InteractionState holds mouse state for click-vs-drag detection
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
}

// FileWatchState holds live-reload state. needsReload is flipped from the
// watcher goroutine and consumed at the top of the frame loop, so a fresh
// snapshot is always read before the next integration pass.
type FileWatchState struct {
	surveyWatcher *watcher.SurveyWatcher
	needsReload   atomic.Bool
}

// App aggregates all viewer state
type App struct {
	opts Options

	Well        WellData
	Camera      *viewer.Camera
	Interaction InteractionState
	FileWatch   FileWatchState
}
