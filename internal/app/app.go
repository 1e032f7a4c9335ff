package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
	"github.com/tlindem/wellpath/pkg/viewer"
	"github.com/tlindem/wellpath/pkg/watcher"
)

// Run opens the interactive trajectory viewer and blocks until the window
// closes.
func Run(opts Options) error {
	app := &App{
		opts:   opts,
		Camera: viewer.NewCamera(),
	}

	if err := app.loadSurveys(); err != nil {
		return err
	}
	if err := app.loadOffsets(); err != nil {
		return err
	}

	app.Camera.FitTo(app.Well.path.BoundingBox())
	app.Camera.FocusedIndex = len(app.Well.path) - 1

	if err := app.setupWatcher(); err != nil {
		// Live reload is a convenience; the viewer still works without it
		fmt.Printf("Warning: survey file watching unavailable: %v\n", err)
	} else {
		defer app.FileWatch.surveyWatcher.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1400, 900, "WellPath")
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		// New surveys arriving mid-flight are picked up here, so every
		// frame works from a consistent snapshot.
		if app.FileWatch.needsReload.Swap(false) {
			app.reloadSurveys()
		}

		app.handleInput()
		app.Camera.FollowFocus(app.Well.path)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		app.drawWell()
		app.drawHUD()

		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

// loadSurveys reads the survey file and rebuilds every derived sequence
func (app *App) loadSurveys() error {
	stations, err := survey.Load(app.opts.SurveyFile)
	if err != nil {
		return err
	}

	app.Well.stations = stations
	app.Well.path = trajectory.Integrate(stations)
	app.Well.quality = classifyAll(stations, app.opts.Limits)
	return nil
}

// classifyAll tags each station with its advisory quality status
func classifyAll(stations []survey.Station, limits survey.Limits) []survey.Assessment {
	assessments := make([]survey.Assessment, len(stations))
	for i := range stations {
		var prior *survey.Station
		if i > 0 {
			prior = &stations[i-1]
		}
		assessments[i] = survey.Classify(stations[i], prior, limits)
	}
	return assessments
}

func (app *App) loadOffsets() error {
	for i, file := range app.opts.OffsetFiles {
		offset, err := trajectory.LoadOffsetWell(file, trajectory.DefaultOffsetColor(i))
		if err != nil {
			return err
		}
		app.Well.offsets = append(app.Well.offsets, offset)
	}
	return nil
}

func (app *App) setupWatcher() error {
	w, err := watcher.New(300 * time.Millisecond)
	if err != nil {
		return err
	}
	if err := w.Watch(app.opts.SurveyFile, func() {
		app.FileWatch.needsReload.Store(true)
	}); err != nil {
		w.Close()
		return err
	}
	app.FileWatch.surveyWatcher = w
	return nil
}

// reloadSurveys re-reads the survey file after a change. A failed reload
// keeps the previous snapshot on screen.
func (app *App) reloadSurveys() {
	wasAtEnd := app.Camera.FocusedIndex == len(app.Well.path)-1

	if err := app.loadSurveys(); err != nil {
		fmt.Printf("Survey reload failed: %v\n", err)
		return
	}

	app.Camera.FitTo(app.Well.path.BoundingBox())
	if wasAtEnd || app.Camera.FocusedIndex > len(app.Well.path)-1 {
		app.Camera.FocusedIndex = len(app.Well.path) - 1
	}
}
