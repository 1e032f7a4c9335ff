package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/tlindem/wellpath/pkg/analysis"
	"github.com/tlindem/wellpath/pkg/steering"
	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
	"github.com/tlindem/wellpath/pkg/viewer"
)

type App struct {
	window   fyne.Window
	path     trajectory.Path
	stations []survey.Station
	renderer *viewer.PathRenderer
	info     *StationInfo

	params steering.CurveParameters
}

type StationInfo struct {
	stationLabel  *widget.Label
	positionLabel *widget.Label
	qualityLabel  *widget.Label
	steeringLabel *widget.Label
	wellInfoLabel *widget.Label
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("WellPath - Trajectory Inspector")

	appInstance := &App{
		window: w,
		params: steering.CurveParameters{
			SlideDistance:      30,
			BendAngle:          2.0,
			BitToBendDistance:  5,
			ProjectionDistance: 90,
		},
	}

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to WellPath")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Survey File' to load wellbore surveys")

	openButton := widget.NewButton("Open Survey File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	stations, err := survey.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load survey file: %w", err), a.window)
		return
	}

	a.stations = stations
	a.path = trajectory.Integrate(stations)
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.info = &StationInfo{
		stationLabel:  widget.NewLabel(""),
		positionLabel: widget.NewLabel(""),
		qualityLabel:  widget.NewLabel(""),
		steeringLabel: widget.NewLabel(""),
		wellInfoLabel: widget.NewLabel(""),
	}
	a.info.stationLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.renderer = viewer.NewPathRenderer(a.path, nil)
	a.renderer.Camera().FocusedIndex = len(a.path) - 1
	a.renderer.SetOnFocusChange(func(index int) {
		a.updateStationInfo(index)
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})
	toggleButton := widget.NewButton("Toggle 2D/3D", func() {
		a.renderer.ToggleMode()
	})
	prevButton := widget.NewButton("Previous Station", func() {
		a.renderer.StepFocus(-1)
	})
	nextButton := widget.NewButton("Next Station", func() {
		a.renderer.StepFocus(1)
	})

	stats := analysis.AnalyzePath(a.path, 0)
	wellInfo := fmt.Sprintf(
		"Stations: %d\nTotal MD: %.1f ft\nTVD: %.1f ft\nClosure: %.1f ft at %.1f deg\nMax DLS: %.2f deg/100ft",
		stats.StationCount,
		stats.TotalMD,
		stats.FinalTVD,
		stats.ClosureDistance,
		stats.ClosureAzimuth,
		stats.MaxDLS,
	)
	a.info.wellInfoLabel.SetText(wellInfo)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Step stations to inspect surveys\n" +
			"• Toggle for a plan (bird's eye) view",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Well Information:"),
		widget.NewSeparator(),
		a.info.wellInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Focused Station:"),
		widget.NewSeparator(),
		a.info.stationLabel,
		a.info.positionLabel,
		a.info.qualityLabel,
		widget.NewSeparator(),
		widget.NewLabel("Steering:"),
		a.info.steeringLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		toggleButton,
		prevButton,
		nextButton,
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)

	a.updateStationInfo(a.renderer.Camera().FocusedIndex)
	a.renderer.Render(800, 600)
}

func (a *App) updateStationInfo(index int) {
	if index < 0 || index >= len(a.path) {
		a.info.stationLabel.SetText("No station selected")
		a.info.positionLabel.SetText("")
		a.info.qualityLabel.SetText("")
		a.info.steeringLabel.SetText("")
		return
	}
	pt := a.path[index]

	a.info.stationLabel.SetText(fmt.Sprintf("Station %d/%d", index+1, len(a.path)))
	a.info.positionLabel.SetText(fmt.Sprintf(
		"MD: %.1f ft\nInc: %.2f deg\nAz: %.2f deg\n%s",
		pt.MeasuredDepth, pt.Inclination, pt.Azimuth,
		analysis.FormatPosition(pt.TVD, pt.NorthSouth, pt.EastWest),
	))

	a.info.qualityLabel.SetText("Quality: " + a.classify(index))
	a.info.steeringLabel.SetText(a.steeringSummary(index))
}

// classify grades the focused station against the default quality limits
func (a *App) classify(index int) string {
	if index >= len(a.stations) {
		return "-"
	}
	var prior *survey.Station
	if index > 0 {
		prior = &a.stations[index-1]
	}
	assessment := survey.Classify(a.stations[index], prior, survey.DefaultLimits())
	return fmt.Sprintf("%s (%s)", assessment.Status, assessment.Message)
}

// steeringSummary derives the guidance numbers for the focused station
func (a *App) steeringSummary(index int) string {
	curr := a.path[index]
	hasPrev := index > 0
	var prev trajectory.Point
	if hasPrev {
		prev = a.path[index-1]
	}

	yield := steering.EffectiveMotorYield(a.params,
		prev.Inclination, curr.Inclination, prev.MeasuredDepth, curr.MeasuredDepth, hasPrev)
	buildRate := steering.BuildRate(prev.Inclination, curr.Inclination, prev.MeasuredDepth, curr.MeasuredDepth)
	turnRate := steering.TurnRate(prev.Azimuth, curr.Azimuth, prev.MeasuredDepth, curr.MeasuredDepth)

	return fmt.Sprintf(
		"Motor yield: %.2f deg/100ft\nBuild rate: %+.2f deg/100ft\nTurn rate: %+.2f deg/100ft\nProjected Inc: %.2f deg\nProjected Az: %.2f deg",
		yield,
		buildRate,
		turnRate,
		steering.ProjectedInclination(curr.Inclination, buildRate, a.params.ProjectionDistance),
		steering.ProjectedAzimuth(curr.Azimuth, turnRate, a.params.ProjectionDistance),
	)
}
