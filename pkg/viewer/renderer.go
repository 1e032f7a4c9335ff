package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/tlindem/wellpath/pkg/trajectory"
)

// PathRenderer renders a wellbore trajectory with optional offset wells.
// It owns a Camera and maps user gestures onto it: drag rotates (3D) or
// pans (2D), scroll zooms.
type PathRenderer struct {
	widget.BaseWidget
	path          trajectory.Path
	offsets       []trajectory.OffsetWell
	camera        *Camera
	lines         []*canvas.Line
	markers       []*canvas.Circle
	dragStart     *fyne.Position
	width         float64
	height        float64
	onFocusChange func(index int)
}

// NewPathRenderer creates a renderer fitted to the given trajectory
func NewPathRenderer(path trajectory.Path, offsets []trajectory.OffsetWell) *PathRenderer {
	camera := NewCamera()
	camera.FitTo(path.BoundingBox())

	r := &PathRenderer{
		path:    path,
		offsets: offsets,
		camera:  camera,
	}
	r.ExtendBaseWidget(r)
	return r
}

// Camera exposes the view state for external controls (mode toggle,
// focus stepping).
func (r *PathRenderer) Camera() *Camera {
	return r.camera
}

// SetPath swaps in a new trajectory snapshot and re-renders
func (r *PathRenderer) SetPath(path trajectory.Path) {
	r.path = path
	r.camera.FitTo(path.BoundingBox())
	if r.camera.FocusedIndex > len(path)-1 {
		r.camera.FocusedIndex = len(path) - 1
	}
	r.Render(r.width, r.height)
}

// SetOnFocusChange registers a callback fired when the focused station
// index changes.
func (r *PathRenderer) SetOnFocusChange(callback func(index int)) {
	r.onFocusChange = callback
}

// StepFocus moves the focused station and recenters the view on it
func (r *PathRenderer) StepFocus(delta int) {
	r.camera.StepFocus(delta, r.path)
	r.camera.FollowFocus(r.path)
	r.Render(r.width, r.height)
	if r.onFocusChange != nil {
		r.onFocusChange(r.camera.FocusedIndex)
	}
}

// ToggleMode switches between the 3D and 2D projections
func (r *PathRenderer) ToggleMode() {
	if r.camera.Mode == Mode3D {
		r.camera.Mode = Mode2D
	} else {
		r.camera.Mode = Mode3D
	}
	r.Render(r.width, r.height)
}

// CreateRenderer creates the fyne renderer for the widget
func (r *PathRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &pathWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render re-projects every point and rebuilds the line set
func (r *PathRenderer) Render(width, height float64) {
	r.width = width
	r.height = height

	r.lines = r.lines[:0]
	r.markers = r.markers[:0]

	for _, offset := range r.offsets {
		r.appendPath(offset.Points, offset.Color, 1)
	}
	r.appendPath(r.path, color.RGBA{0, 0, 0, 0}, 2)

	r.appendFocusMarker()
	r.Refresh()
}

// appendPath projects one trajectory into line segments. A zero well color
// means depth-cued grayscale (the primary well).
func (r *PathRenderer) appendPath(path trajectory.Path, wellColor color.RGBA, strokeWidth float32) {
	cx := r.width / 2
	cy := r.height / 2

	for i := 1; i < len(path); i++ {
		x1, y1, z1 := r.projectPoint(path[i-1])
		x2, y2, z2 := r.projectPoint(path[i])

		lineColor := color.Color(wellColor)
		if wellColor == (color.RGBA{0, 0, 0, 0}) {
			// Depth-based brightness for the primary well
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(80, math.Min(255, 200-avgZ*0.05)))
			lineColor = color.RGBA{brightness, brightness, 255, 255}
		}

		line := canvas.NewLine(lineColor)
		line.StrokeWidth = strokeWidth
		line.Position1 = fyne.NewPos(float32(cx+x1), float32(cy+y1))
		line.Position2 = fyne.NewPos(float32(cx+x2), float32(cy+y2))
		r.lines = append(r.lines, line)
	}
}

// projectPoint applies whichever projection the camera mode selects
func (r *PathRenderer) projectPoint(p trajectory.Point) (float64, float64, float64) {
	if r.camera.Mode == Mode2D {
		x, y := r.camera.Project2D(p.World())
		return x, y, 0
	}
	return r.camera.Project(p.World())
}

func (r *PathRenderer) appendFocusMarker() {
	i := r.camera.FocusedIndex
	if i < 0 || i >= len(r.path) {
		return
	}
	x, y, _ := r.projectPoint(r.path[i])

	marker := canvas.NewCircle(color.RGBA{255, 200, 0, 255})
	marker.StrokeColor = color.White
	marker.StrokeWidth = 2
	size := float32(10)
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(
		float32(r.width/2+x)-size/2,
		float32(r.height/2+y)-size/2,
	))
	r.markers = append(r.markers, marker)
}

// Dragged rotates the 3D view or pans the 2D view
func (r *PathRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := float64(event.Position.X - r.dragStart.X)
		deltaY := float64(event.Position.Y - r.dragStart.Y)

		if r.camera.Mode == Mode2D {
			r.camera.Pan(deltaX, deltaY)
		} else {
			r.camera.Rotate(-deltaY*0.01, deltaX*0.01)
		}
		r.Render(r.width, r.height)
	}
	pos := event.Position
	r.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (r *PathRenderer) DragEnd() {
	r.dragStart = nil
}

// Scrolled zooms the view
func (r *PathRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := float64(event.Scrolled.DY)
	if r.camera.Mode == Mode2D {
		r.camera.ScaleBy(1.0 + delta*0.001)
	} else {
		r.camera.ZoomBy(delta * 0.001)
	}
	r.Render(r.width, r.height)
}

// pathWidgetRenderer implements fyne.WidgetRenderer
type pathWidgetRenderer struct {
	renderer *PathRenderer
	objects  []fyne.CanvasObject
}

func (p *pathWidgetRenderer) Layout(size fyne.Size) {
	p.renderer.Render(float64(size.Width), float64(size.Height))
}

func (p *pathWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (p *pathWidgetRenderer) Refresh() {
	p.objects = p.objects[:0]
	for _, line := range p.renderer.lines {
		p.objects = append(p.objects, line)
	}
	for _, marker := range p.renderer.markers {
		p.objects = append(p.objects, marker)
	}
	canvas.Refresh(p.renderer)
}

func (p *pathWidgetRenderer) Objects() []fyne.CanvasObject {
	return p.objects
}

func (p *pathWidgetRenderer) Destroy() {}
