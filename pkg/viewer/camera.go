// Package viewer holds the interactive camera model and the projection of
// integrated trajectories to screen space.
package viewer

import (
	"math"

	"github.com/tlindem/wellpath/pkg/geometry"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

// Mode selects which projection the camera applies
type Mode int

const (
	Mode3D Mode = iota
	Mode2D
)

// Carried-over viewer constants. The vertical emphasis and smoothing blend
// are empirical values, kept as named constants rather than re-derived.
const (
	// VerticalEmphasis exaggerates the vertical screen axis in 3D
	VerticalEmphasis = 1.5

	// FollowBlend is the per-frame weight of the auto-follow target:
	// new = old*(1-FollowBlend) + target*FollowBlend
	FollowBlend = 0.3

	// User zoom clamp
	MinZoom = 0.5
	MaxZoom = 3.0

	// Auto-follow zoom clamp
	MinFollowZoom = 0.8
	MaxFollowZoom = 1.5

	// DefaultProjectionScale is the perspective distance used before a
	// path is fitted
	DefaultProjectionScale = 600.0
)

// Camera is the only stateful part of the rendering core. It is created
// when a view opens, mutated by user input and auto-follow smoothing, and
// discarded when the view closes. The integrator never touches it.
type Camera struct {
	Mode Mode

	// 3D state
	Pitch float64 // radians, rotation about X
	Yaw   float64 // radians, rotation about Y
	Zoom  float64

	// 2D state
	PanX    float64
	PanY    float64
	Scale2D float64

	FocusedIndex int

	scale  float64 // perspective distance for the divide
	center geometry.Vector3
	maxTVD float64
	base2D float64 // fitted plan-view scale the 2D zoom clamp is relative to

	// recenterPan is set by focus stepping and cleared by direct pan
	// operations; the 2D view recenters only while it is set.
	recenterPan bool
}

// NewCamera creates a camera with neutral orientation in 3D mode
func NewCamera() *Camera {
	return &Camera{
		Mode:    Mode3D,
		Zoom:    1.0,
		Scale2D: 1.0,
		base2D:  1.0,
		scale:   DefaultProjectionScale,
	}
}

// FitTo centers the camera on a path's bounding box and derives the
// projection scale from its extent.
func (c *Camera) FitTo(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		return
	}
	c.center = bbox.Center()
	c.maxTVD = bbox.Max.Y

	extent := bbox.MaxDimension()
	if extent > 0 {
		c.scale = extent * 1.2
		// Default plan-view scale fits the path into roughly 400 screen
		// units before user zoom.
		c.Scale2D = 400 / extent
		c.base2D = c.Scale2D
	}
}

// Project maps a world point to screen offsets from the view center in 3D
// mode: yaw about Y, pitch about X, then a perspective divide. The third
// return value is the rotated depth, usable for depth cueing.
func (c *Camera) Project(p geometry.Vector3) (float64, float64, float64) {
	rel := p.Sub(c.center)

	sinYaw, cosYaw := math.Sincos(c.Yaw)
	x1 := rel.X*cosYaw - rel.Z*sinYaw
	z1 := rel.X*sinYaw + rel.Z*cosYaw

	sinPitch, cosPitch := math.Sincos(c.Pitch)
	y1 := rel.Y*cosPitch - z1*sinPitch
	z2 := rel.Y*sinPitch + z1*cosPitch

	denom := c.scale + z2
	if denom < 1e-6 {
		denom = 1e-6
	}
	factor := c.scale / denom

	sx := x1 * factor * c.Zoom
	sy := y1 * factor * c.Zoom * VerticalEmphasis
	return sx, sy, z2
}

// Project2D maps a world point to plan-view screen offsets: flat NS/EW
// scaling with pan, no rotation. North is up.
func (c *Camera) Project2D(p geometry.Vector3) (float64, float64) {
	sx := (p.X-c.center.X)*c.Scale2D + c.PanX
	sy := -(p.Z-c.center.Z)*c.Scale2D + c.PanY
	return sx, sy
}

// Rotate adjusts the 3D orientation by the given deltas in radians
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw

	// Clamp pitch short of the poles to avoid gimbal flip
	limit := math.Pi/2 - 0.05
	if c.Pitch > limit {
		c.Pitch = limit
	}
	if c.Pitch < -limit {
		c.Pitch = -limit
	}
}

// ZoomBy adjusts the 3D zoom, clamped to [MinZoom, MaxZoom]
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom = clamp(c.Zoom+delta, MinZoom, MaxZoom)
}

// Pan shifts the 2D view by screen-space deltas. A direct user operation:
// it takes the view out of focus-recentering until the next focus step.
func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
	c.recenterPan = false
}

// ResetPan recenters the 2D view; a direct user operation, not smoothed
func (c *Camera) ResetPan() {
	c.PanX = 0
	c.PanY = 0
	c.recenterPan = false
}

// ScaleBy adjusts the 2D scale multiplicatively. The cumulative scale is
// clamped to [MinZoom, MaxZoom] relative to the fitted baseline, matching
// the 3D zoom range.
func (c *Camera) ScaleBy(factor float64) {
	base := c.base2D
	if base == 0 {
		base = 1
	}
	c.Scale2D = clamp(c.Scale2D*factor, base*MinZoom, base*MaxZoom)
}

// StepFocus moves the focused station index by delta, clamped to the path.
// Stepping re-arms 2D recentering on the focused point.
func (c *Camera) StepFocus(delta int, path trajectory.Path) {
	c.FocusedIndex += delta
	if c.FocusedIndex < 0 {
		c.FocusedIndex = 0
	}
	if c.FocusedIndex > len(path)-1 {
		c.FocusedIndex = len(path) - 1
	}
	c.recenterPan = true
}

// FollowFocus eases the camera toward the focused station. Call once per
// frame: in 3D the target rotation comes from the direction between the
// previous and focused trajectory points and the zoom from focused depth;
// in 2D the pan recenters on the focused point, but only after a focus
// step — direct user panning is never fought. Each state is blended
// old*0.7 + target*0.3.
func (c *Camera) FollowFocus(path trajectory.Path) {
	i := c.FocusedIndex
	if i <= 0 || i >= len(path) {
		return
	}
	curr := path[i].World()

	if c.Mode == Mode2D {
		if !c.recenterPan {
			return
		}
		tx := -(curr.X - c.center.X) * c.Scale2D
		ty := (curr.Z - c.center.Z) * c.Scale2D
		c.PanX = blend(c.PanX, tx)
		c.PanY = blend(c.PanY, ty)
		return
	}

	d := curr.Sub(path[i-1].World())
	targetYaw := math.Atan2(d.X, d.Z)
	targetPitch := math.Atan2(d.Y, d.HorizontalLength())

	c.Yaw = blendAngle(c.Yaw, targetYaw)
	c.Pitch = blendAngle(c.Pitch, targetPitch)

	targetZoom := MinFollowZoom
	if c.maxTVD > 0 {
		t := clamp(curr.Y/c.maxTVD, 0, 1)
		targetZoom = MinFollowZoom + (MaxFollowZoom-MinFollowZoom)*t
	}
	c.Zoom = blend(c.Zoom, clamp(targetZoom, MinFollowZoom, MaxFollowZoom))
}

func blend(old, target float64) float64 {
	return old*(1-FollowBlend) + target*FollowBlend
}

// blendAngle eases between angles along the shorter arc
func blendAngle(old, target float64) float64 {
	diff := math.Mod(target-old, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return old + diff*FollowBlend
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
