// Package trajectory turns ordered survey stations into spatial wellbore
// positions using the minimum curvature method.
package trajectory

import (
	"image/color"

	"github.com/tlindem/wellpath/pkg/geometry"
	"github.com/tlindem/wellpath/pkg/survey"
)

// Point is a survey station plus its integrated position. Exactly one
// Point corresponds to each accepted station; the derived fields are owned
// by the integrator and recomputed whenever the station sequence changes.
type Point struct {
	survey.Station

	TVD        float64 // true vertical depth, ft
	NorthSouth float64 // ft north of surface location
	EastWest   float64 // ft east of surface location
}

// World returns the point in viewer world coordinates
// (X = east/west, Y = depth, Z = north/south).
func (p Point) World() geometry.Vector3 {
	return geometry.NewVector3(p.EastWest, p.TVD, p.NorthSouth)
}

// Path is an integrated wellbore trajectory, ordered from surface down.
type Path []Point

// BoundingBox returns the axis-aligned extent of the path in world
// coordinates, used for camera framing.
func (p Path) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, pt := range p {
		bbox.Extend(pt.World())
	}
	return bbox
}

// TotalDepth returns the measured depth of the deepest point
func (p Path) TotalDepth() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].MeasuredDepth
}

// Last returns the deepest point, or false for an empty path
func (p Path) Last() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// OffsetWell is a read-only reference trajectory rendered alongside the
// primary well.
type OffsetWell struct {
	Name   string
	Color  color.RGBA
	Points Path
}
