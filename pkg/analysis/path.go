// Package analysis computes whole-path statistics over an integrated
// wellbore trajectory for reports, HUDs and charts.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/tlindem/wellpath/pkg/geometry"
	"github.com/tlindem/wellpath/pkg/steering"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

// IntervalRecord describes one course between consecutive survey stations
type IntervalRecord struct {
	FromMD         float64
	ToMD           float64
	CourseLength   float64
	DoglegSeverity float64 // deg/100ft
	BuildRate      float64 // deg/100ft
	TurnRate       float64 // deg/100ft
}

// PathStats contains the aggregate measurements of a trajectory
type PathStats struct {
	StationCount int

	TotalMD  float64
	FinalTVD float64
	FinalNS  float64
	FinalEW  float64

	MaxDLS   float64 // worst dogleg severity on the path
	MaxDLSMD float64 // measured depth where it occurs
	AvgDLS   float64

	ClosureDistance float64 // horizontal distance surface to bottom hole
	ClosureAzimuth  float64 // direction of that displacement, degrees
	VerticalSection float64 // closure projected onto the reference azimuth

	Bounds    geometry.BoundingBox
	Intervals []IntervalRecord
}

// AnalyzePath measures an integrated trajectory. vsAzimuth is the reference
// azimuth (degrees) onto which the vertical section is projected.
func AnalyzePath(path trajectory.Path, vsAzimuth float64) *PathStats {
	stats := &PathStats{
		StationCount: len(path),
		Bounds:       path.BoundingBox(),
		Intervals:    make([]IntervalRecord, 0, len(path)),
	}
	if len(path) == 0 {
		return stats
	}

	last := path[len(path)-1]
	stats.TotalMD = last.MeasuredDepth
	stats.FinalTVD = last.TVD
	stats.FinalNS = last.NorthSouth
	stats.FinalEW = last.EastWest

	stats.ClosureDistance = math.Sqrt(last.NorthSouth*last.NorthSouth + last.EastWest*last.EastWest)
	stats.ClosureAzimuth = ClosureAzimuth(last.NorthSouth, last.EastWest)
	stats.VerticalSection = VerticalSection(last.NorthSouth, last.EastWest, vsAzimuth)

	totalDLS := 0.0
	for i := 1; i < len(path); i++ {
		prev, curr := path[i-1], path[i]
		course := curr.MeasuredDepth - prev.MeasuredDepth

		rec := IntervalRecord{
			FromMD:         prev.MeasuredDepth,
			ToMD:           curr.MeasuredDepth,
			CourseLength:   course,
			DoglegSeverity: steering.DoglegSeverity(prev.Inclination, prev.Azimuth, curr.Inclination, curr.Azimuth, course),
			BuildRate:      steering.BuildRate(prev.Inclination, curr.Inclination, prev.MeasuredDepth, curr.MeasuredDepth),
			TurnRate:       steering.TurnRate(prev.Azimuth, curr.Azimuth, prev.MeasuredDepth, curr.MeasuredDepth),
		}
		stats.Intervals = append(stats.Intervals, rec)

		totalDLS += rec.DoglegSeverity
		if rec.DoglegSeverity > stats.MaxDLS {
			stats.MaxDLS = rec.DoglegSeverity
			stats.MaxDLSMD = curr.MeasuredDepth
		}
	}
	if len(stats.Intervals) > 0 {
		stats.AvgDLS = totalDLS / float64(len(stats.Intervals))
	}

	return stats
}

// WorstIntervals returns the n intervals with the highest dogleg severity,
// most severe first.
func (s *PathStats) WorstIntervals(n int) []IntervalRecord {
	intervals := make([]IntervalRecord, len(s.Intervals))
	copy(intervals, s.Intervals)

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].DoglegSeverity > intervals[j].DoglegSeverity
	})

	if n > len(intervals) {
		n = len(intervals)
	}
	return intervals[:n]
}

// VerticalSection projects a horizontal displacement onto the reference
// azimuth (degrees).
func VerticalSection(ns, ew, azimuthDeg float64) float64 {
	azRad := azimuthDeg * math.Pi / 180
	return ns*math.Cos(azRad) + ew*math.Sin(azRad)
}

// ClosureAzimuth returns the compass direction of a horizontal
// displacement in degrees, [0,360).
func ClosureAzimuth(ns, ew float64) float64 {
	if ns == 0 && ew == 0 {
		return 0
	}
	return steering.NormalizeAzimuth(math.Atan2(ew, ns) * 180 / math.Pi)
}

// FormatPosition renders a trajectory position for CLI output
func FormatPosition(tvd, ns, ew float64) string {
	return fmt.Sprintf("TVD %.1f  N/S %+.1f  E/W %+.1f", tvd, ns, ew)
}
