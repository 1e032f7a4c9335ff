package steering

import "math"

// TargetLine is the planned line the directional driller steers toward.
type TargetLine struct {
	TVD             float64 // planned true vertical depth, ft
	VerticalSection float64 // planned vertical section distance, ft
	Inclination     float64 // planned hold inclination, degrees
	Azimuth         float64 // planned hold azimuth, degrees
}

// Deviation describes where the wellbore sits relative to the target line.
//
// AboveBelow is target TVD minus current TVD: positive means the target is
// deeper than the bit, i.e. the wellbore is riding high (above plan).
// LeftRight is positive when the target line lies to the right of the
// wellbore heading.
type Deviation struct {
	AboveBelow       float64
	LeftRight        float64
	DistanceToTarget float64
}

// EvaluateTargetLine compares the current position and heading against the
// target line. Pure; recomputes fully from its inputs on every call.
func EvaluateTargetLine(currentTVD, currentNS, currentEW, currentAz float64, target TargetLine) Deviation {
	aboveBelow := target.TVD - currentTVD

	// Target position on the horizontal plane from its vertical section
	// and azimuth, compared against the current NS/EW projection.
	azRad := target.Azimuth * math.Pi / 180
	targetNS := target.VerticalSection * math.Cos(azRad)
	targetEW := target.VerticalSection * math.Sin(azRad)

	offsetNS := targetNS - currentNS
	offsetEW := targetEW - currentEW
	lateral := math.Sqrt(offsetNS*offsetNS + offsetEW*offsetEW)

	// Sign the lateral offset against the wellbore heading: positive when
	// the target is to the right of the direction of travel.
	headingRad := currentAz * math.Pi / 180
	cross := math.Cos(headingRad)*offsetEW - math.Sin(headingRad)*offsetNS
	if cross < 0 {
		lateral = -lateral
	}

	return Deviation{
		AboveBelow:       aboveBelow,
		LeftRight:        lateral,
		DistanceToTarget: math.Sqrt(aboveBelow*aboveBelow + lateral*lateral),
	}
}

// DoglegToTarget returns the dogleg severity needed to reach the target
// attitude from the current attitude over the given distance.
func (t TargetLine) DoglegToTarget(currentInc, currentAz, distance float64) float64 {
	return DoglegNeeded(currentInc, currentAz, t.Inclination, t.Azimuth, distance)
}
