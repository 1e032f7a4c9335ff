// Package steering derives directional-drilling guidance numbers from
// consecutive survey attitudes and bottom-hole-assembly geometry. All
// functions are pure; angles are degrees and depths are feet unless a
// parameter name says otherwise. Rates are degrees per 100 ft of course
// length throughout.
package steering

import "math"

// DefaultRotaryThresholdRPM is the rotary speed above which the string is
// considered rotating (slides accrue no angle change while rotating).
const DefaultRotaryThresholdRPM = 5.0

// Config holds the adjustable steering thresholds.
type Config struct {
	RotaryThresholdRPM float64
}

// DefaultConfig returns the standard steering configuration
func DefaultConfig() Config {
	return Config{RotaryThresholdRPM: DefaultRotaryThresholdRPM}
}

// IsRotating reports whether the drill string is rotating at the given
// rotary speed.
func (c Config) IsRotating(rotaryRPM float64) bool {
	return rotaryRPM > c.RotaryThresholdRPM
}

// CurveParameters is the externally supplied slide geometry used by the
// calculators. The engine never mutates it.
type CurveParameters struct {
	SlideDistance      float64 // planned slide interval length, ft
	BendAngle          float64 // motor bend setting, degrees
	BitToBendDistance  float64 // bit to bend, ft
	TargetInclination  float64 // degrees
	TargetAzimuth      float64 // degrees
	ProjectionDistance float64 // look-ahead distance for projections, ft
}

// MotorYield estimates the build rate of a steerable motor from its bend
// geometry, in degrees per 100 ft. A zero slide distance is undefined and
// clamps to 0 rather than propagating NaN.
func MotorYield(slideDistance, bendAngle, bitToBendDistance float64) float64 {
	if slideDistance == 0 || slideDistance+bitToBendDistance == 0 {
		return 0
	}
	effective := bendAngle * slideDistance / (slideDistance + bitToBendDistance)
	return effective / slideDistance * 100
}

// SurveyMotorYield derives the motor yield actually observed between two
// surveys. The second return value is false when the interval is unusable
// (missing prior survey or zero course length).
func SurveyMotorYield(prevInc, currInc, prevMD, currMD float64) (float64, bool) {
	course := currMD - prevMD
	if course <= 0 {
		return 0, false
	}
	return (currInc - prevInc) / course * 100, true
}

// EffectiveMotorYield picks the survey-derived yield when a usable prior
// survey exists and falls back to the geometric bend estimate otherwise.
func EffectiveMotorYield(p CurveParameters, prevInc, currInc, prevMD, currMD float64, hasPrev bool) float64 {
	if hasPrev {
		if yield, ok := SurveyMotorYield(prevInc, currInc, prevMD, currMD); ok {
			return yield
		}
	}
	return MotorYield(p.SlideDistance, p.BendAngle, p.BitToBendDistance)
}

// BuildRate returns the inclination change rate between two surveys in
// degrees per 100 ft. Zero-length intervals clamp to 0.
func BuildRate(prevInc, currInc, prevDepth, currDepth float64) float64 {
	course := currDepth - prevDepth
	if course == 0 {
		return 0
	}
	return (currInc - prevInc) / course * 100
}

// TurnRate returns the azimuth change rate between two surveys in degrees
// per 100 ft, taking the short way around the compass.
func TurnRate(prevAz, currAz, prevDepth, currDepth float64) float64 {
	course := currDepth - prevDepth
	if course == 0 {
		return 0
	}
	delta := currAz - prevAz
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta / course * 100
}

// SlideSeen returns the angle change already accrued by the current slide,
// in degrees. Rotating always yields 0.
func SlideSeen(motorYield, slideDistance float64, isRotating bool) float64 {
	if isRotating {
		return 0
	}
	return motorYield * slideDistance / 100
}

// SlideAhead returns the angle change still to come from the slide interval
// between the bend and the bit, in degrees. Rotating always yields 0.
func SlideAhead(motorYield, slideDistance, bitToBendDistance float64, isRotating bool) float64 {
	if isRotating {
		return 0
	}
	if slideDistance+bitToBendDistance == 0 {
		return 0
	}
	seen := motorYield * slideDistance / 100
	return seen * bitToBendDistance / (slideDistance + bitToBendDistance)
}

// ProjectedInclination extrapolates the inclination over the given distance
// at the current build rate.
func ProjectedInclination(currentInc, buildRate, distance float64) float64 {
	return currentInc + buildRate*distance/100
}

// ProjectedAzimuth extrapolates the azimuth over the given distance at the
// current turn rate, normalized to [0,360).
func ProjectedAzimuth(currentAz, turnRate, distance float64) float64 {
	return NormalizeAzimuth(currentAz + turnRate*distance/100)
}

// NormalizeAzimuth wraps an angle in degrees into [0,360)
func NormalizeAzimuth(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DoglegSeverity returns the total angular change between two attitudes in
// degrees per 100 ft of course length, by the spherical law of cosines.
// A non-positive course length clamps to 0.
func DoglegSeverity(inc1, az1, inc2, az2, courseLength float64) float64 {
	if courseLength <= 0 {
		return 0
	}
	return doglegAngle(inc1, az1, inc2, az2) / courseLength * 100
}

// DoglegNeeded returns the dogleg severity required to swing from the
// current attitude to the target attitude over the given distance. Same
// formula as DoglegSeverity, different operands.
func DoglegNeeded(currentInc, currentAz, targetInc, targetAz, distance float64) float64 {
	return DoglegSeverity(currentInc, currentAz, targetInc, targetAz, distance)
}

// doglegAngle returns the angle between two attitudes in degrees
func doglegAngle(inc1, az1, inc2, az2 float64) float64 {
	i1 := inc1 * math.Pi / 180
	i2 := inc2 * math.Pi / 180
	dAz := (az1 - az2) * math.Pi / 180

	cosDL := math.Cos(i1)*math.Cos(i2) + math.Sin(i1)*math.Sin(i2)*math.Cos(dAz)
	// Floating error can push the cosine fractionally outside [-1,1]
	cosDL = math.Max(-1, math.Min(1, cosDL))
	return math.Acos(cosDL) * 180 / math.Pi
}
