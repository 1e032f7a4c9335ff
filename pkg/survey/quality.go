package survey

import (
	"fmt"

	"github.com/tlindem/wellpath/pkg/steering"
)

// Status is the advisory quality classification of a survey reading.
// A fail status never blocks integration; the trajectory math uses the
// reading as-is and the status is display/alerting metadata only.
type Status int

const (
	StatusPass Status = iota
	StatusWarning
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarning:
		return "warning"
	case StatusFail:
		return "fail"
	}
	return "unknown"
}

// Limits are the named, overridable thresholds used by Classify.
type Limits struct {
	MaxDoglegPer100ft  float64 // implausible curvature between surveys
	MaxInclinationJump float64 // degrees between consecutive surveys
	MaxAzimuthJump     float64 // degrees between consecutive surveys
	MinToolTemp        float64 // degrees F
	MaxToolTemp        float64 // degrees F
}

// DefaultLimits returns the standard classification thresholds
func DefaultLimits() Limits {
	return Limits{
		MaxDoglegPer100ft:  8.0,
		MaxInclinationJump: 10.0,
		MaxAzimuthJump:     30.0,
		MinToolTemp:        0,
		MaxToolTemp:        300,
	}
}

// Assessment is the result of classifying a single station.
type Assessment struct {
	Status  Status
	Message string
}

// Classify grades a survey reading against the given limits, optionally
// considering the prior accepted station. Pure and deterministic; it never
// mutates the station and never blocks downstream processing.
func Classify(st Station, prior *Station, limits Limits) Assessment {
	// Hard validity checks first: these mark the reading itself suspect.
	if st.MeasuredDepth < 0 {
		return Assessment{StatusFail, fmt.Sprintf("negative measured depth %.1f", st.MeasuredDepth)}
	}
	if st.Inclination < 0 || st.Inclination > 180 {
		return Assessment{StatusFail, fmt.Sprintf("inclination %.2f outside [0,180]", st.Inclination)}
	}
	if st.Azimuth < 0 || st.Azimuth >= 360 {
		return Assessment{StatusFail, fmt.Sprintf("azimuth %.2f outside [0,360)", st.Azimuth)}
	}

	if st.HasToolTemp && (st.ToolTemp < limits.MinToolTemp || st.ToolTemp > limits.MaxToolTemp) {
		return Assessment{StatusWarning,
			fmt.Sprintf("tool temperature %.1fF outside [%.0f,%.0f]", st.ToolTemp, limits.MinToolTemp, limits.MaxToolTemp)}
	}

	if prior == nil {
		return Assessment{StatusPass, "ok"}
	}

	course := st.MeasuredDepth - prior.MeasuredDepth
	if course <= 0 {
		return Assessment{StatusWarning,
			fmt.Sprintf("measured depth %.1f does not advance past %.1f", st.MeasuredDepth, prior.MeasuredDepth)}
	}

	if dls := steering.DoglegSeverity(prior.Inclination, prior.Azimuth, st.Inclination, st.Azimuth, course); dls > limits.MaxDoglegPer100ft {
		return Assessment{StatusWarning,
			fmt.Sprintf("dogleg %.2f deg/100ft exceeds %.2f", dls, limits.MaxDoglegPer100ft)}
	}

	if jump := absf(st.Inclination - prior.Inclination); jump > limits.MaxInclinationJump {
		return Assessment{StatusWarning,
			fmt.Sprintf("inclination jump %.2f exceeds %.2f", jump, limits.MaxInclinationJump)}
	}

	if jump := azimuthJump(prior.Azimuth, st.Azimuth); jump > limits.MaxAzimuthJump {
		return Assessment{StatusWarning,
			fmt.Sprintf("azimuth jump %.2f exceeds %.2f", jump, limits.MaxAzimuthJump)}
	}

	return Assessment{StatusPass, "ok"}
}

// azimuthJump returns the unsigned angular difference taking the short way
// around the compass.
func azimuthJump(a, b float64) float64 {
	diff := absf(a - b)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
