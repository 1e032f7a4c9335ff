package trajectory

import (
	"math"

	"github.com/tlindem/wellpath/pkg/survey"
)

// Integrate converts an ordered survey sequence into absolute positions
// using the minimum curvature method.
//
// The first output point is always the surface reference (TVD = NS = EW = 0
// at zero depth); it is synthesized when the first station sits below
// surface. Stations that do not advance measured depth are dropped, not
// merged. The function holds no state between calls: the same input always
// produces bit-identical output.
func Integrate(stations []survey.Station) Path {
	if len(stations) == 0 {
		return Path{}
	}

	path := make(Path, 0, len(stations)+1)

	first := stations[0]
	remaining := stations
	if first.MeasuredDepth == 0 {
		path = append(path, Point{Station: first})
		remaining = stations[1:]
	} else {
		path = append(path, Point{Station: survey.Station{}})
	}

	for _, st := range remaining {
		prev := path[len(path)-1]
		deltaMD := st.MeasuredDepth - prev.MeasuredDepth
		if deltaMD <= 0 {
			continue
		}
		path = append(path, step(prev, st, deltaMD))
	}

	return path
}

// step advances one minimum-curvature interval from prev to the new station
func step(prev Point, st survey.Station, deltaMD float64) Point {
	inc1 := prev.Inclination * math.Pi / 180
	inc2 := st.Inclination * math.Pi / 180
	az1 := prev.Azimuth * math.Pi / 180
	az2 := st.Azimuth * math.Pi / 180

	cosDL := math.Cos(inc2-inc1) - math.Sin(inc1)*math.Sin(inc2)*(1-math.Cos(az2-az1))
	cosDL = math.Max(-1, math.Min(1, cosDL))
	dl := math.Acos(cosDL)

	// Ratio factor smooths the straight-line chord onto the arc. At zero
	// dogleg tan(0)/0 is 0/0; the limit is 1.
	rf := 1.0
	if dl != 0 {
		rf = math.Tan(dl/2) / (dl / 2)
	}

	half := deltaMD / 2
	return Point{
		Station:    st,
		TVD:        prev.TVD + half*(math.Cos(inc1)+math.Cos(inc2))*rf,
		NorthSouth: prev.NorthSouth + half*(math.Sin(inc1)*math.Cos(az1)+math.Sin(inc2)*math.Cos(az2))*rf,
		EastWest:   prev.EastWest + half*(math.Sin(inc1)*math.Sin(az1)+math.Sin(inc2)*math.Sin(az2))*rf,
	}
}
