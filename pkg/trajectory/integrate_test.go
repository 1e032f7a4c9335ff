package trajectory

import (
	"math"
	"reflect"
	"testing"

	"github.com/tlindem/wellpath/pkg/survey"
)

func station(md, inc, az float64) survey.Station {
	return survey.Station{MeasuredDepth: md, Inclination: inc, Azimuth: az}
}

func TestIntegrateEmpty(t *testing.T) {
	if path := Integrate(nil); len(path) != 0 {
		t.Errorf("empty input should give empty path, got %d points", len(path))
	}
}

func TestIntegrateSynthesizesSurfacePoint(t *testing.T) {
	path := Integrate([]survey.Station{station(500, 10, 20)})
	if len(path) != 2 {
		t.Fatalf("expected surface point + station, got %d points", len(path))
	}

	surface := path[0]
	if surface.MeasuredDepth != 0 || surface.Inclination != 0 || surface.Azimuth != 0 {
		t.Errorf("surface point angles wrong: %+v", surface.Station)
	}
	if surface.TVD != 0 || surface.NorthSouth != 0 || surface.EastWest != 0 {
		t.Errorf("surface point position wrong: %+v", surface)
	}
}

func TestIntegrateDropsDuplicateDepth(t *testing.T) {
	path := Integrate([]survey.Station{
		station(0, 0, 0),
		station(0, 0, 0),
		station(100, 0, 0),
	})
	if len(path) != 2 {
		t.Fatalf("duplicate depth should be dropped: expected 2 points, got %d", len(path))
	}
	if path[1].MeasuredDepth != 100 {
		t.Errorf("second point should be at md 100, got %v", path[1].MeasuredDepth)
	}
}

func TestIntegrateDropsRegressingDepth(t *testing.T) {
	path := Integrate([]survey.Station{
		station(0, 0, 0),
		station(200, 5, 10),
		station(150, 6, 11), // correction shot uphole, dropped
		station(300, 7, 12),
	})
	if len(path) != 3 {
		t.Fatalf("expected 3 points, got %d", len(path))
	}
	if path[2].MeasuredDepth != 300 {
		t.Errorf("last point should be at md 300, got %v", path[2].MeasuredDepth)
	}
}

func TestIntegrateStraightHoldInterval(t *testing.T) {
	// Identical attitudes: zero dogleg, RF is exactly 1 and the interval
	// is a straight tangent line.
	inc, az := 30.0, 45.0
	path := Integrate([]survey.Station{
		station(0, inc, az),
		station(200, inc, az),
	})
	if len(path) != 2 {
		t.Fatalf("expected 2 points, got %d", len(path))
	}

	incRad := inc * math.Pi / 180
	azRad := az * math.Pi / 180
	wantTVD := 200 * math.Cos(incRad)
	wantNS := 200 * math.Sin(incRad) * math.Cos(azRad)
	wantEW := 200 * math.Sin(incRad) * math.Sin(azRad)

	p := path[1]
	if math.Abs(p.TVD-wantTVD) > 1e-12 {
		t.Errorf("TVD: expected %v, got %v", wantTVD, p.TVD)
	}
	if math.Abs(p.NorthSouth-wantNS) > 1e-12 {
		t.Errorf("NS: expected %v, got %v", wantNS, p.NorthSouth)
	}
	if math.Abs(p.EastWest-wantEW) > 1e-12 {
		t.Errorf("EW: expected %v, got %v", wantEW, p.EastWest)
	}
}

func TestIntegrateBuildAndTurn(t *testing.T) {
	// Kickoff from vertical to 30 degrees inclination heading due east
	// over 1000 ft. Hand calculation: DL = 30 degrees, RF = tan(15)/(pi/12)
	// = 1.023491, dTVD = 500*(1+cos30)*RF = 954.93, dNS = 0,
	// dEW = 500*sin30*RF = 255.87.
	path := Integrate([]survey.Station{
		station(0, 0, 0),
		station(1000, 30, 90),
	})
	if len(path) != 2 {
		t.Fatalf("expected 2 points, got %d", len(path))
	}

	p := path[1]
	if math.Abs(p.TVD-954.93) > 0.01 {
		t.Errorf("TVD: expected 954.93, got %v", p.TVD)
	}
	if math.Abs(p.NorthSouth) > 1e-9 {
		t.Errorf("NS: expected 0, got %v", p.NorthSouth)
	}
	if math.Abs(p.EastWest-255.87) > 0.01 {
		t.Errorf("EW: expected 255.87, got %v", p.EastWest)
	}
}

func TestIntegrateIsIdempotent(t *testing.T) {
	stations := []survey.Station{
		station(0, 0, 0),
		station(1000, 12, 78),
		station(2000, 45, 92),
		station(3000, 88, 95),
		station(4000, 90, 95),
	}

	a := Integrate(stations)
	b := Integrate(stations)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated integration of the same input must be bit-identical")
	}
}

func TestIntegrateTVDMonotonicBelowHorizontal(t *testing.T) {
	stations := []survey.Station{
		station(0, 0, 0),
		station(500, 10, 40),
		station(1000, 25, 45),
		station(1500, 45, 50),
		station(2000, 70, 55),
		station(2500, 90, 60),
	}

	path := Integrate(stations)
	if len(path) != len(stations) {
		t.Fatalf("expected %d points, got %d", len(stations), len(path))
	}
	for i := 1; i < len(path); i++ {
		if path[i].TVD < path[i-1].TVD {
			t.Errorf("TVD decreased at index %d: %v -> %v", i, path[i-1].TVD, path[i].TVD)
		}
	}
}

func TestIntegratePreservesStationData(t *testing.T) {
	st := station(1000, 30, 90)
	st.Gamma = 52.5
	path := Integrate([]survey.Station{station(0, 0, 0), st})

	if path[1].Gamma != 52.5 {
		t.Errorf("station payload should ride along: got %+v", path[1].Station)
	}
}

func TestPathBoundingBoxAndDepth(t *testing.T) {
	path := Integrate([]survey.Station{
		station(0, 0, 0),
		station(1000, 30, 90),
	})

	if path.TotalDepth() != 1000 {
		t.Errorf("TotalDepth: expected 1000, got %v", path.TotalDepth())
	}

	bbox := path.BoundingBox()
	if bbox.Min.Y != 0 {
		t.Errorf("bounding box should start at surface, got min Y %v", bbox.Min.Y)
	}
	if bbox.Max.Y < 900 {
		t.Errorf("bounding box should reach final TVD, got max Y %v", bbox.Max.Y)
	}

	last, ok := path.Last()
	if !ok || last.MeasuredDepth != 1000 {
		t.Errorf("Last wrong: %+v ok=%v", last, ok)
	}
}
