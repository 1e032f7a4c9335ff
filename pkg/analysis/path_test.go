package analysis

import (
	"math"
	"testing"

	"github.com/tlindem/wellpath/pkg/survey"
	"github.com/tlindem/wellpath/pkg/trajectory"
)

func buildPath(t *testing.T) trajectory.Path {
	t.Helper()
	return trajectory.Integrate([]survey.Station{
		{MeasuredDepth: 0, Inclination: 0, Azimuth: 0},
		{MeasuredDepth: 1000, Inclination: 10, Azimuth: 90},
		{MeasuredDepth: 2000, Inclination: 45, Azimuth: 90},
		{MeasuredDepth: 3000, Inclination: 90, Azimuth: 90},
	})
}

func TestAnalyzePath(t *testing.T) {
	stats := AnalyzePath(buildPath(t), 90)

	if stats.StationCount != 4 {
		t.Errorf("StationCount: expected 4, got %d", stats.StationCount)
	}
	if stats.TotalMD != 3000 {
		t.Errorf("TotalMD: expected 3000, got %v", stats.TotalMD)
	}
	if len(stats.Intervals) != 3 {
		t.Fatalf("expected 3 intervals, got %d", len(stats.Intervals))
	}

	// Heading due east the whole way: closure azimuth is 90 and the
	// vertical section along 090 equals the closure distance.
	if math.Abs(stats.ClosureAzimuth-90) > 1e-9 {
		t.Errorf("ClosureAzimuth: expected 90, got %v", stats.ClosureAzimuth)
	}
	if math.Abs(stats.VerticalSection-stats.ClosureDistance) > 1e-9 {
		t.Errorf("VS %v should equal closure %v along the well azimuth",
			stats.VerticalSection, stats.ClosureDistance)
	}

	// The 45 -> 90 degree interval is the sharpest (4.5 deg/100ft)
	if math.Abs(stats.MaxDLS-4.5) > 1e-9 {
		t.Errorf("MaxDLS: expected 4.5, got %v", stats.MaxDLS)
	}
	if stats.MaxDLSMD != 3000 {
		t.Errorf("MaxDLSMD: expected 3000, got %v", stats.MaxDLSMD)
	}
	if stats.AvgDLS <= 0 || stats.AvgDLS > stats.MaxDLS {
		t.Errorf("AvgDLS %v should be positive and below MaxDLS %v", stats.AvgDLS, stats.MaxDLS)
	}
}

func TestAnalyzePathEmpty(t *testing.T) {
	stats := AnalyzePath(trajectory.Path{}, 0)
	if stats.StationCount != 0 || stats.TotalMD != 0 || len(stats.Intervals) != 0 {
		t.Errorf("empty path stats should be zero: %+v", stats)
	}
}

func TestWorstIntervals(t *testing.T) {
	stats := AnalyzePath(buildPath(t), 90)

	worst := stats.WorstIntervals(2)
	if len(worst) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(worst))
	}
	if worst[0].DoglegSeverity < worst[1].DoglegSeverity {
		t.Error("worst intervals should be sorted most severe first")
	}
	if worst[0].ToMD != 3000 {
		t.Errorf("sharpest interval should end at 3000, got %v", worst[0].ToMD)
	}

	// Asking for more than exist returns all of them
	if got := stats.WorstIntervals(99); len(got) != 3 {
		t.Errorf("expected all 3 intervals, got %d", len(got))
	}
}

func TestVerticalSection(t *testing.T) {
	// Displacement due east, reference azimuth east: full credit
	if vs := VerticalSection(0, 500, 90); math.Abs(vs-500) > 1e-9 {
		t.Errorf("VS east: expected 500, got %v", vs)
	}
	// Reference azimuth north: no credit
	if vs := VerticalSection(0, 500, 0); math.Abs(vs) > 1e-9 {
		t.Errorf("VS north: expected 0, got %v", vs)
	}
	// Opposite direction goes negative
	if vs := VerticalSection(-500, 0, 0); math.Abs(vs+500) > 1e-9 {
		t.Errorf("VS opposite: expected -500, got %v", vs)
	}
}

func TestClosureAzimuth(t *testing.T) {
	cases := []struct {
		ns, ew, want float64
	}{
		{100, 0, 0},
		{0, 100, 90},
		{-100, 0, 180},
		{0, -100, 270},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := ClosureAzimuth(tc.ns, tc.ew); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ClosureAzimuth(%v,%v): expected %v, got %v", tc.ns, tc.ew, tc.want, got)
		}
	}
}
