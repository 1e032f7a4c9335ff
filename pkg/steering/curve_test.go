package steering

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMotorYieldGeometric(t *testing.T) {
	// 2.0 degree bend, 30 ft slide, 5 ft bit-to-bend:
	// (2.0 * 30/35) / 30 * 100 = 5.7142...
	yield := MotorYield(30, 2.0, 5)
	if !almostEqual(yield, 5.714285714285714, 1e-9) {
		t.Errorf("MotorYield: expected 5.7143, got %v", yield)
	}
}

func TestMotorYieldZeroSlideClamps(t *testing.T) {
	if yield := MotorYield(0, 2.0, 5); yield != 0 {
		t.Errorf("MotorYield with zero slide should clamp to 0, got %v", yield)
	}
	if yield := MotorYield(10, 2.0, -10); yield != 0 {
		t.Errorf("MotorYield with degenerate geometry should clamp to 0, got %v", yield)
	}
	if math.IsNaN(MotorYield(0, 0, 0)) || math.IsInf(MotorYield(0, 0, 0), 0) {
		t.Error("MotorYield must never produce NaN/Inf")
	}
}

func TestSurveyMotorYield(t *testing.T) {
	yield, ok := SurveyMotorYield(10, 13, 5000, 5100)
	if !ok {
		t.Fatal("expected usable interval")
	}
	if !almostEqual(yield, 3.0, 1e-9) {
		t.Errorf("SurveyMotorYield: expected 3.0, got %v", yield)
	}

	if _, ok := SurveyMotorYield(10, 13, 5100, 5100); ok {
		t.Error("zero course length must be unusable")
	}
	if _, ok := SurveyMotorYield(10, 13, 5200, 5100); ok {
		t.Error("regressing depth must be unusable")
	}
}

func TestEffectiveMotorYieldPrefersSurveys(t *testing.T) {
	params := CurveParameters{SlideDistance: 30, BendAngle: 2.0, BitToBendDistance: 5}

	yield := EffectiveMotorYield(params, 10, 13, 5000, 5100, true)
	if !almostEqual(yield, 3.0, 1e-9) {
		t.Errorf("expected survey-based yield 3.0, got %v", yield)
	}

	// Without a prior survey it falls back to the bend geometry
	yield = EffectiveMotorYield(params, 0, 0, 0, 0, false)
	if !almostEqual(yield, MotorYield(30, 2.0, 5), 1e-9) {
		t.Errorf("expected geometric fallback, got %v", yield)
	}

	// A prior survey with zero course length also falls back
	yield = EffectiveMotorYield(params, 10, 13, 5100, 5100, true)
	if !almostEqual(yield, MotorYield(30, 2.0, 5), 1e-9) {
		t.Errorf("expected geometric fallback on zero interval, got %v", yield)
	}
}

func TestBuildRate(t *testing.T) {
	rate := BuildRate(10, 12, 5000, 5100)
	if !almostEqual(rate, 2.0, 1e-9) {
		t.Errorf("BuildRate: expected 2.0, got %v", rate)
	}

	if rate := BuildRate(10, 12, 5000, 5000); rate != 0 {
		t.Errorf("BuildRate on zero interval should clamp to 0, got %v", rate)
	}
}

func TestTurnRateWrapsCompass(t *testing.T) {
	// 350 -> 10 is a 20 degree right turn, not a 340 degree left turn
	rate := TurnRate(350, 10, 5000, 5100)
	if !almostEqual(rate, 20.0, 1e-9) {
		t.Errorf("TurnRate across north: expected 20.0, got %v", rate)
	}

	rate = TurnRate(10, 350, 5000, 5100)
	if !almostEqual(rate, -20.0, 1e-9) {
		t.Errorf("TurnRate across north left: expected -20.0, got %v", rate)
	}
}

func TestSlideSeenAndAhead(t *testing.T) {
	// Rotating: both are exactly zero regardless of inputs
	if v := SlideSeen(6, 30, true); v != 0 {
		t.Errorf("SlideSeen while rotating must be 0, got %v", v)
	}
	if v := SlideAhead(6, 30, 5, true); v != 0 {
		t.Errorf("SlideAhead while rotating must be 0, got %v", v)
	}

	seen := SlideSeen(6, 30, false)
	if !almostEqual(seen, 1.8, 1e-9) {
		t.Errorf("SlideSeen: expected 1.8, got %v", seen)
	}

	ahead := SlideAhead(6, 30, 5, false)
	if !almostEqual(ahead, 1.8*5/35, 1e-9) {
		t.Errorf("SlideAhead: expected %v, got %v", 1.8*5/35, ahead)
	}
}

func TestIsRotating(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.IsRotating(5.0) {
		t.Error("exactly 5 rpm is not rotating")
	}
	if !cfg.IsRotating(5.1) {
		t.Error("5.1 rpm is rotating")
	}
	if cfg.IsRotating(0) {
		t.Error("0 rpm is not rotating")
	}
}

func TestProjectedInclination(t *testing.T) {
	inc := ProjectedInclination(30, 2.0, 150)
	if !almostEqual(inc, 33.0, 1e-9) {
		t.Errorf("ProjectedInclination: expected 33.0, got %v", inc)
	}
}

func TestProjectedAzimuthWraps(t *testing.T) {
	// 350 + 2.0*1000/100 = 370, which wraps to 10
	az := ProjectedAzimuth(350, 2.0, 1000)
	if !almostEqual(az, 10.0, 1e-9) {
		t.Errorf("ProjectedAzimuth: expected 10.0, got %v", az)
	}

	az = ProjectedAzimuth(10, -2.0, 1000)
	if !almostEqual(az, 350.0, 1e-9) {
		t.Errorf("ProjectedAzimuth negative wrap: expected 350.0, got %v", az)
	}

	for _, deg := range []float64{0, 90, 359.9, 360, 725, -45} {
		n := NormalizeAzimuth(deg)
		if n < 0 || n >= 360 {
			t.Errorf("NormalizeAzimuth(%v) = %v out of [0,360)", deg, n)
		}
	}
}

func TestDoglegSeverity(t *testing.T) {
	// Identical attitudes: no dogleg
	if dls := DoglegSeverity(30, 120, 30, 120, 100); dls != 0 {
		t.Errorf("identical attitudes should give 0, got %v", dls)
	}

	// Pure build: 0 -> 30 degrees over 100 ft
	dls := DoglegSeverity(0, 0, 30, 0, 100)
	if !almostEqual(dls, 30.0, 1e-9) {
		t.Errorf("pure build DLS: expected 30.0, got %v", dls)
	}

	// Horizontal 90 degree turn over 100 ft
	dls = DoglegSeverity(90, 0, 90, 90, 100)
	if !almostEqual(dls, 90.0, 1e-9) {
		t.Errorf("horizontal turn DLS: expected 90.0, got %v", dls)
	}

	// Degenerate course length clamps
	if dls := DoglegSeverity(0, 0, 30, 0, 0); dls != 0 {
		t.Errorf("zero course length should give 0, got %v", dls)
	}
}

func TestDoglegNeededMatchesSeverity(t *testing.T) {
	needed := DoglegNeeded(28, 175, 30, 180, 200)
	severity := DoglegSeverity(28, 175, 30, 180, 200)
	if !almostEqual(needed, severity, 1e-12) {
		t.Errorf("DoglegNeeded and DoglegSeverity disagree: %v vs %v", needed, severity)
	}
}
