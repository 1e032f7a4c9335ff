package steering

import (
	"math"
	"testing"
)

func TestEvaluateTargetLineAboveBelow(t *testing.T) {
	target := TargetLine{TVD: 8000}
	dev := EvaluateTargetLine(7950, 0, 0, 0, target)

	if !almostEqual(dev.AboveBelow, 50, 1e-9) {
		t.Errorf("AboveBelow: expected 50, got %v", dev.AboveBelow)
	}
	if dev.DistanceToTarget < math.Abs(dev.AboveBelow) {
		t.Errorf("DistanceToTarget %v must be at least |AboveBelow| %v",
			dev.DistanceToTarget, dev.AboveBelow)
	}
}

func TestEvaluateTargetLineLateral(t *testing.T) {
	// Heading north at the origin; target line 100 ft due east.
	target := TargetLine{TVD: 8000, VerticalSection: 100, Azimuth: 90}
	dev := EvaluateTargetLine(8000, 0, 0, 0, target)

	if !almostEqual(dev.AboveBelow, 0, 1e-9) {
		t.Errorf("AboveBelow: expected 0, got %v", dev.AboveBelow)
	}
	if !almostEqual(dev.LeftRight, 100, 1e-6) {
		t.Errorf("LeftRight: expected +100 (target to the right), got %v", dev.LeftRight)
	}
	if !almostEqual(dev.DistanceToTarget, 100, 1e-6) {
		t.Errorf("DistanceToTarget: expected 100, got %v", dev.DistanceToTarget)
	}

	// Same target, heading south: the target is now on the left.
	dev = EvaluateTargetLine(8000, 0, 0, 180, target)
	if !almostEqual(dev.LeftRight, -100, 1e-6) {
		t.Errorf("LeftRight heading south: expected -100, got %v", dev.LeftRight)
	}
}

func TestEvaluateTargetLineCombined(t *testing.T) {
	target := TargetLine{TVD: 8000, VerticalSection: 100, Azimuth: 90}
	dev := EvaluateTargetLine(7950, 0, 0, 0, target)

	expected := math.Sqrt(50*50 + 100*100)
	if !almostEqual(dev.DistanceToTarget, expected, 1e-6) {
		t.Errorf("DistanceToTarget: expected %v, got %v", expected, dev.DistanceToTarget)
	}
}

func TestEvaluateTargetLineIsPure(t *testing.T) {
	target := TargetLine{TVD: 9000, VerticalSection: 1200, Inclination: 90, Azimuth: 270}
	a := EvaluateTargetLine(8950, 300, -800, 265, target)
	b := EvaluateTargetLine(8950, 300, -800, 265, target)
	if a != b {
		t.Errorf("repeated evaluation differed: %v vs %v", a, b)
	}
}

func TestDoglegToTarget(t *testing.T) {
	target := TargetLine{Inclination: 90, Azimuth: 180}
	needed := target.DoglegToTarget(88, 178, 100)
	if needed <= 0 {
		t.Errorf("expected positive dogleg needed, got %v", needed)
	}

	// Already on attitude: nothing needed
	if v := target.DoglegToTarget(90, 180, 100); v != 0 {
		t.Errorf("on-attitude dogleg needed should be 0, got %v", v)
	}
}
