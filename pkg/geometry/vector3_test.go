package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(100, -50, 25)
	v2 := NewVector3(-40, 10, 5)
	result := v1.Add(v2)

	expected := NewVector3(60, -40, 30)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(500, 866, 0)
	v2 := NewVector3(100, 66, -10)
	result := v1.Sub(v2)

	expected := NewVector3(400, 800, 10)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Scale(t *testing.T) {
	v := NewVector3(1, -2, 3)
	result := v.Scale(2.5)

	expected := NewVector3(2.5, -5, 7.5)
	if result != expected {
		t.Errorf("Scale failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(0, 3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3HorizontalLength(t *testing.T) {
	// Vertical component must not contribute
	v := NewVector3(3, 1000, 4)
	result := v.HorizontalLength()

	expected := 5.0
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("HorizontalLength failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(10, -10, 10)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected unit length, got %v", normalized.Length())
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	v := NewVector3(0, 0, 0)
	normalized := v.Normalize()

	if normalized != (Vector3{}) {
		t.Errorf("Normalize of zero vector should be zero, got %v", normalized)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, -5, 6)
	result := v1.Dot(v2)

	expected := 12.0 // 1*4 - 2*5 + 3*6
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}
