package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	result := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	result := NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3))

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	distance := NewVector3(0, 0, 0).Distance(NewVector3(3, 0, 4))

	if math.Abs(distance-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", distance)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", got)
	}
}

func TestVector3Cross(t *testing.T) {
	result := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3ToXZ(t *testing.T) {
	p := NewVector3(1, 7, -2).ToXZ()
	if p.X != 1 || p.Y != -2 {
		t.Errorf("ToXZ failed: expected (1, -2), got %v", p)
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, 2, 3).IsFinite() {
		t.Error("expected finite vector")
	}
	if NewVector3(math.Inf(1), 0, 0).IsFinite() {
		t.Error("expected +Inf to be non-finite")
	}
	if NewVector3(0, math.NaN(), 0).IsFinite() {
		t.Error("expected NaN to be non-finite")
	}
}

func TestVector3MinMax(t *testing.T) {
	a := NewVector3(1, 5, -3)
	b := NewVector3(2, -1, 0)

	if got := a.Min(b); got != NewVector3(1, -1, -3) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := a.Max(b); got != NewVector3(2, 5, 0) {
		t.Errorf("Max failed: got %v", got)
	}
}
