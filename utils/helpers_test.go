package utils

import (
	"testing"
)

func TestMinMax(t *testing.T) {
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max broken")
	}
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min broken")
	}
	if Max("a", "b") != "b" {
		t.Error("Max on strings broken")
	}
}

func TestSum(t *testing.T) {
	if Sum([]int{1, 2, 3}) != 6 {
		t.Error("Sum broken")
	}
	if Sum([]float64{}) != 0 {
		t.Error("Sum of empty should be zero")
	}
}

func TestFloatEquals(t *testing.T) {
	if !FloatEquals(1.0, 1.0005) {
		t.Error("within default variance")
	}
	if FloatEquals(1.0, 1.1) {
		t.Error("outside default variance")
	}
	if FloatEquals(1.0, 1.0005, 1e-6) {
		t.Error("outside given variance")
	}
}
