package menu

import (
	"math"
	"testing"
	"time"
)

// TestSmoothConverges verifies the value approaches the target without overshoot
func TestSmoothConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 120; i++ {
		v = Smooth(v, 10, 16*time.Millisecond, DefaultScrollRate)
		if v > 10 {
			t.Fatalf("Expected no overshoot, got %v on frame %d", v, i)
		}
	}
	if math.Abs(v-10) > 0.01 {
		t.Errorf("Expected convergence near 10 after 2s, got %v", v)
	}
}

// TestSmoothFrameRateIndependent verifies two half steps equal one full step
func TestSmoothFrameRateIndependent(t *testing.T) {
	full := Smooth(0, 10, 32*time.Millisecond, DefaultScrollRate)

	half := Smooth(0, 10, 16*time.Millisecond, DefaultScrollRate)
	half = Smooth(half, 10, 16*time.Millisecond, DefaultScrollRate)

	if math.Abs(full-half) > 1e-9 {
		t.Errorf("Expected %v from two half steps, got %v", full, half)
	}
}

// TestSmoothDegenerateInputs verifies zero dt or rate leaves the value alone
func TestSmoothDegenerateInputs(t *testing.T) {
	if got := Smooth(3, 10, 0, DefaultScrollRate); got != 3 {
		t.Errorf("Expected unchanged value for dt=0, got %v", got)
	}
	if got := Smooth(3, 10, 16*time.Millisecond, 0); got != 3 {
		t.Errorf("Expected unchanged value for rate=0, got %v", got)
	}
	if got := Smooth(7, 7, 16*time.Millisecond, DefaultScrollRate); got != 7 {
		t.Errorf("Expected value at target to stay, got %v", got)
	}
}
