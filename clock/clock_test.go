package clock

import (
	"testing"
	"time"
)

// TestMonotonicAdvances verifies the real provider moves forward
func TestMonotonicAdvances(t *testing.T) {
	p := NewMonotonic()
	first := p.Now()
	second := p.Now()
	if second.Before(first) {
		t.Errorf("Expected time to advance, got %v then %v", first, second)
	}
}

// TestMockSetAndAdvance verifies the mock provider is fully controllable
func TestMockSetAndAdvance(t *testing.T) {
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	m := NewMock(start)

	if !m.Now().Equal(start) {
		t.Errorf("Expected start time %v, got %v", start, m.Now())
	}

	m.Advance(90 * time.Second)
	want := start.Add(90 * time.Second)
	if !m.Now().Equal(want) {
		t.Errorf("Expected %v after advance, got %v", want, m.Now())
	}

	// Time stands still between explicit mutations.
	if !m.Now().Equal(want) {
		t.Error("Expected mock time frozen between mutations")
	}

	reset := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.SetTime(reset)
	if !m.Now().Equal(reset) {
		t.Errorf("Expected %v after SetTime, got %v", reset, m.Now())
	}
}
