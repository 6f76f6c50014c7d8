package selection

import "testing"

func TestToggle(t *testing.T) {
	tests := []struct {
		start Mode
		once  Mode
		twice Mode
	}{
		{PlacingCourier, PlacingPath, PlacingCourier},
		{PlacingPath, PlacingCourier, PlacingPath},
		{Paused, Paused, Paused},
	}

	for _, tt := range tests {
		t.Run(tt.start.String(), func(t *testing.T) {
			c := NewController(tt.start)
			if c.Current() != tt.start {
				t.Fatalf("Expected initial %v, got %v", tt.start, c.Current())
			}
			c.Toggle()
			if c.Current() != tt.once {
				t.Errorf("after one toggle: got %v, want %v", c.Current(), tt.once)
			}
			c.Toggle()
			if c.Current() != tt.twice {
				t.Errorf("after two toggles: got %v, want %v", c.Current(), tt.twice)
			}
		})
	}
}

func TestCurrentIsPure(t *testing.T) {
	c := NewController(PlacingPath)
	for i := 0; i < 3; i++ {
		if c.Current() != PlacingPath {
			t.Fatalf("read %d changed mode to %v", i, c.Current())
		}
	}
}

func TestModeString(t *testing.T) {
	if Mode(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %q", Mode(99).String())
	}
	if PlacingCourier.String() != "placing courier" {
		t.Errorf("Expected 'placing courier', got %q", PlacingCourier.String())
	}
}
