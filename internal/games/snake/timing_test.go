package snake

import "testing"

func TestGate(t *testing.T) {
	g := NewGate(100)

	if g.Ready(0) || g.Ready(100) {
		t.Fatal("gate fired before its interval elapsed")
	}
	if !g.Ready(101) {
		t.Fatal("gate did not fire after its interval")
	}

	g.Mark(101)
	if g.Ready(150) {
		t.Error("gate fired right after Mark")
	}

	// A long stall fires once, not once per missed period.
	if !g.Ready(1_000) {
		t.Fatal("gate did not fire after a stall")
	}
	g.Mark(1_000)
	if g.Ready(1_050) {
		t.Error("missed periods were replayed")
	}
}

func TestPollIntervalHelper(t *testing.T) {
	tests := []struct {
		name      string
		intervals []int64
		expected  int64
	}{
		{"shortest wins", []int64{100_000, 33_333}, 8_333},
		{"floor", []int64{2_000, 1_000_000}, 1_000},
		{"single", []int64{40_000}, 10_000},
		{"none", nil, 1_000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PollInterval(tc.intervals...); got != tc.expected {
				t.Errorf("PollInterval(%v) = %d, expected %d", tc.intervals, got, tc.expected)
			}
		})
	}
}

func TestDirectionUnit(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		v := d.Unit(20)
		got, ok := headingOf(v)
		if !ok || got != d {
			t.Errorf("headingOf(%v.Unit(20)) = %v, %v", d, got, ok)
		}
		if d.Vertical() != (v.X == 0) {
			t.Errorf("%v.Vertical() disagrees with its unit %+v", d, v)
		}
	}

	if _, ok := headingOf(DirUp.Unit(0)); ok {
		t.Error("zero velocity must not have a heading")
	}
}
