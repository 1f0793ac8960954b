package xmeml

import "testing"

func TestFrames(t *testing.T) {
	cases := []struct {
		ms   int64
		fps  float64
		want int64
	}{
		{0, 60, 0},
		{1500, 60, 90},
		{999, 30, 29},
		{1000, 29.97, 29},
		{60000, 60, 3600},
		{60000, 30, 1800},
	}
	for _, tc := range cases {
		if got := Frames(tc.ms, tc.fps); got != tc.want {
			t.Errorf("Frames(%d, %v) = %d, want %d", tc.ms, tc.fps, got, tc.want)
		}
	}
}

func TestNewRateIntegerRates(t *testing.T) {
	for _, fps := range []float64{24, 25, 30, 50, 60} {
		rate := NewRate(fps)
		if bool(rate.NTSC) {
			t.Errorf("NewRate(%v): unexpected NTSC flag", fps)
		}
		if rate.Timebase != int(fps) {
			t.Errorf("NewRate(%v): timebase %d", fps, rate.Timebase)
		}
	}
}

func TestNewRateNTSCFamily(t *testing.T) {
	// Exact rationals, as derived from fps_num/fps_den metadata.
	cases := []struct {
		fps      float64
		timebase int
	}{
		{30000.0 / 1001.0, 30},
		{24000.0 / 1001.0, 24},
		{60000.0 / 1001.0, 60},
	}
	for _, tc := range cases {
		rate := NewRate(tc.fps)
		if !bool(rate.NTSC) {
			t.Errorf("NewRate(%v): expected NTSC flag", tc.fps)
		}
		if rate.Timebase != tc.timebase {
			t.Errorf("NewRate(%v): timebase %d, want %d", tc.fps, rate.Timebase, tc.timebase)
		}
	}
}

func TestIsNTSC(t *testing.T) {
	for _, fps := range []float64{23.976, 29.97, 59.94, 30000.0 / 1001.0} {
		if !IsNTSC(fps) {
			t.Errorf("IsNTSC(%v) = false", fps)
		}
	}
	for _, fps := range []float64{24, 25, 30, 60, 29.5} {
		if IsNTSC(fps) {
			t.Errorf("IsNTSC(%v) = true", fps)
		}
	}
}

func TestColorCodeFallsBackToBlue(t *testing.T) {
	blue := ColorCode("blue")
	if blue != 4294741314 {
		t.Fatalf("unexpected blue code: %d", blue)
	}
	if ColorCode("chartreuse") != blue {
		t.Error("unknown color should resolve to blue")
	}
	if ColorCode("") != blue {
		t.Error("empty color should resolve to blue")
	}
	if ColorCode("RED") != ColorCode("red") {
		t.Error("color lookup should be case-insensitive")
	}
	if ColorCode("red") == blue {
		t.Error("red should not collide with blue")
	}
}
