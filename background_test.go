package landscape

import (
	"testing"
	"time"
)

func clock(h, m int) time.Time {
	return time.Date(2024, 3, 20, h, m, 0, 0, time.UTC)
}

func TestColorAt(t *testing.T) {
	rise, set := clock(6, 0), clock(18, 0)
	tests := []struct {
		name string
		now  time.Time
		want RGB
	}{
		{"noon", clock(12, 0), DaySky},
		{"midnight", clock(0, 0), NightSky},
		{"late evening", clock(22, 0), NightSky},
		{"sunrise midpoint", clock(6, 0), RGB{67, 103, 140}},
		{"window start", clock(4, 30), NightSky},
		{"window end", clock(7, 30), DaySky},
	}
	for _, tt := range tests {
		if got := ColorAt(tt.now, rise, set, DefaultTransition); got != tt.want {
			t.Errorf("%s: ColorAt = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColorAtMonotonicAcrossSunrise(t *testing.T) {
	rise, set := clock(6, 0), clock(18, 0)
	prev := ColorAt(clock(4, 30), rise, set, DefaultTransition)
	for m := 0; m <= 180; m++ {
		got := ColorAt(clock(4, 30).Add(time.Duration(m)*time.Minute), rise, set, DefaultTransition)
		if got.B < prev.B || got.R < prev.R {
			t.Fatalf("sky darkened at minute %d: %v -> %v", m, prev, got)
		}
		prev = got
	}
	prev = ColorAt(clock(16, 30), rise, set, DefaultTransition)
	for m := 0; m <= 180; m++ {
		got := ColorAt(clock(16, 30).Add(time.Duration(m)*time.Minute), rise, set, DefaultTransition)
		if got.B > prev.B || got.R > prev.R {
			t.Fatalf("sky brightened at minute %d: %v -> %v", m, prev, got)
		}
		prev = got
	}
}

func TestColorAtSunsetAfterMidnight(t *testing.T) {
	rise, set := clock(10, 0), clock(1, 0)
	if got := ColorAt(clock(23, 0), rise, set, 30*time.Minute); got != DaySky {
		t.Errorf("23:00 before a 01:00 sunset = %v, want day", got)
	}
}

func TestBackgroundModes(t *testing.T) {
	now, rise, set := clock(0, 0), clock(6, 0), clock(18, 0)
	tests := []struct {
		mode BackgroundMode
		want RGB
	}{
		{BackgroundBlack, Black},
		{BackgroundWhite, White},
		{BackgroundStatic, DaySky},
		{BackgroundDynamic, NightSky},
	}
	for _, tt := range tests {
		if got := Background(tt.mode, now, rise, set, DefaultTransition); got != tt.want {
			t.Errorf("Background(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestParseBackgroundMode(t *testing.T) {
	for m := BackgroundDynamic; m <= BackgroundWhite; m++ {
		got, ok := ParseBackgroundMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseBackgroundMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseBackgroundMode("plaid"); ok {
		t.Error("unknown mode accepted")
	}
}
