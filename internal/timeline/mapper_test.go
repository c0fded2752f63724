package timeline

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestTimeFromOffset_ClampsToSurface(t *testing.T) {
	s := Surface{Origin: 12, Width: 300}

	// Left of the filmstrip maps to 0
	if got := TimeFromOffset(0, s, 60); got != 0 {
		t.Errorf("expected 0 for offset left of surface, got %f", got)
	}

	// Right of the filmstrip maps to the full duration
	if got := TimeFromOffset(1000, s, 60); got != 60 {
		t.Errorf("expected 60 for offset right of surface, got %f", got)
	}

	// Midpoint maps to half the duration
	if got := TimeFromOffset(12+150, s, 60); math.Abs(got-30) > epsilon {
		t.Errorf("expected 30 at midpoint, got %f", got)
	}
}

func TestTimeFromOffset_ZeroDuration(t *testing.T) {
	s := Surface{Origin: 0, Width: 300}

	if got := TimeFromOffset(150, s, 0); got != 0 {
		t.Errorf("expected 0 for zero duration, got %f", got)
	}

	if got := TimeFromOffset(150, Surface{}, 60); got != 0 {
		t.Errorf("expected 0 for zero-width surface, got %f", got)
	}
}

func TestOffsetFromTime_RoundTrip(t *testing.T) {
	s := Surface{Origin: 16, Width: 343}
	duration := 57.3

	// Round-trip must be stable for times strictly inside the clip
	for _, tm := range []float64{0.1, 1, 5.5, 28.65, 42, 57.2} {
		offset := OffsetFromTime(tm, s, duration)
		got := TimeFromOffset(offset, s, duration)
		if math.Abs(got-tm) > 1e-6 {
			t.Errorf("round trip for t=%f: got %f", tm, got)
		}
	}
}

func TestOffsetFromTime_Bounds(t *testing.T) {
	s := Surface{Origin: 10, Width: 200}

	if got := OffsetFromTime(0, s, 30); got != 10 {
		t.Errorf("expected origin for t=0, got %f", got)
	}

	if got := OffsetFromTime(30, s, 30); got != 210 {
		t.Errorf("expected origin+width for t=duration, got %f", got)
	}

	// Out-of-range time is clamped
	if got := OffsetFromTime(99, s, 30); got != 210 {
		t.Errorf("expected clamp to right edge, got %f", got)
	}
}

func TestNormalizedFromOffset_RoundTrip(t *testing.T) {
	s := Surface{Origin: 0, Width: 390}

	for _, pct := range []float64{0, 12.5, 50, 87.5, 100} {
		offset := OffsetFromNormalized(pct, s)
		got := NormalizedFromOffset(offset, s)
		if math.Abs(got-pct) > 1e-6 {
			t.Errorf("round trip for pct=%f: got %f", pct, got)
		}
	}
}

func TestNormalizedFromOffset_Clamps(t *testing.T) {
	s := Surface{Origin: 0, Width: 200}

	if got := NormalizedFromOffset(-50, s); got != 0 {
		t.Errorf("expected 0 below surface, got %f", got)
	}

	if got := NormalizedFromOffset(500, s); got != 100 {
		t.Errorf("expected 100 beyond surface, got %f", got)
	}
}
