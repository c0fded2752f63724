// Package timeline implements the filmstrip trim surface: pure
// conversions between pointer offsets and clip time, and the gesture
// state machine that drives the trim handles and playhead.
package timeline

// Surface describes the interactive span of a rendered filmstrip. Origin
// is the offset of the filmstrip's left edge within the gesture surface
// (edge padding), Width its usable extent. Both are in the same units as
// incoming pointer offsets.
type Surface struct {
	Origin float64
	Width  float64
}

// TimeFromOffset maps a pointer offset on the surface to a time in
// seconds. The offset is clamped to the filmstrip span first, so the
// result always lands in [0, duration].
func TimeFromOffset(offset float64, s Surface, duration float64) float64 {
	if s.Width <= 0 || duration <= 0 {
		return 0
	}
	clamped := clamp(offset, s.Origin, s.Origin+s.Width)
	return (clamped - s.Origin) / s.Width * duration
}

// OffsetFromTime is the inverse of TimeFromOffset, used to place the
// handles and playhead visually.
func OffsetFromTime(t float64, s Surface, duration float64) float64 {
	if duration <= 0 {
		return s.Origin
	}
	return s.Origin + clamp(t, 0, duration)/duration*s.Width
}

// NormalizedFromOffset maps a pointer offset within a frame axis to a
// percentage in [0, 100].
func NormalizedFromOffset(offset float64, s Surface) float64 {
	if s.Width <= 0 {
		return 0
	}
	clamped := clamp(offset, s.Origin, s.Origin+s.Width)
	return (clamped - s.Origin) / s.Width * 100
}

// OffsetFromNormalized maps a percentage in [0, 100] back to an offset on
// the frame axis.
func OffsetFromNormalized(pct float64, s Surface) float64 {
	return s.Origin + clamp(pct, 0, 100)/100*s.Width
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
